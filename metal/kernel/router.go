package kernel

import (
	baseHttp "net/http"

	"github.com/ehihameneromosele/fullblog2c/database"
	"github.com/ehihameneromosele/fullblog2c/database/repository"
	"github.com/ehihameneromosele/fullblog2c/handler"
	"github.com/ehihameneromosele/fullblog2c/metal/env"
	"github.com/ehihameneromosele/fullblog2c/pkg/auth"
	"github.com/ehihameneromosele/fullblog2c/pkg/endpoint"
	"github.com/ehihameneromosele/fullblog2c/pkg/media"
	"github.com/ehihameneromosele/fullblog2c/pkg/middleware"
)

type Router struct {
	Env      *env.Environment
	Mux      *baseHttp.ServeMux
	Pipeline middleware.Pipeline
	Db       *database.Connection
	JWT      auth.JWTHandler
	Policy   auth.Policy
	Uploader media.Uploader
}

// PublicPipelineFor serves routes that anonymous callers may hit.
func (r *Router) PublicPipelineFor(apiHandler endpoint.ApiHandler) baseHttp.HandlerFunc {
	requestID := middleware.RequestIDMiddleware{}

	return endpoint.NewApiHandler(
		r.Pipeline.Chain(
			apiHandler,
			requestID.Handle,
		),
	)
}

// PipelineFor guards routes behind a valid bearer access token.
func (r *Router) PipelineFor(apiHandler endpoint.ApiHandler) baseHttp.HandlerFunc {
	requestID := middleware.RequestIDMiddleware{}

	return endpoint.NewApiHandler(
		r.Pipeline.Chain(
			apiHandler,
			requestID.Handle,
			r.Pipeline.Jwt.Handle,
		),
	)
}

func (r *Router) Auth() {
	abstract := handler.MakeAuthHandler(r.Pipeline.Users, r.JWT)

	r.Mux.HandleFunc("POST /register", r.PublicPipelineFor(abstract.Register))
	r.Mux.HandleFunc("POST /login", r.PublicPipelineFor(abstract.Login))
	r.Mux.HandleFunc("POST /token/refresh", r.PublicPipelineFor(abstract.Refresh))
}

func (r *Router) Categories() {
	repo := repository.Categories{DB: r.Db}
	abstract := handler.NewCategoriesHandler(&repo, r.Pipeline.Users, r.Policy)

	r.Mux.HandleFunc("GET /categories", r.PublicPipelineFor(abstract.Index))
	r.Mux.HandleFunc("POST /categories", r.PipelineFor(abstract.Store))
	r.Mux.HandleFunc("GET /categories/{id}", r.PublicPipelineFor(abstract.Show))
	r.Mux.HandleFunc("PUT /admin/categories/{id}", r.PipelineFor(abstract.Update))
	r.Mux.HandleFunc("PATCH /admin/categories/{id}", r.PipelineFor(abstract.Update))
	r.Mux.HandleFunc("DELETE /admin/categories/{id}", r.PipelineFor(abstract.Delete))
}

func (r *Router) Posts() {
	repo := repository.Posts{DB: r.Db}
	abstract := handler.NewPostsHandler(&repo, r.Pipeline.Users, r.Policy, r.Uploader)

	r.Mux.HandleFunc("GET /posts", r.PublicPipelineFor(abstract.Index))
	r.Mux.HandleFunc("POST /posts", r.PipelineFor(abstract.Store))
	r.Mux.HandleFunc("GET /posts/latest", r.PublicPipelineFor(abstract.Latest))
	r.Mux.HandleFunc("GET /posts/my-posts", r.PipelineFor(abstract.MyPosts))
	r.Mux.HandleFunc("GET /posts/{id}", r.PublicPipelineFor(abstract.Show))
	r.Mux.HandleFunc("PUT /posts/{id}", r.PipelineFor(abstract.Update))
	r.Mux.HandleFunc("PATCH /posts/{id}", r.PipelineFor(abstract.Update))
	r.Mux.HandleFunc("DELETE /posts/{id}", r.PipelineFor(abstract.Delete))
	r.Mux.HandleFunc("POST /posts/{id}/image", r.PipelineFor(abstract.UploadImage))
}

func (r *Router) Comments() {
	comments := repository.Comments{DB: r.Db}
	posts := repository.Posts{DB: r.Db}
	abstract := handler.NewCommentsHandler(&comments, &posts, r.Pipeline.Users, r.Policy)

	r.Mux.HandleFunc("GET /posts/{id}/comments", r.PipelineFor(abstract.IndexForPost))
	r.Mux.HandleFunc("POST /posts/{id}/comments", r.PipelineFor(abstract.Store))
	r.Mux.HandleFunc("GET /comments/{id}", r.PipelineFor(abstract.Show))
	r.Mux.HandleFunc("PUT /comments/{id}", r.PipelineFor(abstract.Update))
	r.Mux.HandleFunc("PATCH /comments/{id}", r.PipelineFor(abstract.Update))
	r.Mux.HandleFunc("DELETE /comments/{id}", r.PipelineFor(abstract.Delete))
}

func (r *Router) Likes() {
	likes := repository.Likes{DB: r.Db}
	posts := repository.Posts{DB: r.Db}
	abstract := handler.NewLikesHandler(&likes, &posts, r.Pipeline.Users)

	r.Mux.HandleFunc("POST /posts/{id}/like-toggle", r.PipelineFor(abstract.Toggle))
}

func (r *Router) Ping() {
	abstract := handler.MakePingHandler(r.Db)

	r.Mux.HandleFunc("GET /ping", r.PublicPipelineFor(abstract.Handle))
}

func (r *Router) Metrics() {
	abstract := handler.NewMetricsHandler()

	r.Mux.Handle("GET /metrics", abstract)
}

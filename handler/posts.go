package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	baseHttp "net/http"

	"github.com/ehihameneromosele/fullblog2c/database"
	"github.com/ehihameneromosele/fullblog2c/database/repository"
	"github.com/ehihameneromosele/fullblog2c/handler/payload"
	"github.com/ehihameneromosele/fullblog2c/pkg/auth"
	"github.com/ehihameneromosele/fullblog2c/pkg/endpoint"
	"github.com/ehihameneromosele/fullblog2c/pkg/media"
	"github.com/ehihameneromosele/fullblog2c/pkg/portal"
)

const maxImageUploadSize = 10 << 20 // multipart memory ceiling

type PostsHandler struct {
	Posts    *repository.Posts
	Users    *repository.Users
	Policy   auth.Policy
	Uploader media.Uploader
}

func NewPostsHandler(posts *repository.Posts, users *repository.Users, policy auth.Policy, uploader media.Uploader) PostsHandler {
	return PostsHandler{
		Posts:    posts,
		Users:    users,
		Policy:   policy,
		Uploader: uploader,
	}
}

func (h *PostsHandler) Index(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	query := r.URL.Query()

	posts, err := h.Posts.GetAll(repository.PostFilters{
		Search:   query.Get("search"),
		Ordering: query.Get("ordering"),
	})

	if err != nil {
		slog.Error("Error getting posts", "err", err)
		return endpoint.InternalError("Error getting posts")
	}

	if err := json.NewEncoder(w).Encode(payload.GetPostsResponse(posts, h.Posts)); err != nil {
		slog.Error("failed to encode response", "err", err)

		return endpoint.InternalError("There was an issue processing the response. Please, try later.")
	}

	return nil
}

func (h *PostsHandler) Latest(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	posts, err := h.Posts.Latest()

	if err != nil {
		slog.Error("Error getting latest posts", "err", err)
		return endpoint.InternalError("Error getting latest posts")
	}

	if err := json.NewEncoder(w).Encode(payload.GetPostsResponse(posts, h.Posts)); err != nil {
		slog.Error("failed to encode response", "err", err)

		return endpoint.InternalError("There was an issue processing the response. Please, try later.")
	}

	return nil
}

func (h *PostsHandler) MyPosts(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	actor, apiErr := currentUser(r, h.Users)
	if apiErr != nil {
		return apiErr
	}

	posts, err := h.Posts.ByAuthor(actor.ID)

	if err != nil {
		slog.Error("Error getting own posts", "err", err)
		return endpoint.InternalError("Error getting own posts")
	}

	if err := json.NewEncoder(w).Encode(payload.GetPostsResponse(posts, h.Posts)); err != nil {
		slog.Error("failed to encode response", "err", err)

		return endpoint.InternalError("There was an issue processing the response. Please, try later.")
	}

	return nil
}

func (h *PostsHandler) Show(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	id, apiErr := parsePathID(r, "id")
	if apiErr != nil {
		return apiErr
	}

	post := h.Posts.FindByID(id)
	if post == nil {
		return endpoint.NotFound("post not found")
	}

	detail := payload.GetPostDetailResponse(*post, h.Posts)

	// Counters feed the ETag so a fresh like or comment busts the cache even
	// though the row itself is untouched.
	salt := fmt.Sprintf("%s:%d:%d:%d", post.UUID, post.UpdatedAt.Unix(), detail.LikesCount, detail.CommentsCount)
	resp := endpoint.NewResponseFrom(salt, w, r)

	if resp.HasCache() {
		resp.RespondWithNotModified()

		return nil
	}

	if err := resp.RespondOk(detail); err != nil {
		slog.Error("failed to encode response", "err", err)

		return endpoint.InternalError("There was an issue processing the response. Please, try later.")
	}

	return nil
}

func (h *PostsHandler) Store(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	defer portal.CloseWithLog(r.Body)

	actor, apiErr := currentUser(r, h.Users)
	if apiErr != nil {
		return apiErr
	}

	if !h.Policy.CanCreatePost(actor) {
		return endpoint.ForbiddenError("only blog admins can author posts")
	}

	req, err := endpoint.ParseRequestBody[payload.PostRequest](r)
	if err != nil {
		return endpoint.LogBadRequestError("invalid request body", err)
	}

	published := true
	if req.Published != nil {
		published = *req.Published
	}

	post, err := h.Posts.Create(database.PostsAttrs{
		AuthorID:   actor.ID,
		Title:      req.Title,
		Content:    req.Content,
		CategoryID: req.CategoryID,
		Published:  published,
	})

	if err != nil {
		return translateRepoError("could not create the post", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(baseHttp.StatusCreated)

	if err := json.NewEncoder(w).Encode(payload.GetPostResponse(*post, h.Posts)); err != nil {
		slog.Error("failed to encode response", "err", err)

		return endpoint.InternalError("There was an issue processing the response. Please, try later.")
	}

	return nil
}

func (h *PostsHandler) Update(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	defer portal.CloseWithLog(r.Body)

	actor, apiErr := currentUser(r, h.Users)
	if apiErr != nil {
		return apiErr
	}

	id, apiErr := parsePathID(r, "id")
	if apiErr != nil {
		return apiErr
	}

	post := h.Posts.FindByID(id)
	if post == nil {
		return endpoint.NotFound("post not found")
	}

	if !h.Policy.CanModifyPost(actor, *post) {
		return endpoint.ForbiddenError("you cannot modify this post")
	}

	req, err := endpoint.ParseRequestBody[payload.PostRequest](r)
	if err != nil {
		return endpoint.LogBadRequestError("invalid request body", err)
	}

	published := post.Published
	if req.Published != nil {
		published = *req.Published
	}

	updated, err := h.Posts.Update(post, database.PostsAttrs{
		Title:      req.Title,
		Content:    req.Content,
		CategoryID: req.CategoryID,
		Published:  published,
	})

	if err != nil {
		return translateRepoError("could not update the post", err)
	}

	if err := json.NewEncoder(w).Encode(payload.GetPostResponse(*updated, h.Posts)); err != nil {
		slog.Error("failed to encode response", "err", err)

		return endpoint.InternalError("There was an issue processing the response. Please, try later.")
	}

	return nil
}

func (h *PostsHandler) Delete(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	actor, apiErr := currentUser(r, h.Users)
	if apiErr != nil {
		return apiErr
	}

	id, apiErr := parsePathID(r, "id")
	if apiErr != nil {
		return apiErr
	}

	post := h.Posts.FindByID(id)
	if post == nil {
		return endpoint.NotFound("post not found")
	}

	if !h.Policy.CanModifyPost(actor, *post) {
		return endpoint.ForbiddenError("you cannot modify this post")
	}

	if err := h.Posts.Delete(post.ID); err != nil {
		return translateRepoError("could not delete the post", err)
	}

	w.WriteHeader(baseHttp.StatusNoContent)

	return nil
}

// UploadImage receives a multipart image, pushes it to the media store and
// persists the resulting public URL on the post.
func (h *PostsHandler) UploadImage(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	actor, apiErr := currentUser(r, h.Users)
	if apiErr != nil {
		return apiErr
	}

	id, apiErr := parsePathID(r, "id")
	if apiErr != nil {
		return apiErr
	}

	post := h.Posts.FindByID(id)
	if post == nil {
		return endpoint.NotFound("post not found")
	}

	if !h.Policy.CanModifyPost(actor, *post) {
		return endpoint.ForbiddenError("you cannot modify this post")
	}

	if err := r.ParseMultipartForm(maxImageUploadSize); err != nil {
		return endpoint.BadRequestError("invalid multipart payload")
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		return endpoint.BadRequestError("an image file is required")
	}
	defer portal.CloseWithLog(file)

	data, err := io.ReadAll(file)
	if err != nil {
		slog.Error("failed to read uploaded image", "err", err)
		return endpoint.InternalError("could not read the uploaded image")
	}

	image, err := media.NewMedia(post.UUID, data, header.Filename)
	if err != nil {
		return endpoint.BadRequestError(err.Error())
	}

	url, err := h.Uploader.Upload(r.Context(), image)
	if err != nil {
		slog.Error("failed to store uploaded image", "err", err)
		return endpoint.InternalError("could not store the uploaded image")
	}

	if _, err := h.Posts.Update(post, database.PostsAttrs{ImageURL: url, Published: post.Published}); err != nil {
		return translateRepoError("could not attach the image to the post", err)
	}

	if err := json.NewEncoder(w).Encode(payload.ImageUploadResponse{URL: url}); err != nil {
		slog.Error("failed to encode response", "err", err)

		return endpoint.InternalError("There was an issue processing the response. Please, try later.")
	}

	return nil
}

package kernel

import (
	"context"
	"fmt"
	baseHttp "net/http"

	"github.com/ehihameneromosele/fullblog2c/database"
	"github.com/ehihameneromosele/fullblog2c/database/repository"
	"github.com/ehihameneromosele/fullblog2c/metal/env"
	"github.com/ehihameneromosele/fullblog2c/pkg/auth"
	"github.com/ehihameneromosele/fullblog2c/pkg/llogs"
	"github.com/ehihameneromosele/fullblog2c/pkg/media"
	"github.com/ehihameneromosele/fullblog2c/pkg/middleware"
	"github.com/ehihameneromosele/fullblog2c/pkg/portal"
)

type App struct {
	router    *Router
	sentry    *portal.Sentry
	logs      llogs.Driver
	validator *portal.Validator
	env       *env.Environment
	db        *database.Connection
}

func MakeApp(env *env.Environment, validator *portal.Validator) (*App, error) {
	jwtHandler, err := auth.MakeJWTHandler(
		[]byte(env.JWT.Secret),
		env.JWT.GetAccessTTL(),
		env.JWT.GetRefreshTTL(),
	)

	if err != nil {
		return nil, fmt.Errorf("bootstrapping error > could not create jwt handler: %w", err)
	}

	uploader, err := media.MakeS3Store(context.Background(), env.S3)

	if err != nil {
		return nil, fmt.Errorf("bootstrapping error > could not create the media store: %w", err)
	}

	db := MakeDbConnection(env)

	users := &repository.Users{DB: db}

	app := App{
		env:       env,
		validator: validator,
		logs:      MakeLogs(env),
		sentry:    MakeSentry(env),
		db:        db,
	}

	router := Router{
		Env:      env,
		Db:       db,
		Mux:      baseHttp.NewServeMux(),
		JWT:      jwtHandler,
		Policy:   auth.MakePolicy(repository.Profiles{DB: db}),
		Uploader: uploader,
		Pipeline: middleware.Pipeline{
			Env:   env,
			Users: users,
			Jwt:   middleware.JWTMiddleware{Handler: jwtHandler},
		},
	}

	app.SetRouter(router)

	return &app, nil
}

func (a *App) Boot() {
	if a == nil || a.router == nil {
		panic("bootstrapping error > Invalid setup")
	}

	router := *a.router

	router.Auth()
	router.Categories()
	router.Posts()
	router.Comments()
	router.Likes()
	router.Ping()
	router.Metrics()
}

package main

import (
	"context"
	"log/slog"
	baseHttp "net/http"

	_ "github.com/lib/pq"

	"github.com/ehihameneromosele/fullblog2c/database/backup"
	"github.com/ehihameneromosele/fullblog2c/metal/kernel"
	"github.com/ehihameneromosele/fullblog2c/pkg/endpoint"
	"github.com/ehihameneromosele/fullblog2c/pkg/portal"
)

var app *kernel.App

func init() {
	validate := portal.GetDefaultValidator()

	secrets, err := kernel.Ignite("./.env", validate)

	if err != nil {
		panic(err)
	}

	if app, err = kernel.MakeApp(secrets, validate); err != nil {
		panic(err)
	}
}

func main() {
	defer app.CloseDB()
	defer app.CloseLogs()

	app.Boot()

	environment := app.GetEnv()

	tracer, err := portal.NewTracerProvider(environment)
	if err != nil {
		slog.Error("could not initialise tracing", "error", err)
	} else if tracer != nil {
		defer func() {
			if err := tracer.Shutdown(); err != nil {
				slog.Error("could not shut tracing down", "error", err)
			}
		}()
	}

	scheduler, err := backup.NewScheduler(environment)
	if err != nil {
		slog.Error("could not build backup scheduler", "error", err)
	} else if err = scheduler.Start(context.Background()); err != nil {
		slog.Error("could not start backup scheduler", "error", err)
	} else {
		defer scheduler.Stop()
	}

	handler := endpoint.NewServerHandler(endpoint.ServerHandlerConfig{
		Mux:          app.GetMux(),
		IsProduction: app.IsProduction(),
		DevHost:      environment.App.URL,
		Wrap:         app.GetSentryWrap(),
	})

	addr := environment.Network.GetHostURL()
	server := &baseHttp.Server{
		Addr:    addr,
		Handler: handler,
	}

	if err := endpoint.RunServer(addr, server); err != nil {
		slog.Error("error running server", "error", err)
		panic("error running server: " + err.Error())
	}
}

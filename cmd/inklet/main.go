package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"

	"github.com/inklet-dev/inklet/internal/config"
	"github.com/inklet-dev/inklet/internal/infrastructure/gateway"
	"github.com/inklet-dev/inklet/internal/infrastructure/repository"
	"github.com/inklet-dev/inklet/internal/present/rest"
	restmw "github.com/inklet-dev/inklet/internal/present/rest/middleware"
	"github.com/inklet-dev/inklet/internal/service"
	"github.com/inklet-dev/inklet/internal/telemetry"
	"github.com/inklet-dev/inklet/internal/usecase"
)

// uploadLimit is the per-request ceiling enforced before any handler runs.
const uploadLimit = "10M"

func main() {
	configPath := os.Getenv("INKLET_CONFIG")
	if configPath == "" {
		configPath = "config.yaml"
	}

	conf, err := config.Load(configPath)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	if conf.Server.EnableTrace {
		shutdown, err := telemetry.Setup(context.Background(), conf.Server.TraceEndpoint, "inklet")
		if err != nil {
			panic("failed to set up tracing: " + err.Error())
		}
		defer shutdown(context.Background()) //nolint:errcheck
	}

	store := repository.NewFileStore(conf.Server.DataFile)
	images := gateway.NewCloudinary(conf.Cloudinary.CloudName, conf.Cloudinary.UploadPreset)

	var signal *service.SignalService
	if conf.Server.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr: conf.Server.RedisAddr,
			DB:   conf.Server.RedisDB,
		})
		signal = service.NewSignalService(rdb)
	}

	postUsecase := usecase.NewPostUsecase(store, images)
	messageUsecase := usecase.NewMessageUsecase(store, images)

	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	e.Use(echomw.BodyLimit(uploadLimit))
	if conf.Server.EnableTrace {
		e.Use(otelecho.Middleware("inklet"))
	}

	handler := rest.NewHandler(postUsecase, messageUsecase, signal)
	handler.RegisterRoutes(e, restmw.AdminToken(conf.Server.AdminToken))

	slog.Info("starting server",
		slog.String("port", conf.Server.Port),
		slog.String("dataFile", conf.Server.DataFile),
		slog.Bool("adminGate", conf.Server.AdminToken != ""),
		slog.Bool("realtime", signal != nil),
	)

	e.Logger.Fatal(e.Start(":" + conf.Server.Port))
}

package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gdh/parayo/config"
	"github.com/gdh/parayo/internal/controller"
	"github.com/gdh/parayo/internal/infrastructure/push"
	"github.com/gdh/parayo/internal/infrastructure/storage"
	"github.com/gdh/parayo/internal/infrastructure/tracing"
	appmiddleware "github.com/gdh/parayo/internal/middleware"
	"github.com/gdh/parayo/internal/repository"
	"github.com/gdh/parayo/internal/service"
	"github.com/gdh/parayo/pkg/response"
	"github.com/gdh/parayo/pkg/token"
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type App struct {
	DB     *sqlx.DB
	Config *config.Config
	Server *echo.Echo
}

func (app *App) Start() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	e := echo.New()
	traceProvider, err := tracing.InitTracing(app.Config.TracingConfig.CollectorHost)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize tracing")
	}

	defer func() {
		if err := traceProvider.Shutdown(context.Background()); err != nil {
			logger.Error().Err(err).Msg("Failed to shutdown tracing")
		}
	}()

	tracer := traceProvider.Tracer("parayo-api")

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()))
			defer span.End()

			req := c.Request()
			c.SetRequest(req.WithContext(ctx))

			return next(c)
		}
	})

	// Used empty string so that metrics are not prefixed with the service name
	e.Use(echoprometheus.NewMiddleware(""))

	go func() {
		metrics := echo.New()
		metrics.GET("/metrics", echoprometheus.NewHandler())
		if err := metrics.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start metrics server")
		}
	}()

	userRepo := repository.CreateNewUserRepository(app.DB)
	productRepo := repository.CreateNewProductRepository(app.DB)
	imageRepo := repository.CreateNewProductImageRepository(app.DB)

	tokens := token.CreateNewService(app.Config.JWTConfig.Secret, app.Config.JWTConfig.RefreshSecret)

	var sender push.Sender
	if app.Config.FCMConfig.CredentialsFile != "" {
		fcmSender, err := push.CreateNewFCMSender(context.Background(), app.Config.FCMConfig.CredentialsFile)
		if err != nil {
			logger.Error().Err(err).Msg("Failed to initialize FCM, push notifications disabled")
		} else {
			sender = fcmSender
		}
	}

	store := storage.CreateNewLocalFileStore(app.Config.FileUploadDir)

	notificationSvc := service.CreateNewNotificationService(sender)
	userSvc := service.CreateNewUserService(userRepo, tokens)
	productSvc := service.CreateNewProductService(productRepo, imageRepo, userRepo, notificationSvc)
	imageSvc := service.CreateNewProductImageService(imageRepo, store)

	g := e.Group("/api/v1")
	g.Use(appmiddleware.Logger)
	g.Use(appmiddleware.TokenValidation(tokens, userRepo))

	controller.CreateUserController(g, userSvc)
	controller.CreateProductController(g, productSvc, imageSvc)

	g.GET("/ping", func(c echo.Context) error {
		return response.WriteSuccessResponse(c, "Hello, World!")
	})

	e.Static("/images", filepath.Join(app.Config.FileUploadDir, "images"))

	app.Server = e

	if err := e.Start(fmt.Sprintf(":%s", app.Config.ServicePort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
		e.Logger.Fatal(err)
	}
}

func (app *App) StopServer() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return app.Server.Shutdown(ctx)
}

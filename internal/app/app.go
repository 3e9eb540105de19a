package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/freshcart/commerce-service/config"
	"github.com/freshcart/commerce-service/internal/controller"
	"github.com/freshcart/commerce-service/internal/infrastructure/mailer"
	"github.com/freshcart/commerce-service/internal/infrastructure/mediahost"
	"github.com/freshcart/commerce-service/internal/infrastructure/tracing"
	custommiddleware "github.com/freshcart/commerce-service/internal/middleware"
	"github.com/freshcart/commerce-service/internal/repository"
	"github.com/freshcart/commerce-service/internal/service"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
)

type App struct {
	DB     *mongo.Database
	Media  mediahost.MediaHost
	Config *config.Config
	Server *echo.Echo
}

func (app *App) Start() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	e := echo.New()
	app.Server = e

	if app.Config.TracingConfig.CollectorHost != "" {
		traceProvider, err := tracing.InitTracing(app.Config.TracingConfig.CollectorHost)
		if err != nil {
			logger.Error().Err(err).Msg("Failed to initialize tracing")
		} else {
			defer func() {
				if err := traceProvider.Shutdown(context.Background()); err != nil {
					logger.Error().Err(err).Msg("Failed to shutdown tracing")
				}
			}()

			tracer := traceProvider.Tracer("commerce-service")

			e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
				return func(c echo.Context) error {
					ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()))
					defer span.End()

					req := c.Request()
					c.SetRequest(req.WithContext(ctx))

					return next(c)
				}
			})
		}
	}

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(custommiddleware.Logger)
	e.Use(echoprometheus.NewMiddleware(""))

	if app.Config.MetricsPort != "" {
		go func() {
			metrics := echo.New()
			metrics.GET("/metrics", echoprometheus.NewHandler())
			if err := metrics.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatal().Err(err).Msg("Failed to start metrics server")
			}
		}()
	}

	userRepo := repository.CreateUserRepository(app.DB)
	productRepo := repository.CreateProductRepository(app.DB)
	cartRepo := repository.CreateCartRepository(app.DB)
	orderRepo := repository.CreateOrderRepository(app.DB)

	orderMailer := mailer.CreateMailer(
		app.Config.SMTPConfig.Sender,
		app.Config.SMTPConfig.Password,
		app.Config.SMTPConfig.Host,
		app.Config.SMTPConfig.Port,
		app.Config.SMTPConfig.NotifyAddr,
	)

	userSvc := service.CreateUserService(userRepo)
	productSvc := service.CreateProductService(productRepo, app.Media)
	cartSvc := service.CreateCartService(cartRepo, productRepo)
	orderSvc := service.CreateOrderService(orderRepo, cartRepo, productRepo, userRepo, orderMailer)

	controller.CreateUserController(e, userSvc)
	controller.CreateProductController(e, productSvc)
	controller.CreateCartController(e, cartSvc)
	controller.CreateOrderController(e, orderSvc)

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "FreshCart commerce service is running")
	})

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%s", app.Config.ServicePort)))
}

func (app *App) StopServer() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return app.Server.Shutdown(ctx)
}

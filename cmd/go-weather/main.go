package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"go-weather/configs"
	"go-weather/internal/application/bootstrap"
	"go-weather/internal/application/controller"
	"go-weather/internal/application/middleware"
	"go-weather/internal/domain/usecase/health"
	"go-weather/internal/domain/usecase/weather"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"
	"go-weather/pkg/resource"
)

func main() {
	defer log.Sync()

	if err := bootstrap.LoadConfig(configs.Env); err != nil {
		log.Fatal("Fail to load configuration", zap.Error(err))
	}
	log.Info(msg.GetMessage("app.start", configs.Env.ApplicationName))

	// Init gateways
	weatherGateway := bootstrap.NewWeatherGateway(configs.Env.ApplicationName)
	stateGateway, releaseState, err := bootstrap.NewSearchStateGateway()
	if err != nil {
		log.Fatal("Fail to init search state store", zap.Error(err))
	}
	defer releaseState()

	// Init UseCase
	weatherUseCase := weather.NewWeatherUseCase(weatherGateway, stateGateway)
	healthUseCase := health.NewHealthUseCase(stateGateway)

	// Init infra
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	middleware.SetupRequestID(e)
	middleware.SetupRequestLogger(e)
	api := e.Group(resource.GetString("app.server.context-path"))

	// Init Routes
	controller.NewHealthController(api, healthUseCase).InitHealthRoutes()
	controller.NewWeatherController(api, weatherUseCase).InitWeatherRoutes()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	port := resource.GetStringOrDefault("app.server.port", "8080")
	go func() {
		if err := e.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server stopped unexpectedly", zap.Error(err))
		}
	}()
	log.Info(msg.GetMessage("app.started", configs.Env.ApplicationName, port))

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("Fail to shut down server", zap.Error(err))
	}
	log.Info(msg.GetMessage("app.stopped", configs.Env.ApplicationName))
}

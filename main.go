package main

import (
	"os"

	"employee-admin/internal/apiclient"
	"employee-admin/internal/config"
	"employee-admin/internal/middleware"
	"employee-admin/internal/models"
	"employee-admin/internal/router"
	"employee-admin/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func main() {
	cfg := config.Load()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log := zerolog.New(os.Stderr).With().Timestamp().Str("service", "employee-admin").Logger()

	api := apiclient.New(apiclient.Config{
		BaseURL: cfg.APIBaseURL,
		Timeout: cfg.APITimeout,
		Logger:  log,
	})

	// Stores are built once here and injected; they are the only holders
	// of client-side state.
	employees := store.New[models.Employee, models.EmployeePayload](apiclient.NewEmployeeClient(api))
	departments := store.New[models.Department, models.DepartmentPayload](apiclient.NewDepartmentClient(api))

	r := gin.New()
	r.Use(gin.Recovery())
	router.Setup(r, router.Deps{
		Cfg:         cfg,
		Log:         log,
		Employees:   employees,
		Departments: departments,
		Metrics:     middleware.NewMetrics(),
	})

	log.Info().Str("port", cfg.Port).Str("api", cfg.APIBaseURL).Bool("auth", cfg.AuthEnabled()).Msg("listening")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}

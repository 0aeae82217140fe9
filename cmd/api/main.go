package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	json "github.com/goccy/go-json"
	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/vaxplan-api/internal/application/auth"
	"github.com/tu-usuario/vaxplan-api/internal/application/forecasting"
	"github.com/tu-usuario/vaxplan-api/internal/application/planning"
	"github.com/tu-usuario/vaxplan-api/internal/application/usecase"
	"github.com/tu-usuario/vaxplan-api/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/vaxplan-api/internal/interfaces/http"
	"github.com/tu-usuario/vaxplan-api/pkg/config"
	"github.com/tu-usuario/vaxplan-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Int("start_year", cfg.Plan.StartYear()).
		Int("horizon_years", cfg.Plan.HorizonYears).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	countryRepo := postgres.NewCountryRepository(pool)
	vaccineRepo := postgres.NewVaccineRepository(pool)
	equipmentRepo := postgres.NewEquipmentRepository(pool)
	programRepo := postgres.NewProgramRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	forecastRepo := postgres.NewForecastRepository(pool)
	financialRepo := postgres.NewFinancialPlanRepository(pool)
	inventoryRepo := postgres.NewInventoryPlanRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, countryRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	demographicsUC := usecase.NewDemographicsUseCase(countryRepo, cfg.Plan)
	vaccineUC := usecase.NewVaccineUseCase(vaccineRepo)
	equipmentUC := usecase.NewEquipmentUseCase(equipmentRepo)
	programUC := usecase.NewProgramUseCase(programRepo, countryRepo, vaccineRepo)
	forecastUC := forecasting.NewForecastUseCase(
		countryRepo, programRepo, vaccineRepo, equipmentRepo, forecastRepo, txRunner, cfg.Plan,
	)
	financialUC := planning.NewFinancialUseCase(
		financialRepo, forecastRepo, vaccineRepo, equipmentRepo, cfg.Plan,
	)
	inventoryUC := planning.NewInventoryUseCase(
		inventoryRepo, financialRepo, vaccineRepo, equipmentRepo, cfg.Plan,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "VaxPlan API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		Demographics: demographicsUC,
		VaccineUC:    vaccineUC,
		EquipmentUC:  equipmentUC,
		ProgramUC:    programUC,
		ForecastUC:   forecastUC,
		FinancialUC:  financialUC,
		InventoryUC:  inventoryUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/vaxplan-api/internal/application/auth"
	"github.com/tu-usuario/vaxplan-api/internal/application/forecasting"
	"github.com/tu-usuario/vaxplan-api/internal/application/planning"
	"github.com/tu-usuario/vaxplan-api/internal/application/usecase"
	"github.com/tu-usuario/vaxplan-api/internal/domain/entity"
)

// RouterDeps dependencias del router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	Demographics *usecase.DemographicsUseCase
	VaccineUC    *usecase.VaccineUseCase
	EquipmentUC  *usecase.EquipmentUseCase
	ProgramUC    *usecase.ProgramUseCase
	ForecastUC   *forecasting.ForecastUseCase
	FinancialUC  *planning.FinancialUseCase
	InventoryUC  *planning.InventoryUseCase
	JWTSecret    string
}

// Router registra todas las rutas de la API.
// Los catálogos globales (vacunas, equipos) sólo los escribe un global_lead;
// el resto de rutas se limita al país del usuario vía CountryScope.
func Router(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.AuthUC)
	countryHandler := NewCountryHandler(deps.Demographics)
	vaccineHandler := NewVaccineHandler(deps.VaccineUC)
	equipmentHandler := NewEquipmentHandler(deps.EquipmentUC)
	programHandler := NewProgramHandler(deps.ProgramUC)
	forecastHandler := NewForecastHandler(deps.ForecastUC)
	planningHandler := NewPlanningHandler(deps.FinancialUC, deps.InventoryUC)

	api := app.Group("/api")

	// Públicas
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Protegidas
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	globalOnly := RequireRole(entity.RoleGlobalLead)

	// Catálogo de vacunas
	vaccines := protected.Group("/vaccines")
	vaccines.Get("/", vaccineHandler.List)
	vaccines.Get("/:id", vaccineHandler.Get)
	vaccines.Post("/", globalOnly, vaccineHandler.Create)
	vaccines.Put("/:id", globalOnly, vaccineHandler.Update)
	vaccines.Delete("/:id", globalOnly, vaccineHandler.Delete)

	// Catálogo de equipos e insumos
	equipment := protected.Group("/equipment")
	equipment.Get("/", equipmentHandler.List)
	equipment.Get("/:id", equipmentHandler.Get)
	equipment.Post("/", globalOnly, equipmentHandler.Create)
	equipment.Put("/:id", globalOnly, equipmentHandler.Update)
	equipment.Delete("/:id", globalOnly, equipmentHandler.Delete)

	// Países
	protected.Get("/countries", countryHandler.List)
	protected.Post("/countries", globalOnly, countryHandler.Create)

	country := protected.Group("/countries/:countryId", CountryScope())
	country.Get("/", countryHandler.Get)
	country.Put("/", countryHandler.Update)
	country.Put("/projections", countryHandler.ReplaceProjections)
	country.Post("/projections/regenerate", countryHandler.RegenerateProjections)
	country.Put("/target-groups", countryHandler.ReplaceTargetGroups)

	// Programas de inmunización
	programs := country.Group("/programs")
	programs.Get("/", programHandler.List)
	programs.Post("/", programHandler.Create)
	programs.Get("/:id", programHandler.Get)
	programs.Put("/:id", programHandler.Update)
	programs.Delete("/:id", programHandler.Delete)

	// Pipeline de pronósticos
	forecasts := country.Group("/forecasts")

	forecasts.Post("/unstratified/run", forecastHandler.RunUnstratified)
	forecasts.Get("/unstratified", forecastHandler.ListUnstratified)
	forecasts.Put("/unstratified/:vaccineId/rates", forecastHandler.UpdateUnstratifiedRates)

	forecasts.Post("/stratified/run", forecastHandler.RunStratified)
	forecasts.Get("/stratified", forecastHandler.LatestStratified)

	forecasts.Post("/consumption/:source/run", forecastHandler.RunConsumption)
	forecasts.Get("/consumption/:source", forecastHandler.LatestConsumption)
	forecasts.Put("/consumption/:source/:vaccineId/wastage", forecastHandler.UpdateConsumptionWastage)
	forecasts.Get("/consumption/:source/template", forecastHandler.ConsumptionTemplate)
	forecasts.Post("/consumption/:source/import", forecastHandler.ImportConsumption)

	forecasts.Post("/manual", forecastHandler.SaveManual)
	forecasts.Get("/manual", forecastHandler.ListManual)
	forecasts.Get("/manual/template", forecastHandler.ManualTemplate)
	forecasts.Post("/manual/import", forecastHandler.ImportManual)

	forecasts.Post("/combined/run", forecastHandler.RunCombined)
	forecasts.Get("/combined", forecastHandler.LatestCombined)

	forecasts.Post("/equipment/run", forecastHandler.RunEquipment)
	forecasts.Get("/equipment", forecastHandler.LatestEquipment)

	// Planificación financiera e inventario
	country.Get("/financial-plan", planningHandler.GetFinancialPlan)
	country.Put("/financial-plan", planningHandler.SaveFinancialPlan)
	country.Get("/inventory-plan", planningHandler.GetInventoryPlan)
	country.Put("/inventory-plan/items/:itemId/shipments", planningHandler.SaveShipments)
}

package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/vaxplan-api/internal/application/dto"
	"github.com/tu-usuario/vaxplan-api/internal/application/planning"
)

// PlanningHandler maneja el plan financiero y el calendario de inventario.
type PlanningHandler struct {
	financial *planning.FinancialUseCase
	inventory *planning.InventoryUseCase
}

func NewPlanningHandler(financial *planning.FinancialUseCase, inventory *planning.InventoryUseCase) *PlanningHandler {
	return &PlanningHandler{financial: financial, inventory: inventory}
}

// GetFinancialPlan godoc
// @Summary      Obtener plan financiero
// @Description  Devuelve el plan del año de planificación con sus agregados; si no hay plan guardado devuelve uno editable vacío
// @Tags         planning
// @Produce      json
// @Security     Bearer
// @Param        countryId path string true "ID del país"
// @Success      200 {object} dto.FinancialPlanResponse
// @Failure      412 {object} dto.ErrorResponse
// @Router       /api/countries/{countryId}/financial-plan [get]
func (h *PlanningHandler) GetFinancialPlan(c *fiber.Ctx) error {
	out, err := h.financial.Get(c.Context(), c.Params("countryId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SaveFinancialPlan recalcula los agregados con los insumos recibidos y
// persiste el plan.
func (h *PlanningHandler) SaveFinancialPlan(c *fiber.Ctx) error {
	var req dto.FinancialPlanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "body inválido"})
	}
	out, err := h.financial.Save(c.Context(), c.Params("countryId"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetInventoryPlan godoc
// @Summary      Obtener calendario de inventario
// @Description  Construye el calendario mensual de reabastecimiento del año de planificación
// @Tags         planning
// @Produce      json
// @Security     Bearer
// @Param        countryId path string true "ID del país"
// @Success      200 {object} dto.InventoryPlanResponse
// @Failure      412 {object} dto.ErrorResponse
// @Router       /api/countries/{countryId}/inventory-plan [get]
func (h *PlanningHandler) GetInventoryPlan(c *fiber.Ctx) error {
	out, err := h.inventory.BuildPlans(c.Context(), c.Params("countryId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SaveShipments fija los embarques de un artículo. Un mes presente con valor
// cero también reemplaza a la orden recomendada.
func (h *PlanningHandler) SaveShipments(c *fiber.Ctx) error {
	var req dto.SaveShipmentsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "body inválido"})
	}
	out, err := h.inventory.SaveShipments(c.Context(), c.Params("countryId"), c.Params("itemId"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

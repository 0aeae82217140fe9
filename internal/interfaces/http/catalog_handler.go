package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/vaxplan-api/internal/application/dto"
	"github.com/tu-usuario/vaxplan-api/internal/application/usecase"
)

// VaccineHandler maneja el catálogo global de vacunas.
type VaccineHandler struct {
	uc *usecase.VaccineUseCase
}

func NewVaccineHandler(uc *usecase.VaccineUseCase) *VaccineHandler {
	return &VaccineHandler{uc: uc}
}

// Create godoc
// @Summary      Crear vacuna
// @Tags         vaccines
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        request body dto.VaccineRequest true "Datos de la vacuna"
// @Success      201 {object} entity.Vaccine
// @Router       /api/vaccines [post]
func (h *VaccineHandler) Create(c *fiber.Ctx) error {
	var req dto.VaccineRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "body inválido"})
	}
	vaccine, err := h.uc.Create(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(vaccine)
}

func (h *VaccineHandler) Get(c *fiber.Ctx) error {
	vaccine, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(vaccine)
}

func (h *VaccineHandler) List(c *fiber.Ctx) error {
	vaccines, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(vaccines)
}

func (h *VaccineHandler) Update(c *fiber.Ctx) error {
	var req dto.VaccineRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "body inválido"})
	}
	vaccine, err := h.uc.Update(c.Context(), c.Params("id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(vaccine)
}

func (h *VaccineHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.StatusResponse{Status: "eliminado"})
}

// EquipmentHandler maneja el catálogo global de equipos e insumos.
type EquipmentHandler struct {
	uc *usecase.EquipmentUseCase
}

func NewEquipmentHandler(uc *usecase.EquipmentUseCase) *EquipmentHandler {
	return &EquipmentHandler{uc: uc}
}

func (h *EquipmentHandler) Create(c *fiber.Ctx) error {
	var req dto.EquipmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "body inválido"})
	}
	eq, err := h.uc.Create(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(eq)
}

func (h *EquipmentHandler) Get(c *fiber.Ctx) error {
	eq, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(eq)
}

func (h *EquipmentHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(items)
}

func (h *EquipmentHandler) Update(c *fiber.Ctx) error {
	var req dto.EquipmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "body inválido"})
	}
	eq, err := h.uc.Update(c.Context(), c.Params("id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(eq)
}

func (h *EquipmentHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.StatusResponse{Status: "eliminado"})
}

package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/vaxplan-api/internal/application/dto"
	"github.com/tu-usuario/vaxplan-api/internal/application/usecase"
)

// ProgramHandler maneja los programas de inmunización de un país.
type ProgramHandler struct {
	uc *usecase.ProgramUseCase
}

func NewProgramHandler(uc *usecase.ProgramUseCase) *ProgramHandler {
	return &ProgramHandler{uc: uc}
}

// Create godoc
// @Summary      Crear programa
// @Description  Registra un programa (rutinario, puesta al día o SIA) con sus vacunas
// @Tags         programs
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        countryId path string true "ID del país"
// @Param        request body dto.ProgramRequest true "Datos del programa"
// @Success      201 {object} entity.Program
// @Router       /api/countries/{countryId}/programs [post]
func (h *ProgramHandler) Create(c *fiber.Ctx) error {
	var req dto.ProgramRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "body inválido"})
	}
	program, err := h.uc.Create(c.Context(), c.Params("countryId"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(program)
}

func (h *ProgramHandler) Get(c *fiber.Ctx) error {
	program, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if program.Country != c.Params("countryId") {
		return respondError(c, errNotFoundForCountry)
	}
	return c.JSON(program)
}

func (h *ProgramHandler) List(c *fiber.Ctx) error {
	programs, err := h.uc.ListByCountry(c.Context(), c.Params("countryId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(programs)
}

func (h *ProgramHandler) Update(c *fiber.Ctx) error {
	var req dto.ProgramRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "body inválido"})
	}
	program, err := h.uc.Update(c.Context(), c.Params("id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(program)
}

func (h *ProgramHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.StatusResponse{Status: "eliminado"})
}

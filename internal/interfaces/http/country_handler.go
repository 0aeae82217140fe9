package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/vaxplan-api/internal/application/dto"
	"github.com/tu-usuario/vaxplan-api/internal/application/usecase"
)

// CountryHandler maneja países, proyecciones demográficas y grupos objetivo.
type CountryHandler struct {
	uc *usecase.DemographicsUseCase
}

func NewCountryHandler(uc *usecase.DemographicsUseCase) *CountryHandler {
	return &CountryHandler{uc: uc}
}

// Create godoc
// @Summary      Crear país
// @Description  Registra un país y siembra sus proyecciones de población
// @Tags         countries
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        request body dto.CountryRequest true "Datos del país"
// @Success      201 {object} dto.CountryResponse
// @Failure      409 {object} dto.ErrorResponse
// @Router       /api/countries [post]
func (h *CountryHandler) Create(c *fiber.Ctx) error {
	var req dto.CountryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "body inválido"})
	}
	country, err := h.uc.CreateCountry(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToCountryResponse(country))
}

func (h *CountryHandler) Get(c *fiber.Ctx) error {
	country, err := h.uc.GetCountry(c.Context(), c.Params("countryId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToCountryResponse(country))
}

func (h *CountryHandler) List(c *fiber.Ctx) error {
	countries, err := h.uc.ListCountries(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	out := make([]*dto.CountryResponse, 0, len(countries))
	for _, country := range countries {
		out = append(out, dto.ToCountryResponse(country))
	}
	return c.JSON(out)
}

func (h *CountryHandler) Update(c *fiber.Ctx) error {
	var req dto.CountryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "body inválido"})
	}
	country, err := h.uc.UpdateCountry(c.Context(), c.Params("countryId"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToCountryResponse(country))
}

// RegenerateProjections godoc
// @Summary      Regenerar proyecciones
// @Description  Recalcula la población proyectada desde la población base y la tasa de crecimiento actuales
// @Tags         countries
// @Produce      json
// @Security     Bearer
// @Param        countryId path string true "ID del país"
// @Success      200 {object} dto.CountryResponse
// @Router       /api/countries/{countryId}/projections/regenerate [post]
func (h *CountryHandler) RegenerateProjections(c *fiber.Ctx) error {
	country, err := h.uc.RegenerateProjections(c.Context(), c.Params("countryId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToCountryResponse(country))
}

// ReplaceProjections godoc
// @Summary      Editar proyecciones
// @Description  Reemplaza las proyecciones de población con las editadas año por año
// @Tags         countries
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        countryId path string true "ID del país"
// @Param        request body dto.ProjectionsRequest true "Proyecciones editadas"
// @Success      200 {object} dto.CountryResponse
// @Failure      400 {object} dto.ErrorResponse
// @Router       /api/countries/{countryId}/projections [put]
func (h *CountryHandler) ReplaceProjections(c *fiber.Ctx) error {
	var req dto.ProjectionsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "body inválido"})
	}
	country, err := h.uc.ReplaceProjections(c.Context(), c.Params("countryId"), req.Projections)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToCountryResponse(country))
}

// ReplaceTargetGroups reemplaza el conjunto completo de grupos objetivo.
// Los porcentajes pueden solaparse y sumar más de 100; no se valida a propósito.
func (h *CountryHandler) ReplaceTargetGroups(c *fiber.Ctx) error {
	var req dto.TargetGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "body inválido"})
	}
	country, err := h.uc.ReplaceTargetGroups(c.Context(), c.Params("countryId"), req.TargetGroups)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToCountryResponse(country))
}

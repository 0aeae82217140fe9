package http

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/vaxplan-api/internal/application/dto"
	"github.com/tu-usuario/vaxplan-api/internal/application/forecasting"
	"github.com/tu-usuario/vaxplan-api/internal/domain"
	"github.com/tu-usuario/vaxplan-api/internal/domain/entity"
	"github.com/tu-usuario/vaxplan-api/internal/infrastructure/csvio"
)

// ForecastHandler maneja las corridas de pronóstico de un país y sus
// plantillas CSV de importación.
type ForecastHandler struct {
	uc *forecasting.ForecastUseCase
}

func NewForecastHandler(uc *forecasting.ForecastUseCase) *ForecastHandler {
	return &ForecastHandler{uc: uc}
}

// ── Método no estratificado ──────────────────────────────────────────────────

// RunUnstratified godoc
// @Summary      Correr pronóstico no estratificado
// @Description  Acumula dosis por vacuna desde los programas del país y las proyecciones de población
// @Tags         forecasts
// @Produce      json
// @Security     Bearer
// @Param        countryId path string true "ID del país"
// @Success      200 {object} map[string]entity.UnstratifiedForecast
// @Failure      412 {object} dto.ErrorResponse
// @Router       /api/countries/{countryId}/forecasts/unstratified/run [post]
func (h *ForecastHandler) RunUnstratified(c *fiber.Ctx) error {
	out, err := h.uc.RunUnstratified(c.Context(), c.Params("countryId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *ForecastHandler) ListUnstratified(c *fiber.Ctx) error {
	out, err := h.uc.ListUnstratified(c.Context(), c.Params("countryId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateUnstratifiedRates edita coberturas y desperdicios de un grupo objetivo
// sobre un pronóstico ya corrido y recalcula las dosis.
func (h *ForecastHandler) UpdateUnstratifiedRates(c *fiber.Ctx) error {
	var req dto.UpdateRatesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "body inválido"})
	}
	out, err := h.uc.UpdateUnstratifiedRates(c.Context(), c.Params("countryId"), c.Params("vaccineId"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ── Método estratificado ─────────────────────────────────────────────────────

func (h *ForecastHandler) RunStratified(c *fiber.Ctx) error {
	var req dto.RunStratifiedRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "body inválido"})
	}
	out, err := h.uc.RunStratified(c.Context(), c.Params("countryId"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *ForecastHandler) LatestStratified(c *fiber.Ctx) error {
	out, err := h.uc.LatestStratified(c.Context(), c.Params("countryId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ── Método por consumo ───────────────────────────────────────────────────────

func (h *ForecastHandler) RunConsumption(c *fiber.Ctx) error {
	var req dto.RunConsumptionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "body inválido"})
	}
	out, err := h.uc.RunConsumption(c.Context(), c.Params("countryId"), entity.ConsumptionSource(c.Params("source")), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *ForecastHandler) LatestConsumption(c *fiber.Ctx) error {
	out, err := h.uc.LatestConsumption(c.Context(), c.Params("countryId"), entity.ConsumptionSource(c.Params("source")))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *ForecastHandler) UpdateConsumptionWastage(c *fiber.Ctx) error {
	var req dto.UpdateWastageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "body inválido"})
	}
	out, err := h.uc.UpdateConsumptionWastage(
		c.Context(),
		c.Params("countryId"),
		entity.ConsumptionSource(c.Params("source")),
		c.Params("vaccineId"),
		req.AvgWastageRate,
	)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ConsumptionTemplate godoc
// @Summary      Descargar plantilla CSV de consumo
// @Description  Genera el CSV mensual precargado con los datos ya guardados de la fuente
// @Tags         forecasts
// @Produce      text/csv
// @Security     Bearer
// @Param        countryId path string true "ID del país"
// @Param        source path string true "Fuente de consumo" Enums(hc, sc)
// @Success      200 {string} string
// @Router       /api/countries/{countryId}/forecasts/consumption/{source}/template [get]
func (h *ForecastHandler) ConsumptionTemplate(c *fiber.Ctx) error {
	catalog, err := h.uc.VaccineCatalog(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	var data map[string]entity.VaccineConsumptionData
	prev, err := h.uc.LatestConsumption(c.Context(), c.Params("countryId"), entity.ConsumptionSource(c.Params("source")))
	switch {
	case err == nil:
		data = prev.Data
	case errors.Is(err, domain.ErrNotFound):
		// sin corrida previa: plantilla vacía
	default:
		return respondError(c, err)
	}
	var buf bytes.Buffer
	if err := csvio.WriteConsumptionTemplate(&buf, csvio.SortedVaccines(catalog), data); err != nil {
		return respondError(c, err)
	}
	return sendCSV(c, fmt.Sprintf("consumo_%s_%s.csv", c.Params("countryId"), c.Params("source")), buf.Bytes())
}

// ImportConsumption lee el CSV del body, mezcla los datos importados sobre los
// guardados (vacuna por vacuna) y corre el pronóstico de la fuente.
// La tasa de crecimiento se toma del query growth_rate o de la corrida previa.
func (h *ForecastHandler) ImportConsumption(c *fiber.Ctx) error {
	country := c.Params("countryId")
	source := entity.ConsumptionSource(c.Params("source"))

	imported, report, err := csvio.ReadConsumption(bytes.NewReader(c.Body()))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}

	data := map[string]entity.VaccineConsumptionData{}
	growthRate := 0.0
	prev, err := h.uc.LatestConsumption(c.Context(), country, source)
	switch {
	case err == nil:
		growthRate = prev.GrowthRate
		for id, d := range prev.Data {
			data[id] = d
		}
	case errors.Is(err, domain.ErrNotFound):
	default:
		return respondError(c, err)
	}
	for id, d := range imported {
		data[id] = d
	}
	growthRate = c.QueryFloat("growth_rate", growthRate)

	out, err := h.uc.RunConsumption(c.Context(), country, source, dto.RunConsumptionRequest{GrowthRate: growthRate, Data: data})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"report": report, "forecast": out})
}

// ── Método manual ────────────────────────────────────────────────────────────

func (h *ForecastHandler) SaveManual(c *fiber.Ctx) error {
	var req dto.ManualForecastRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "body inválido"})
	}
	out, err := h.uc.SaveManual(c.Context(), c.Params("countryId"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *ForecastHandler) ListManual(c *fiber.Ctx) error {
	out, err := h.uc.ListManual(c.Context(), c.Params("countryId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *ForecastHandler) ManualTemplate(c *fiber.Ctx) error {
	catalog, err := h.uc.VaccineCatalog(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	saved, err := h.uc.ListManual(c.Context(), c.Params("countryId"))
	if err != nil {
		return respondError(c, err)
	}
	var buf bytes.Buffer
	if err := csvio.WriteManualTemplate(&buf, csvio.SortedVaccines(catalog), saved, h.uc.PlanYears()); err != nil {
		return respondError(c, err)
	}
	return sendCSV(c, fmt.Sprintf("manual_%s.csv", c.Params("countryId")), buf.Bytes())
}

// ImportManual lee el CSV del body y guarda un pronóstico manual por cada
// vacuna con al menos una fila completa.
func (h *ForecastHandler) ImportManual(c *fiber.Ctx) error {
	country := c.Params("countryId")
	imported, report, err := csvio.ReadManual(bytes.NewReader(c.Body()))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	catalog, err := h.uc.VaccineCatalog(c.Context())
	if err != nil {
		return respondError(c, err)
	}

	saved := make(map[string]*entity.ManualForecast, len(imported))
	for vaccineID, years := range imported {
		name := ""
		if v, ok := catalog[vaccineID]; ok {
			name = v.VaccineName
		}
		fc, err := h.uc.SaveManual(c.Context(), country, dto.ManualForecastRequest{
			VaccineID:   vaccineID,
			VaccineName: name,
			Description: "importado desde CSV",
			Years:       years,
		})
		if err != nil {
			return respondError(c, err)
		}
		saved[vaccineID] = fc
	}
	return c.JSON(fiber.Map{"report": report, "forecasts": saved})
}

// ── Combinado y equipamiento ─────────────────────────────────────────────────

// RunCombined godoc
// @Summary      Correr pronóstico combinado
// @Description  Pondera los cinco métodos según los pesos por vacuna y guarda la instantánea
// @Tags         forecasts
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        countryId path string true "ID del país"
// @Param        request body dto.RunCombinedRequest true "Pesos por vacuna y método"
// @Success      200 {object} entity.CombinedForecast
// @Router       /api/countries/{countryId}/forecasts/combined/run [post]
func (h *ForecastHandler) RunCombined(c *fiber.Ctx) error {
	var req dto.RunCombinedRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "body inválido"})
	}
	out, err := h.uc.RunCombined(c.Context(), c.Params("countryId"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *ForecastHandler) LatestCombined(c *fiber.Ctx) error {
	out, err := h.uc.LatestCombined(c.Context(), c.Params("countryId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *ForecastHandler) RunEquipment(c *fiber.Ctx) error {
	out, err := h.uc.RunEquipment(c.Context(), c.Params("countryId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *ForecastHandler) LatestEquipment(c *fiber.Ctx) error {
	out, err := h.uc.LatestEquipment(c.Context(), c.Params("countryId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func sendCSV(c *fiber.Ctx, filename string, body []byte) error {
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(body)
}

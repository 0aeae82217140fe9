package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/vaxplan-api/internal/domain/entity"
	apphttp "github.com/tu-usuario/vaxplan-api/internal/interfaces/http"
	pkgjwt "github.com/tu-usuario/vaxplan-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "vaxplan-test"
	testExpMin    = 60
)

// buildCountryApp construye una aplicación Fiber mínima con AuthMiddleware y
// CountryScope sobre una ruta por país.
func buildCountryApp() *fiber.App {
	app := fiber.New()
	app.Get("/countries/:countryId/data",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.CountryScope(),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"country": c.Params("countryId")})
		},
	)
	return app
}

// tokenFor genera un JWT con el país y rol indicados.
func tokenFor(t *testing.T, country, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, country, role, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, path, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests CountryScope
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: country_lead accede a su propio país → HTTP 200.
func TestCountryScope_LeadAccedeSuPais(t *testing.T) {
	app := buildCountryApp()
	resp := doRequest(t, app, "/countries/GTM/data", tokenFor(t, "GTM", entity.RoleCountryLead))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"country_lead debe acceder a los datos de su país")

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "GTM", body["country"])
}

// Caso 2: country_lead intenta otro país → HTTP 403 Forbidden.
func TestCountryScope_LeadBloqueadoEnOtroPais(t *testing.T) {
	app := buildCountryApp()
	resp := doRequest(t, app, "/countries/HND/data", tokenFor(t, "GTM", entity.RoleCountryLead))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"country_lead no debe acceder a datos de otro país")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN",
		"la respuesta de error debe incluir el código FORBIDDEN")
}

// Caso 3: global_lead accede a cualquier país → HTTP 200.
func TestCountryScope_GlobalAccedeCualquierPais(t *testing.T) {
	app := buildCountryApp()
	resp := doRequest(t, app, "/countries/HND/data", tokenFor(t, "", entity.RoleGlobalLead))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"global_lead debe acceder a cualquier país")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRole
// ──────────────────────────────────────────────────────────────────────────────

func buildRoleApp(required string) *fiber.App {
	app := fiber.New()
	app.Get("/restricted",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRole(required),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"role": apphttp.GetRole(c)})
		},
	)
	return app
}

func TestRequireRole_GlobalAccedeRutaGlobal(t *testing.T) {
	app := buildRoleApp(entity.RoleGlobalLead)
	resp := doRequest(t, app, "/restricted", tokenFor(t, "", entity.RoleGlobalLead))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireRole_CountryLeadBloqueadoEnRutaGlobal(t *testing.T) {
	app := buildRoleApp(entity.RoleGlobalLead)
	resp := doRequest(t, app, "/restricted", tokenFor(t, "GTM", entity.RoleCountryLead))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"country_lead no debe acceder a rutas de global_lead")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware — extracción de claims del token
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtraeClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": apphttp.GetUserID(c),
			"country": apphttp.GetCountry(c),
			"role":    apphttp.GetRole(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenFor(t, "GTM", entity.RoleCountryLead))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, "GTM", body["country"])
	assert.Equal(t, entity.RoleCountryLead, body["role"])
}

func TestAuthMiddleware_SinAuthHeader_Retorna401(t *testing.T) {
	app := buildCountryApp()
	resp := doRequest(t, app, "/countries/GTM/data", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	app := buildCountryApp()
	resp := doRequest(t, app, "/countries/GTM/data", "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests JWT pkg — integridad del generate/parse
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "GTM", entity.RoleCountryLead, testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, country, role, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, userID)
	assert.Equal(t, "GTM", country)
	assert.Equal(t, entity.RoleCountryLead, role)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "GTM", entity.RoleCountryLead, testIssuer, -1)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "GTM", entity.RoleGlobalLead, testIssuer, testExpMin)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}

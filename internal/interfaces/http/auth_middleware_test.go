package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbastiane/conteo-api/internal/domain/entity"
	apphttp "github.com/sbastiane/conteo-api/internal/interfaces/http"
	pkgjwt "github.com/sbastiane/conteo-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "conteo-api-test"
	testExpMin    = 60
)

// fakeUserProvider implementa apphttp.UserProvider sobre un mapa en memoria.
type fakeUserProvider struct {
	users map[string]*entity.User
}

func (f *fakeUserProvider) GetByID(_ context.Context, id string) (*entity.User, error) {
	return f.users[id], nil
}

func testUsers() *fakeUserProvider {
	return &fakeUserProvider{users: map[string]*entity.User{
		"admin-1": {
			ID:             "admin-1",
			Identification: "1090000000",
			Name:           "Admin Principal",
			Role:           entity.RoleAdmin,
		},
		"user-1": {
			ID:             "user-1",
			Identification: "1090000001",
			Name:           "Contador Cereté",
			Role:           entity.RoleUser,
			Warehouses: []entity.Warehouse{
				{Code: "00009", Description: "CERETÉ", Status: entity.WarehouseActive},
			},
		},
	}}
}

func tokenFor(t *testing.T, u *entity.User) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, u.ID, u.Identification, string(u.Role), testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

func doRequest(t *testing.T, app *fiber.App, method, target, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// buildTestApp construye una app Fiber mínima con Authenticate + RequireRole
// y un handler dummy que devuelve el usuario cargado en locals.
func buildTestApp(provider apphttp.UserProvider, roles ...entity.Role) *fiber.App {
	app := fiber.New()
	handlers := []fiber.Handler{apphttp.Authenticate(testJWTSecret, provider)}
	if len(roles) > 0 {
		handlers = append(handlers, apphttp.RequireRole(roles...))
	}
	handlers = append(handlers, func(c *fiber.Ctx) error {
		user := apphttp.CurrentUser(c)
		return c.JSON(fiber.Map{"id": user.ID, "role": string(user.Role)})
	})
	app.Get("/protected", handlers...)
	return app
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Authenticate
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthenticate_TokenValidoCargaUsuario(t *testing.T) {
	provider := testUsers()
	app := buildTestApp(provider)

	resp := doRequest(t, app, http.MethodGet, "/protected", tokenFor(t, provider.users["user-1"]))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "user-1", body["id"])
	assert.Equal(t, "USER", body["role"])
}

func TestAuthenticate_SinAuthHeader_Retorna401(t *testing.T) {
	app := buildTestApp(testUsers())
	resp := doRequest(t, app, http.MethodGet, "/protected", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Token no proporcionado")
}

func TestAuthenticate_TokenMalformado_Retorna401(t *testing.T) {
	app := buildTestApp(testUsers())
	resp := doRequest(t, app, http.MethodGet, "/protected", "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthenticate_FormatoSinBearer_Retorna401(t *testing.T) {
	provider := testUsers()
	app := buildTestApp(provider)
	tok, err := pkgjwt.Generate(testJWTSecret, "user-1", "1090000001", "USER", testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, app, http.MethodGet, "/protected", tok) // sin prefijo Bearer
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Un token firmado para un usuario que ya no existe no debe autenticar.
func TestAuthenticate_UsuarioEliminado_Retorna401(t *testing.T) {
	app := buildTestApp(testUsers())
	tok, err := pkgjwt.Generate(testJWTSecret, "user-borrado", "1090999999", "USER", testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, app, http.MethodGet, "/protected", "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthenticate_TokenExpirado_Retorna401(t *testing.T) {
	app := buildTestApp(testUsers())
	tok, err := pkgjwt.Generate(testJWTSecret, "user-1", "1090000001", "USER", testIssuer, -1)
	require.NoError(t, err)

	resp := doRequest(t, app, http.MethodGet, "/protected", "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRole
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole_AdminAccedeRutaAdmin(t *testing.T) {
	provider := testUsers()
	app := buildTestApp(provider, entity.RoleAdmin)

	resp := doRequest(t, app, http.MethodGet, "/protected", tokenFor(t, provider.users["admin-1"]))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"admin debe poder acceder a ruta restringida a ADMIN")
}

func TestRequireRole_UsuarioBloqueadoEnRutaAdmin(t *testing.T) {
	provider := testUsers()
	app := buildTestApp(provider, entity.RoleAdmin)

	resp := doRequest(t, app, http.MethodGet, "/protected", tokenFor(t, provider.users["user-1"]))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"un USER no debe poder acceder a ruta restringida a ADMIN")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "No tiene permisos")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireWarehouseAccess
// ──────────────────────────────────────────────────────────────────────────────

func buildWarehouseApp(provider apphttp.UserProvider) *fiber.App {
	app := fiber.New()
	app.Post("/counts",
		apphttp.Authenticate(testJWTSecret, provider),
		apphttp.RequireWarehouseAccess("warehouseId"),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"ok": true})
		},
	)
	return app
}

func postCounts(t *testing.T, app *fiber.App, authHeader, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/counts", jsonBody(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", authHeader)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestRequireWarehouseAccess_UsuarioConBodegaAsignada(t *testing.T) {
	provider := testUsers()
	app := buildWarehouseApp(provider)

	resp := postCounts(t, app, tokenFor(t, provider.users["user-1"]), `{"warehouseId":"00009"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"el usuario tiene asignada la bodega 00009")
}

func TestRequireWarehouseAccess_UsuarioSinBodega_Retorna403(t *testing.T) {
	provider := testUsers()
	app := buildWarehouseApp(provider)

	resp := postCounts(t, app, tokenFor(t, provider.users["user-1"]), `{"warehouseId":"00090"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "No tiene acceso a esta bodega")
}

func TestRequireWarehouseAccess_AdminAccedeCualquierBodega(t *testing.T) {
	provider := testUsers()
	app := buildWarehouseApp(provider)

	resp := postCounts(t, app, tokenFor(t, provider.users["admin-1"]), `{"warehouseId":"00090"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"un ADMIN tiene acceso a todas las bodegas")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests JWT pkg — integridad del generate/parse
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, "user-1", "1090000001", "USER", testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, identification, role, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "1090000001", identification)
	assert.Equal(t, "USER", role)
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, "user-1", "1090000001", "ADMIN", testIssuer, testExpMin)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}

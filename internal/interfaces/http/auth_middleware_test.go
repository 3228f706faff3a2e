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

	apphttp "github.com/seu-usuario/estoque-api/internal/interfaces/http"
	pkgjwt "github.com/seu-usuario/estoque-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de teste
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "estoque-api-test"
	testExpHours  = 1
)

// buildTestApp constrói uma aplicação Fiber mínima com:
//   - AuthMiddleware para validar o JWT e preencher locals
//   - opcionalmente AdminMiddleware quando adminOnly é true
//   - um handler dummy que devolve 200 se passa pelos middlewares
func buildTestApp(adminOnly bool) *fiber.App {
	app := fiber.New()
	handlers := []fiber.Handler{apphttp.AuthMiddleware(testJWTSecret)}
	if adminOnly {
		handlers = append(handlers, apphttp.AdminMiddleware())
	}
	handlers = append(handlers, func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"ok":           true,
			"id_usuario":   apphttp.GetUserID(c),
			"nivel_acesso": apphttp.GetNivelAcesso(c),
		})
	})
	app.Get("/protected", handlers...)
	return app
}

// tokenForNivel gera um JWT com o nível de acesso indicado.
func tokenForNivel(t *testing.T, userID int64, nivel int) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, userID, "user@empresa.com", nivel, testIssuer, testExpHours)
	require.NoError(t, err, "deve gerar um token JWT válido")
	return "Bearer " + tok
}

// doRequest dispara GET /protected e devolve a resposta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: token válido → passa e os claims ficam disponíveis nos locals.
func TestAuthMiddleware_TokenValido_ExtraiClaims(t *testing.T) {
	app := buildTestApp(false)
	resp := doRequest(t, app, tokenForNivel(t, 7, 0))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, float64(7), body["id_usuario"])
	assert.Equal(t, float64(0), body["nivel_acesso"])
}

// Caso 2: sem header Authorization → 401.
func TestAuthMiddleware_SemHeader_Retorna401(t *testing.T) {
	app := buildTestApp(false)
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Token não fornecido",
		"a resposta deve indicar a ausência do token")
}

// Caso 2b: header sem o prefixo Bearer → 401.
func TestAuthMiddleware_HeaderMalformado_Retorna401(t *testing.T) {
	app := buildTestApp(false)
	resp := doRequest(t, app, "apenas-um-token-sem-prefixo")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 3: token malformado → 403 com detalhe em `erro`.
func TestAuthMiddleware_TokenInvalido_Retorna403(t *testing.T) {
	app := buildTestApp(false)
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Token inválido ou expirado")
	assert.Contains(t, string(body), "erro",
		"a resposta deve trazer o detalhe do erro de parsing")
}

// Caso 4: token expirado → 403.
func TestAuthMiddleware_TokenExpirado_Retorna403(t *testing.T) {
	app := buildTestApp(false)
	tok, err := pkgjwt.Generate(testJWTSecret, 7, "user@empresa.com", 0, testIssuer, -1)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"token expirado deve retornar 403, não 401")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AdminMiddleware
// ──────────────────────────────────────────────────────────────────────────────

// Caso 5: admin (nível 1) acessa rota restrita → 200.
func TestAdminMiddleware_AdminAcessa(t *testing.T) {
	app := buildTestApp(true)
	resp := doRequest(t, app, tokenForNivel(t, 1, 1))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"admin deve poder acessar rota restrita a admin")
}

// Caso 6: usuário comum (nível 0) bloqueado → 403.
func TestAdminMiddleware_UsuarioComumBloqueado(t *testing.T) {
	app := buildTestApp(true)
	resp := doRequest(t, app, tokenForNivel(t, 2, 0))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Apenas administradores")
}

// Caso 7: AdminMiddleware sem AuthMiddleware antes → 401 (locals vazios).
func TestAdminMiddleware_SemAuth_Retorna401(t *testing.T) {
	app := fiber.New()
	app.Get("/protected", apphttp.AdminMiddleware(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

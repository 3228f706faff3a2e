package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/seu-usuario/estoque-api/internal/application/dto"
	"github.com/seu-usuario/estoque-api/internal/domain/entity"
	"github.com/seu-usuario/estoque-api/pkg/jwt"
)

// Locals keys preenchidas pelo AuthMiddleware.
const (
	LocalUserID      = "id_usuario"
	LocalEmail       = "email"
	LocalNivelAcesso = "nivel_acesso"
)

// AuthMiddleware valida o Bearer Token JWT e coloca os claims em c.Locals.
// Sem token: 401. Token inválido ou expirado: 403 com o detalhe em `erro`.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Mensagem: "Acesso negado! Token não fornecido.",
			})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Mensagem: "Acesso negado! Token não fornecido.",
			})
		}
		claims, err := jwt.Parse(jwtSecret, strings.TrimSpace(parts[1]))
		if err != nil {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Mensagem: "Token inválido ou expirado!",
				Erro:     err.Error(),
			})
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalEmail, claims.Email)
		c.Locals(LocalNivelAcesso, claims.NivelAcesso)
		return c.Next()
	}
}

// AdminMiddleware exige nível de administrador. Usar DEPOIS do AuthMiddleware.
func AdminMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		v := c.Locals(LocalNivelAcesso)
		if v == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Mensagem: "Usuário não autenticado.",
			})
		}
		nivel, _ := v.(int)
		if nivel != entity.NivelAdmin {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Mensagem: "Acesso negado! Apenas administradores podem acessar este recurso.",
			})
		}
		return c.Next()
	}
}

// GetUserID devolve o id do usuário autenticado (após o AuthMiddleware).
func GetUserID(c *fiber.Ctx) int64 {
	v := c.Locals(LocalUserID)
	if v == nil {
		return 0
	}
	id, _ := v.(int64)
	return id
}

// GetNivelAcesso devolve o nível de acesso do usuário autenticado.
func GetNivelAcesso(c *fiber.Ctx) int {
	v := c.Locals(LocalNivelAcesso)
	if v == nil {
		return 0
	}
	nivel, _ := v.(int)
	return nivel
}

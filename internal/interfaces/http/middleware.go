package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/seu-usuario/estoque-api/pkg/logger"
)

// LocalRequestID chave do request id em c.Locals.
const LocalRequestID = "request_id"

// RequestLogger gera um request id e loga método, rota, status e duração de cada
// requisição com zerolog.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := uuid.New().String()
		c.Locals(LocalRequestID, requestID)
		c.Set("X-Request-Id", requestID)

		start := time.Now()
		err := c.Next()

		log.Info().
			Str("request_id", requestID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("duration", time.Since(start)).
			Msg("request")
		return err
	}
}

// permissiveCSP política liberada para desenvolvimento local com frontends em portas variadas.
const permissiveCSP = "default-src 'self' http: https: data: blob: 'unsafe-inline' 'unsafe-eval'; connect-src *; img-src * data:; style-src 'self' 'unsafe-inline'; font-src * data:"

// DevCSP aplica uma Content-Security-Policy permissiva. Registrar somente fora de produção.
func DevCSP() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("Content-Security-Policy", permissiveCSP)
		return c.Next()
	}
}

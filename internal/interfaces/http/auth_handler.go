package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/seu-usuario/estoque-api/internal/application/auth"
	"github.com/seu-usuario/estoque-api/internal/application/dto"
	"github.com/seu-usuario/estoque-api/internal/domain"
	"github.com/seu-usuario/estoque-api/pkg/validation"
)

// AuthHandler maneja registro público e login.
type AuthHandler struct {
	uc       *auth.AuthUseCase
	validate *validation.Validator
}

// NewAuthHandler constrói o handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, validate *validation.Validator) *AuthHandler {
	return &AuthHandler{uc: uc, validate: validate}
}

// Register registra um novo usuário com nível 0 e devolve usuário + token.
// POST /auth/registrar
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Mensagem: "Corpo da requisição inválido!", Erro: err.Error(),
		})
	}
	if in.Email == "" || in.Senha == "" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Mensagem: "Email e senha são obrigatórios!",
		})
	}
	if msg := h.validate.Struct(in); msg != "" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Mensagem: msg})
	}

	user, token, err := h.uc.Register(in)
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
				Mensagem: "Email já cadastrado!",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Mensagem: "Erro ao registrar usuário.", Erro: err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.AuthResponse{
		Mensagem: "Usuário registrado com sucesso!",
		Usuario:  *user,
		Token:    token,
	})
}

// Login autentica e devolve usuário sanitizado + token novo.
// POST /auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Mensagem: "Corpo da requisição inválido!", Erro: err.Error(),
		})
	}
	if in.Email == "" || in.Senha == "" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Mensagem: "Email e senha são obrigatórios!",
		})
	}

	user, token, err := h.uc.Login(in)
	if err != nil {
		// Email desconhecido e senha errada saem iguais: nada de enumeração de contas.
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Mensagem: "Email ou senha incorretos!",
			})
		}
		if errors.Is(err, domain.ErrUserInactive) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Mensagem: "Usuário inativo!",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Mensagem: "Erro ao fazer login.", Erro: err.Error(),
		})
	}
	return c.JSON(dto.AuthResponse{
		Mensagem: "Login realizado com sucesso!",
		Usuario:  *user,
		Token:    token,
	})
}

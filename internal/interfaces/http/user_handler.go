package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/seu-usuario/estoque-api/internal/application/dto"
	"github.com/seu-usuario/estoque-api/internal/application/usecase"
	"github.com/seu-usuario/estoque-api/internal/domain"
	"github.com/seu-usuario/estoque-api/pkg/validation"
)

// UserHandler maneja o CRUD de usuários (rotas restritas a admin).
type UserHandler struct {
	uc       *usecase.UserUseCase
	validate *validation.Validator
}

// NewUserHandler constrói o handler de usuários.
func NewUserHandler(uc *usecase.UserUseCase, validate *validation.Validator) *UserHandler {
	return &UserHandler{uc: uc, validate: validate}
}

func parseIDParam(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

// List lista todos os usuários sanitizados, mais recentes primeiro.
// GET /users
func (h *UserHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Mensagem: "Erro ao listar usuários.", Erro: err.Error(),
		})
	}
	return c.JSON(out)
}

// GetByID busca um usuário pelo id.
// GET /users/:id
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Mensagem: "ID inválido!",
		})
	}
	user, err := h.uc.GetByID(id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Mensagem: "Usuário não encontrado!",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Mensagem: "Erro ao buscar usuário.", Erro: err.Error(),
		})
	}
	return c.JSON(user)
}

// Create cria um usuário com nível arbitrário (0 ou 1).
// POST /users
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Mensagem: "Corpo da requisição inválido!", Erro: err.Error(),
		})
	}
	if msg := h.validate.Struct(in); msg != "" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Mensagem: msg})
	}

	user, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
				Mensagem: "Email já cadastrado!",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Mensagem: "Erro ao criar usuário.", Erro: err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"mensagem": "Usuário criado com sucesso!",
		"usuario":  user,
	})
}

// Update aplica um patch parcial: só os campos presentes mudam.
// PUT /users/:id
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Mensagem: "ID inválido!",
		})
	}
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Mensagem: "Corpo da requisição inválido!", Erro: err.Error(),
		})
	}
	if msg := h.validate.Struct(in); msg != "" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Mensagem: msg})
	}

	user, err := h.uc.Update(id, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoFields):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
				Mensagem: "Nenhum campo para atualizar!",
			})
		case errors.Is(err, domain.ErrEmailAlreadyExists):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
				Mensagem: "Email já cadastrado!",
			})
		case errors.Is(err, domain.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Mensagem: "Usuário não encontrado!",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Mensagem: "Erro ao atualizar usuário.", Erro: err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"mensagem": "Usuário atualizado com sucesso!",
		"usuario":  user,
	})
}

// Delete remove um usuário; o admin autenticado não pode remover a si mesmo.
// DELETE /users/:id
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Mensagem: "ID inválido!",
		})
	}

	deleted, err := h.uc.Delete(id, GetUserID(c))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSelfDelete):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
				Mensagem: "Você não pode deletar sua própria conta!",
			})
		case errors.Is(err, domain.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Mensagem: "Usuário não encontrado!",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Mensagem: "Erro ao deletar usuário.", Erro: err.Error(),
		})
	}

	out := dto.DeletedUserResponse{Mensagem: "Usuário deletado com sucesso!"}
	out.Usuario.ID = deleted.ID
	out.Usuario.Email = deleted.Email
	return c.JSON(out)
}

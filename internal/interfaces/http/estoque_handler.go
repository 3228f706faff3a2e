package http

import (
	"errors"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/seu-usuario/estoque-api/internal/application/dto"
	"github.com/seu-usuario/estoque-api/internal/application/inventory"
	"github.com/seu-usuario/estoque-api/internal/application/usecase"
	"github.com/seu-usuario/estoque-api/internal/domain"
	"github.com/seu-usuario/estoque-api/pkg/validation"
)

// EstoqueHandler maneja produtos e movimentações de estoque.
type EstoqueHandler struct {
	products  *usecase.ProductUseCase
	movements *inventory.MovementUseCase
	validate  *validation.Validator
}

// NewEstoqueHandler constrói o handler de estoque.
func NewEstoqueHandler(products *usecase.ProductUseCase, movements *inventory.MovementUseCase, validate *validation.Validator) *EstoqueHandler {
	return &EstoqueHandler{products: products, movements: movements, validate: validate}
}

// ListProducts lista todos os produtos em ordem alfabética, com valor total derivado.
// GET / e GET /listar_produtos
func (h *EstoqueHandler) ListProducts(c *fiber.Ctx) error {
	items, err := h.products.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Mensagem: "Erro ao listar produtos.", Erro: err.Error(),
		})
	}
	return c.JSON(items)
}

// GetProduct busca um produto pelo nome exato (normalizado em NFC).
// GET /listar_produto/:nome
func (h *EstoqueHandler) GetProduct(c *fiber.Ctx) error {
	nome, err := urlDecodeParam(c, "nome")
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Mensagem: "Nome de produto inválido!",
		})
	}
	product, err := h.products.GetByNome(nome)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Mensagem: "Nao foi possivel encontrar o produto!",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Mensagem: "Erro ao buscar produto.", Erro: err.Error(),
		})
	}
	return c.JSON(product)
}

// AddProduct cadastra um produto novo.
// POST /add_produto
func (h *EstoqueHandler) AddProduct(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Mensagem: "Corpo da requisição inválido!", Erro: err.Error(),
		})
	}
	if msg := h.validate.Struct(in); msg != "" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Mensagem: msg})
	}

	product, err := h.products.Add(in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
				Mensagem: "Data de entrada inválida! Use o formato AAAA-MM-DD.",
			})
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
				Mensagem: "Produto ja cadastrado!",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Mensagem: "Erro ao cadastrar produto.", Erro: err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"mensagem": "Produto cadastrado com sucesso!",
		"produto":  product,
	})
}

// VerificarEstoque lista os produtos fora da faixa (quantidade <= mínimo ou >= máximo).
// GET /verificar_estoque
func (h *EstoqueHandler) VerificarEstoque(c *fiber.Ctx) error {
	items, err := h.products.VerificarEstoque()
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Mensagem: "Nenhum produto com estoque crítico!",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Mensagem: "Erro ao verificar estoque.", Erro: err.Error(),
		})
	}
	return c.JSON(items)
}

// DeleteProduct remove um produto pelo id informado no corpo; as movimentações
// associadas caem junto via ON DELETE CASCADE.
// DELETE /deletar_produto
func (h *EstoqueHandler) DeleteProduct(c *fiber.Ctx) error {
	var in dto.DeleteProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Mensagem: "Corpo da requisição inválido!", Erro: err.Error(),
		})
	}
	if msg := h.validate.Struct(in); msg != "" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Mensagem: msg})
	}

	deleted, err := h.products.Delete(in.IDProduto)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Mensagem: "Produto nao encontrado!",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Mensagem: "Erro ao deletar produto.", Erro: err.Error(),
		})
	}

	out := dto.DeletedProductResponse{Mensagem: "Produto removido com sucesso!"}
	out.Produto.ID = deleted.ID
	out.Produto.Nome = deleted.Nome
	return c.JSON(out)
}

// RegisterMovement registra uma ENTRADA ou SAIDA e recalcula a quantidade do
// produto na mesma transação.
// POST /movimentar_produto
func (h *EstoqueHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.MovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Mensagem: "Corpo da requisição inválido!", Erro: err.Error(),
		})
	}
	if msg := h.validate.Struct(in); msg != "" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Mensagem: msg})
	}

	movement, err := h.movements.RegisterMovement(c.UserContext(), in.Tipo, *in.Quantidade, *in.IDProduto)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
				Mensagem: "Tipo de movimentação inválido! Use ENTRADA ou SAIDA.",
			})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Mensagem: "Produto nao encontrado!",
			})
		case errors.Is(err, domain.ErrInsufficientStock):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
				Mensagem: "Estoque insuficiente para a saída!",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Mensagem: "Erro ao registrar movimentação.", Erro: err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"mensagem": "Movimentação registrada com sucesso!",
		"movimentacao": fiber.Map{
			"id_movimentacao":       movement.ID,
			"tipo":                  movement.Tipo,
			"quantidade":            movement.Quantidade,
			"id_produto":            movement.ProductID,
			"datetime_movimentacao": movement.OcorridoEm,
		},
	})
}

// ListSaidas lista as saídas registradas com o nome do produto.
// GET /listar_saidas
func (h *EstoqueHandler) ListSaidas(c *fiber.Ctx) error {
	movements, err := h.movements.ListSaidas()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Mensagem: "Erro ao listar saídas.", Erro: err.Error(),
		})
	}
	items := make([]dto.SaidaListItem, 0, len(movements))
	for _, m := range movements {
		items = append(items, dto.SaidaListItem{
			ID:         m.ID,
			Tipo:       m.Tipo,
			Quantidade: m.Quantidade,
			Produto:    m.ProductNome,
			OcorridoEm: m.OcorridoEm,
		})
	}
	return c.JSON(items)
}

// DeleteMovement remove uma movimentação revertendo seu efeito sobre o estoque.
// DELETE /deletar_movimentacao
func (h *EstoqueHandler) DeleteMovement(c *fiber.Ctx) error {
	var in dto.DeleteMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Mensagem: "Corpo da requisição inválido!", Erro: err.Error(),
		})
	}
	if msg := h.validate.Struct(in); msg != "" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Mensagem: msg})
	}

	deleted, err := h.movements.DeleteMovement(c.UserContext(), in.IDMovimentacao)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Mensagem: "Movimentação nao encontrada!",
			})
		case errors.Is(err, domain.ErrInsufficientStock):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
				Mensagem: "Não é possível reverter: o estoque ficaria negativo!",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Mensagem: "Erro ao deletar movimentação.", Erro: err.Error(),
		})
	}

	out := dto.DeletedMovementResponse{Mensagem: "Movimentação deletada com sucesso!"}
	out.Movimentacao.ID = deleted.ID
	out.Movimentacao.Tipo = deleted.Tipo
	out.Movimentacao.Quantidade = deleted.Quantidade
	out.Movimentacao.IDProduto = deleted.ProductID
	return c.JSON(out)
}

// urlDecodeParam devolve o parâmetro de rota já decodificado (acentos chegam
// percent-encoded na URL).
func urlDecodeParam(c *fiber.Ctx, name string) (string, error) {
	return url.PathUnescape(c.Params(name))
}

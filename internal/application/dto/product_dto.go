package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada do cadastro de produto.
// Ponteiros distinguem campo ausente de zero: quantidade 0 é válida, ausente não.
type CreateProductRequest struct {
	Nome       string           `json:"nome" validate:"required"`
	Valor      *decimal.Decimal `json:"valor" validate:"required"`
	Entrada    string           `json:"entrada" validate:"required"`
	Quantidade *int64           `json:"quantidade" validate:"required"`
	Minimo     *int64           `json:"minimo" validate:"required"`
	Maximo     *int64           `json:"maximo" validate:"required"`
}

// ProductListItem item da listagem de produtos com o valor total derivado.
type ProductListItem struct {
	Nome       string          `json:"nome"`
	Valor      decimal.Decimal `json:"valor"`
	Quantidade int64           `json:"quantidade"`
	ValorTotal decimal.Decimal `json:"valor_total"`
}

// ProductResponse saída completa de um produto.
type ProductResponse struct {
	ID           int64           `json:"id_produto"`
	Nome         string          `json:"nome"`
	Valor        decimal.Decimal `json:"valor"`
	Quantidade   int64           `json:"quantidade"`
	Minimo       int64           `json:"minimo"`
	Maximo       int64           `json:"maximo"`
	DataCadastro time.Time       `json:"data_cadastro"`
}

// DeleteProductRequest id do produto a remover (vem no corpo, como na API original).
type DeleteProductRequest struct {
	IDProduto int64 `json:"id_produto" validate:"required"`
}

// DeletedProductResponse confirmação de exclusão com o registro removido.
type DeletedProductResponse struct {
	Mensagem string `json:"mensagem"`
	Produto  struct {
		ID   int64  `json:"id_produto"`
		Nome string `json:"nome"`
	} `json:"produto_deletado"`
}

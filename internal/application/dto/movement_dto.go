package dto

import "time"

// MovementRequest entrada da movimentação de estoque.
// Tipos aceitos: ENTRADA (soma) e SAIDA (subtrai); quantidade sempre positiva.
type MovementRequest struct {
	Tipo       string `json:"tipo" validate:"required"`
	Quantidade *int64 `json:"quantidade" validate:"required,gt=0"`
	IDProduto  *int64 `json:"id_produto" validate:"required"`
}

// SaidaListItem item da listagem de saídas com o nome do produto.
type SaidaListItem struct {
	ID         int64     `json:"id_movimentacao"`
	Tipo       string    `json:"tipo"`
	Quantidade int64     `json:"quantidade"`
	Produto    string    `json:"produto"`
	OcorridoEm time.Time `json:"datetime_movimentacao"`
}

// DeleteMovementRequest id da movimentação a remover (vem no corpo).
type DeleteMovementRequest struct {
	IDMovimentacao int64 `json:"id_movimentacao" validate:"required"`
}

// DeletedMovementResponse confirmação de exclusão com o registro removido.
type DeletedMovementResponse struct {
	Mensagem     string `json:"mensagem"`
	Movimentacao struct {
		ID         int64  `json:"id_movimentacao"`
		Tipo       string `json:"tipo"`
		Quantidade int64  `json:"quantidade"`
		IDProduto  int64  `json:"id_produto"`
	} `json:"movimentacao_deletada"`
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa um produto da tabela produto.
// QuantidadeEstoque só muda via movimentação (nunca por update direto).
type Product struct {
	ID                int64
	Nome              string
	ValorUnitario     decimal.Decimal
	QuantidadeEstoque int64
	DataCadastro      time.Time
	MinimoEstoque     int64
	MaximoEstoque     int64
}

// ValorTotal devolve valor_unitario × quantidade_estoque.
func (p *Product) ValorTotal() decimal.Decimal {
	return p.ValorUnitario.Mul(decimal.NewFromInt(p.QuantidadeEstoque))
}

// EstoqueCritico indica estoque no limite ou fora da faixa mínimo..máximo.
// Os limites contam: quantidade == mínimo e quantidade == máximo entram no alerta.
func (p *Product) EstoqueCritico() bool {
	return p.QuantidadeEstoque <= p.MinimoEstoque || p.QuantidadeEstoque >= p.MaximoEstoque
}

package entity

import "time"

// Tipos de movimentação aceitos pelo ledger.
// ENTRADA soma a quantidade ao estoque, SAIDA subtrai.
const (
	MovementTypeEntrada = "ENTRADA"
	MovementTypeSaida   = "SAIDA"
)

// Movement representa uma linha da tabela movimentacao (ledger append-only).
type Movement struct {
	ID         int64
	Tipo       string
	Quantidade int64
	ProductID  int64
	OcorridoEm time.Time
}

// Delta devolve o efeito assinado da movimentação sobre o estoque.
func (m *Movement) Delta() int64 {
	if m.Tipo == MovementTypeSaida {
		return -m.Quantidade
	}
	return m.Quantidade
}

// MovementWithProduct é o modelo de leitura das listagens com join em produto.
type MovementWithProduct struct {
	Movement
	ProductNome string
}

// ValidMovementType verifica se o tipo está no conjunto aceito.
func ValidMovementType(tipo string) bool {
	return tipo == MovementTypeEntrada || tipo == MovementTypeSaida
}

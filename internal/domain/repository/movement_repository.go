package repository

import "github.com/seu-usuario/estoque-api/internal/domain/entity"

// MovementRepository porta de persistência para o ledger de movimentações.
type MovementRepository interface {
	// Create insere a linha do ledger e preenche ID e OcorridoEm.
	Create(movement *entity.Movement) error
	// GetByID devolve nil, nil quando não existe.
	GetByID(id int64) (*entity.Movement, error)
	// ListSaidas devolve as movimentações de SAIDA com o nome do produto,
	// mais recente primeiro.
	ListSaidas() ([]*entity.MovementWithProduct, error)
	// Delete remove por ID; false quando não existia.
	Delete(id int64) (bool, error)
}

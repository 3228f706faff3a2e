package repository

import "github.com/seu-usuario/estoque-api/internal/domain/entity"

// ProductRepository porta de persistência para produtos.
type ProductRepository interface {
	// Create persiste o produto e preenche o ID. Nome duplicado vira domain.ErrDuplicate.
	Create(product *entity.Product) error
	// GetByID devolve nil, nil quando não existe.
	GetByID(id int64) (*entity.Product, error)
	// GetByNome busca pelo nome exato. nil, nil quando não existe.
	GetByNome(nome string) (*entity.Product, error)
	// List devolve todos os produtos ordenados por nome ascendente.
	List() ([]*entity.Product, error)
	// ListEstoqueCritico devolve produtos com quantidade <= mínimo OU quantidade >= máximo.
	ListEstoqueCritico() ([]*entity.Product, error)
	// GetForUpdate carrega o produto bloqueando a fila (SELECT ... FOR UPDATE).
	// Só faz sentido dentro de uma transação; o lock dura até commit/rollback.
	GetForUpdate(id int64) (*entity.Product, error)
	// UpdateQuantidade grava a nova quantidade em estoque.
	UpdateQuantidade(id int64, quantidade int64) error
	// Delete remove por ID; false quando não existia.
	Delete(id int64) (bool, error)
}

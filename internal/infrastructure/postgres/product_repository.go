package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/seu-usuario/estoque-api/internal/domain"
	"github.com/seu-usuario/estoque-api/internal/domain/entity"
	"github.com/seu-usuario/estoque-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id_produto, nome, valor_unitario, quantidade_estoque, data_cadastro, minimo_estoque, maximo_estoque`

// ProductRepo implementação do porto ProductRepository sobre PostgreSQL (pool ou tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository constrói o adaptador de persistência de produtos. Aceita pool ou tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste um novo produto; o ID vem do banco.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO produto (nome, quantidade_estoque, valor_unitario, data_cadastro, minimo_estoque, maximo_estoque)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id_produto`
	err := r.q.QueryRow(context.Background(), query,
		product.Nome, product.QuantidadeEstoque, product.ValorUnitario,
		product.DataCadastro, product.MinimoEstoque, product.MaximoEstoque,
	).Scan(&product.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert produto: %w", err)
	}
	return nil
}

// GetByID obtém um produto por ID. nil, nil quando não existe.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM produto WHERE id_produto = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get produto")
}

// GetByNome obtém um produto pelo nome exato.
func (r *ProductRepo) GetByNome(nome string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM produto WHERE nome = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, nome), "get produto by nome")
}

// GetForUpdate obtém o produto bloqueando a fila (SELECT FOR UPDATE).
// Chamar somente dentro de transação; o lock vive até commit/rollback.
func (r *ProductRepo) GetForUpdate(id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM produto WHERE id_produto = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get produto for update")
}

func (r *ProductRepo) scanOne(row pgx.Row, op string) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.Nome, &p.ValorUnitario, &p.QuantidadeEstoque,
		&p.DataCadastro, &p.MinimoEstoque, &p.MaximoEstoque,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}

// List devolve todos os produtos ordenados por nome ascendente.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM produto ORDER BY nome ASC`
	return r.queryList(query, "list produtos")
}

// ListEstoqueCritico devolve produtos no limite ou fora da faixa mínimo..máximo.
// Os limites são inclusivos nos dois lados.
func (r *ProductRepo) ListEstoqueCritico() ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM produto
		WHERE quantidade_estoque <= minimo_estoque OR quantidade_estoque >= maximo_estoque
		ORDER BY nome ASC`
	return r.queryList(query, "list estoque critico")
}

func (r *ProductRepo) queryList(query, op string) ([]*entity.Product, error) {
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Nome, &p.ValorUnitario, &p.QuantidadeEstoque,
			&p.DataCadastro, &p.MinimoEstoque, &p.MaximoEstoque); err != nil {
			return nil, fmt.Errorf("scan produto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// UpdateQuantidade grava a quantidade recalculada pelo ledger.
func (r *ProductRepo) UpdateQuantidade(id int64, quantidade int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE produto SET quantidade_estoque = $2 WHERE id_produto = $1`,
		id, quantidade,
	)
	if err != nil {
		return fmt.Errorf("update quantidade: %w", err)
	}
	return nil
}

// Delete remove um produto por ID (movimentações caem em cascata).
func (r *ProductRepo) Delete(id int64) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM produto WHERE id_produto = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete produto: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

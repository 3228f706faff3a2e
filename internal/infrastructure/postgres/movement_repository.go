package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/seu-usuario/estoque-api/internal/domain/entity"
	"github.com/seu-usuario/estoque-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementação do ledger de movimentações sobre PostgreSQL (pool ou tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository constrói o adaptador do ledger. Aceita pool ou tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create insere a linha do ledger; ID e timestamp vêm do banco.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	query := `
		INSERT INTO movimentacao (tipo, quantidade, id_produto, datetime_movimentacao)
		VALUES ($1, $2, $3, now())
		RETURNING id_movimentacao, datetime_movimentacao`
	err := r.q.QueryRow(context.Background(), query,
		movement.Tipo, movement.Quantidade, movement.ProductID,
	).Scan(&movement.ID, &movement.OcorridoEm)
	if err != nil {
		return fmt.Errorf("insert movimentacao: %w", err)
	}
	return nil
}

// GetByID obtém uma movimentação por ID. nil, nil quando não existe.
func (r *MovementRepo) GetByID(id int64) (*entity.Movement, error) {
	query := `
		SELECT id_movimentacao, tipo, quantidade, id_produto, datetime_movimentacao
		FROM movimentacao WHERE id_movimentacao = $1`
	var m entity.Movement
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.Tipo, &m.Quantidade, &m.ProductID, &m.OcorridoEm,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movimentacao: %w", err)
	}
	return &m, nil
}

// ListSaidas devolve as saídas com o nome do produto, mais recente primeiro.
func (r *MovementRepo) ListSaidas() ([]*entity.MovementWithProduct, error) {
	query := `
		SELECT m.id_movimentacao, m.tipo, m.quantidade, m.id_produto, m.datetime_movimentacao, p.nome
		FROM movimentacao m
		JOIN produto p ON p.id_produto = m.id_produto
		WHERE m.tipo = $1
		ORDER BY m.datetime_movimentacao DESC`
	rows, err := r.q.Query(context.Background(), query, entity.MovementTypeSaida)
	if err != nil {
		return nil, fmt.Errorf("list saidas: %w", err)
	}
	defer rows.Close()
	var list []*entity.MovementWithProduct
	for rows.Next() {
		var m entity.MovementWithProduct
		if err := rows.Scan(&m.ID, &m.Tipo, &m.Quantidade, &m.ProductID, &m.OcorridoEm, &m.ProductNome); err != nil {
			return nil, fmt.Errorf("scan saida: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Delete remove uma movimentação por ID.
func (r *MovementRepo) Delete(id int64) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM movimentacao WHERE id_movimentacao = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete movimentacao: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

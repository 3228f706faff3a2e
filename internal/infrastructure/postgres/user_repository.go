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

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementação do porto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository constrói o adaptador de persistência de usuários. Aceita pool ou tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste um novo usuário; ID e data_cadastro vêm do banco.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO usuario (email, senha, nivel_acesso, ativo)
		VALUES ($1, $2, $3, $4)
		RETURNING id_usuario, data_cadastro`
	err := r.q.QueryRow(context.Background(), query,
		user.Email, user.PasswordHash, user.NivelAcesso, user.Ativo,
	).Scan(&user.ID, &user.DataCadastro)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByID obtém um usuário por ID. nil, nil quando não existe.
func (r *UserRepo) GetByID(id int64) (*entity.User, error) {
	query := `
		SELECT id_usuario, email, senha, nivel_acesso, data_cadastro, ativo
		FROM usuario WHERE id_usuario = $1`
	var u entity.User
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.NivelAcesso, &u.DataCadastro, &u.Ativo,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario by id: %w", err)
	}
	return &u, nil
}

// GetByEmail obtém um usuário por email (igualdade exata, case-sensitive).
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	query := `
		SELECT id_usuario, email, senha, nivel_acesso, data_cadastro, ativo
		FROM usuario WHERE email = $1`
	var u entity.User
	err := r.q.QueryRow(context.Background(), query, email).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.NivelAcesso, &u.DataCadastro, &u.Ativo,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario by email: %w", err)
	}
	return &u, nil
}

// EmailTakenByOther verifica se o email pertence a outro registro que não excludeID.
func (r *UserRepo) EmailTakenByOther(email string, excludeID int64) (bool, error) {
	var id int64
	err := r.q.QueryRow(context.Background(),
		`SELECT id_usuario FROM usuario WHERE email = $1 AND id_usuario != $2`,
		email, excludeID,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("check email: %w", err)
	}
	return true, nil
}

// List devolve todas as contas, cadastro mais recente primeiro.
func (r *UserRepo) List() ([]*entity.User, error) {
	query := `
		SELECT id_usuario, email, senha, nivel_acesso, data_cadastro, ativo
		FROM usuario ORDER BY data_cadastro DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.NivelAcesso, &u.DataCadastro, &u.Ativo); err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Update aplica um patch parcial enumerando apenas os campos presentes em um
// UPDATE parametrizado. Devolve o registro atualizado (nil quando não existe).
func (r *UserRepo) Update(id int64, patch repository.UserPatch) (*entity.User, error) {
	if patch.Empty() {
		return nil, domain.ErrNoFields
	}

	sets := make([]string, 0, 4)
	args := []any{id}
	pos := 2
	addSet := func(column string, value any) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, pos))
		args = append(args, value)
		pos++
	}
	if patch.Email != nil {
		addSet("email", *patch.Email)
	}
	if patch.PasswordHash != nil {
		addSet("senha", *patch.PasswordHash)
	}
	if patch.NivelAcesso != nil {
		addSet("nivel_acesso", *patch.NivelAcesso)
	}
	if patch.Ativo != nil {
		addSet("ativo", *patch.Ativo)
	}

	query := fmt.Sprintf(`
		UPDATE usuario SET %s
		WHERE id_usuario = $1
		RETURNING id_usuario, email, senha, nivel_acesso, data_cadastro, ativo`,
		joinSets(sets))

	var u entity.User
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.NivelAcesso, &u.DataCadastro, &u.Ativo,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if isUniqueViolation(err) {
			return nil, domain.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("update usuario: %w", err)
	}
	return &u, nil
}

func joinSets(sets []string) string {
	out := sets[0]
	for _, s := range sets[1:] {
		out += ", " + s
	}
	return out
}

// Delete remove um usuário por ID.
func (r *UserRepo) Delete(id int64) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM usuario WHERE id_usuario = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete usuario: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

package repository

import "github.com/seu-usuario/estoque-api/internal/domain/entity"

// UserPatch campos opcionais de um update parcial de usuário.
// Apenas os ponteiros não-nulos entram no UPDATE (enumeração explícita,
// nunca concatenação de entrada do usuário em SQL).
type UserPatch struct {
	Email        *string
	PasswordHash *string
	NivelAcesso  *int
	Ativo        *bool
}

// Empty indica que nenhum campo foi fornecido.
func (p UserPatch) Empty() bool {
	return p.Email == nil && p.PasswordHash == nil && p.NivelAcesso == nil && p.Ativo == nil
}

// UserRepository porta de persistência para contas de usuário.
type UserRepository interface {
	// Create persiste o usuário e preenche ID e DataCadastro. Violação de
	// unicidade de email vira domain.ErrEmailAlreadyExists.
	Create(user *entity.User) error
	// GetByID devolve nil, nil quando não existe.
	GetByID(id int64) (*entity.User, error)
	// GetByEmail busca por igualdade exata (case-sensitive). nil, nil quando não existe.
	GetByEmail(email string) (*entity.User, error)
	// EmailTakenByOther verifica unicidade de email desconsiderando o próprio registro.
	EmailTakenByOther(email string, excludeID int64) (bool, error)
	// List devolve todas as contas, cadastro mais recente primeiro.
	List() ([]*entity.User, error)
	// Update aplica um patch parcial e devolve o registro atualizado (nil quando não existe).
	Update(id int64, patch UserPatch) (*entity.User, error)
	// Delete remove por ID; false quando não existia.
	Delete(id int64) (bool, error)
}

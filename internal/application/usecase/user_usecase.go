package usecase

import (
	"github.com/seu-usuario/estoque-api/internal/application/auth"
	"github.com/seu-usuario/estoque-api/internal/application/dto"
	"github.com/seu-usuario/estoque-api/internal/domain"
	"github.com/seu-usuario/estoque-api/internal/domain/entity"
	"github.com/seu-usuario/estoque-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// UserUseCase CRUD administrativo de contas (rotas protegidas por token + admin).
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase constrói o caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List devolve todas as contas, cadastro mais recente primeiro.
func (uc *UserUseCase) List() (*dto.UserListResponse, error) {
	users, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, *auth.ToUserResponse(u))
	}
	return &dto.UserListResponse{Total: len(items), Usuarios: items}, nil
}

// GetByID obtém uma conta. ErrUserNotFound quando o id não existe.
func (uc *UserUseCase) GetByID(id int64) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return auth.ToUserResponse(user), nil
}

// Create cria uma conta por admin. Nível restrito a {0, 1}, padrão 0.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	existing, err := uc.repo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Senha), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	nivel := entity.NivelUsuario
	if in.NivelAcesso != nil {
		nivel = *in.NivelAcesso
	}
	user := &entity.User{
		Email:        in.Email,
		PasswordHash: string(hash),
		NivelAcesso:  nivel,
		Ativo:        true,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// Update aplica um patch parcial. Patch vazio devolve ErrNoFields sem tocar nada;
// a checagem de unicidade de email desconsidera o próprio registro.
func (uc *UserUseCase) Update(id int64, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if in.Empty() {
		return nil, domain.ErrNoFields
	}
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrUserNotFound
	}

	patch := repository.UserPatch{
		NivelAcesso: in.NivelAcesso,
		Ativo:       in.Ativo,
	}
	if in.Email != nil {
		taken, err := uc.repo.EmailTakenByOther(*in.Email, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, domain.ErrEmailAlreadyExists
		}
		patch.Email = in.Email
	}
	if in.Senha != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Senha), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		h := string(hash)
		patch.PasswordHash = &h
	}

	updated, err := uc.repo.Update(id, patch)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrUserNotFound
	}
	return auth.ToUserResponse(updated), nil
}

// Delete remove uma conta. O próprio admin nunca pode se deletar.
// Devolve o registro removido para a resposta.
func (uc *UserUseCase) Delete(id, requesterID int64) (*entity.User, error) {
	if id == requesterID {
		return nil, domain.ErrSelfDelete
	}
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if _, err := uc.repo.Delete(id); err != nil {
		return nil, err
	}
	return user, nil
}

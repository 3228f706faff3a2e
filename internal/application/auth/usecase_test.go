package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/seu-usuario/estoque-api/internal/application/auth"
	"github.com/seu-usuario/estoque-api/internal/application/dto"
	"github.com/seu-usuario/estoque-api/internal/domain"
	"github.com/seu-usuario/estoque-api/internal/domain/entity"
	"github.com/seu-usuario/estoque-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake de UserRepository em memória
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users  map[int64]*entity.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*entity.User{}, nextID: 1}
}

func (r *fakeUserRepo) Create(user *entity.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	user.ID = r.nextID
	user.DataCadastro = time.Now()
	r.nextID++
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id int64) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) EmailTakenByOther(email string, excludeID int64) (bool, error) {
	for _, u := range r.users {
		if u.Email == email && u.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) List() ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeUserRepo) Update(id int64, patch repository.UserPatch) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.PasswordHash != nil {
		u.PasswordHash = *patch.PasswordHash
	}
	if patch.NivelAcesso != nil {
		u.NivelAcesso = *patch.NivelAcesso
	}
	if patch.Ativo != nil {
		u.Ativo = *patch.Ativo
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) Delete(id int64) (bool, error) {
	if _, ok := r.users[id]; !ok {
		return false, nil
	}
	delete(r.users, id)
	return true, nil
}

func newTestAuthUC(repo repository.UserRepository) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:   "test-secret",
		ExpHours: 1,
		Issuer:   "estoque-api-test",
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_CriaUsuarioNivel0ComToken(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newTestAuthUC(repo)

	user, token, err := uc.Register(dto.RegisterRequest{
		Email: "novo@empresa.com",
		Senha: "senha123",
	})
	require.NoError(t, err)
	require.NotNil(t, user)

	assert.Equal(t, "novo@empresa.com", user.Email)
	assert.Equal(t, entity.NivelUsuario, user.NivelAcesso,
		"registro público sempre cria nível 0, ignorando qualquer outro valor")
	assert.True(t, user.Ativo)
	assert.NotEmpty(t, token)

	// A senha nunca sai em claro nem na resposta.
	stored, err := repo.GetByEmail("novo@empresa.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "senha123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("senha123")),
		"o hash armazenado deve validar a senha original")
}

func TestRegister_EmailDuplicado_Retorna422(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newTestAuthUC(repo)

	_, _, err := uc.Register(dto.RegisterRequest{Email: "a@empresa.com", Senha: "senha123"})
	require.NoError(t, err)

	_, _, err = uc.Register(dto.RegisterRequest{Email: "a@empresa.com", Senha: "outrasenha"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_EmailCaseSensitive(t *testing.T) {
	// A igualdade de email é exata: A@empresa.com e a@empresa.com são contas distintas.
	repo := newFakeUserRepo()
	uc := newTestAuthUC(repo)

	_, _, err := uc.Register(dto.RegisterRequest{Email: "a@empresa.com", Senha: "senha123"})
	require.NoError(t, err)

	_, _, err = uc.Register(dto.RegisterRequest{Email: "A@empresa.com", Senha: "senha123"})
	assert.NoError(t, err, "emails com caixa diferente não colidem")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredenciaisValidas(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newTestAuthUC(repo)

	_, _, err := uc.Register(dto.RegisterRequest{Email: "a@empresa.com", Senha: "senha123"})
	require.NoError(t, err)

	user, token, err := uc.Login(dto.LoginRequest{Email: "a@empresa.com", Senha: "senha123"})
	require.NoError(t, err)
	assert.Equal(t, "a@empresa.com", user.Email)
	assert.NotEmpty(t, token)
}

func TestLogin_MesmoErroParaEmailESenhaErrados(t *testing.T) {
	// Email desconhecido e senha errada devem sair indistinguíveis para quem chama.
	repo := newFakeUserRepo()
	uc := newTestAuthUC(repo)

	_, _, err := uc.Register(dto.RegisterRequest{Email: "a@empresa.com", Senha: "senha123"})
	require.NoError(t, err)

	_, _, errEmail := uc.Login(dto.LoginRequest{Email: "naoexiste@empresa.com", Senha: "senha123"})
	_, _, errSenha := uc.Login(dto.LoginRequest{Email: "a@empresa.com", Senha: "senhaerrada"})

	assert.ErrorIs(t, errEmail, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, errSenha, domain.ErrInvalidCredentials)
	assert.Equal(t, errEmail, errSenha,
		"os dois caminhos de falha devem devolver o mesmo sentinel")
}

func TestLogin_UsuarioInativo_Bloqueado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newTestAuthUC(repo)

	hash, err := bcrypt.GenerateFromPassword([]byte("senha123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, repo.Create(&entity.User{
		Email:        "inativo@empresa.com",
		PasswordHash: string(hash),
		NivelAcesso:  entity.NivelUsuario,
		Ativo:        false,
	}))

	_, _, err = uc.Login(dto.LoginRequest{Email: "inativo@empresa.com", Senha: "senha123"})
	assert.ErrorIs(t, err, domain.ErrUserInactive,
		"conta inativa não autentica mesmo com a senha correta")
}

package auth

import (
	"github.com/seu-usuario/estoque-api/internal/application/dto"
	"github.com/seu-usuario/estoque-api/internal/domain"
	"github.com/seu-usuario/estoque-api/internal/domain/entity"
	"github.com/seu-usuario/estoque-api/internal/domain/repository"
	"github.com/seu-usuario/estoque-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuração para geração de tokens.
type JWTConfig struct {
	Secret   string
	ExpHours int
	Issuer   string
}

// AuthUseCase casos de uso de autenticação: registro público e login.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase constrói o caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Register cria uma conta com nível 0: hasheia a senha com bcrypt, persiste e
// emite o token. Devolve ErrEmailAlreadyExists quando o email (igualdade exata)
// já está cadastrado.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, string, error) {
	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Senha), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}
	user := &entity.User{
		Email:        in.Email,
		PasswordHash: string(hash),
		NivelAcesso:  entity.NivelUsuario,
		Ativo:        true,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, "", err
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, user.NivelAcesso, uc.jwtCfg.Issuer, uc.jwtCfg.ExpHours)
	if err != nil {
		return nil, "", err
	}
	return ToUserResponse(user), token, nil
}

// Login verifica email/senha e emite um token novo.
// Email desconhecido e senha errada devolvem o MESMO erro (ErrInvalidCredentials)
// para não revelar quais emails existem. Conta inativa devolve ErrUserInactive.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.UserResponse, string, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", domain.ErrInvalidCredentials
	}
	if !user.Ativo {
		return nil, "", domain.ErrUserInactive
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Senha)); err != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, user.NivelAcesso, uc.jwtCfg.Issuer, uc.jwtCfg.ExpHours)
	if err != nil {
		return nil, "", err
	}
	return ToUserResponse(user), token, nil
}

// ToUserResponse converte a entidade para a saída sanitizada (sem hash de senha).
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:           u.ID,
		Email:        u.Email,
		NivelAcesso:  u.NivelAcesso,
		DataCadastro: u.DataCadastro,
		Ativo:        u.Ativo,
	}
}

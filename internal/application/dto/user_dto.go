package dto

import "time"

// RegisterRequest entrada do registro público: email e senha.
type RegisterRequest struct {
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required,min=6"`
}

// LoginRequest entrada do login.
type LoginRequest struct {
	Email string `json:"email" validate:"required"`
	Senha string `json:"senha" validate:"required"`
}

// CreateUserRequest entrada da criação de usuário por admin (nível opcional, padrão 0).
type CreateUserRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Senha       string `json:"senha" validate:"required,min=6"`
	NivelAcesso *int   `json:"nivel_acesso" validate:"omitempty,oneof=0 1"`
}

// UpdateUserRequest patch parcial de usuário: apenas os campos presentes são aplicados.
type UpdateUserRequest struct {
	Email       *string `json:"email" validate:"omitempty,email"`
	Senha       *string `json:"senha" validate:"omitempty,min=6"`
	NivelAcesso *int    `json:"nivel_acesso" validate:"omitempty,oneof=0 1"`
	Ativo       *bool   `json:"ativo"`
}

// Empty indica que o patch não traz nenhum campo.
func (r UpdateUserRequest) Empty() bool {
	return r.Email == nil && r.Senha == nil && r.NivelAcesso == nil && r.Ativo == nil
}

// UserResponse saída de um usuário (nunca inclui o hash da senha).
type UserResponse struct {
	ID           int64     `json:"id_usuario"`
	Email        string    `json:"email"`
	NivelAcesso  int       `json:"nivel_acesso"`
	DataCadastro time.Time `json:"data_cadastro"`
	Ativo        bool      `json:"ativo"`
}

// AuthResponse saída de registro e login: usuário sanitizado + token JWT.
type AuthResponse struct {
	Mensagem string       `json:"mensagem"`
	Usuario  UserResponse `json:"usuario"`
	Token    string       `json:"token"`
}

// UserListResponse listagem de usuários com o total.
type UserListResponse struct {
	Total    int            `json:"total"`
	Usuarios []UserResponse `json:"usuarios"`
}

// DeletedUserResponse confirmação de exclusão com o registro removido.
type DeletedUserResponse struct {
	Mensagem string `json:"mensagem"`
	Usuario  struct {
		ID    int64  `json:"id_usuario"`
		Email string `json:"email"`
	} `json:"usuario_deletado"`
}

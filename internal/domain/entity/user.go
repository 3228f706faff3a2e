package entity

import "time"

// Níveis de acesso.
const (
	NivelUsuario = 0
	NivelAdmin   = 1
)

// User representa uma conta na tabela usuario.
// Ativo controla o login: contas inativas são bloqueadas com 403.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	NivelAcesso  int
	DataCadastro time.Time
	Ativo        bool
}

// IsAdmin indica se a conta tem nível de administrador.
func (u *User) IsAdmin() bool {
	return u.NivelAcesso == NivelAdmin
}

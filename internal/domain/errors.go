package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound           = errors.New("recurso não encontrado")
	ErrUserNotFound       = errors.New("usuário não encontrado")
	ErrEmailAlreadyExists = errors.New("email já cadastrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrInvalidCredentials = errors.New("email ou senha incorretos")
	ErrUserInactive       = errors.New("usuário inativo")
	ErrForbidden          = errors.New("acesso negado")
	ErrNoFields           = errors.New("nenhum campo para atualizar")
	ErrSelfDelete         = errors.New("não é possível deletar a própria conta")
	ErrInsufficientStock  = errors.New("estoque insuficiente")
)

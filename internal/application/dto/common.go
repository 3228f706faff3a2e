package dto

// ErrorResponse corpo de erro HTTP: mensagem em pt-BR e detalhe técnico opcional.
type ErrorResponse struct {
	Mensagem string `json:"mensagem"`
	Erro     string `json:"erro,omitempty"`
}

// MessageResponse corpo de sucesso apenas com mensagem.
type MessageResponse struct {
	Mensagem string `json:"mensagem"`
}

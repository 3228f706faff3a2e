package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator valida structs de request usando as tags `validate` dos DTOs.
// As mensagens saem em pt-BR prontas para o campo `mensagem` da resposta.
type Validator struct {
	v *validator.Validate
}

// New cria o validador com nomes de campo vindos da tag json.
func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{v: v}
}

// Struct valida o struct e devolve a mensagem do primeiro erro encontrado.
// String vazia significa válido.
func (va *Validator) Struct(s any) string {
	err := va.v.Struct(s)
	if err == nil {
		return ""
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Dados inválidos!"
	}
	return message(verrs[0])
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Preencha todos os campos!"
	case "email":
		return "Email inválido!"
	case "min":
		if fe.Field() == "senha" {
			return "Senha deve ter no mínimo " + fe.Param() + " caracteres!"
		}
		return "Campo " + fe.Field() + " deve ter no mínimo " + fe.Param() + "!"
	case "oneof":
		if fe.Field() == "nivel_acesso" {
			return "Nível de acesso inválido! Use 0 (usuário) ou 1 (admin)"
		}
		return "Campo " + fe.Field() + " deve ser um de: " + fe.Param()
	case "gt":
		return "Campo " + fe.Field() + " deve ser maior que " + fe.Param() + "!"
	case "gte":
		return "Campo " + fe.Field() + " deve ser maior ou igual a " + fe.Param() + "!"
	default:
		return "Campo " + fe.Field() + " inválido!"
	}
}

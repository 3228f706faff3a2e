package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrExpired indica que o token era válido mas já passou da expiração.
var ErrExpired = errors.New("jwt: token expirado")

// Claims inclui os claims padrão JWT mais os campos próprios da aplicação.
// NivelAcesso vai no token para que o middleware de admin decida sem consultar a DB.
type Claims struct {
	jwt.RegisteredClaims
	UserID      int64  `json:"id_usuario"`
	Email       string `json:"email"`
	NivelAcesso int    `json:"nivel_acesso"`
}

// Generate gera um token JWT HS256 assinado com id, email e nível de acesso.
// O token vale expHours horas a partir de agora.
func Generate(secret string, userID int64, email string, nivelAcesso int, issuer string, expHours int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vazio")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   fmt.Sprintf("%d", userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expHours) * time.Hour)),
		},
		UserID:      userID,
		Email:       email,
		NivelAcesso: nivelAcesso,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida o token e devolve os claims.
// Retorna ErrExpired se o token passou da validade e outro erro para assinatura
// incorreta ou token malformado.
func Parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vazio")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}

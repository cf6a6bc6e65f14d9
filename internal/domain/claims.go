package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims são as claims dos tokens de acesso da API de relatórios
type Claims struct {
	ClientName string `json:"client_name"`
	jwt.RegisteredClaims
}

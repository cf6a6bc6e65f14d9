package authenticating

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/trendspotter/insight-engine/internal/config"
	"github.com/trendspotter/insight-engine/internal/domain"
)

// Authenticator protege a API de relatórios com tokens de acesso assinados.
// Não existe cadastro de usuários: os tokens são emitidos fora de banda para
// os consumidores (renderizador externo, operadores).
type Authenticator interface {
	GenerateToken(clientName string) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
	// Enabled indica se a autenticação está ativa (existe segredo configurado)
	Enabled() bool
}

type Service struct {
	cfg *config.Config
}

func NewService(cfg *config.Config) Authenticator {
	return &Service{cfg: cfg}
}

func (s *Service) Enabled() bool {
	return s.cfg.Auth.Secret != ""
}

func (s *Service) GenerateToken(clientName string) (string, error) {
	if !s.Enabled() {
		return "", errors.New("autenticação desabilitada: nenhum segredo configurado")
	}

	claims := domain.Claims{
		ClientName: clientName,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Auth.Secret))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.Secret), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*domain.Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}

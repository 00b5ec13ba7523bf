package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/barberpro-api/internal/config"
	"github.com/BruksfildServices01/barberpro-api/internal/domain/account"
)

// tokenTTL: tokens expiram em 2h e não podem ser revogados antes disso
// (são stateless).
const tokenTTL = 2 * time.Hour

// ErrInvalidToken é o único erro que Verify devolve: o motivo real
// (assinatura, expiração, formato) não vaza para o chamador.
var ErrInvalidToken = errors.New("invalid token")

type Identity struct {
	ID   uint
	Kind account.Kind
}

type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(cfg *config.Config) *TokenService {
	return &TokenService{
		secret: []byte(cfg.JWTSecret),
		ttl:    tokenTTL,
	}
}

func (s *TokenService) Issue(id Identity) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  id.ID,
		"kind": string(id.Kind),
		"iat":  now.Unix(),
		"exp":  now.Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *TokenService) Verify(tokenString string) (Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return Identity{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, ErrInvalidToken
	}

	sub, ok1 := claims["sub"].(float64)
	kindStr, ok2 := claims["kind"].(string)
	if !ok1 || !ok2 {
		return Identity{}, ErrInvalidToken
	}

	kind, ok := account.ParseKind(kindStr)
	if !ok {
		return Identity{}, ErrInvalidToken
	}

	return Identity{ID: uint(sub), Kind: kind}, nil
}

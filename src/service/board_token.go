package service

import (
	"fmt"
	"time"

	"keep-app/src/config"

	"github.com/golang-jwt/jwt/v5"
)

// BoardTokenService ボードロック解除トークンの管理サービス
type BoardTokenService interface {
	GenerateToken() (string, time.Time, error)
	ValidateToken(tokenString string) error
}

type boardTokenService struct {
	config *config.Config
}

// NewBoardTokenService ボードトークンサービスを作成
func NewBoardTokenService(cfg *config.Config) BoardTokenService {
	return &boardTokenService{config: cfg}
}

// GenerateToken 解除トークンを生成
func (s *boardTokenService) GenerateToken() (string, time.Time, error) {
	expiresAt := time.Now().Add(s.config.Auth.TokenExpiry)
	claims := &jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		NotBefore: jwt.NewNumericDate(time.Now()),
		Issuer:    "keep-app",
		Subject:   "board",
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ValidateToken 解除トークンを検証
func (s *boardTokenService) ValidateToken(tokenString string) error {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.Auth.JWTSecret), nil
	})
	if err != nil {
		return err
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return fmt.Errorf("invalid token")
	}
	if claims.Subject != "board" {
		return fmt.Errorf("invalid token subject")
	}
	return nil
}

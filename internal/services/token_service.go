package services

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

const tokenBytes = 64

// TokenService gera tokens opacos aleatórios; não há sessão associada
type TokenService struct{}

func NewTokenService() *TokenService {
	return &TokenService{}
}

// Generate retorna 64 bytes aleatórios em base64
func (s *TokenService) Generate() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf), nil
}

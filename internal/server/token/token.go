package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken возвращается для любого токена, не прошедшего проверку:
// неверная подпись, истекший срок, отсутствие exp, битая структура.
// Причина намеренно не раскрывается.
var ErrInvalidToken = errors.New("invalid token")

// Service выпускает и проверяет подписанные bearer токены.
// Ключ подписи задается один раз при создании и не ротируется.
type Service struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
}

// NewService создает сервис токенов.
// algorithm должен быть одним из HMAC алгоритмов: HS256, HS384, HS512.
func NewService(secret, algorithm string, ttl time.Duration) (*Service, error) {
	if secret == "" {
		return nil, fmt.Errorf("signing secret cannot be empty")
	}

	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, fmt.Errorf("unknown signing algorithm: %s", algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unsupported signing algorithm: %s", algorithm)
	}

	return &Service{
		secret: []byte(secret),
		method: method,
		ttl:    ttl,
	}, nil
}

// Issue создает подписанный токен с claims sub и exp = now + TTL
func (s *Service) Issue(subject string) (string, error) {
	return s.IssueWithTTL(subject, s.ttl)
}

// IssueWithTTL создает токен с явно заданным временем жизни
func (s *Service) IssueWithTTL(subject string, ttl time.Duration) (string, error) {
	now := time.Now()

	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	tok := jwt.NewWithClaims(s.method, claims)
	signed, err := tok.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify проверяет подпись и срок действия токена и возвращает subject.
// Возвращает ErrInvalidToken при любой ошибке проверки, без grace period.
func (s *Service) Verify(tokenString string) (string, error) {
	tok, err := jwt.ParseWithClaims(
		tokenString,
		&jwt.RegisteredClaims{},
		func(t *jwt.Token) (interface{}, error) {
			// Принимаем только тот алгоритм, которым подписываем сами
			if t.Method.Alg() != s.method.Alg() {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return s.secret, nil
		},
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{s.method.Alg()}),
	)
	if err != nil {
		return "", ErrInvalidToken
	}

	claims, ok := tok.Claims.(*jwt.RegisteredClaims)
	if !ok || !tok.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}

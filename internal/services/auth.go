package services

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService mints and verifies the session tokens that carry the caller's
// user id. It is an identity carrier, not a login system.
type TokenService struct {
	Secret []byte
	Issuer string
	TTL    time.Duration
}

func (t TokenService) CreateSessionToken(userID int64) (string, int64, error) {
	now := time.Now().UTC()
	exp := now.Add(t.TTL)
	claims := jwt.MapClaims{
		"iss": t.Issuer,
		"sub": strconv.FormatInt(userID, 10),
		"typ": "session",
		"iat": now.Unix(),
		"exp": exp.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.Secret)
	return signed, exp.Unix(), err
}

func (t TokenService) ParseToken(tokenStr string) (*jwt.Token, jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return t.Secret, nil
	}, jwt.WithIssuer(t.Issuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	return token, claims, err
}

// UserIDFromToken verifies tokenStr and returns the user id in its subject.
func (t TokenService) UserIDFromToken(tokenStr string) (int64, error) {
	token, claims, err := t.ParseToken(tokenStr)
	if err != nil || !token.Valid {
		return 0, ErrUnauthorized("invalid session token")
	}
	if typ, _ := claims["typ"].(string); typ != "session" {
		return 0, ErrUnauthorized("invalid session token")
	}
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return 0, ErrUnauthorized("invalid session token")
	}
	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil || userID <= 0 {
		return 0, ErrUnauthorized("invalid session token")
	}
	return userID, nil
}

package token

import (
	"time"

	"github.com/gdh/parayo/pkg/errs"
	"github.com/golang-jwt/jwt"
)

const (
	issuer  = "parayo"
	subject = "auth"

	emailClaim = "email"

	AccessTokenExpiry  = 2 * time.Hour
	RefreshTokenExpiry = 30 * 24 * time.Hour
)

// Service signs and verifies the API access and refresh tokens. Access and
// refresh tokens use distinct secrets so one can never stand in for the other.
type Service struct {
	accessSecret  []byte
	refreshSecret []byte
}

func CreateNewService(accessSecret string, refreshSecret string) *Service {
	return &Service{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
	}
}

func (s *Service) CreateToken(email string) (string, error) {
	return s.createToken(email, s.accessSecret, AccessTokenExpiry)
}

func (s *Service) CreateRefreshToken(email string) (string, error) {
	return s.createToken(email, s.refreshSecret, RefreshTokenExpiry)
}

// Verify checks the signature and expiry of an access token and returns the
// email claim it carries.
func (s *Service) Verify(tokenString string) (string, error) {
	return s.verify(tokenString, s.accessSecret)
}

// VerifyRefresh does the same as Verify against the refresh token secret.
func (s *Service) VerifyRefresh(tokenString string) (string, error) {
	return s.verify(tokenString, s.refreshSecret)
}

func (s *Service) createToken(email string, secret []byte, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{}
	claims["iss"] = issuer
	claims["sub"] = subject
	claims["iat"] = now.Unix()
	claims["exp"] = now.Add(expiry).Unix()
	claims[emailClaim] = email

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(secret)
}

func (s *Service) verify(tokenString string, secret []byte) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errs.ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return "", errs.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errs.ErrInvalidToken
	}

	email, ok := claims[emailClaim].(string)
	if !ok || email == "" {
		return "", errs.ErrInvalidToken
	}

	return email, nil
}

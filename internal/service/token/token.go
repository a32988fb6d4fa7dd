package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"in.co.kisanmitra/internal/boot"
	"in.co.kisanmitra/internal/model"
)

const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

type Claims struct {
	Mobile    string `json:"mobile,omitempty"`
	TokenType string `json:"typ"`
	jwt.RegisteredClaims
}

type Pair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Issuer mints and verifies the stateless access/refresh pair. A single
// symmetric secret signs both; rotating it invalidates every outstanding
// token.
type Issuer struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func New(config *boot.Config) *Issuer {
	return &Issuer{
		secret:     []byte(config.TokenSecret),
		accessTTL:  config.AccessTokenTTL,
		refreshTTL: config.RefreshTokenTTL,
	}
}

func (i *Issuer) Issue(account *model.Account) (*Pair, error) {
	now := time.Now().UTC()

	accessToken, err := i.sign(&Claims{
		Mobile:    account.Mobile,
		TokenType: TypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   string(account.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.accessTTL)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("signing access token: %w", err)
	}

	refreshToken, err := i.sign(&Claims{
		TokenType: TypeRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   string(account.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.refreshTTL)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("signing refresh token: %w", err)
	}

	return &Pair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (i *Issuer) sign(claims *Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Verify parses and validates a token of the expected type. Expired tokens
// fail with model.ErrTokenExpired; everything else malformed or mis-signed
// fails with model.ErrTokenInvalid.
func (i *Issuer) Verify(tokenStr string, tokenType string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, model.ErrTokenExpired
		}
		return nil, model.ErrTokenInvalid
	}
	if claims.TokenType != tokenType {
		return nil, model.ErrTokenInvalid
	}
	if claims.Subject == "" {
		return nil, model.ErrTokenInvalid
	}
	return claims, nil
}

func (c *Claims) AccountID() model.AccountID {
	return model.AccountID(c.Subject)
}

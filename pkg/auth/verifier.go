package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken   = errors.New("auth: invalid token")
	ErrMissingSubject = errors.New("auth: token has no subject")
)

// Claims is the identity carried by a verified session token.
type Claims struct {
	Subject string
	Email   string
}

// Verifier accepts HS256 tokens signed with the shared secret and, when a JWKS
// provider is set, RS256 tokens from the identity provider.
type Verifier struct {
	secret []byte
	jwks   *Provider
}

// NewVerifier builds a Verifier. jwks may be nil.
func NewVerifier(secret string, jwks *Provider) *Verifier {
	return &Verifier{secret: []byte(secret), jwks: jwks}
}

func (v *Verifier) Verify(tokenString string) (*Claims, error) {
	methods := []string{jwt.SigningMethodHS256.Alg()}
	if v.jwks != nil {
		methods = append(methods, jwt.SigningMethodRS256.Alg())
	}

	token, err := jwt.Parse(tokenString, v.keyFunc, jwt.WithValidMethods(methods))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, ErrMissingSubject
	}
	email, _ := claims["email"].(string)
	return &Claims{Subject: sub, Email: email}, nil
}

func (v *Verifier) keyFunc(token *jwt.Token) (interface{}, error) {
	switch token.Method.(type) {
	case *jwt.SigningMethodHMAC:
		if len(v.secret) == 0 {
			return nil, errors.New("JWT_SECRET is not configured")
		}
		return v.secret, nil
	case *jwt.SigningMethodRSA:
		if v.jwks == nil {
			return nil, errors.New("no JWKS provider configured")
		}
		return v.jwks.KeyFunc(token)
	default:
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
}

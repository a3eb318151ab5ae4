package jwt_generator

import (
	"crypto/ecdsa"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"watchlist-api/pkg/config"
)

type JwtGenerator interface {
	GenerateAccessToken(expirationTime time.Time, email string, permissions, roles []string) (string, error)
	VerifyAccessToken(rawJwtToken string) (*Claims, error)
	DecodeAccessToken(rawJwtToken string) (*Claims, error)
}

type jwtGenerator struct {
	privateKey *ecdsa.PrivateKey
	publicKey  *ecdsa.PublicKey
}

func NewJwtGenerator(jwtConfig config.JwtConfig) (JwtGenerator, error) {
	parsedEC256PrivateKey, err := jwt.ParseECPrivateKeyFromPEM(jwtConfig.PrivateKey)
	if err != nil {
		return nil, err
	}

	parsedEC256PublicKey, err := jwt.ParseECPublicKeyFromPEM(jwtConfig.PublicKey)
	if err != nil {
		return nil, err
	}

	return &jwtGenerator{
		privateKey: parsedEC256PrivateKey,
		publicKey:  parsedEC256PublicKey,
	}, nil
}

func (jwtGenerator *jwtGenerator) GenerateAccessToken(
	expirationTime time.Time,
	email string,
	permissions, roles []string,
) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		Permissions: permissions,
		Roles:       roles,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   email,
			Issuer:    IssuerDefault,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expirationTime),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodES256, claims)

	signedToken, err := token.SignedString(jwtGenerator.privateKey)
	if err != nil {
		return "", err
	}

	return signedToken, nil
}

func (jwtGenerator *jwtGenerator) VerifyAccessToken(rawJwtToken string) (*Claims, error) {
	var (
		err    error
		claims Claims
	)

	_, err = jwt.ParseWithClaims(rawJwtToken, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodECDSA); !ok {
			return nil, errors.New("jwt token is not valid signature")
		}

		return jwtGenerator.publicKey, nil
	}, jwt.WithoutClaimsValidation())
	if err != nil {
		return nil, err
	}

	isValidIssuer := claims.VerifyIssuer(IssuerDefault, true)
	if !isValidIssuer {
		return nil, errors.New("ambiguous jwt token issuer")
	}

	now := time.Now().UTC()
	isJwtTokenNotExpired := claims.VerifyExpiresAt(now, true)
	if !isJwtTokenNotExpired {
		return nil, errors.New("expired jwt token")
	}

	isTokenStarted := claims.VerifyNotBefore(now, true)
	if !isTokenStarted {
		return nil, errors.New("jwt token is not started")
	}

	return &claims, nil
}

// DecodeAccessToken extracts claims without checking signature or expiry.
// The refresh endpoint uses it to identify the caller from an access token
// that may already be expired.
func (jwtGenerator *jwtGenerator) DecodeAccessToken(rawJwtToken string) (*Claims, error) {
	var claims Claims

	parser := jwt.NewParser()
	_, _, err := parser.ParseUnverified(rawJwtToken, &claims)
	if err != nil {
		return nil, err
	}

	return &claims, nil
}

package jwt_generator

import "github.com/golang-jwt/jwt/v4"

const IssuerDefault = "watchlist-api"

type Claims struct {
	Permissions []string `json:"permissions"`
	Roles       []string `json:"roles"`
	jwt.RegisteredClaims
}

type Tokens struct {
	Token        string   `json:"token"`
	RefreshToken string   `json:"refreshToken"`
	Permissions  []string `json:"permissions"`
	Roles        []string `json:"roles"`
}

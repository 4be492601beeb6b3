package model

import "github.com/golang-jwt/jwt/v5"

const SessionScope = "chat"

type SessionClaims struct {
	jwt.RegisteredClaims
	Scope string `json:"scope"`
}

package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Identity é o registro da identidade autenticada guardado no armazenamento.
type Identity struct {
	MemberID string     `json:"memberId"`
	Name     string     `json:"name"`
	Role     MemberRole `json:"role"`
	LoggedAt time.Time  `json:"loggedAt"`
}

type Claims struct {
	MemberID   string     `json:"memberId"`
	MemberName string     `json:"memberName"`
	MemberRole MemberRole `json:"memberRole"`
	jwt.RegisteredClaims
}

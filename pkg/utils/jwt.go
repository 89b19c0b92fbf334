package utils

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var jwtKey = []byte(os.Getenv("JWT_SECRET"))

// Claims carry the acting admin and the shop the token is scoped to. Sessions
// are issued by the external auth service; this side only validates.
type Claims struct {
	AdminID string `json:"admin_id"`
	ShopID  string `json:"shop_id"`
	Role    string `json:"role"`
	jwt.RegisteredClaims
}

func CreateToken(adminID, shopID uuid.UUID, role string) (string, error) {
	claims := &Claims{
		AdminID: adminID.String(),
		ShopID:  shopID.String(),
		Role:    role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute * 60)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey)
}

func ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return jwtKey, nil
	})

	if err != nil || !token.Valid {
		return nil, err
	}

	return claims, nil
}

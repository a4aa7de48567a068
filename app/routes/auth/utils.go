package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/phanumatwang/finance-dashboard/app/config"
)

func HashKey(key string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(key), 12)
	return string(bytes), err
}

func CheckKeyHash(key, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(key))
	return err == nil
}

type JWTClaims struct {
	Name           string `json:"name"`
	Role           string `json:"role"`
	DailyWageCents int64  `json:"daily_wage_cents"`
	jwt.RegisteredClaims
}

func getJWTSecret() []byte {
	secret := config.AppConfig.JWTSecret
	if secret == "" {
		secret = "finance-dashboard-secret-key" // Default for development
	}
	return []byte(secret)
}

func GenerateJWT(name, role string, dailyWageCents int64) (string, error) {
	claims := JWTClaims{
		Name:           name,
		Role:           role,
		DailyWageCents: dailyWageCents,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "finance-dashboard",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(getJWTSecret())
}

func ValidateJWT(tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return getJWTSecret(), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*JWTClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, jwt.ErrInvalidKey
}

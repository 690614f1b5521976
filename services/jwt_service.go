package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/ahmedellithy99/dukkan-backend-sub000/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const tokenIssuer = "dukkan-api"

// Claims is the JWT payload for an authenticated user.
type Claims struct {
	UserID string      `json:"user_id"`
	Email  string      `json:"email"`
	Role   models.Role `json:"role"`
	jwt.RegisteredClaims
}

// Actor converts verified claims into the service-level caller.
func (c *Claims) Actor() (Actor, error) {
	id, err := uuid.Parse(c.UserID)
	if err != nil {
		return Actor{}, fmt.Errorf("invalid user id in token: %w", err)
	}
	return Actor{ID: id, Role: c.Role}, nil
}

type JWTService struct {
	secretKey []byte
	ttl       time.Duration
	now       func() time.Time
}

func NewJWTService(secretKey string, ttl time.Duration) (*JWTService, error) {
	if secretKey == "" {
		return nil, errors.New("JWT secret key cannot be empty")
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &JWTService{secretKey: []byte(secretKey), ttl: ttl, now: time.Now}, nil
}

// Generate signs an HS256 token for user and returns it with its expiry.
func (j *JWTService) Generate(user *models.User) (string, time.Time, error) {
	if user.ID == uuid.Nil || user.Email == "" {
		return "", time.Time{}, errors.New("user id and email cannot be empty")
	}

	now := j.now()
	expiresAt := now.Add(j.ttl)
	claims := Claims{
		UserID: user.ID.String(),
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(j.secretKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// Verify parses and validates a token, returning its claims.
func (j *JWTService) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.secretKey, nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithTimeFunc(j.now))
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.UserID == "" || claims.Role == "" {
		return nil, errors.New("token missing required claims")
	}
	return claims, nil
}

package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/docuhub/gateway/internal/pkg/models"
)

// Claims embeds the full principal into the session token alongside the
// standard temporal claims. The token is the only place the upstream
// access token is stored between requests.
type Claims struct {
	UserID       string   `json:"user_id"`
	MobileNumber string   `json:"mobile_number"`
	Email        string   `json:"email"`
	Name         string   `json:"name,omitempty"`
	Role         string   `json:"role,omitempty"`
	RoleID       *int64   `json:"role_id,omitempty"`
	IsAdmin      bool     `json:"is_admin"`
	Permissions  []string `json:"permissions,omitempty"`
	AccessToken  string   `json:"access_token"`
	jwt.RegisteredClaims
}

// GenerateToken signs a session token carrying the given principal
func GenerateToken(principal *models.Principal, cfg models.JWTConfig) (string, int64, error) {
	now := time.Now()
	expirationTime := now.Add(time.Duration(cfg.Expiration) * time.Minute)

	claims := &Claims{
		UserID:       principal.ID,
		MobileNumber: principal.MobileNumber,
		Email:        principal.Email,
		Name:         principal.Name,
		Role:         principal.Role,
		RoleID:       principal.RoleID,
		IsAdmin:      principal.IsAdmin,
		Permissions:  principal.Permissions,
		AccessToken:  principal.AccessToken,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expirationTime),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", 0, err
	}

	return tokenString, expirationTime.Unix(), nil
}

// ValidateToken verifies signature and expiry and reconstructs the
// principal exactly as embedded at issuance. Any failure means the token
// is treated as no session at all.
func ValidateToken(tokenString, secret string) (*models.Principal, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}

	permissions := claims.Permissions
	if permissions == nil {
		permissions = []string{}
	}

	return &models.Principal{
		ID:           claims.UserID,
		MobileNumber: claims.MobileNumber,
		Email:        claims.Email,
		Name:         claims.Name,
		Role:         claims.Role,
		RoleID:       claims.RoleID,
		IsAdmin:      claims.IsAdmin,
		Permissions:  permissions,
		AccessToken:  claims.AccessToken,
	}, nil
}

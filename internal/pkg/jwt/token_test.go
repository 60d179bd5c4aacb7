package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/docuhub/gateway/internal/pkg/models"
)

func testJWTConfig() models.JWTConfig {
	return models.JWTConfig{
		Secret:     "test-secret",
		Expiration: 60,
		Issuer:     "docuhub-gateway-test",
	}
}

func testPrincipal() *models.Principal {
	roleID := int64(2)
	return &models.Principal{
		ID:           "42",
		MobileNumber: "8050518293",
		Email:        "user@example.com",
		Name:         "Test User",
		Role:         "user",
		RoleID:       &roleID,
		IsAdmin:      false,
		Permissions:  []string{"read_access"},
		AccessToken:  "upstream-token",
	}
}

func TestGenerateAndValidateToken_RoundTrip(t *testing.T) {
	cfg := testJWTConfig()
	principal := testPrincipal()

	tokenString, expiresAt, err := GenerateToken(principal, cfg)
	assert.NoError(t, err)
	assert.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, int64(0))

	got, err := ValidateToken(tokenString, cfg.Secret)
	assert.NoError(t, err)
	assert.Equal(t, principal, got)
}

func TestValidateToken_Expired(t *testing.T) {
	cfg := testJWTConfig()
	cfg.Expiration = -5 // already expired at issuance

	tokenString, _, err := GenerateToken(testPrincipal(), cfg)
	assert.NoError(t, err)

	got, err := ValidateToken(tokenString, cfg.Secret)
	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	cfg := testJWTConfig()

	tokenString, _, err := GenerateToken(testPrincipal(), cfg)
	assert.NoError(t, err)

	got, err := ValidateToken(tokenString, "other-secret")
	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestValidateToken_Garbage(t *testing.T) {
	got, err := ValidateToken("not-a-token", testJWTConfig().Secret)
	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestValidateToken_TamperedPayload(t *testing.T) {
	cfg := testJWTConfig()

	tokenString, _, err := GenerateToken(testPrincipal(), cfg)
	assert.NoError(t, err)

	// flip a character in the payload segment
	tampered := []byte(tokenString)
	mid := len(tampered) / 2
	if tampered[mid] == 'a' {
		tampered[mid] = 'b'
	} else {
		tampered[mid] = 'a'
	}

	got, err := ValidateToken(string(tampered), cfg.Secret)
	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestValidateToken_NilPermissionsDefaultsToEmptySet(t *testing.T) {
	cfg := testJWTConfig()
	principal := testPrincipal()
	principal.Permissions = nil

	tokenString, _, err := GenerateToken(principal, cfg)
	assert.NoError(t, err)

	got, err := ValidateToken(tokenString, cfg.Secret)
	assert.NoError(t, err)
	assert.NotNil(t, got.Permissions)
	assert.Empty(t, got.Permissions)
}

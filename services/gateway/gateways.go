package gateway

import (
	"context"

	"github.com/docuhub/gateway/internal/pkg/models"
)

// AuthGW defines the calls made against the upstream auth service
type AuthGW interface {
	// Login posts form-encoded credentials to the auth service
	Login(ctx context.Context, username, password string) (*models.LoginResult, error)

	// GetProfile fetches the caller's profile with the given bearer token
	GetProfile(ctx context.Context, accessToken string) (*models.UserProfile, error)

	// Signup creates an account on the auth service
	Signup(ctx context.Context, req *models.SignupRequest) error
}

// ProxyGW defines the forwarding of inbound requests to upstream services
type ProxyGW interface {
	// Forward issues exactly one upstream attempt for the envelope and
	// relays the response
	Forward(ctx context.Context, target models.UpstreamTarget, bearerToken string, env *models.ProxyEnvelope) (*models.UpstreamResponse, error)
}

// AuditGW publishes auth audit events
type AuditGW interface {
	PublishAuthEvent(event *models.AuditEvent) error
}

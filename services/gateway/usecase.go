package gateway

import (
	"context"

	"github.com/docuhub/gateway/internal/pkg/models"
)

// GatewayUC defines the gateway use case operations
type GatewayUC interface {
	// Login exchanges credentials for a signed session
	Login(ctx context.Context, creds *models.Credentials) (*models.AuthSession, error)

	// Signup forwards an account creation request to the auth service
	Signup(ctx context.Context, req *models.SignupRequest) error

	// Logout records the end of a session; the cookie itself is cleared
	// by the handler
	Logout(ctx context.Context, principal *models.Principal)

	// Forward re-issues a validated inbound request to the given upstream
	// service with the principal's bearer credential attached
	Forward(ctx context.Context, principal *models.Principal, target models.UpstreamTarget, env *models.ProxyEnvelope) (*models.UpstreamResponse, error)

	// RecordAdminDenial audits a refused admin access attempt
	RecordAdminDenial(principal *models.Principal, path, remoteIP string)
}

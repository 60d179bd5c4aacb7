package usecase

import (
	"context"
	"fmt"

	"github.com/docuhub/gateway/internal/pkg/models"
)

// Forward re-issues a validated inbound request to the given upstream
// service. The principal's upstream bearer credential is attached; the
// browser-held session never crosses this boundary. Exactly one attempt
// is made per inbound call — retries would duplicate non-idempotent
// operations.
func (uc *GatewayUC) Forward(ctx context.Context, principal *models.Principal, target models.UpstreamTarget, env *models.ProxyEnvelope) (*models.UpstreamResponse, error) {
	if target != models.TargetBackend && target != models.TargetTools {
		return nil, fmt.Errorf("unknown upstream target: %s", target)
	}

	bearerToken := ""
	if principal != nil {
		bearerToken = principal.AccessToken
	}

	return uc.proxyGW.Forward(ctx, target, bearerToken, env)
}

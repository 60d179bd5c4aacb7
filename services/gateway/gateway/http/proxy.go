package gatewayhttp

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/docuhub/gateway/internal/pkg/logger"
	"github.com/docuhub/gateway/internal/pkg/models"
)

// ProxyClient forwards inbound requests to upstream services. It always
// dials the internal base addresses resolved at startup.
type ProxyClient struct {
	targets    map[models.UpstreamTarget]string
	httpClient *http.Client
}

// NewProxyClient creates the proxy forwarder from service configuration
func NewProxyClient(services models.ServicesConfig) *ProxyClient {
	timeout := time.Duration(services.ProxyTimeout) * time.Second
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &ProxyClient{
		targets: map[models.UpstreamTarget]string{
			models.TargetBackend: strings.TrimRight(services.Backend.InternalURL, "/"),
			models.TargetTools:   strings.TrimRight(services.Tools.InternalURL, "/"),
		},
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Forward re-issues the envelope against the target service: same
// method, path and query, raw body stream, bearer credential attached.
// Exactly one attempt is made. The body stream is passed through as-is so
// multipart payloads are not re-serialized.
func (p *ProxyClient) Forward(ctx context.Context, target models.UpstreamTarget, bearerToken string, env *models.ProxyEnvelope) (*models.UpstreamResponse, error) {
	baseURL, ok := p.targets[target]
	if !ok {
		return nil, fmt.Errorf("no base address configured for target %q", target)
	}

	requestURL := baseURL + env.Path
	if env.RawQuery != "" {
		requestURL += "?" + env.RawQuery
	}

	req, err := http.NewRequestWithContext(ctx, env.Method, requestURL, env.Body)
	if err != nil {
		return nil, err
	}
	if env.ContentType != "" {
		req.Header.Set("Content-Type", env.ContentType)
	}
	if bearerToken != "" {
		req.Header.Set("Authorization", "Bearer "+bearerToken)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		// the real address stays in the server-side log only
		logger.Error("upstream call failed",
			logger.String("target", string(target)),
			logger.String("method", env.Method),
			logger.String("path", env.Path),
			logger.Err(err),
		)
		return nil, fmt.Errorf("%w: %s", models.ErrUpstreamUnreachable, target)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response from %s", models.ErrUpstreamUnreachable, target)
	}

	return &models.UpstreamResponse{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}

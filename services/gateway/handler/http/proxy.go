package http

import (
	"encoding/json"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/docuhub/gateway/internal/pkg/middleware"
	"github.com/docuhub/gateway/internal/pkg/models"
	"github.com/docuhub/gateway/internal/utils"
	"github.com/docuhub/gateway/services/gateway"
)

// ProxyHandler forwards validated inbound requests to one upstream
// service. Admin, tools and profile routes all use an instance of it;
// only the target differs.
type ProxyHandler struct {
	gatewayUC gateway.GatewayUC
	target    models.UpstreamTarget
}

// NewProxyHandler creates a proxy handler bound to an upstream target
func NewProxyHandler(gatewayUC gateway.GatewayUC, target models.UpstreamTarget) *ProxyHandler {
	return &ProxyHandler{
		gatewayUC: gatewayUC,
		target:    target,
	}
}

// Proxy re-issues the inbound request upstream and relays the answer
func (h *ProxyHandler) Proxy(c echo.Context) error {
	principal := middleware.PrincipalFromContext(c)
	if principal == nil {
		return utils.UnauthorizedResponse(c, "authentication required")
	}

	req := c.Request()
	env := &models.ProxyEnvelope{
		Method:      req.Method,
		Path:        req.URL.Path,
		RawQuery:    req.URL.RawQuery,
		ContentType: req.Header.Get(echo.HeaderContentType),
		Body:        req.Body,
	}

	resp, err := h.gatewayUC.Forward(req.Context(), principal, h.target, env)
	if err != nil {
		if errors.Is(err, models.ErrUpstreamUnreachable) {
			return utils.BadGatewayResponse(c, "upstream service unavailable")
		}
		return utils.InternalServerErrorResponse(c, "internal server error")
	}

	return relayUpstream(c, resp)
}

// relayUpstream writes the upstream response to the caller. Success is
// relayed verbatim with the upstream content type; error statuses are
// translated into the gateway's error envelope, carrying the upstream's
// own message.
func relayUpstream(c echo.Context, resp *models.UpstreamResponse) error {
	if !resp.Success() {
		return utils.ErrorResponseHandler(c, resp.StatusCode, upstreamErrorMessage(resp.Body))
	}

	contentType := resp.ContentType
	if contentType == "" {
		contentType = echo.MIMEApplicationJSON
	}
	return c.Blob(resp.StatusCode, contentType, resp.Body)
}

// upstreamErrorMessage pulls the human-readable message out of a
// structured upstream error body. The backend answers FastAPI-style with
// "detail"; "error" and "message" cover other upstreams.
func upstreamErrorMessage(body []byte) string {
	var parsed struct {
		Detail  json.RawMessage `json:"detail"`
		Error   string          `json:"error"`
		Message string          `json:"message"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil {
		if len(parsed.Detail) > 0 {
			var detail string
			if err := json.Unmarshal(parsed.Detail, &detail); err == nil && detail != "" {
				return detail
			}
		}
		if parsed.Error != "" {
			return parsed.Error
		}
		if parsed.Message != "" {
			return parsed.Message
		}
	}
	return "upstream request failed"
}

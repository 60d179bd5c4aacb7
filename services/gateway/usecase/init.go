package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/docuhub/gateway/internal/pkg/logger"
	"github.com/docuhub/gateway/internal/pkg/models"
	"github.com/docuhub/gateway/services/gateway"
)

// GatewayUC implements the gateway use cases
type GatewayUC struct {
	cfg     *models.Config
	authGW  gateway.AuthGW
	proxyGW gateway.ProxyGW
	auditGW gateway.AuditGW
}

// NewGatewayUC creates a new gateway use case. auditGW may be nil, in
// which case audit publishing is disabled.
func NewGatewayUC(cfg *models.Config, authGW gateway.AuthGW, proxyGW gateway.ProxyGW, auditGW gateway.AuditGW) *GatewayUC {
	return &GatewayUC{
		cfg:     cfg,
		authGW:  authGW,
		proxyGW: proxyGW,
		auditGW: auditGW,
	}
}

// publishAudit emits an audit event best effort. Failures are logged and
// never surface to the caller.
func (uc *GatewayUC) publishAudit(eventType models.AuditEventType, subject, path, remoteIP, detail string) {
	if uc.auditGW == nil {
		return
	}

	event := &models.AuditEvent{
		ID:        uuid.New().String(),
		Type:      eventType,
		Subject:   subject,
		RemoteIP:  remoteIP,
		Path:      path,
		Detail:    detail,
		Timestamp: time.Now(),
	}

	if err := uc.auditGW.PublishAuthEvent(event); err != nil {
		logger.Warn("failed to publish audit event",
			logger.Err(err),
			logger.String("type", string(eventType)),
		)
	}
}

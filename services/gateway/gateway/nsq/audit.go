package gatewaynsq

import (
	"github.com/docuhub/gateway/internal/pkg/constants"
	"github.com/docuhub/gateway/internal/pkg/models"
	nsqpkg "github.com/docuhub/gateway/internal/pkg/nsq"
)

// AuditPublisher publishes auth audit events to NSQ
type AuditPublisher struct {
	producer *nsqpkg.Producer
}

// NewAuditPublisher creates a new audit publisher
func NewAuditPublisher(producer *nsqpkg.Producer) *AuditPublisher {
	return &AuditPublisher{producer: producer}
}

// PublishAuthEvent publishes one audit event to the auth events topic
func (p *AuditPublisher) PublishAuthEvent(event *models.AuditEvent) error {
	return p.producer.Publish(constants.AuditTopicAuthEvents, event)
}

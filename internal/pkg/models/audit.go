package models

import "time"

// AuditEventType classifies an auth audit event
type AuditEventType string

const (
	AuditLoginSucceeded AuditEventType = "login_succeeded"
	AuditLoginFailed    AuditEventType = "login_failed"
	AuditLogout         AuditEventType = "logout"
	AuditAdminDenied    AuditEventType = "admin_denied"
)

// AuditEvent is published to the audit topic for security-relevant
// gateway actions. Publishing is best effort and never blocks a request.
type AuditEvent struct {
	ID        string         `json:"id"`
	Type      AuditEventType `json:"type"`
	Subject   string         `json:"subject"`
	RemoteIP  string         `json:"remote_ip,omitempty"`
	Path      string         `json:"path,omitempty"`
	Detail    string         `json:"detail,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

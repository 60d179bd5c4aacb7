package constants

const (
	// SessionCookieName is the cookie that carries the signed session token
	SessionCookieName = "docuhub_session"

	// ContextKeyPrincipal is the echo context key holding the resolved principal
	ContextKeyPrincipal = "principal"

	// ContextKeyUserID is the echo context key holding the caller's user ID
	ContextKeyUserID = "user_id"

	// HeaderRequestID carries the per-request correlation ID
	HeaderRequestID = "X-Request-ID"
)

const (
	// AuditTopicAuthEvents is the NSQ topic for auth audit events
	AuditTopicAuthEvents = "gateway.auth.events"
)

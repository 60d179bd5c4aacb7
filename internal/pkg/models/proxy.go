package models

import "io"

// UpstreamTarget identifies which upstream service a forwarded call goes to
type UpstreamTarget string

const (
	// TargetBackend is the primary backend API
	TargetBackend UpstreamTarget = "backend"
	// TargetTools is the tool-invocation service
	TargetTools UpstreamTarget = "tools"
)

// ProxyEnvelope describes an inbound request to be re-issued upstream.
// Body is the raw inbound body stream; it is forwarded without
// re-serialization so multipart payloads survive intact.
type ProxyEnvelope struct {
	Method      string
	Path        string
	RawQuery    string
	ContentType string
	Body        io.Reader
}

// UpstreamResponse is the relayed result of a forwarded call
type UpstreamResponse struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// Success reports whether the upstream answered with a non-error status
func (r *UpstreamResponse) Success() bool {
	return r.StatusCode < 400
}

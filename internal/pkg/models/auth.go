package models

const (
	// AdminPermission is the permission sentinel that grants admin access
	AdminPermission = "admin_access"
	// AdminRole is the role name that grants admin access
	AdminRole = "admin"
)

// Credentials carries the login form fields. Transient, never persisted.
// The inbound login payload uses camelCase field names; the snake_case
// shapes elsewhere belong to the upstream auth service's contract.
type Credentials struct {
	MobileNumber string `json:"mobileNumber"`
	Password     string `json:"password"`
}

// SignupRequest carries the signup form fields, forwarded to the auth service
type SignupRequest struct {
	MobileNumber string `json:"mobile_number"`
	Password     string `json:"password"`
	Email        string `json:"email,omitempty"`
}

// LoginResult is the auth service's response to a successful login
type LoginResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// ProfileRole is the role object embedded in a user profile
type ProfileRole struct {
	Name string `json:"name"`
}

// UserProfile is the auth service's "who am I" response
type UserProfile struct {
	ID           int64        `json:"id"`
	Email        string       `json:"email"`
	MobileNumber string       `json:"mobile_number"`
	Name         string       `json:"name"`
	Role         *ProfileRole `json:"role"`
	RoleID       *int64       `json:"role_id"`
	Permissions  []string     `json:"permissions"`
}

// Principal is the validated identity and authorization claims for the
// current caller. AccessToken is the upstream bearer credential and must
// never be serialized into responses; it travels only inside the signed
// session token.
type Principal struct {
	ID           string   `json:"id"`
	MobileNumber string   `json:"mobile_number"`
	Email        string   `json:"email"`
	Name         string   `json:"name,omitempty"`
	Role         string   `json:"role,omitempty"`
	RoleID       *int64   `json:"role_id,omitempty"`
	IsAdmin      bool     `json:"is_admin"`
	Permissions  []string `json:"permissions"`
	AccessToken  string   `json:"-"`
}

// HasPermission reports whether the principal carries the given permission
func (p *Principal) HasPermission(permission string) bool {
	for _, perm := range p.Permissions {
		if perm == permission {
			return true
		}
	}
	return false
}

// AuthSession is the result of a successful credential exchange
type AuthSession struct {
	Principal *Principal `json:"user"`
	Token     string     `json:"token"`
	ExpiresAt int64      `json:"expires_at"`
}

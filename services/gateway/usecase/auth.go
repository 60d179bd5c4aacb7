package usecase

import (
	"context"
	"errors"
	"strconv"

	jwtpkg "github.com/docuhub/gateway/internal/pkg/jwt"
	"github.com/docuhub/gateway/internal/pkg/logger"
	"github.com/docuhub/gateway/internal/pkg/models"
	"github.com/docuhub/gateway/internal/utils"
)

// Login exchanges a mobile-number/password pair for a signed session.
// Input is validated before any network call; the login and profile calls
// are sequential because the second needs the token from the first.
func (uc *GatewayUC) Login(ctx context.Context, creds *models.Credentials) (*models.AuthSession, error) {
	mobileNumber, err := utils.ValidateMobileNumber(creds.MobileNumber)
	if err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if creds.Password == "" {
		return nil, models.NewValidationError("password is required")
	}

	result, err := uc.authGW.Login(ctx, mobileNumber, creds.Password)
	if err != nil {
		uc.logLoginFailure(mobileNumber, err)
		return nil, err
	}
	if result.AccessToken == "" {
		uc.logLoginFailure(mobileNumber, models.ErrInvalidUpstreamResponse)
		return nil, models.ErrInvalidUpstreamResponse
	}

	profile, err := uc.authGW.GetProfile(ctx, result.AccessToken)
	if err != nil {
		uc.logLoginFailure(mobileNumber, err)
		return nil, err
	}

	principal := buildPrincipal(profile, result.AccessToken)

	token, expiresAt, err := jwtpkg.GenerateToken(principal, uc.cfg.JWT)
	if err != nil {
		logger.Error("failed to sign session token", logger.Err(err))
		return nil, err
	}

	uc.publishAudit(models.AuditLoginSucceeded, principal.ID, "", "", "")
	logger.Info("login succeeded",
		logger.String("user_id", principal.ID),
		logger.Bool("is_admin", principal.IsAdmin),
	)

	return &models.AuthSession{
		Principal: principal,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// Signup forwards an account creation request to the auth service
func (uc *GatewayUC) Signup(ctx context.Context, req *models.SignupRequest) error {
	mobileNumber, err := utils.ValidateMobileNumber(req.MobileNumber)
	if err != nil {
		return models.NewValidationError(err.Error())
	}
	if req.Password == "" {
		return models.NewValidationError("password is required")
	}
	req.MobileNumber = mobileNumber

	return uc.authGW.Signup(ctx, req)
}

// Logout records the end of a session
func (uc *GatewayUC) Logout(ctx context.Context, principal *models.Principal) {
	if principal == nil {
		return
	}
	uc.publishAudit(models.AuditLogout, principal.ID, "", "", "")
	logger.Info("logout", logger.String("user_id", principal.ID))
}

// RecordAdminDenial audits a refused admin access attempt
func (uc *GatewayUC) RecordAdminDenial(principal *models.Principal, path, remoteIP string) {
	subject := ""
	if principal != nil {
		subject = principal.ID
	}
	uc.publishAudit(models.AuditAdminDenied, subject, path, remoteIP, "admin access required")
}

// logLoginFailure distinguishes the failure classes for logging only; the
// caller receives the error as-is and the handler renders one opaque
// message per class.
func (uc *GatewayUC) logLoginFailure(mobileNumber string, err error) {
	var upstreamErr *models.UpstreamError
	switch {
	case errors.As(err, &upstreamErr):
		logger.Warn("login rejected by auth service",
			logger.String("mobile_number", mobileNumber),
			logger.Int("status", upstreamErr.StatusCode),
		)
	case errors.Is(err, models.ErrUpstreamUnreachable):
		logger.Error("auth service unreachable during login",
			logger.String("mobile_number", mobileNumber),
			logger.Err(err),
		)
	default:
		logger.Error("login failed",
			logger.String("mobile_number", mobileNumber),
			logger.Err(err),
		)
	}
	uc.publishAudit(models.AuditLoginFailed, mobileNumber, "", "", err.Error())
}

// buildPrincipal derives the typed principal from an upstream profile.
// isAdmin is computed here, never trusted verbatim from upstream: the
// admin permission sentinel or the admin role name grants it. Missing
// optional profile fields default to safe empty values.
func buildPrincipal(profile *models.UserProfile, accessToken string) *models.Principal {
	permissions := profile.Permissions
	if permissions == nil {
		permissions = []string{}
	}

	roleName := ""
	if profile.Role != nil {
		roleName = profile.Role.Name
	}

	principal := &models.Principal{
		ID:           strconv.FormatInt(profile.ID, 10),
		MobileNumber: profile.MobileNumber,
		Email:        profile.Email,
		Name:         profile.Name,
		Role:         roleName,
		RoleID:       profile.RoleID,
		Permissions:  permissions,
		AccessToken:  accessToken,
	}
	principal.IsAdmin = principal.HasPermission(models.AdminPermission) || roleName == models.AdminRole

	return principal
}

package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/docuhub/gateway/internal/pkg/constants"
	"github.com/docuhub/gateway/internal/pkg/middleware"
	"github.com/docuhub/gateway/internal/pkg/models"
	"github.com/docuhub/gateway/services/gateway/mocks"
)

func proxyTestContext(method, target string, body io.Reader, principal *models.Principal) (*httptest.ResponseRecorder, echo.Context) {
	e := echo.New()
	req := httptest.NewRequest(method, target, body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if principal != nil {
		c.Set(constants.ContextKeyPrincipal, principal)
	}
	return rec, c
}

func TestProxyHandler_RelaysSuccessVerbatim(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockGatewayUC(ctrl)
	handler := NewProxyHandler(mockUC, models.TargetBackend)

	principal := &models.Principal{ID: "1", AccessToken: "tok1"}
	upstreamBody := []byte(`{"id":7,"title":"quarterly report"}`)

	mockUC.EXPECT().
		Forward(gomock.Any(), principal, models.TargetBackend, gomock.Any()).
		DoAndReturn(func(_ interface{}, _ *models.Principal, _ models.UpstreamTarget, env *models.ProxyEnvelope) (*models.UpstreamResponse, error) {
			assert.Equal(t, http.MethodGet, env.Method)
			assert.Equal(t, "/profile/me", env.Path)
			assert.Equal(t, "expand=role", env.RawQuery)
			return &models.UpstreamResponse{
				StatusCode:  http.StatusOK,
				ContentType: echo.MIMEApplicationJSON,
				Body:        upstreamBody,
			}, nil
		})

	rec, c := proxyTestContext(http.MethodGet, "/profile/me?expand=role", nil, principal)
	assert.NoError(t, handler.Proxy(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, upstreamBody, rec.Body.Bytes())
}

func TestProxyHandler_UpstreamErrorTranslatedToEnvelope(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockGatewayUC(ctrl)
	handler := NewProxyHandler(mockUC, models.TargetBackend)

	mockUC.EXPECT().
		Forward(gomock.Any(), gomock.Any(), models.TargetBackend, gomock.Any()).
		Return(&models.UpstreamResponse{
			StatusCode:  http.StatusInternalServerError,
			ContentType: echo.MIMEApplicationJSON,
			Body:        []byte(`{"detail":"db down"}`),
		}, nil)

	rec, c := proxyTestContext(http.MethodGet, "/admin/users", nil, &models.Principal{ID: "1", IsAdmin: true})
	assert.NoError(t, handler.Proxy(c))

	// same status, but the body is rewrapped in the gateway envelope
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var response map[string]string
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "db down", response["error"])
}

func TestProxyHandler_UnreachableUpstreamIsOpaque502(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockGatewayUC(ctrl)
	handler := NewProxyHandler(mockUC, models.TargetTools)

	mockUC.EXPECT().
		Forward(gomock.Any(), gomock.Any(), models.TargetTools, gomock.Any()).
		Return(nil, models.ErrUpstreamUnreachable)

	rec, c := proxyTestContext(http.MethodGet, "/mcp/tools", nil, &models.Principal{ID: "1"})
	assert.NoError(t, handler.Proxy(c))

	assert.Equal(t, http.StatusBadGateway, rec.Code)

	var response map[string]string
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	// no internal address or transport detail leaks to the caller
	assert.Equal(t, "upstream service unavailable", response["error"])
}

func TestProxyHandler_BodyStreamPassedThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockGatewayUC(ctrl)
	handler := NewProxyHandler(mockUC, models.TargetBackend)

	sent := `{"name":"renamed"}`
	mockUC.EXPECT().
		Forward(gomock.Any(), gomock.Any(), models.TargetBackend, gomock.Any()).
		DoAndReturn(func(_ interface{}, _ *models.Principal, _ models.UpstreamTarget, env *models.ProxyEnvelope) (*models.UpstreamResponse, error) {
			got, err := io.ReadAll(env.Body)
			assert.NoError(t, err)
			assert.Equal(t, sent, string(got))
			assert.Equal(t, echo.MIMEApplicationJSON, env.ContentType)
			return &models.UpstreamResponse{StatusCode: http.StatusOK, Body: []byte(`{}`)}, nil
		})

	rec, c := proxyTestContext(http.MethodPut, "/profile/me", strings.NewReader(sent), &models.Principal{ID: "1"})
	c.Request().Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	assert.NoError(t, handler.Proxy(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProxyHandler_MissingPrincipalIsUnauthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no Forward expectation: the upstream must not be contacted
	handler := NewProxyHandler(mocks.NewMockGatewayUC(ctrl), models.TargetBackend)

	rec, c := proxyTestContext(http.MethodGet, "/profile/me", nil, nil)
	assert.NoError(t, handler.Proxy(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProxyHandler_AdminDenialNeverReachesUpstream(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockGatewayUC(ctrl)
	handler := NewProxyHandler(mockUC, models.TargetBackend)

	principal := &models.Principal{ID: "3", IsAdmin: false, Permissions: []string{}}
	mockUC.EXPECT().RecordAdminDenial(principal, "/admin/users", gomock.Any())
	// no Forward expectation: denial short-circuits before any upstream call

	rec, c := proxyTestContext(http.MethodGet, "/admin/users", nil, principal)
	gate := middleware.RequireAdmin(mockUC.RecordAdminDenial)(handler.Proxy)
	assert.NoError(t, gate(c))

	assert.Equal(t, http.StatusForbidden, rec.Code)

	var response map[string]string
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "admin access required", response["error"])
}

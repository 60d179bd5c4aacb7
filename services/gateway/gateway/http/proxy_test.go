package gatewayhttp

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/docuhub/gateway/internal/pkg/models"
)

func newProxyTestClient(backendURL, toolsURL string) *ProxyClient {
	return NewProxyClient(models.ServicesConfig{
		Backend:      models.ServiceEndpoint{InternalURL: backendURL},
		Tools:        models.ServiceEndpoint{InternalURL: toolsURL},
		ProxyTimeout: 5,
	})
}

func TestProxyClient_Forward_RelaysMethodPathQueryAndBearer(t *testing.T) {
	var gotMethod, gotPath, gotQuery, gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotAuth = r.Header.Get("Authorization")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[]}`))
	}))
	defer server.Close()

	client := newProxyTestClient(server.URL, server.URL)
	resp, err := client.Forward(context.Background(), models.TargetBackend, "tok1", &models.ProxyEnvelope{
		Method:   http.MethodGet,
		Path:     "/documents",
		RawQuery: "page=2&sort=name",
	})

	assert.NoError(t, err)
	assert.Equal(t, http.MethodGet, gotMethod)
	assert.Equal(t, "/documents", gotPath)
	assert.Equal(t, "page=2&sort=name", gotQuery)
	assert.Equal(t, "Bearer tok1", gotAuth)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.ContentType)
	assert.Equal(t, []byte(`{"items":[]}`), resp.Body)
}

func TestProxyClient_Forward_MultipartBodyArrivesByteIdentical(t *testing.T) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "avatar.png")
	assert.NoError(t, err)
	_, _ = part.Write([]byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x01, 0x02})
	assert.NoError(t, writer.Close())
	sent := buf.Bytes()

	var received []byte
	var gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received, _ = io.ReadAll(r.Body)
		gotContentType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := newProxyTestClient(server.URL, server.URL)
	resp, err := client.Forward(context.Background(), models.TargetBackend, "tok1", &models.ProxyEnvelope{
		Method:      http.MethodPost,
		Path:        "/profile/me/avatar",
		ContentType: writer.FormDataContentType(),
		Body:        bytes.NewReader(sent),
	})

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, writer.FormDataContentType(), gotContentType)
	// the stream is passed through untouched, boundary and all
	assert.Equal(t, sent, received)
}

func TestProxyClient_Forward_UpstreamErrorBodyIsCaptured(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"detail":"db down"}`))
	}))
	defer server.Close()

	client := newProxyTestClient(server.URL, server.URL)
	resp, err := client.Forward(context.Background(), models.TargetBackend, "tok1", &models.ProxyEnvelope{
		Method: http.MethodGet,
		Path:   "/documents",
	})

	// an answered request is not a transport error, whatever the status
	assert.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, []byte(`{"detail":"db down"}`), resp.Body)
	assert.False(t, resp.Success())
}

func TestProxyClient_Forward_TargetsAreIsolated(t *testing.T) {
	backendHits, toolsHits := 0, 0
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		backendHits++
	}))
	defer backend.Close()
	tools := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		toolsHits++
	}))
	defer tools.Close()

	client := newProxyTestClient(backend.URL, tools.URL)

	_, err := client.Forward(context.Background(), models.TargetTools, "", &models.ProxyEnvelope{
		Method: http.MethodGet,
		Path:   "/mcp/tools",
	})
	assert.NoError(t, err)
	assert.Equal(t, 0, backendHits)
	assert.Equal(t, 1, toolsHits)
}

func TestProxyClient_Forward_UnreachableTarget(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := newProxyTestClient(server.URL, server.URL)
	resp, err := client.Forward(context.Background(), models.TargetBackend, "tok1", &models.ProxyEnvelope{
		Method: http.MethodGet,
		Path:   "/documents",
	})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, models.ErrUpstreamUnreachable)
}

func TestProxyClient_Forward_UnknownTarget(t *testing.T) {
	client := newProxyTestClient("http://backend.internal", "http://tools.internal")

	resp, err := client.Forward(context.Background(), models.UpstreamTarget("mystery"), "", &models.ProxyEnvelope{
		Method: http.MethodGet,
		Path:   "/",
	})

	assert.Nil(t, resp)
	assert.Error(t, err)
}

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/majorsigma/greenbasket-backend/models"
)

func TestRoutes_PublicEndpointsReachableWithoutToken(t *testing.T) {
	accounts := &mockAccountService{
		registerFn: func(_ context.Context, req models.RegisterRequest) (models.Account, error) {
			return models.Account{ID: "id-1", Email: req.Email}, nil
		},
	}
	auth := &mockAuthService{
		createTokenFn: func(_ context.Context, account models.Account) (models.Token, error) {
			return stubToken("signed", account.Email), nil
		},
	}

	h := newTestHandler(t, accounts, auth)
	router := h.Init()

	req := httptest.NewRequest(http.MethodPost, "/api/accounts/register", strings.NewReader(jsonBody(t, validRegisterRequest)))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestRoutes_ProtectedEndpointsRejectMissingToken(t *testing.T) {
	h := newTestHandler(t, &mockAccountService{}, &mockAuthService{})
	router := h.Init()

	endpoints := []struct {
		method string
		path   string
	}{
		{method: http.MethodGet, path: "/api/accounts"},
		{method: http.MethodPut, path: "/api/accounts/location"},
		{method: http.MethodPut, path: "/api/accounts/profile"},
		{method: http.MethodPut, path: "/api/accounts/online"},
		{method: http.MethodDelete, path: "/api/accounts/id-1"},
	}

	for _, e := range endpoints {
		t.Run(e.method+" "+e.path, func(t *testing.T) {
			req := httptest.NewRequest(e.method, e.path, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestRoutes_TraceIDHeaderIsSet(t *testing.T) {
	h := newTestHandler(t, &mockAccountService{}, &mockAuthService{})
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

func TestRoutes_TraceIDHeaderIsPropagated(t *testing.T) {
	h := newTestHandler(t, &mockAccountService{}, &mockAuthService{})
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "trace-42")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, "trace-42", rec.Header().Get(traceIDHeader))
}

func TestRoutes_UnsupportedMethodHidesRoute(t *testing.T) {
	h := newTestHandler(t, &mockAccountService{}, &mockAuthService{})
	router := h.Init()

	// the register route exists but only for POST
	req := httptest.NewRequest(http.MethodGet, "/api/accounts/register", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

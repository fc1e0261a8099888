package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/idea-brand-coach/internal/app"
	"github.com/MKhiriev/idea-brand-coach/internal/service"
	"github.com/MKhiriev/idea-brand-coach/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestInit_PublicRoutes(t *testing.T) {
	router, m := newTestRouter(t)
	m.appInfo.EXPECT().Health(gomock.Any()).Return(nil)
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")

	for _, path := range []string{"/api/health", "/api/version"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.NotEmpty(t, rec.Header().Get(traceIDHeader), "trace id выставляется на каждом ответе")
	}
}

func TestInit_ProtectedRoutes_RequireAuth(t *testing.T) {
	router, _ := newTestRouter(t)

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/fields"},
		{http.MethodDelete, "/api/fields"},
		{http.MethodGet, "/api/fields/avatar_goals"},
		{http.MethodPut, "/api/fields/avatar_goals"},
		{http.MethodGet, "/api/chat/sessions"},
		{http.MethodPost, "/api/chat/sessions"},
		{http.MethodGet, "/api/chat/sessions/s1"},
		{http.MethodPatch, "/api/chat/sessions/s1"},
		{http.MethodDelete, "/api/chat/sessions/s1"},
		{http.MethodGet, "/api/chat/sessions/s1/messages"},
		{http.MethodPost, "/api/chat/sessions/s1/messages"},
		{http.MethodDelete, "/api/chat/sessions/s1/messages"},
		{http.MethodPost, "/api/chat/title"},
	}

	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(rt.method, rt.path, nil))

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, app.MsgTokenIsExpiredOrInvalid, bodyText(rec))
		})
	}
}

func TestInit_ExpiredToken(t *testing.T) {
	h, m := newTestHandler(t, "")
	m.auth.EXPECT().ParseToken(gomock.Any(), "old").Return(models.Token{}, service.ErrTokenIsExpired)

	req := httptest.NewRequest(http.MethodGet, "/api/fields", nil)
	req.Header.Set("Authorization", "Bearer old")
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, app.MsgTokenIsExpired, bodyText(rec))
}

func TestInit_UnsupportedMethodIsNotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, tc := range []struct{ method, path string }{
		{http.MethodPost, "/api/health"},
		{http.MethodGet, "/api/user/login"},
		{http.MethodPost, "/api/fields/avatar_goals"},
	} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
		assert.Equal(t, http.StatusNotFound, rec.Code, tc.method+" "+tc.path)
	}
}

func TestInit_UnknownRoute(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/private-data", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

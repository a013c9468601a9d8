package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shanuka19697/LMS-sub001/internal/mocks"
)

func TestPageHandlers_CacheMissRendersAndStores(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mocks.NewMockPageCache(ctrl)

	cache.EXPECT().GetPage(gomock.Any(), "/dashboard").Return(nil, nil)
	cache.EXPECT().SetPage(gomock.Any(), "/dashboard", gomock.Any()).Return(nil)

	h := &PageHandlers{Cache: cache}
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	w := httptest.NewRecorder()
	h.Page("Dashboard")(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "miss", w.Header().Get("X-Page-Cache"))
	assert.Contains(t, w.Body.String(), "<title>Dashboard</title>")
	assert.Contains(t, w.Body.String(), `data-page="/dashboard"`)
}

func TestPageHandlers_CacheHitSkipsRender(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mocks.NewMockPageCache(ctrl)

	cached := []byte("<html>cached</html>")
	cache.EXPECT().GetPage(gomock.Any(), "/admin/lessons").Return(cached, nil)

	h := &PageHandlers{Cache: cache}
	req := httptest.NewRequest(http.MethodGet, "/admin/lessons", nil)
	w := httptest.NewRecorder()
	h.Page("Manage lessons")(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "hit", w.Header().Get("X-Page-Cache"))
	assert.Equal(t, cached, w.Body.Bytes())
}

func TestPageHandlers_CacheWriteFailureStillServes(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mocks.NewMockPageCache(ctrl)

	cache.EXPECT().GetPage(gomock.Any(), "/login").Return(nil, assert.AnError)
	cache.EXPECT().SetPage(gomock.Any(), "/login", gomock.Any()).Return(assert.AnError)

	h := &PageHandlers{Cache: cache}
	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	w := httptest.NewRecorder()
	h.Page("Sign in")(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "miss", w.Header().Get("X-Page-Cache"))
}

func TestPageHandlers_NoCacheConfigured(t *testing.T) {
	h := &PageHandlers{}
	req := httptest.NewRequest(http.MethodGet, "/register", nil)
	w := httptest.NewRecorder()
	h.Page("Create account")(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<title>Create account</title>")
}

package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockHealthChecker mocks the HealthChecker interface
type MockHealthChecker struct {
	mock.Mock
}

func (m *MockHealthChecker) CheckHealth(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestHandleHealthz(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()

	HandleHealthz().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"status":"ok"}`+"\n", w.Body.String())
}

func TestHandleReadyz(t *testing.T) {
	t.Run("Store reachable", func(t *testing.T) {
		checker := &MockHealthChecker{}
		checker.On("CheckHealth", mock.Anything).Return(nil)

		req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
		w := httptest.NewRecorder()
		HandleReadyz(checker).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"ok"`)
		checker.AssertExpectations(t)
	})

	t.Run("Store unreachable", func(t *testing.T) {
		ok := &MockHealthChecker{}
		ok.On("CheckHealth", mock.Anything).Return(nil)
		failing := &MockHealthChecker{}
		failing.On("CheckHealth", mock.Anything).Return(assert.AnError)

		req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
		w := httptest.NewRecorder()
		HandleReadyz(ok, failing).ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"unavailable"`)
		assert.NotContains(t, w.Body.String(), assert.AnError.Error())
	})
}

func TestHandleVersion(t *testing.T) {
	t.Setenv("VERSION", "1.2.3")

	req := httptest.NewRequest(http.MethodGet, "/version", nil)
	w := httptest.NewRecorder()
	HandleVersion().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"version":"1.2.3"`)
	assert.Contains(t, w.Body.String(), `"go_version":"go`)
}

func TestCurrentVersion_LdflagsWin(t *testing.T) {
	t.Setenv("VERSION", "from-env")
	prevVersion, prevCommit := Version, GitCommit
	t.Cleanup(func() { Version, GitCommit = prevVersion, prevCommit })

	Version, GitCommit = "2.0.0", "abc123"
	info := currentVersion()
	assert.Equal(t, "2.0.0", info.Version)
	assert.Equal(t, "abc123", info.GitCommit)
	assert.False(t, info.Modified)
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "b", firstNonEmpty("", "b", "c"))
	assert.Equal(t, "", firstNonEmpty("", ""))
}

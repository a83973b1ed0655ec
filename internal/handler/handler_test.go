package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GildedRose_Go/mocks"
)

// newTestRouter mounts the API handlers the way the server does, without auth
func newTestRouter(svc *mocks.MockInventoryService) http.Handler {
	inv := NewInventoryHandler(svc)
	ag := NewAgingHandler(svc, nil)

	r := chi.NewRouter()
	r.Get("/items", inv.HandleListItems)
	r.Post("/items", inv.HandleAddItem)
	r.Get("/items/{id}", inv.HandleGetItem)
	r.Delete("/items/{id}", inv.HandleRemoveItem)
	r.Post("/aging/advance", ag.HandleAdvance)
	r.Get("/aging/reports", ag.HandleListReports)
	r.Get("/aging/reports/{day}", ag.HandleGetReport)
	r.Get("/aging/day", ag.HandleCurrentDay)
	return r
}

func doRequest(t *testing.T, h http.Handler, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewBuffer(data)
	}

	req := httptest.NewRequest(method, target, reader)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

package menuboard

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lunchboard-backend/lib/menus"
	"lunchboard-backend/lib/telemetry"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

type ack struct {
	Status string `json:"status"`
	Cause  string `json:"cause"`
}

func postAdd(t *testing.T, mux *http.ServeMux, body string) ack {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/add", strings.NewReader(body))
	req.Header.Set("content-type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var response ack
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	return response
}

func TestAddThenMenus(t *testing.T) {
	cleanup := telemetry.SetupForTesting("test:services/menuboard")
	defer cleanup()

	mux := NewMux(setupStore(t))

	encoded, err := json.Marshal(storedBatch)
	require.NoError(t, err)

	response := postAdd(t, mux, string(encoded))
	require.Equal(t, "success", response.Status)

	req := httptest.NewRequest(http.MethodGet, "/menus?date=2016-04-12", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var batch menus.MenuBatch
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &batch))
	diff := cmp.Diff(storedBatch, batch)
	if diff != "" {
		t.Fatal(diff)
	}
}

func TestAddInvalidJson(t *testing.T) {
	cleanup := telemetry.SetupForTesting("test:services/menuboard")
	defer cleanup()

	mux := NewMux(setupStore(t))

	response := postAdd(t, mux, `{"this is": not json`)
	require.Equal(t, "error", response.Status)
	require.Equal(t, "invalid json", response.Cause)
}

func TestAddEmptyBatch(t *testing.T) {
	cleanup := telemetry.SetupForTesting("test:services/menuboard")
	defer cleanup()

	mux := NewMux(setupStore(t))

	response := postAdd(t, mux, `[]`)
	require.Equal(t, "error", response.Status)
	require.Equal(t, "insert error", response.Cause)
}

func TestMenusMissRendersEmptyList(t *testing.T) {
	cleanup := telemetry.SetupForTesting("test:services/menuboard")
	defer cleanup()

	mux := NewMux(setupStore(t))

	req := httptest.NewRequest(http.MethodGet, "/menus?date=2016-04-11", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestMenusRejectsMalformedDate(t *testing.T) {
	cleanup := telemetry.SetupForTesting("test:services/menuboard")
	defer cleanup()

	mux := NewMux(setupStore(t))

	req := httptest.NewRequest(http.MethodGet, "/menus?date=11.4.2016", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

package scheduling

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aac-tools/aac-mcp-server/pkg/client/aac"
	"github.com/aac-tools/aac-mcp-server/pkg/config"
)

// newTestClient builds a v4 client backed by a test server
func newTestClient(t *testing.T, handler http.HandlerFunc) *aac.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return aac.NewClient(&config.StaticConfig{APIURL: srv.URL, APIToken: "test-token"})
}

// decodeError unwraps the error envelope produced on a failure path
func decodeError(t *testing.T, result string) string {
	t.Helper()
	var envelope map[string]string
	require.NoError(t, json.Unmarshal([]byte(result), &envelope))
	return envelope["error"]
}

func TestGetScheduleMissingParameter(t *testing.T) {
	result, err := getScheduleHandler(nil, map[string]interface{}{})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"error\": \"schedule_id is required\"\n}", result)
}

func TestGetScheduleFlattensTypedView(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v4/schedules/s1", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		w.Write([]byte(`{"name": "Nightly load", "enabled": false}`))
	})

	result, err := getScheduleHandler(client, map[string]interface{}{"schedule_id": "s1"})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"enabled\": false,\n  \"name\": \"Nightly load\"\n}", result)
}

func TestGetScheduleNotFoundRendersNull(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	result, err := getScheduleHandler(client, map[string]interface{}{"schedule_id": "missing"})
	require.NoError(t, err)
	assert.Equal(t, "null", result)
}

func TestListSchedulesBackendFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	})

	result, err := listSchedulesHandler(client, map[string]interface{}{})
	require.NoError(t, err)
	assert.Contains(t, decodeError(t, result), "Error listing schedules: ")
}

func TestCreateScheduleMissingData(t *testing.T) {
	result, err := createScheduleHandler(nil, map[string]interface{}{})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"error\": \"schedule_data is required\"\n}", result)
}

func TestCreateScheduleDropsUnknownKeys(t *testing.T) {
	var body map[string]interface{}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Write([]byte(`{"id": "s9"}`))
	})

	result, err := createScheduleHandler(client, map[string]interface{}{
		"schedule_data": map[string]interface{}{
			"name":       "Hourly sync",
			"bogusField": "ignored",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"id\": \"s9\"\n}", result)
	assert.Equal(t, "Hourly sync", body["name"])
	assert.NotContains(t, body, "bogusField")
}

func TestDeleteScheduleEnabledRefused(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("unexpected %s request after refused delete", r.Method)
		}
		w.Write([]byte(`{"id": "s1", "enabled": true}`))
	})

	result, err := deleteScheduleHandler(client, map[string]interface{}{"schedule_id": "s1"})
	require.NoError(t, err)
	assert.Equal(t, "Schedule s1 is currently enabled and cannot be deleted", decodeError(t, result))
}

func TestDeleteScheduleDisabledProceeds(t *testing.T) {
	deleted := false
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			w.Write([]byte(`{"id": "s1", "enabled": false}`))
		case http.MethodDelete:
			deleted = true
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Errorf("unexpected %s request", r.Method)
		}
	})

	result, err := deleteScheduleHandler(client, map[string]interface{}{"schedule_id": "s1"})
	require.NoError(t, err)
	assert.Equal(t, "null", result)
	assert.True(t, deleted)
}

func TestDeleteScheduleNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("unexpected %s request for missing schedule", r.Method)
		}
		w.WriteHeader(http.StatusNotFound)
	})

	result, err := deleteScheduleHandler(client, map[string]interface{}{"schedule_id": "ghost"})
	require.NoError(t, err)
	assert.Equal(t, "Schedule ghost not found", decodeError(t, result))
}

func TestEnableScheduleNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	result, err := enableScheduleHandler(client, map[string]interface{}{"schedule_id": "ghost"})
	require.NoError(t, err)
	assert.Equal(t, "Schedule ghost not found", decodeError(t, result))
}

func TestDisableScheduleSucceeds(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			w.Write([]byte(`{"id": "s2", "enabled": true}`))
		case r.Method == http.MethodPost && r.URL.Path == "/v4/schedules/s2/disable":
			w.Write([]byte(`{"id": "s2", "enabled": false}`))
		default:
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
	})

	result, err := disableScheduleHandler(client, map[string]interface{}{"schedule_id": "s2"})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"enabled\": false,\n  \"id\": \"s2\"\n}", result)
}

func TestCountSchedules(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v4/schedules/count", r.URL.Path)
		w.Write([]byte(`{"count": 3}`))
	})

	result, err := countSchedulesHandler(client, map[string]interface{}{})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"count\": 3\n}", result)
}

package data

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aac-tools/aac-mcp-server/pkg/client/legacy"
	"github.com/aac-tools/aac-mcp-server/pkg/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *legacy.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return legacy.NewClient(&config.StaticConfig{APIURL: srv.URL, APIToken: "test-token"})
}

func decodeError(t *testing.T, result string) string {
	t.Helper()
	var envelope map[string]string
	require.NoError(t, json.Unmarshal([]byte(result), &envelope))
	return envelope["error"]
}

func TestListDatasetsUsesLibraryDefaults(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/importedDatasets/library", r.URL.Path)
		assert.Equal(t, "all", r.URL.Query().Get("datasetsFilter"))
		assert.Equal(t, "all", r.URL.Query().Get("ownershipFilter"))
		assert.Equal(t, "false", r.URL.Query().Get("schematized"))
		assert.Equal(t, "100", r.URL.Query().Get("limit"))
		w.Write([]byte(`{"data": [{"id": "d1"}]}`))
	})

	result, err := listDatasetsHandler(client, map[string]interface{}{})
	require.NoError(t, err)
	assert.Contains(t, result, "\"id\": \"d1\"")
}

func TestGetDatasetMissingParameter(t *testing.T) {
	result, err := getDatasetHandler(nil, map[string]interface{}{})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"error\": \"dataset_id is required\"\n}", result)
}

func TestGetConnection(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/connections/c1", r.URL.Path)
		w.Write([]byte(`{"id": "c1", "type": "postgres"}`))
	})

	result, err := getConnectionHandler(client, map[string]interface{}{"connection_id": "c1"})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"id\": \"c1\",\n  \"type\": \"postgres\"\n}", result)
}

func TestGetConnectionStatusNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v3/connections/ghost" {
			t.Errorf("status probe should not fire for a missing connection, got %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusNotFound)
	})

	result, err := getConnectionStatusHandler(client, map[string]interface{}{"connection_id": "ghost"})
	require.NoError(t, err)
	assert.Equal(t, "Connection ghost not found", decodeError(t, result))
}

func TestGetConnectionStatusProbesAfterExistenceCheck(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v3/connections/c1":
			w.Write([]byte(`{"id": "c1"}`))
		case "/v3/connections/c1/status":
			w.Write([]byte(`{"healthy": true}`))
		default:
			t.Errorf("unexpected request to %s", r.URL.Path)
		}
	})

	result, err := getConnectionStatusHandler(client, map[string]interface{}{"connection_id": "c1"})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"healthy\": true\n}", result)
}

func TestListPublicationsCapped(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/publications", r.URL.Path)
		assert.Equal(t, "100", r.URL.Query().Get("limit"))
		w.Write([]byte(`{"data": []}`))
	})

	result, err := listPublicationsHandler(client, map[string]interface{}{})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"data\": []\n}", result)
}

func TestDeletePublicationNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("delete should not fire for a missing publication")
		}
		w.WriteHeader(http.StatusNotFound)
	})

	result, err := deletePublicationHandler(client, map[string]interface{}{"publication_id": "ghost"})
	require.NoError(t, err)
	assert.Equal(t, "Publication ghost not found", decodeError(t, result))
}

func TestDeletePublicationProceeds(t *testing.T) {
	deleted := false
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			w.Write([]byte(`{"id": "pub1"}`))
		case http.MethodDelete:
			deleted = true
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Errorf("unexpected %s request", r.Method)
		}
	})

	result, err := deletePublicationHandler(client, map[string]interface{}{"publication_id": "pub1"})
	require.NoError(t, err)
	assert.Equal(t, "null", result)
	assert.True(t, deleted)
}

func TestGetInputsForWrangledDatasetNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v3/wrangledDatasets/ghost" {
			t.Errorf("inputs read should not fire for a missing wrangled dataset, got %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusNotFound)
	})

	result, err := getInputsForWrangledDatasetHandler(client, map[string]interface{}{"wrangled_dataset_id": "ghost"})
	require.NoError(t, err)
	assert.Equal(t, "Wrangled dataset ghost not found", decodeError(t, result))
}

func TestGetInputsForWrangledDataset(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v3/wrangledDatasets/wd1":
			w.Write([]byte(`{"id": "wd1"}`))
		case "/v3/wrangledDatasets/wd1/inputs":
			w.Write([]byte(`{"data": [{"id": "d4"}]}`))
		default:
			t.Errorf("unexpected request to %s", r.URL.Path)
		}
	})

	result, err := getInputsForWrangledDatasetHandler(client, map[string]interface{}{"wrangled_dataset_id": "wd1"})
	require.NoError(t, err)
	assert.Contains(t, result, "\"id\": \"d4\"")
}

func TestGetWrangledDatasetMissingParameter(t *testing.T) {
	result, err := getWrangledDatasetHandler(nil, map[string]interface{}{})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"error\": \"wrangled_dataset_id is required\"\n}", result)
}

package aac

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aac-tools/aac-mcp-server/pkg/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(&config.StaticConfig{APIURL: srv.URL, APIToken: "test-token"})
}

func TestDoSetsAuthHeaders(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-token" {
			t.Errorf("missing bearer token, got %q", r.Header.Get("Authorization"))
		}
		if r.Header.Get("Accept") != "application/json" {
			t.Errorf("missing accept header, got %q", r.Header.Get("Accept"))
		}
		w.Write([]byte(`{"data": []}`))
	})

	if _, err := client.ListSchedules(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDoNotFoundYieldsNil(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	res, err := client.GetWorkspace(context.Background(), "ghost")
	if err != nil {
		t.Fatalf("404 should not be an error, got %v", err)
	}
	if res != nil {
		t.Errorf("404 should yield a nil resource, got %v", res)
	}
}

func TestDoEmptyBodyYieldsNil(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	res, err := client.DeleteSchedule(context.Background(), "s1")
	if err != nil {
		t.Fatalf("empty body should not be an error, got %v", err)
	}
	if res != nil {
		t.Errorf("empty body should yield a nil resource, got %v", res)
	}
}

func TestDoErrorStatusIncludesBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message": "invalid trigger"}`))
	})

	_, err := client.CreateSchedule(context.Background(), &ScheduleCreateRequest{Name: "x"})
	if err == nil {
		t.Fatal("expected an error for a 400 response")
	}
	if !strings.Contains(err.Error(), "invalid trigger") {
		t.Errorf("error should carry the response body, got %v", err)
	}
}

func TestGetScheduleTypesEnabledFlag(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"enabled": true, "name": "Nightly"}`))
	})

	schedule, err := client.GetSchedule(context.Background(), "s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if schedule == nil {
		t.Fatal("expected a schedule")
	}
	if !schedule.Enabled {
		t.Error("enabled flag should be decoded")
	}
	if schedule.ID != "s1" {
		t.Errorf("expected ID s1, got %s", schedule.ID)
	}

	plain, ok := schedule.ToPlainValue().(Resource)
	if !ok {
		t.Fatal("plain value should be the raw resource")
	}
	if plain["name"] != "Nightly" {
		t.Errorf("raw payload should be preserved, got %v", plain)
	}
}

func TestGetScheduleNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	schedule, err := client.GetSchedule(context.Background(), "ghost")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if schedule != nil {
		t.Errorf("expected nil schedule, got %v", schedule)
	}
}

func TestUpdateScheduleSendsKnownFieldsOnly(t *testing.T) {
	var body map[string]interface{}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("expected PUT, got %s", r.Method)
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		w.Write([]byte(`{"id": "s1"}`))
	})

	req := ScheduleUpdateRequestFromMap(map[string]interface{}{
		"name":    "Renamed",
		"mystery": "dropped",
	})
	if _, err := client.UpdateSchedule(context.Background(), req, "s1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body["name"] != "Renamed" {
		t.Errorf("known field should be sent, got %v", body)
	}
	if _, ok := body["mystery"]; ok {
		t.Error("unknown fields should be dropped from the request body")
	}
}

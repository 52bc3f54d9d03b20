package gameapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClient_FetchState(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/game" {
			t.Errorf("request path = %s, want /api/game", r.URL.Path)
		}
		if got := r.URL.Query().Get("id"); got != "g123abc" {
			t.Errorf("request id = %s, want g123abc", got)
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"phase":"action","activePlayer":"red","players":[{"color":"red","name":"Nick"},{"color":"blue","name":"Tess"}]}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	snapshot, err := client.FetchState(context.Background(), "g123abc")
	if err != nil {
		t.Fatalf("FetchState() error = %v, want nil", err)
	}
	if snapshot.Phase != "action" {
		t.Errorf("FetchState() phase = %s, want action", snapshot.Phase)
	}
	if snapshot.ActivePlayer != "red" {
		t.Errorf("FetchState() activePlayer = %s, want red", snapshot.ActivePlayer)
	}
	if len(snapshot.Players) != 2 {
		t.Errorf("FetchState() players count = %d, want 2", len(snapshot.Players))
	}
}

func TestClient_FetchState_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	if _, err := client.FetchState(context.Background(), "g123abc"); err == nil {
		t.Error("FetchState() expected error on status 500, got nil")
	}
}

func TestClient_FetchState_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, `{"phase":`)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	if _, err := client.FetchState(context.Background(), "g123abc"); err == nil {
		t.Error("FetchState() expected error on malformed body, got nil")
	}
}

func TestClient_FetchState_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, `{}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if _, err := client.FetchState(ctx, "g123abc"); err == nil {
		t.Error("FetchState() expected error on cancelled context, got nil")
	}
}

func TestNewClient_Defaults(t *testing.T) {
	client := NewClient("", 0)
	if client.baseURL != DefaultBaseURL {
		t.Errorf("NewClient() baseURL = %s, want %s", client.baseURL, DefaultBaseURL)
	}
	if client.hc.Timeout != DefaultTimeout {
		t.Errorf("NewClient() timeout = %v, want %v", client.hc.Timeout, DefaultTimeout)
	}
}

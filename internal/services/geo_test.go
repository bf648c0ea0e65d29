package services

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGeoLookupSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/203.0.113.7" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		fmt.Fprint(w, `{"status":"success","country":"Deutschland","city":"Berlin"}`)
	}))
	defer server.Close()

	svc := NewGeoService(server.URL)
	country, city, err := svc.Lookup("203.0.113.7")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if country != "Deutschland" || city != "Berlin" {
		t.Errorf("Lookup = (%q, %q), want (Deutschland, Berlin)", country, city)
	}
}

func TestGeoLookupFailureStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status":"fail","message":"private range"}`)
	}))
	defer server.Close()

	svc := NewGeoService(server.URL)
	if _, _, err := svc.Lookup("192.168.1.1"); err == nil {
		t.Error("Lookup succeeded for a failed lookup response")
	}
}

func TestGeoLookupServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	svc := NewGeoService(server.URL)
	if _, _, err := svc.Lookup("203.0.113.7"); err == nil {
		t.Error("Lookup succeeded despite a 500 from the API")
	}
}

func TestGeoLookupNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // Closed immediately: connection refused

	svc := NewGeoService(server.URL)
	if _, _, err := svc.Lookup("203.0.113.7"); err == nil {
		t.Error("Lookup succeeded despite a network error")
	}
}

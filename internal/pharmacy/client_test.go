package pharmacy

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNearby(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("data")
		w.Write([]byte(`{"elements":[
			{"id":101,"lat":55.75,"lon":37.62,"tags":{"name":"Аптека №1"}},
			{"id":102,"lat":55.76,"lon":37.63,"tags":{}}
		]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	pharmacies, err := client.Nearby(context.Background(), 55.7558, 37.6173, 1000)
	if err != nil {
		t.Fatalf("Nearby() failed: %v", err)
	}

	if !strings.Contains(gotQuery, "node[amenity=pharmacy]") {
		t.Errorf("query should select pharmacy nodes, got %q", gotQuery)
	}
	if !strings.Contains(gotQuery, "around:1000") {
		t.Errorf("query should carry the radius, got %q", gotQuery)
	}

	if len(pharmacies) != 2 {
		t.Fatalf("expected 2 pharmacies, got %d", len(pharmacies))
	}
	if pharmacies[0].ID != "101" || pharmacies[0].Name != "Аптека №1" {
		t.Errorf("unexpected first pharmacy: %+v", pharmacies[0])
	}
	// Unnamed nodes get the generic label
	if pharmacies[1].Name != "Аптека" {
		t.Errorf("unnamed node should default to Аптека, got %q", pharmacies[1].Name)
	}
}

func TestDirectionsURL(t *testing.T) {
	p := Pharmacy{ID: "101", Name: "Аптека №1", Lat: 55.75, Lon: 37.62}
	got := p.DirectionsURL()
	want := "https://www.google.com/maps/dir/?api=1&destination=55.750000%2C37.620000"
	if got != want {
		t.Errorf("DirectionsURL() = %q, want %q", got, want)
	}
}

func TestNearbyValidation(t *testing.T) {
	client := NewClient("http://unused")
	ctx := context.Background()

	if _, err := client.Nearby(ctx, 91, 0, 1000); err == nil {
		t.Error("expected error for latitude out of range")
	}
	if _, err := client.Nearby(ctx, 0, 181, 1000); err == nil {
		t.Error("expected error for longitude out of range")
	}
	if _, err := client.Nearby(ctx, 55.75, 37.62, 0); err == nil {
		t.Error("expected error for non-positive radius")
	}
}

func TestNearbyServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusGatewayTimeout)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	if _, err := client.Nearby(context.Background(), 55.75, 37.62, 500); err == nil {
		t.Error("expected error on non-200 response")
	}
}

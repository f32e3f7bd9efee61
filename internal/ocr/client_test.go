package ocr

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRecognize(t *testing.T) {
	var gotToken, gotFilename string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("expected multipart form: %v", err)
		}
		gotToken = r.FormValue("token")
		if _, header, err := r.FormFile("qrfile"); err == nil {
			gotFilename = header.Filename
		} else {
			t.Errorf("expected qrfile part: %v", err)
		}

		w.Write([]byte(`{"data":{"json":{"items":[
			{"name":"Ибупрофен 200мг","quantity":1,"price":15900},
			{"name":"Витамин D3","quantity":2,"price":45050}
		]}}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "api-token")
	items, err := client.Recognize(context.Background(), "receipt.jpg", strings.NewReader("fake image"))
	if err != nil {
		t.Fatalf("Recognize() failed: %v", err)
	}

	if gotToken != "api-token" {
		t.Errorf("token field = %q", gotToken)
	}
	if gotFilename != "receipt.jpg" {
		t.Errorf("filename = %q", gotFilename)
	}

	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	// Prices arrive in kopecks
	if items[0].Price != 159.00 {
		t.Errorf("price = %v, want 159", items[0].Price)
	}
	if items[1].Price != 450.50 {
		t.Errorf("price = %v, want 450.5", items[1].Price)
	}
	if items[1].Quantity != 2 {
		t.Errorf("quantity = %v, want 2", items[1].Quantity)
	}
}

func TestRecognizeWithoutToken(t *testing.T) {
	client := NewClient("http://unused", "")
	if _, err := client.Recognize(context.Background(), "receipt.jpg", strings.NewReader("x")); err == nil {
		t.Error("expected error without a token")
	}
}

func TestRecognizeEmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"json":{"items":[]}}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "api-token")
	if _, err := client.Recognize(context.Background(), "receipt.jpg", strings.NewReader("x")); err == nil {
		t.Error("expected error for unrecognizable receipt")
	}
}

func TestRecognizeServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "api-token")
	_, err := client.Recognize(context.Background(), "receipt.jpg", strings.NewReader("x"))
	if err == nil {
		t.Fatal("expected error on non-200 response")
	}
	if !strings.Contains(err.Error(), "429") {
		t.Errorf("error should mention the status code: %v", err)
	}
}

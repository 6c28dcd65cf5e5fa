package vision_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"proof-timeline/pkg/vision"
)

func TestExchangeToken(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if r.Method != http.MethodPost || q.Get("grant_type") != "client_credentials" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if q.Get("client_id") != "ak" || q.Get("client_secret") != "sk" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"invalid_client","error_description":"unknown client id"}`))
			return
		}
		w.Write([]byte(`{"access_token":"tok-1","expires_in":2592000}`))
	}))
	defer ts.Close()

	client := vision.New().WithTokenURL(ts.URL)

	t.Run("Success Flow", func(t *testing.T) {
		tok, err := client.ExchangeToken(context.Background(), "ak", "sk")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tok.AccessToken != "tok-1" {
			t.Errorf("unexpected token: %s", tok.AccessToken)
		}
		if time.Until(tok.Expiry) < 29*24*time.Hour {
			t.Errorf("unexpected expiry: %v", tok.Expiry)
		}
	})

	t.Run("Provider Error Flow", func(t *testing.T) {
		_, err := client.ExchangeToken(context.Background(), "ak", "bad")
		var apiErr *vision.APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected APIError, got %v", err)
		}
		if apiErr.Code != "invalid_client" || apiErr.Message != "unknown client id" {
			t.Errorf("unexpected api error: %+v", apiErr)
		}
	})

	t.Run("Transport Error Flow", func(t *testing.T) {
		_, err := vision.New().WithTokenURL("http://127.0.0.1:1").ExchangeToken(context.Background(), "ak", "sk")
		if !errors.Is(err, vision.ErrTransport) {
			t.Fatalf("expected ErrTransport, got %v", err)
		}
	})
}

func TestClassify(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/x-www-form-urlencoded" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		r.ParseForm()
		switch r.URL.Query().Get("access_token") {
		case "expired":
			w.Write([]byte(`{"error_code":110,"error_msg":"Access token invalid or no longer valid"}`))
			return
		case "500":
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if r.PostForm.Get("image") != "aGVsbG8=" || r.PostForm.Get("baike_num") != "0" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Write([]byte(`{"log_id":123,"result_num":2,"result":[{"keyword":"stove","score":0.91,"root":"goods"},{"keyword":"cup","score":0.2}]}`))
	}))
	defer ts.Close()

	client := vision.New().WithClassifyURL(ts.URL)
	extra := url.Values{"baike_num": {"0"}}

	t.Run("Success Flow", func(t *testing.T) {
		res, err := client.Classify(context.Background(), "tok", "aGVsbG8=", extra)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Result) != 2 || res.Result[0].Keyword != "stove" || res.Result[0].Score != 0.91 {
			t.Errorf("unexpected result: %+v", res.Result)
		}
		if len(res.Raw) == 0 {
			t.Errorf("expected raw payload to be kept")
		}
	})

	t.Run("In-payload Error Flow", func(t *testing.T) {
		_, err := client.Classify(context.Background(), "expired", "aGVsbG8=", extra)
		var apiErr *vision.APIError
		if !errors.As(err, &apiErr) || apiErr.Code != "110" {
			t.Fatalf("expected APIError 110, got %v", err)
		}
	})

	t.Run("Server Error Flow", func(t *testing.T) {
		_, err := client.Classify(context.Background(), "500", "aGVsbG8=", extra)
		var apiErr *vision.APIError
		if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusInternalServerError {
			t.Fatalf("expected 500 APIError, got %v", err)
		}
	})

	t.Run("Empty Image", func(t *testing.T) {
		if _, err := client.Classify(context.Background(), "tok", "", nil); err == nil {
			t.Fatalf("expected error for empty image")
		}
	})
}

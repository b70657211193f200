package identity

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/obradorhq/obrador/internal/config"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/sessions", func(w http.ResponseWriter, r *http.Request) {
		// The response must carry the JSON content type, or resty will not
		// decode it into the SetResult target.
		w.Header().Set("Content-Type", "application/json")
		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if body.Email != "ana@obrador.app" || body.Password != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]any{"error": map[string]any{"message": "INVALID_PASSWORD"}})
			return
		}
		_ = json.NewEncoder(w).Encode(Session{Token: "tok", UserID: "ana", Email: body.Email})
	})
	mux.HandleFunc("GET /v1/sessions/me", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Header.Get("Authorization") != "Bearer tok" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(Identity{UserID: "ana", Email: "ana@obrador.app"})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func testClient(t *testing.T) *APIClient {
	t.Helper()
	srv := testServer(t)
	return NewClient(config.IdentityConfig{
		BaseURL:        srv.URL,
		EmailDomain:    "obrador.app",
		TimeoutSeconds: 2,
	})
}

func TestSyntheticEmail(t *testing.T) {
	c := testClient(t)

	cases := map[string]string{
		"Ana":             "ana@obrador.app",
		"  BOB  ":         "bob@obrador.app",
		"carla@gmail.com": "carla@obrador.app",
	}
	for in, want := range cases {
		if got := c.SyntheticEmail(in); got != want {
			t.Errorf("SyntheticEmail(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSignIn(t *testing.T) {
	c := testClient(t)

	session, err := c.SignIn(context.Background(), "Ana", "secret")
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if session.Token != "tok" || session.UserID != "ana" {
		t.Fatalf("unexpected session %+v", session)
	}

	if _, err := c.SignIn(context.Background(), "Ana", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := c.SignIn(context.Background(), "", ""); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for empty input, got %v", err)
	}
}

func TestVerify(t *testing.T) {
	c := testClient(t)

	who, err := c.Verify(context.Background(), "tok")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if who.UserID != "ana" {
		t.Fatalf("unexpected identity %+v", who)
	}

	if _, err := c.Verify(context.Background(), "expired"); !errors.Is(err, ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession, got %v", err)
	}
	if _, err := c.Verify(context.Background(), ""); !errors.Is(err, ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession for empty token, got %v", err)
	}
}

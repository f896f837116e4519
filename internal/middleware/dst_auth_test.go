package middleware

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fhuszti/studio-ms-go/internal/api_context"
	"github.com/fhuszti/studio-ms-go/internal/handler/api"
	"github.com/golang-jwt/jwt/v4"
)

const editorID = "0b7c6a52-3f0e-4d3b-9a57-2f1f3c9d8e41"

func newKey(t *testing.T) (*rsa.PrivateKey, string) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		t.Fatalf("marshal public key: %v", err)
	}
	return key, string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}))
}

// editorClaims is a token core would mint for a studio editor.
func editorClaims() jwt.MapClaims {
	now := time.Now()
	return jwt.MapClaims{
		"iss":   Issuer,
		"aud":   Audience,
		"sub":   editorID,
		"iat":   now.Unix(),
		"exp":   now.Add(2 * time.Minute).Unix(),
		"roles": []string{"editor", "dst"},
	}
}

func TestWithDSTAuth(t *testing.T) {
	key, pubPEM := newKey(t)
	otherKey, _ := newKey(t)
	auth := WithDSTAuth(pubPEM)

	rs256 := func(change func(jwt.MapClaims)) func(t *testing.T) string {
		return func(t *testing.T) string {
			c := editorClaims()
			if change != nil {
				change(c)
			}
			tok, err := jwt.NewWithClaims(jwt.SigningMethodRS256, c).SignedString(key)
			if err != nil {
				t.Fatalf("sign: %v", err)
			}
			return "Bearer " + tok
		}
	}
	raw := func(h string) func(*testing.T) string { return func(*testing.T) string { return h } }

	tests := []struct {
		name    string
		header  func(t *testing.T) string
		wantErr string
	}{
		{"missing header", raw(""), "missing bearer token"},
		{"basic auth", raw("Basic ZWRpdG9yOnB3"), "missing bearer token"},
		{"empty bearer", raw("Bearer "), "missing bearer token"},
		{"garbage token", raw("Bearer not.a.jwt"), "unauthorized"},
		{"signed by another key", func(t *testing.T) string {
			tok, err := jwt.NewWithClaims(jwt.SigningMethodRS256, editorClaims()).SignedString(otherKey)
			if err != nil {
				t.Fatalf("sign: %v", err)
			}
			return "Bearer " + tok
		}, "unauthorized"},
		{"hmac token", func(t *testing.T) string {
			tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, editorClaims()).SignedString([]byte("shared"))
			if err != nil {
				t.Fatalf("sign: %v", err)
			}
			return "Bearer " + tok
		}, "unauthorized"},
		{"issued by billing", rs256(func(c jwt.MapClaims) { c["iss"] = "billing" }), "bad issuer"},
		{"minted for the medias service", rs256(func(c jwt.MapClaims) { c["aud"] = "medias" }), "bad audience"},
		{"no audience", rs256(func(c jwt.MapClaims) { delete(c, "aud") }), "bad audience"},
		{"studio among audiences", rs256(func(c jwt.MapClaims) { c["aud"] = []string{"medias", Audience} }), ""},
		{"expired", rs256(func(c jwt.MapClaims) { c["exp"] = time.Now().Add(-time.Second).Unix() }), "token expired"},
		{"no expiry", rs256(func(c jwt.MapClaims) { delete(c, "exp") }), "token expired"},
		{"clock skew within leeway", rs256(func(c jwt.MapClaims) { c["iat"] = time.Now().Add(10 * time.Second).Unix() }), ""},
		{"issued in the future", rs256(func(c jwt.MapClaims) { c["iat"] = time.Now().Add(2 * time.Minute).Unix() }), "invalid iat"},
		{"missing sub", rs256(func(c jwt.MapClaims) { delete(c, "sub") }), "missing sub"},
		{"sub is a username", rs256(func(c jwt.MapClaims) { c["sub"] = "user-123" }), "invalid sub"},
		{"editor token", rs256(nil), ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var gotUser string
			var gotRoles []string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if id, ok := api_context.AuthUserIDFromContext(r.Context()); ok {
					gotUser = id.String()
				}
				gotRoles, _ = api_context.AuthRolesFromContext(r.Context())
				w.WriteHeader(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodPost, "/projects", nil)
			if h := tc.header(t); h != "" {
				req.Header.Set("Authorization", h)
			}
			rec := httptest.NewRecorder()
			auth(next).ServeHTTP(rec, req)

			if tc.wantErr != "" {
				if rec.Code != http.StatusUnauthorized {
					t.Fatalf("status = %d; want 401", rec.Code)
				}
				var body api.ErrorResponse
				if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
					t.Fatalf("decode body: %v", err)
				}
				if body.Error != tc.wantErr {
					t.Errorf("error = %q; want %q", body.Error, tc.wantErr)
				}
				if gotUser != "" {
					t.Error("next handler reached")
				}
				return
			}

			if rec.Code != http.StatusNoContent {
				t.Fatalf("status = %d; want 204 (body %s)", rec.Code, rec.Body.String())
			}
			if gotUser != editorID {
				t.Errorf("user id = %q; want %q", gotUser, editorID)
			}
			if strings.Join(gotRoles, ",") != "editor,dst" {
				t.Errorf("roles = %v; want [editor dst]", gotRoles)
			}
		})
	}
}

func TestWithDSTAuth_NoKeyPassesThrough(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		if _, ok := api_context.AuthUserIDFromContext(r.Context()); ok {
			t.Error("user id set without authentication")
		}
	})
	rec := httptest.NewRecorder()
	WithDSTAuth("")(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/projects", nil))
	if !called {
		t.Error("next handler not reached")
	}
}

func TestWithDSTAuth_InvalidKeyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for a malformed public key")
		}
	}()
	WithDSTAuth("-----BEGIN PUBLIC KEY-----\nnope\n-----END PUBLIC KEY-----")
}

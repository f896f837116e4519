package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/fhuszti/studio-ms-go/internal/api_context"
	"github.com/fhuszti/studio-ms-go/internal/handler/api"
	"github.com/fhuszti/studio-ms-go/internal/uuid"
	"github.com/golang-jwt/jwt/v4"
)

const (
	// Issuer is the "iss" claim expected on studio tokens.
	Issuer = "core"
	// Audience is the "aud" claim expected on studio tokens.
	Audience = "studio"

	iatLeeway = 30 * time.Second
)

var (
	errBadIssuer   = errors.New("bad issuer")
	errBadAudience = errors.New("bad audience")
	errExpired     = errors.New("token expired")
	errFutureIAT   = errors.New("invalid iat")
)

// studioClaims is the payload of a studio DST.
type studioClaims struct {
	jwt.RegisteredClaims
	Roles []string `json:"roles"`
}

// Valid runs while the token is parsed. Issue times may run ahead of the
// local clock by iatLeeway.
func (c studioClaims) Valid() error {
	now := time.Now()
	switch {
	case !c.VerifyIssuer(Issuer, true):
		return errBadIssuer
	case !c.VerifyAudience(Audience, true):
		return errBadAudience
	case !c.VerifyExpiresAt(now, true):
		return errExpired
	case !c.VerifyIssuedAt(now.Add(iatLeeway), false):
		return errFutureIAT
	}
	return nil
}

// WithDSTAuth validates a short-lived RS256 Bearer JWT issued by core for the
// studio. The "sub" claim must be a UUID; it becomes the authenticated user
// id and "roles" the user's roles.
func WithDSTAuth(jwtPublicKeyPEM string) func(http.Handler) http.Handler {
	// Passthrough if no public key is provided
	if jwtPublicKeyPEM == "" {
		return func(next http.Handler) http.Handler { return next }
	}

	pubKey, err := jwt.ParseRSAPublicKeyFromPEM([]byte(jwtPublicKeyPEM))
	if err != nil {
		panic(fmt.Sprintf("invalid Core RSA public key: %v", err))
	}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Name}))
	keyFunc := func(*jwt.Token) (interface{}, error) { return pubKey, nil }

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || raw == "" {
				api.WriteError(w, http.StatusUnauthorized, "missing bearer token", nil)
				return
			}

			var claims studioClaims
			if _, err := parser.ParseWithClaims(raw, &claims, keyFunc); err != nil {
				api.WriteError(w, http.StatusUnauthorized, rejection(err), err)
				return
			}

			if claims.Subject == "" {
				api.WriteError(w, http.StatusUnauthorized, "missing sub", nil)
				return
			}
			userID, err := uuid.Parse(claims.Subject)
			if err != nil {
				api.WriteError(w, http.StatusUnauthorized, "invalid sub", nil)
				return
			}

			ctx := context.WithValue(r.Context(), api_context.AuthUserIDKey, userID)
			ctx = context.WithValue(ctx, api_context.AuthRolesKey, claims.Roles)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// rejection is the message sent back for a token that failed to parse.
func rejection(err error) string {
	for _, known := range []error{errBadIssuer, errBadAudience, errExpired, errFutureIAT} {
		if errors.Is(err, known) {
			return known.Error()
		}
	}
	return "unauthorized"
}

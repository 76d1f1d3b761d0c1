// Package google verifies Google Sign-In ID tokens.
package google

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/heartmarshall/calorie-backend/internal/auth"
	"github.com/heartmarshall/calorie-backend/internal/domain"
)

// Made a variable for testing purposes
var tokeninfoURL = "https://oauth2.googleapis.com/tokeninfo"

// ErrInvalidToken is returned when Google rejects the ID token or the token
// does not carry a verified email.
var ErrInvalidToken = fmt.Errorf("google: invalid id token: %w", domain.ErrUnauthorized)

// ErrUnavailable is returned when Google cannot be reached.
var ErrUnavailable = errors.New("google: unavailable")

// Verifier checks ID tokens against Google's tokeninfo endpoint.
type Verifier struct {
	clientID   string
	httpClient *http.Client
	log        *slog.Logger
}

// NewVerifier creates a Google ID token verifier. An empty clientID skips
// the audience check.
func NewVerifier(clientID string, logger *slog.Logger) *Verifier {
	return &Verifier{
		clientID:   clientID,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        logger.With("adapter", "google_signin"),
	}
}

// tokeninfoResponse is the subset of the tokeninfo payload we use. Google
// encodes booleans in it as strings.
type tokeninfoResponse struct {
	Sub           string `json:"sub"`
	Aud           string `json:"aud"`
	Email         string `json:"email"`
	EmailVerified string `json:"email_verified"`
	Name          string `json:"name"`
}

// VerifyIDToken returns the identity carried by idToken.
func (v *Verifier) VerifyIDToken(ctx context.Context, idToken string) (*auth.GoogleIdentity, error) {
	// Step 1: Ask Google about the token
	info, err := v.fetchTokeninfo(ctx, idToken)
	if err != nil {
		return nil, err
	}

	// Step 2: Check audience and email
	if v.clientID != "" && info.Aud != v.clientID {
		v.log.WarnContext(ctx, "google id token for another client", slog.String("aud", info.Aud))
		return nil, ErrInvalidToken
	}
	if info.Email == "" || info.EmailVerified == "false" {
		return nil, ErrInvalidToken
	}

	// Step 3: Map to identity
	identity := &auth.GoogleIdentity{Subject: info.Sub, Email: info.Email}
	if info.Name != "" {
		identity.Name = &info.Name
	}

	v.log.DebugContext(ctx, "google sign-in verified", slog.String("email", info.Email))
	return identity, nil
}

func (v *Verifier) fetchTokeninfo(ctx context.Context, idToken string) (*tokeninfoResponse, error) {
	u := tokeninfoURL + "?" + url.Values{"id_token": {idToken}}.Encode()

	resp, err := v.doWithRetry(ctx, func() (*http.Request, error) {
		return http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	})
	if err != nil {
		v.log.ErrorContext(ctx, "google tokeninfo failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnauthorized:
		return nil, ErrInvalidToken
	case resp.StatusCode != http.StatusOK:
		v.log.ErrorContext(ctx, "google tokeninfo failed", slog.Int("status", resp.StatusCode))
		return nil, ErrUnavailable
	}

	var info tokeninfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		v.log.ErrorContext(ctx, "google tokeninfo failed", slog.String("error", "invalid json"))
		return nil, ErrInvalidToken
	}
	return &info, nil
}

// doWithRetry executes a request, retrying once on 5xx or network errors
// after a 500ms backoff.
func (v *Verifier) doWithRetry(ctx context.Context, newReq func() (*http.Request, error)) (*http.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	req, err := newReq()
	if err != nil {
		return nil, err
	}
	resp, err := v.httpClient.Do(req)
	if err == nil && resp.StatusCode < 500 {
		return resp, nil
	}
	if resp != nil {
		resp.Body.Close()
	}

	select {
	case <-time.After(500 * time.Millisecond):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	req, err = newReq()
	if err != nil {
		return nil, err
	}
	return v.httpClient.Do(req)
}

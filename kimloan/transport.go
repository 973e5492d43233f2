package kimloan

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
)

// CredentialSource supplies bearer tokens to an AuthTransport. It is
// implemented by the session manager, which owns all session state.
type CredentialSource interface {
	// AccessToken returns the current access token, or "" when no session
	// is established.
	AccessToken() string

	// RefreshAccessToken exchanges the refresh token for a new access
	// token after `failed` was rejected with a 401. Implementations must
	// coalesce concurrent calls into a single refresh request and must
	// tear down the session before returning an error.
	RefreshAccessToken(ctx context.Context, failed string) (string, error)
}

// AuthTransport is an http.RoundTripper that enforces the bearer-token
// contract for every request passing through it: attach the current access
// token, and on a 401 for a request that carried one, refresh and retry
// exactly once. All other responses and error classes pass through
// untouched. It is the single place tokens are attached; callers never
// set Authorization themselves.
type AuthTransport struct {
	base   http.RoundTripper
	creds  CredentialSource
	logger *slog.Logger
}

// NewAuthTransport wraps base with bearer attachment and the 401
// refresh-and-retry protocol. If base is nil, http.DefaultTransport is used.
func NewAuthTransport(base http.RoundTripper, creds CredentialSource, logger *slog.Logger) *AuthTransport {
	if base == nil {
		base = http.DefaultTransport
	}

	return &AuthTransport{
		base:   base,
		creds:  creds,
		logger: logger,
	}
}

// RoundTrip implements http.RoundTripper.
func (t *AuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	token := t.creds.AccessToken()

	out := req.Clone(req.Context())
	out.Header.Set("X-Request-ID", uuid.NewString())

	if token != "" {
		out.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := t.base.RoundTrip(out)
	if err != nil {
		return nil, err
	}

	// Only a 401 on a request that actually carried a token triggers the
	// refresh protocol. An unauthenticated 401 means the caller never
	// logged in; that is theirs to handle.
	if resp.StatusCode != http.StatusUnauthorized || token == "" {
		return resp, nil
	}

	retry, err := t.retryRequest(req)
	if err != nil {
		// Body cannot be replayed; the original 401 stands.
		t.logger.Debug("401 response not retriable",
			slog.String("url", req.URL.Path),
			slog.String("error", err.Error()),
		)

		return resp, nil
	}

	t.logger.Debug("access token rejected, refreshing", slog.String("url", req.URL.Path))

	newToken, refreshErr := t.creds.RefreshAccessToken(req.Context(), token)
	if refreshErr != nil {
		// Session has been torn down by the credential source. Fail the
		// call so the caller's own loading state resolves; the global
		// session-expired handling is already underway.
		discardBody(resp)

		return nil, fmt.Errorf("%w: %w", ErrSessionExpired, refreshErr)
	}

	discardBody(resp)

	retry.Header.Set("X-Request-ID", uuid.NewString())
	retry.Header.Set("Authorization", "Bearer "+newToken)

	// Exactly one retry. If the retried request also comes back 401, it is
	// surfaced as-is rather than looping through another refresh.
	return t.base.RoundTrip(retry)
}

// discardBody drains and closes an abandoned response body so the
// underlying connection can be reused.
func discardBody(resp *http.Response) {
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
}

// retryRequest rebuilds a request for the single post-refresh retry,
// replaying the body via GetBody.
func (t *AuthTransport) retryRequest(req *http.Request) (*http.Request, error) {
	out := req.Clone(req.Context())

	if req.Body == nil || req.Body == http.NoBody {
		return out, nil
	}

	if req.GetBody == nil {
		return nil, fmt.Errorf("request body is not replayable")
	}

	body, err := req.GetBody()
	if err != nil {
		return nil, fmt.Errorf("replaying request body: %w", err)
	}

	out.Body = body

	return out, nil
}

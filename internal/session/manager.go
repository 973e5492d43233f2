// Package session owns the process-wide authentication state: which user,
// if any, the application is currently acting as, and the token pair that
// proves it. The Manager is the only component that transitions this state;
// everything else either reads snapshots (authorization gate, menu
// projection, CLI commands) or consumes the authenticated HTTP client it
// exposes.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/kimloan/loanctl/kimloan"
	"golang.org/x/sync/singleflight"
)

// Store is the durable token/user persistence the Manager writes through.
// Implemented by state.Store.
type Store interface {
	SaveSession(pair kimloan.TokenPair, user *kimloan.User) error
	Session() (kimloan.TokenPair, *kimloan.User)
	ClearSession() error
}

// authAPI is the unauthenticated slice of the backend: the endpoints that
// are called with explicit credentials rather than the session's bearer
// token. These calls must not pass through the AuthTransport, or a rejected
// refresh would recurse into another refresh.
type authAPI interface {
	Login(ctx context.Context, username, password string) (*kimloan.TokenResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*kimloan.TokenResponse, error)
	Logout(ctx context.Context, accessToken string) error
}

// userAPI is the authenticated slice the Manager itself needs.
type userAPI interface {
	Me(ctx context.Context) (*kimloan.User, error)
}

// Snapshot is a point-in-time read of the session state. IsAuthenticated
// is true exactly when User is present.
type Snapshot struct {
	IsAuthenticated bool
	User            *kimloan.User
}

// Manager orchestrates login, logout and current-user hydration, and
// serves as the CredentialSource for the authenticated transport. It is
// explicitly constructed and passed by handle; tests build isolated
// instances against stub backends.
type Manager struct {
	store  Store
	auth   authAPI
	api    userAPI
	client *kimloan.Client
	logger *slog.Logger

	// onExpired fires when the session dies underneath the user (refresh
	// exhausted). The UI layer's redirect-to-login lives behind this hook.
	onExpired func()

	refreshGroup singleflight.Group

	mu      sync.Mutex
	tokens  kimloan.TokenPair
	current *kimloan.User
	// epoch increments on every logout or session teardown. A refresh that
	// resolves after the epoch moved on is discarded, so a stale refresh
	// can never resurrect a session the user ended.
	epoch uint64
}

// NewManager builds a Manager plus the two API clients it needs: a plain
// one for login/refresh/logout and one routed through an AuthTransport
// (fed by the Manager itself) for everything else. httpClient configures
// timeouts and, in tests, the stub server transport; nil gets defaults.
func NewManager(baseURL string, httpClient *http.Client, store Store, logger *slog.Logger) *Manager {
	var (
		base    http.RoundTripper
		timeout time.Duration
	)

	if httpClient != nil {
		base = httpClient.Transport
		timeout = httpClient.Timeout
	}

	m := &Manager{
		store:  store,
		logger: logger,
	}

	m.auth = kimloan.NewClient(baseURL, httpClient)
	m.client = kimloan.NewClient(baseURL, &http.Client{
		Transport: kimloan.NewAuthTransport(base, m, logger),
		Timeout:   timeout,
	})
	m.api = m.client

	return m
}

// API returns the authenticated client. It is the sole transport for all
// page-level and CLI data fetching; callers never attach tokens manually.
func (m *Manager) API() *kimloan.Client {
	return m.client
}

// OnSessionExpired registers the hook fired when the refresh protocol is
// exhausted and the session has been torn down. Call before any requests
// are in flight.
func (m *Manager) OnSessionExpired(fn func()) {
	m.onExpired = fn
}

// Current returns a snapshot of the session state.
func (m *Manager) Current() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	return Snapshot{
		IsAuthenticated: m.current != nil,
		User:            m.current,
	}
}

// Login authenticates and establishes a session. The token pair is held in
// memory while the follow-up who-am-I call runs; nothing is persisted until
// both succeed, so a failed login can never leave a half-session behind.
// ErrCredentialsRejected distinguishes a server rejection from transport
// failure; both leave the session unchanged.
func (m *Manager) Login(ctx context.Context, username, password string) error {
	tok, err := m.auth.Login(ctx, username, password)
	if err != nil {
		return err
	}

	pair := kimloan.TokenPair{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
	}

	m.mu.Lock()
	m.tokens = pair
	m.current = nil
	m.epoch++
	epoch := m.epoch
	m.mu.Unlock()

	user, err := m.api.Me(ctx)
	if err != nil {
		// Roll back: the tokens must not outlive the failed login.
		m.mu.Lock()
		if m.epoch == epoch {
			m.tokens = kimloan.TokenPair{}
			m.current = nil
		}
		m.mu.Unlock()

		if clearErr := m.store.ClearSession(); clearErr != nil {
			m.logger.Warn("failed to clear session after login rollback",
				slog.String("error", clearErr.Error()))
		}

		return fmt.Errorf("login incomplete: %w", err)
	}

	m.mu.Lock()
	if m.epoch != epoch {
		// A logout raced the who-am-I call; honor it.
		m.mu.Unlock()
		return fmt.Errorf("login aborted by concurrent logout")
	}

	// Me may have ridden through a refresh; keep whatever pair is current.
	pair = m.tokens
	m.current = user
	m.mu.Unlock()

	if err := m.store.SaveSession(pair, user); err != nil {
		m.logger.Warn("failed to persist session", slog.String("error", err.Error()))
	}

	m.logger.Info("logged in",
		slog.String("username", user.Username),
		slog.String("role", string(user.Role)),
	)

	return nil
}

// Logout ends the session: local state first, then a best-effort server
// notification with the token the session held. Calling it on an already
// logged-out manager is a no-op.
func (m *Manager) Logout(ctx context.Context) {
	m.mu.Lock()
	token := m.tokens.AccessToken
	hadSession := m.current != nil || token != ""
	m.tokens = kimloan.TokenPair{}
	m.current = nil
	m.epoch++
	m.mu.Unlock()

	if err := m.store.ClearSession(); err != nil {
		m.logger.Warn("failed to clear session store", slog.String("error", err.Error()))
	}

	if !hadSession {
		return
	}

	if err := m.auth.Logout(ctx, token); err != nil {
		// Local logout already happened; the server call is best-effort.
		m.logger.Debug("server-side logout failed", slog.String("error", err.Error()))
	}

	m.logger.Info("logged out")
}

// Hydrate restores the session from the store at startup. A stored token
// with a readable user starts the session authenticated optimistically: if
// the token has since expired, the first authorized request goes through
// the ordinary 401-refresh protocol and corrects the state, which avoids
// blocking startup on a token-validity round trip. This is an accepted
// race, not an oversight. A token without a readable user (corrupt record)
// cannot satisfy an authorization decision, so the orphaned pair is
// dropped and the session starts unauthenticated.
func (m *Manager) Hydrate() {
	pair, user := m.store.Session()

	if pair.AccessToken == "" {
		return
	}

	if user == nil {
		m.logger.Warn("stored session has no readable user record, discarding")

		if err := m.store.ClearSession(); err != nil {
			m.logger.Warn("failed to clear orphaned session", slog.String("error", err.Error()))
		}

		return
	}

	m.mu.Lock()
	m.tokens = pair
	m.current = user
	m.mu.Unlock()

	m.logger.Debug("session hydrated", slog.String("username", user.Username))
}

// AccessToken implements kimloan.CredentialSource.
func (m *Manager) AccessToken() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.tokens.AccessToken
}

// RefreshAccessToken implements kimloan.CredentialSource. Concurrent 401
// handlers collapse onto a single refresh call: callers arriving while one
// is in flight share its outcome, and callers arriving after the token has
// already been replaced get the new token without another round trip. On
// any refresh failure the session is torn down before the error returns.
func (m *Manager) RefreshAccessToken(ctx context.Context, failed string) (string, error) {
	m.mu.Lock()
	if m.tokens.AccessToken != "" && m.tokens.AccessToken != failed {
		token := m.tokens.AccessToken
		m.mu.Unlock()

		return token, nil
	}

	refresh := m.tokens.RefreshToken
	epoch := m.epoch
	m.mu.Unlock()

	if refresh == "" {
		m.expire(epoch)
		return "", fmt.Errorf("no refresh token available")
	}

	v, err, _ := m.refreshGroup.Do("refresh", func() (any, error) {
		tok, err := m.auth.RefreshToken(ctx, refresh)
		if err != nil {
			m.expire(epoch)
			return nil, err
		}

		m.mu.Lock()
		if m.epoch != epoch {
			// Logged out while the refresh was in flight; discard the
			// result rather than resurrecting the session.
			m.mu.Unlock()

			return nil, fmt.Errorf("session ended during refresh")
		}

		m.tokens.AccessToken = tok.AccessToken
		if tok.RefreshToken != "" {
			m.tokens.RefreshToken = tok.RefreshToken
		}

		pair := m.tokens
		user := m.current
		m.mu.Unlock()

		if err := m.store.SaveSession(pair, user); err != nil {
			m.logger.Warn("failed to persist refreshed session", slog.String("error", err.Error()))
		}

		m.logger.Debug("access token refreshed")

		return tok.AccessToken, nil
	})
	if err != nil {
		return "", err
	}

	return v.(string), nil
}

// expire tears the session down after an unrecoverable refresh failure,
// unless the epoch already moved on (an explicit logout got there first).
func (m *Manager) expire(epoch uint64) {
	m.mu.Lock()
	if m.epoch != epoch {
		m.mu.Unlock()
		return
	}

	m.tokens = kimloan.TokenPair{}
	m.current = nil
	m.epoch++
	m.mu.Unlock()

	if err := m.store.ClearSession(); err != nil {
		m.logger.Warn("failed to clear expired session", slog.String("error", err.Error()))
	}

	m.logger.Info("session expired, login required")

	if m.onExpired != nil {
		m.onExpired()
	}
}

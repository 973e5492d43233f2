package state

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/kimloan/loanctl/kimloan"
	bolt "go.etcd.io/bbolt"
)

const (
	// stateDirPerm is the permission mode for the state directory (~/.loanctl/).
	stateDirPerm = fs.FileMode(0o700)

	// stateFilePerm is the permission mode for the state database file.
	stateFilePerm = fs.FileMode(0o600)

	// stateOpenTimeout is the maximum time to wait for the bolt database lock.
	stateOpenTimeout = 5 * time.Second
)

// The session bucket holds everything that survives a restart: the token
// pair and the cached current-user record. All three keys are written and
// cleared together so a stale mix of sessions can never be read back.
var (
	sessionBucket   = []byte("session")
	accessTokenKey  = []byte("access_token")
	refreshTokenKey = []byte("refresh_token")
	currentUserKey  = []byte("current_user")
)

// Store wraps a bbolt database for all persistent client state.
type Store struct {
	db *bolt.DB
}

// Open opens the state database at <dir>/state.db, creating it if it does
// not exist. An empty dir defaults to ~/.loanctl.
func Open(dir string) (*Store, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("determining home directory: %w", err)
		}

		dir = filepath.Join(home, ".loanctl")
	}

	return OpenAt(filepath.Join(dir, "state.db"))
}

// OpenAt opens a state database at the given path, creating it if it does
// not exist. Useful for tests that need an isolated database.
func OpenAt(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), stateDirPerm); err != nil {
		return nil, fmt.Errorf("creating state directory: %w", err)
	}

	db, err := bolt.Open(path, stateFilePerm, &bolt.Options{Timeout: stateOpenTimeout})
	if err != nil {
		return nil, fmt.Errorf("opening state db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(sessionBucket)

		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing state db: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveSession persists the token pair and the cached current user in a
// single transaction, so a reader can never observe a token from one
// session next to the user of another.
func (s *Store) SaveSession(pair kimloan.TokenPair, user *kimloan.User) error {
	var userData []byte

	if user != nil {
		data, err := json.Marshal(user)
		if err != nil {
			return fmt.Errorf("marshalling current user: %w", err)
		}

		userData = data
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(sessionBucket)

		if err := b.Put(accessTokenKey, []byte(pair.AccessToken)); err != nil {
			return err
		}

		if err := b.Put(refreshTokenKey, []byte(pair.RefreshToken)); err != nil {
			return err
		}

		if userData == nil {
			return b.Delete(currentUserKey)
		}

		return b.Put(currentUserKey, userData)
	})
}

// Session returns the persisted token pair and cached current user.
// A stored user record that no longer parses is dropped silently (the
// caller sees a nil user and decides what to do with the orphaned pair);
// corruption of local state must never surface as an error here.
func (s *Store) Session() (kimloan.TokenPair, *kimloan.User) {
	var (
		pair kimloan.TokenPair
		user *kimloan.User
	)

	_ = s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(sessionBucket)

		if v := b.Get(accessTokenKey); v != nil {
			pair.AccessToken = string(v)
		}

		if v := b.Get(refreshTokenKey); v != nil {
			pair.RefreshToken = string(v)
		}

		if v := b.Get(currentUserKey); v != nil {
			u := &kimloan.User{}
			if err := json.Unmarshal(v, u); err == nil {
				user = u
			}
		}

		return nil
	})

	return pair, user
}

// ClearSession removes the token pair and the cached user in a single
// transaction. Safe to call on an already-empty store.
func (s *Store) ClearSession() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(sessionBucket)

		for _, key := range [][]byte{accessTokenKey, refreshTokenKey, currentUserKey} {
			if err := b.Delete(key); err != nil {
				return err
			}
		}

		return nil
	})
}

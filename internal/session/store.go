package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/JuanDPAffi/redelex-api/pkg/errors"
)

// Cache is the persisted session slot. Satisfied by the Redis cache
// repository in production and by an in-memory fake in tests.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Del(ctx context.Context, key ...string) error
}

// ProfileSource re-fetches an identity from the system of record. Refresh
// uses it to pick up out-of-band role and permission changes.
type ProfileSource interface {
	LoadProfile(ctx context.Context, userID uint64) (RawProfile, error)
}

// Store is the single source of truth for "who is logged in and what can
// they do". Reads are synchronous against the in-process cache; Redis
// backs it across restarts.
type Store struct {
	cache  Cache
	source ProfileSource
	ttl    time.Duration
	logger *zap.Logger

	mu    sync.Mutex
	local map[uint64]*Session
	// gen increments on Set and Clear. A Refresh that started under an
	// older generation is discarded, so a logout can never be undone by
	// an in-flight refresh completing late.
	gen map[uint64]uint64
}

func NewStore(cache Cache, source ProfileSource, ttl time.Duration, logger *zap.Logger) *Store {
	return &Store{
		cache:  cache,
		source: source,
		ttl:    ttl,
		logger: logger,
		local:  make(map[uint64]*Session),
		gen:    make(map[uint64]uint64),
	}
}

func sessionKey(userID uint64) string {
	return fmt.Sprintf("session:user:%d", userID)
}

// Set normalizes and persists an identity payload, replacing any prior
// session for the same user.
func (st *Store) Set(ctx context.Context, raw RawProfile) (*Session, error) {
	sess := Normalize(raw)
	if sess.UserID == 0 {
		return nil, apperrors.NewBadRequestError("perfil de usuario sin identificador")
	}

	payload, err := json.Marshal(sess)
	if err != nil {
		return nil, err
	}

	// The persisted write happens inside the critical section so a Clear
	// racing this call either runs first (and the new session wins) or
	// acquires the lock afterwards and deletes what was just written.
	st.mu.Lock()
	if err := st.cache.Set(ctx, sessionKey(sess.UserID), string(payload), st.ttl); err != nil {
		st.mu.Unlock()
		return nil, err
	}
	st.local[sess.UserID] = sess
	st.gen[sess.UserID]++
	st.mu.Unlock()

	return sess.Clone(), nil
}

// Get returns the current session or nil. Any failure reading or decoding
// the persisted payload is treated as "no session": authentication is
// never granted by default.
func (st *Store) Get(ctx context.Context, userID uint64) *Session {
	st.mu.Lock()
	if sess, ok := st.local[userID]; ok {
		st.mu.Unlock()
		return sess.Clone()
	}
	st.mu.Unlock()

	payload, err := st.cache.Get(ctx, sessionKey(userID))
	if err != nil || payload == "" {
		return nil
	}

	var sess Session
	if err := json.Unmarshal([]byte(payload), &sess); err != nil {
		st.logger.Warn("sesión persistida corrupta, se descarta",
			zap.Uint64("userID", userID), zap.Error(err))
		_ = st.cache.Del(ctx, sessionKey(userID))
		return nil
	}

	st.mu.Lock()
	st.local[userID] = &sess
	st.mu.Unlock()
	return sess.Clone()
}

// Clear removes the session. The local state is always cleared, even when
// the backing cache is unreachable, so logout cannot fail.
func (st *Store) Clear(ctx context.Context, userID uint64) {
	st.mu.Lock()
	delete(st.local, userID)
	st.gen[userID]++
	st.mu.Unlock()

	if err := st.cache.Del(ctx, sessionKey(userID)); err != nil {
		st.logger.Warn("no se pudo eliminar la sesión persistida",
			zap.Uint64("userID", userID), zap.Error(err))
	}
}

// Refresh re-fetches the identity and replaces the session. On failure the
// existing session is left untouched: stale-but-present beats clearing on
// a transient error. If the session was cleared while the fetch was in
// flight the result is discarded.
func (st *Store) Refresh(ctx context.Context, userID uint64) (*Session, error) {
	st.mu.Lock()
	startGen := st.gen[userID]
	st.mu.Unlock()

	raw, err := st.source.LoadProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	sess := Normalize(raw)
	payload, err := json.Marshal(sess)
	if err != nil {
		return nil, err
	}

	// The cache write must not escape the critical section: a Clear that
	// raced the profile fetch already bumped the generation and is caught
	// here, and a Clear arriving later can only run its delete after this
	// write, so a cleared session is never resurrected in Redis.
	st.mu.Lock()
	if st.gen[userID] != startGen {
		st.mu.Unlock()
		return nil, apperrors.ErrSessionNotFound
	}
	if err := st.cache.Set(ctx, sessionKey(sess.UserID), string(payload), st.ttl); err != nil {
		st.logger.Warn("no se pudo persistir la sesión refrescada",
			zap.Uint64("userID", sess.UserID), zap.Error(err))
	}
	st.local[sess.UserID] = sess
	st.gen[sess.UserID]++
	st.mu.Unlock()

	return sess.Clone(), nil
}

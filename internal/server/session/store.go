// Package session implements the TTL-backed session store. A session is two
// co-located Redis values — the public user snapshot and the verified flag —
// kept under the key scheme sid:{session_uuid}:{user_uuid}:{facet}. Both
// facets are written and deleted through one transactional pipeline so a
// reader never observes a half-written session.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/freshdeal/account-service/internal/common"
	"github.com/freshdeal/account-service/internal/server/models"
)

// DefaultTTL is the session lifetime applied on every create and update.
const DefaultTTL = time.Hour

const (
	facetUserData = "user_data"
	facetVerified = "verified"
)

func facetKey(sessionUUID, userUUID, facet string) string {
	return fmt.Sprintf("sid:%s:%s:%s", sessionUUID, userUUID, facet)
}

// Store reads and writes sessions in Redis.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewStore builds a Store; a non-positive ttl falls back to DefaultTTL.
func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{rdb: rdb, ttl: ttl}
}

func (s *Store) write(ctx context.Context, sessionUUID, userUUID string, snapshot *models.PublicUser) (int64, error) {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return 0, fmt.Errorf("encoding session snapshot: %w", err)
	}
	verified, err := json.Marshal(snapshot.EmailVerified)
	if err != nil {
		return 0, fmt.Errorf("encoding verified flag: %w", err)
	}

	_, err = s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, facetKey(sessionUUID, userUUID, facetUserData), data, s.ttl)
		pipe.Set(ctx, facetKey(sessionUUID, userUUID, facetVerified), verified, s.ttl)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("writing session: %w", err)
	}

	return time.Now().Add(s.ttl).Unix(), nil
}

// Create mints a new session for the user and returns its id together with
// the absolute unix expiry time.
func (s *Store) Create(ctx context.Context, userUUID string, snapshot *models.PublicUser) (string, int64, error) {
	sessionUUID := uuid.NewString()

	expiry, err := s.write(ctx, sessionUUID, userUUID, snapshot)
	if err != nil {
		return "", 0, err
	}

	return sessionUUID, expiry, nil
}

// Update overwrites both facets of an existing session and refreshes the
// TTL. It is a full replace: the caller must pass a complete snapshot.
func (s *Store) Update(ctx context.Context, sessionUUID, userUUID string, snapshot *models.PublicUser) (int64, error) {
	return s.write(ctx, sessionUUID, userUUID, snapshot)
}

// Read fetches and decodes the user snapshot. A missing key is reported as
// common.ErrorSessionExpired; a present but undecodable value as
// common.ErrorSessionNoData.
func (s *Store) Read(ctx context.Context, sessionUUID, userUUID string) (*models.PublicUser, error) {
	raw, err := s.rdb.Get(ctx, facetKey(sessionUUID, userUUID, facetUserData)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, common.ErrorSessionExpired
		}
		return nil, fmt.Errorf("reading session: %w", err)
	}

	var snapshot models.PublicUser
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return nil, common.ErrorSessionNoData
	}

	return &snapshot, nil
}

// FindBySession locates a session knowing only the session id, scanning for
// its user_data facet. Used when the caller has a session cookie but no user
// id yet.
func (s *Store) FindBySession(ctx context.Context, sessionUUID string) (*models.PublicUser, error) {
	pattern := fmt.Sprintf("sid:%s:*:%s", sessionUUID, facetUserData)

	var keys []string
	iter := s.rdb.Scan(ctx, 0, pattern, 1).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
		break
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("scanning sessions: %w", err)
	}

	if len(keys) == 0 {
		return nil, common.ErrorSessionExpired
	}

	raw, err := s.rdb.Get(ctx, keys[0]).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, common.ErrorSessionExpired
		}
		return nil, fmt.Errorf("reading session: %w", err)
	}

	var snapshot models.PublicUser
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return nil, common.ErrorSessionNoData
	}

	return &snapshot, nil
}

// Delete removes both facets. The delete only counts when both keys existed;
// anything less reports common.ErrorSessionExpired so the caller can tell
// the client the session was already gone.
func (s *Store) Delete(ctx context.Context, sessionUUID, userUUID string) error {
	var userData, verified *redis.IntCmd

	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		userData = pipe.Del(ctx, facetKey(sessionUUID, userUUID, facetUserData))
		verified = pipe.Del(ctx, facetKey(sessionUUID, userUUID, facetVerified))
		return nil
	})
	if err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}

	if userData.Val() == 0 || verified.Val() == 0 {
		return common.ErrorSessionExpired
	}

	return nil
}

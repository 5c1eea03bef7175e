package cache

import (
	"context"
	"encoding/json"
	"time"

	"entitlement-engine/internal/domain/handoff"
	"entitlement-engine/internal/pkg/errs"
	"entitlement-engine/internal/usecase/commands"

	"github.com/redis/go-redis/v9"
)

const handoffKeyPrefix = "handoff:code:"

type HandoffCodeStore struct {
	client *redis.Client
}

func NewHandoffCodeStore(client *redis.Client) *HandoffCodeStore {
	return &HandoffCodeStore{client: client}
}

func (s *HandoffCodeStore) Put(ctx context.Context, code string, cred handoff.Credential, ttl time.Duration) error {
	body, err := json.Marshal(cred)
	if err != nil {
		return errs.Wrap(err, "failed to encode handoff credential")
	}
	// NX so a colliding code never overwrites a live bundle
	ok, err := s.client.SetNX(ctx, handoffKeyPrefix+code, body, ttl).Result()
	if err != nil {
		return errs.Wrap(err, "failed to store handoff credential")
	}
	if !ok {
		return errs.New("handoff code already in use")
	}
	return nil
}

// Take reads and deletes the bundle in one GETDEL, so a code works once.
func (s *HandoffCodeStore) Take(ctx context.Context, code string) (handoff.Credential, error) {
	body, err := s.client.GetDel(ctx, handoffKeyPrefix+code).Bytes()
	if err != nil {
		if errs.Is(err, redis.Nil) {
			return handoff.Credential{}, commands.ErrHandoffCodeInvalid
		}
		return handoff.Credential{}, errs.Wrap(err, "failed to take handoff credential")
	}
	var cred handoff.Credential
	if err := json.Unmarshal(body, &cred); err != nil {
		return handoff.Credential{}, errs.Wrap(err, "failed to decode handoff credential")
	}
	return cred, nil
}

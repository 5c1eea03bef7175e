package catalogstore

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"entitlement-engine/internal/domain/catalog"
	sqlc "entitlement-engine/internal/infra/sqlc/generated"
	"entitlement-engine/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const cacheKeyPrefix = "catalog:package:"

// cachedPackage carries Active explicitly since Package omits it from JSON.
type cachedPackage struct {
	Package catalog.Package `json:"package"`
	Active  bool            `json:"active"`
}

// CachedReader puts a short-lived redis cache in front of the packages table
// for display reads. Entries may lag the catalog by up to ttl, so orders and
// entitlements never read through it. Cache failures fall through to db.
type CachedReader struct {
	source *PostgresReader
	db     sqlc.DBTX
	client *redis.Client
	ttl    time.Duration
}

func NewCachedReader(source *PostgresReader, db sqlc.DBTX, client *redis.Client, ttl time.Duration) *CachedReader {
	return &CachedReader{source: source, db: db, client: client, ttl: ttl}
}

func (r *CachedReader) PackageByID(ctx context.Context, id uuid.UUID) (catalog.Package, error) {
	key := cacheKeyPrefix + id.String()

	raw, err := r.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var cached cachedPackage
		if jsonErr := json.Unmarshal(raw, &cached); jsonErr == nil {
			cached.Package.Active = cached.Active
			return cached.Package, nil
		}
		slog.Warn("dropping undecodable catalog cache entry", "key", key)
	case !errs.Is(err, redis.Nil):
		slog.Warn("catalog cache read failed", "key", key, "error", err)
	}

	pkg, err := r.source.PackageByID(ctx, r.db, id)
	if err != nil {
		return catalog.Package{}, err
	}

	body, err := json.Marshal(cachedPackage{Package: pkg, Active: pkg.Active})
	if err == nil {
		if setErr := r.client.Set(ctx, key, body, r.ttl).Err(); setErr != nil {
			slog.Warn("catalog cache write failed", "key", key, "error", setErr)
		}
	}
	return pkg, nil
}

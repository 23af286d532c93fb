package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"
	"strconv"
	"time"

	"sarb_ai/internal/domain/entities"
	"sarb_ai/internal/infrastructure/seed"
	"sarb_ai/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const (
	cacheKey               = "sarb_ai:snapshot:latest"
	defaultCacheTTLSeconds = 30
	fallbackUsersCount     = 10
	defaultSeedEventsCount = 10
)

// Source is the single snapshot provider every usecase consumes. One call,
// one immutable snapshot:
//
//   - Redis cache hit → cached snapshot (refresh happens on expiry).
//   - Otherwise every provider collection is fetched fail-soft: an upstream
//     failure degrades that collection to empty instead of failing the
//     request.
//   - If every fetch fails, the last archived snapshot (DynamoDB) is served.
//   - Area stats and events come from the seeded generator (the provider has
//     no area endpoint); users fall back to generated ones when the provider
//     returns none.

type Source struct {
	client  interfaces.IProviderClient
	cache   *redis.Client
	archive interfaces.ISnapshotArchive

	areas    []entities.MapAreaStat
	events   []entities.Event
	fallback []entities.User
	ttl      time.Duration
}

var _ interfaces.ISnapshotSource = (*Source)(nil)

func NewSource(client interfaces.IProviderClient, cache *redis.Client, archive interfaces.ISnapshotArchive, gen *seed.Generator) *Source {
	ttl := defaultCacheTTLSeconds
	if v := os.Getenv("SNAPSHOT_CACHE_TTL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			ttl = n
		}
	}
	return &Source{
		client:   client,
		cache:    cache,
		archive:  archive,
		areas:    gen.Areas(),
		events:   gen.Events(defaultSeedEventsCount),
		fallback: gen.Users(fallbackUsersCount),
		ttl:      time.Duration(ttl) * time.Second,
	}
}

func (s *Source) Snapshot(ctx context.Context) (entities.Snapshot, error) {
	if s.client == nil {
		return entities.Snapshot{}, errors.New("snapshot source: provider client not configured")
	}

	if cached, ok := s.fromCache(ctx); ok {
		return cached, nil
	}

	failures := 0
	fetch := func(name string, fn func(context.Context) (json.RawMessage, error)) json.RawMessage {
		raw, err := fn(ctx)
		if err != nil {
			log.Printf("[snapshot][source] %s fetch failed, degrading to empty err=%v", name, err)
			failures++
			return nil
		}
		return raw
	}

	carsRaw := fetch("cars", s.client.FetchCars)
	usersRaw := fetch("users", s.client.FetchUsers)
	bookingsRaw := fetch("bookings", s.client.FetchBookings)
	pricesRaw := fetch("average prices", s.client.FetchAveragePrices)

	if failures == 4 && s.archive != nil {
		if archived, ok, err := s.archive.LoadLatest(ctx); err == nil && ok {
			log.Printf("[snapshot][source] provider unreachable, serving archived snapshot fetched_at=%s", archived.FetchedAt.Format(time.RFC3339))
			return archived, nil
		}
	}

	users := mapUsers(usersRaw)
	if len(users) == 0 {
		users = s.fallback
	}

	snap := entities.Snapshot{
		Cars:         mapCars(carsRaw),
		Users:        users,
		Bookings:     mapBookings(bookingsRaw),
		MarketPrices: mapMarketPrices(pricesRaw),
		Areas:        s.areas,
		Events:       s.events,
		FetchedAt:    time.Now().UTC(),
	}

	s.toCache(ctx, snap)
	return snap, nil
}

func (s *Source) fromCache(ctx context.Context) (entities.Snapshot, bool) {
	if s.cache == nil {
		return entities.Snapshot{}, false
	}
	payload, err := s.cache.Get(ctx, cacheKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("[snapshot][source] cache read failed err=%v", err)
		}
		return entities.Snapshot{}, false
	}
	var snap entities.Snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		log.Printf("[snapshot][source] cache payload decode failed err=%v", err)
		return entities.Snapshot{}, false
	}
	return snap, true
}

func (s *Source) toCache(ctx context.Context, snap entities.Snapshot) {
	if s.cache == nil {
		return
	}
	payload, err := json.Marshal(snap)
	if err != nil {
		log.Printf("[snapshot][source] cache payload encode failed err=%v", err)
		return
	}
	if err := s.cache.Set(ctx, cacheKey, payload, s.ttl).Err(); err != nil {
		log.Printf("[snapshot][source] cache write failed err=%v", err)
	}
}

package ledger

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"practice-ledger/core/player"
	"practice-ledger/core/reconcile"
	"practice-ledger/feature/ledger/store"

	"go.uber.org/zap"
)

var (
	// ErrPlayerNotFound is returned when a lookup names an unknown player.
	ErrPlayerNotFound = errors.New("player not found")

	// ErrUnknownSort is returned for an unsupported standings order.
	ErrUnknownSort = errors.New("unknown sort order")
)

// Sort orders accepted by Standings.
const (
	SortByName    = "name"
	SortByRanking = "ranking"
)

// Service handles ledger operations.
type Service struct {
	store   reconcile.Store
	sources func() reconcile.Source
	cache   *reconcile.StandingsCache
	logger  *zap.Logger

	// runMu serializes runs started from this process.
	runMu sync.Mutex
}

// NewService creates a new ledger service. sources is called once per run so
// every run reads the session sheet fresh.
func NewService(st reconcile.Store, sources func() reconcile.Source, logger *zap.Logger, cacheTTL time.Duration) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:   st,
		sources: sources,
		cache:   reconcile.NewStandingsCache(st, cacheTTL),
		logger:  logger,
	}
}

// Standings returns every player, ordered by name or by ranking (highest first).
func (s *Service) Standings(ctx context.Context, sortBy string) ([]player.Player, error) {
	snapshot, err := s.cache.Get(ctx)
	if err != nil {
		return nil, err
	}

	players := make([]player.Player, len(snapshot.Players))
	copy(players, snapshot.Players)

	switch sortBy {
	case SortByName, "":
	case SortByRanking:
		// Stable on top of the name order, so ties stay alphabetical
		sort.SliceStable(players, func(i, j int) bool {
			return players[i].Ranking > players[j].Ranking
		})
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSort, sortBy)
	}
	return players, nil
}

// Player returns a single player by exact name.
func (s *Service) Player(ctx context.Context, name string) (*player.Player, error) {
	snapshot, err := s.cache.Get(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range snapshot.Players {
		if p.Name == name {
			found := p
			return &found, nil
		}
	}
	return nil, ErrPlayerNotFound
}

// Process runs the ledger pipeline once. Stores that support locking are
// locked for the duration of the run; a held lock returns store.ErrLocked.
func (s *Service) Process(ctx context.Context, opts reconcile.Options) (*reconcile.Summary, error) {
	if !s.runMu.TryLock() {
		return nil, store.ErrLocked
	}
	defer s.runMu.Unlock()

	if locker, ok := s.store.(store.Locker); ok {
		if err := locker.Lock(); err != nil {
			return nil, err
		}
		defer func() {
			if err := locker.Unlock(); err != nil {
				s.logger.Warn("Failed to release store lock", zap.Error(err))
			}
		}()
	}

	// Later rows may have been persisted even when the run fails.
	defer s.cache.Invalidate()

	engine := reconcile.NewEngine(s.store, s.sources(), s.logger, opts)
	return engine.Run(ctx)
}

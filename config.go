package memorize

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"
)

// DefaultBonusTimeLimit is the bonus window given to each card when
// Config.BonusTimeLimit is zero.
const DefaultBonusTimeLimit = 6 * time.Second

// Config configures a Game.
// Zero values produce sensible defaults; see field comments.
type Config struct {
	BonusTimeLimit time.Duration // zero → DefaultBonusTimeLimit
	DisableBonus   bool          // true → cards are created with no bonus limit
	Clock          Clock         // nil → SystemClock
	Rand           *rand.Rand    // nil → seeded from Clock
	Logger         *slog.Logger  // nil → logs discarded
	NotifyOnNoop   bool          // true → observers also hear about Ignored moves
}

// resolved is a Config with every default filled in.
type resolved struct {
	bonusTimeLimit time.Duration
	clock          Clock
	rng            *rand.Rand
	logger         *slog.Logger
	notifyOnNoop   bool
}

func (cfg Config) resolve() (resolved, error) {
	limit := cfg.BonusTimeLimit
	if limit < 0 {
		return resolved{}, fmt.Errorf("%w: bonus time limit %v must not be negative", ErrInvalidConfig, limit)
	}
	if limit == 0 {
		limit = DefaultBonusTimeLimit
	}
	if cfg.DisableBonus {
		limit = 0
	}

	clock := cfg.Clock
	if clock == nil {
		clock = SystemClock
	}

	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(clock.Now().UnixNano()))
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return resolved{
		bonusTimeLimit: limit,
		clock:          clock,
		rng:            rng,
		logger:         logger,
		notifyOnNoop:   cfg.NotifyOnNoop,
	}, nil
}

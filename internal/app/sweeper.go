package app

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/tnohrer/HBA/internal/clock"
	"github.com/tnohrer/HBA/internal/domain"
	"github.com/tnohrer/HBA/internal/metrics"
)

// SweepStore is the store surface the sweeper needs.
type SweepStore interface {
	RemoveExpired(now time.Time) []domain.Hold
}

// Sweeper periodically evicts expired holds. Callers that cannot wait for
// the next tick (availability checks, extend, consume) re-check expiry
// themselves; the sweeper only reclaims the records. It never reports a
// user-visible error, a sweep with nothing to do is normal.
type Sweeper struct {
	store    SweepStore
	clock    clock.Clock
	interval time.Duration
	logger   zerolog.Logger
	// OnEvict, when set, is called once per evicted hold. Used by countdown
	// consumers; runs on the sweeper goroutine, so keep it cheap.
	OnEvict func(domain.Hold)

	stop chan struct{}
	done chan struct{}
}

func NewSweeper(store SweepStore, clk clock.Clock, interval time.Duration, logger zerolog.Logger) *Sweeper {
	return &Sweeper{
		store:    store,
		clock:    clk,
		interval: interval,
		logger:   logger,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the background sweep loop. Call Stop to end it; the loop
// otherwise runs for the life of the process.
func (s *Sweeper) Start() {
	go s.run()
}

func (s *Sweeper) run() {
	defer close(s.done)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.RunOnce()
		case <-s.stop:
			return
		}
	}
}

// Stop terminates the sweep loop and waits for it to exit. Stop may be
// called once.
func (s *Sweeper) Stop() {
	close(s.stop)
	<-s.done
}

// RunOnce performs a single scan-and-evict pass and returns the number of
// holds removed. Exported so tests and operators can force a sweep.
func (s *Sweeper) RunOnce() int {
	evicted := s.store.RemoveExpired(s.clock.Now())
	for _, hold := range evicted {
		metrics.HoldsEvicted.Inc()
		s.logger.Info().
			Str("hold_id", hold.ID).
			Str("hotel_id", hold.HotelID).
			Str("room_type_id", hold.RoomTypeID).
			Time("expired_at", hold.ExpiresAt).
			Msg("expired hold evicted")
		if s.OnEvict != nil {
			s.OnEvict(hold)
		}
	}
	if len(evicted) > 0 {
		s.logger.Info().Int("count", len(evicted)).Msg("sweep finished")
	}
	return len(evicted)
}

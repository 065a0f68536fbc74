// Package poller runs the periodic fetch loop and holds the latest
// published snapshot.
package poller

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/caesbrissa/visual-poker/internal/model"
)

// Fetcher produces one complete snapshot per call.
type Fetcher interface {
	Snapshot(ctx context.Context, now time.Time) (*model.Snapshot, error)
}

// Poller fetches snapshots on a fixed interval. Each cycle claims a
// generation number before its fetch starts; a finished snapshot is
// published only when no newer generation has published first, so a slow
// stale fetch can never overwrite fresher data. On failure the last
// known-good snapshot stays served.
type Poller struct {
	fetcher  Fetcher
	interval time.Duration
	timeout  time.Duration
	log      zerolog.Logger
	now      func() time.Time

	mu        sync.Mutex
	latest    *model.Snapshot
	published uint64
	nextGen   uint64
}

// New creates a poller. The clock is injectable for tests.
func New(fetcher Fetcher, interval, timeout time.Duration, log zerolog.Logger) *Poller {
	return &Poller{
		fetcher:  fetcher,
		interval: interval,
		timeout:  timeout,
		log:      log,
		now:      time.Now,
	}
}

// Run fetches immediately, then on every tick until ctx is done.
func (p *Poller) Run(ctx context.Context) {
	if err := p.Refresh(ctx); err != nil {
		p.log.Error().Err(err).Msg("initial fetch failed")
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := p.Refresh(ctx); err != nil {
				p.log.Error().Err(err).Msg("fetch cycle failed")
			}
		}
	}
}

// Refresh runs one fetch cycle with its own timeout.
func (p *Poller) Refresh(ctx context.Context) error {
	gen := p.claimGeneration()

	fetchCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	snap, err := p.fetcher.Snapshot(fetchCtx, p.now())
	if err != nil {
		return err
	}
	snap.Generation = gen
	p.publish(snap)
	return nil
}

func (p *Poller) claimGeneration() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.nextGen++
	return p.nextGen
}

// publish installs the snapshot unless a newer generation already
// published.
func (p *Poller) publish(snap *model.Snapshot) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if snap.Generation <= p.published && p.latest != nil {
		p.log.Warn().
			Uint64("generation", snap.Generation).
			Uint64("published", p.published).
			Msg("discarding stale snapshot")
		return
	}
	p.latest = snap
	p.published = snap.Generation
	p.log.Info().
		Uint64("generation", snap.Generation).
		Str("fetch_id", snap.FetchID).
		Int("sessions", snap.SessionCount).
		Msg("snapshot published")
}

// Latest returns the most recent published snapshot, false before the
// first successful fetch.
func (p *Poller) Latest() (*model.Snapshot, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.latest, p.latest != nil
}

package worker

import (
	"context"
	"time"

	"github.com/csexamtest/examtest-backend/internal/session"
	"github.com/rs/zerolog"
)

// SessionPruneWorker periodically deletes expired sessions from stores that
// do not expire records on their own.
type SessionPruneWorker struct {
	store    session.Pruner
	interval time.Duration
	log      zerolog.Logger
}

// NewSessionPruneWorker creates a new SessionPruneWorker.
func NewSessionPruneWorker(store session.Pruner, interval time.Duration, log zerolog.Logger) *SessionPruneWorker {
	if interval <= 0 {
		interval = 15 * time.Minute
	}
	return &SessionPruneWorker{
		store:    store,
		interval: interval,
		log:      log.With().Str("component", "session_prune_worker").Logger(),
	}
}

// Start begins the worker loop. Call in a goroutine; it returns when ctx is done.
func (w *SessionPruneWorker) Start(ctx context.Context) {
	w.log.Info().Dur("interval", w.interval).Msg("Worker started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.prune(ctx)
	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("Worker stopped")
			return
		case <-ticker.C:
			w.prune(ctx)
		}
	}
}

func (w *SessionPruneWorker) prune(ctx context.Context) {
	n, err := w.store.PruneExpired(ctx)
	if err != nil {
		if ctx.Err() == nil {
			w.log.Error().Err(err).Msg("Prune failed")
		}
		return
	}
	if n > 0 {
		w.log.Debug().Int64("removed", n).Msg("Pruned expired sessions")
	}
}

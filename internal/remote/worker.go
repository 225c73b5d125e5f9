package remote

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/clinicdesk/clinicdesk/internal/backup"
)

// Worker turns store change notifications into best-effort background pushes.
// Notify only sets a flag in a one-slot queue, so the local write it rides on
// returns immediately no matter what the remote is doing; a single goroutine
// drains the queue with bounded retry.
type Worker struct {
	svc    *backup.Service
	client *Client
	log    zerolog.Logger

	requests chan struct{}
	done     chan struct{}
	wg       sync.WaitGroup
	stopOnce sync.Once

	attempts int
	backoff  time.Duration
	timeout  time.Duration
}

// NewWorker wires a sync worker. Start must be called before Notify has any
// effect beyond queueing.
func NewWorker(svc *backup.Service, client *Client, log zerolog.Logger) *Worker {
	return &Worker{
		svc:      svc,
		client:   client,
		log:      log.With().Str("component", "autosync").Logger(),
		requests: make(chan struct{}, 1),
		done:     make(chan struct{}),
		attempts: 3,
		backoff:  2 * time.Second,
		timeout:  30 * time.Second,
	}
}

// Notify requests a sync. Non-blocking: pending requests coalesce into one.
func (w *Worker) Notify() {
	select {
	case w.requests <- struct{}{}:
	default:
	}
}

// Start launches the drain goroutine.
func (w *Worker) Start() {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		for {
			select {
			case <-w.done:
				// Drain a request queued just before shutdown so a final
				// local write still gets its push.
				select {
				case <-w.requests:
					w.syncOnce()
				default:
				}
				return
			case <-w.requests:
				w.syncOnce()
			}
		}
	}()
}

// Stop terminates the drain goroutine and waits for it. In-flight pushes are
// abandoned at their context timeout.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.done) })
	w.wg.Wait()
}

func (w *Worker) syncOnce() {
	if _, ok := w.client.Token(); !ok {
		return
	}

	bundle, err := w.svc.Export()
	if err != nil {
		w.log.Warn().Err(err).Msg("auto-sync skipped: export failed")
		return
	}

	delay := w.backoff
	for attempt := 1; attempt <= w.attempts; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
		ok := w.client.Push(ctx, bundle)
		cancel()
		if ok {
			w.log.Debug().Int("attempt", attempt).Msg("auto-sync pushed")
			return
		}
		if attempt == w.attempts {
			break
		}
		select {
		case <-w.done:
			return
		case <-time.After(delay):
		}
		delay *= 2
	}
	w.log.Warn().Int("attempts", w.attempts).Msg("auto-sync failed (offline?)")
}

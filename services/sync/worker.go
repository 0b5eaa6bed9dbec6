package syncsvc

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/internhive/internhive/core"
	"github.com/internhive/internhive/core/store"
)

// Worker mirrors local store commits into the remote repository,
// best-effort. Services enqueue operations after a successful local
// dispatch; a goroutine drains the outbox on a poll ticker. A failed
// operation goes onto a bounded retry queue drained by a slower ticker,
// one re-attempt per cycle. No failure ever reaches the dispatcher.
type Worker struct {
	remote core.RemoteRepository
	logger core.Logger

	poll       time.Duration
	retryEvery time.Duration
	outbox     chan core.MirrorOp
	retry      chan core.MirrorOp
}

var _ core.Mirror = (*Worker)(nil)

func NewWorker(remote core.RemoteRepository, logger core.Logger, conf core.SyncConfig) *Worker {
	return &Worker{
		remote:     remote,
		logger:     logger,
		poll:       conf.PollInterval,
		retryEvery: conf.RetryInterval,
		outbox:     make(chan core.MirrorOp, conf.QueueSize),
		retry:      make(chan core.MirrorOp, conf.QueueSize),
	}
}

// Enqueue never blocks the caller. A full outbox drops the operation;
// losing a mirror write is acceptable, stalling a dispatch is not.
func (w *Worker) Enqueue(op core.MirrorOp) {
	select {
	case w.outbox <- op:
	default:
		DroppedOps.Inc()
		w.logger.Warn("sync: outbox full, dropping operation", op.Entity, op.ID)
	}
}

// Run drains the outbox until ctx is cancelled.
func (w *Worker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.poll)
	defer ticker.Stop()
	retryTicker := time.NewTicker(w.retryEvery)
	defer retryTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.ProcessOnce(ctx)
		case <-retryTicker.C:
			w.retryOnce(ctx)
		}
	}
}

// ProcessOnce applies every operation currently queued. Exposed so tests
// and the seed command can flush synchronously.
func (w *Worker) ProcessOnce(ctx context.Context) {
	for {
		select {
		case op := <-w.outbox:
			w.applyOrPark(ctx, op)
		default:
			return
		}
	}
}

// retryOnce re-attempts a single parked operation per cycle.
func (w *Worker) retryOnce(ctx context.Context) {
	select {
	case op := <-w.retry:
		RetriedOps.Inc()
		w.applyOrPark(ctx, op)
	default:
	}
}

func (w *Worker) applyOrPark(ctx context.Context, op core.MirrorOp) {
	if err := w.apply(ctx, op); err != nil {
		FailedOps.Inc()
		w.logger.Warn("sync: mirror operation failed", op.Entity, op.ID, err)
		select {
		case w.retry <- op:
		default:
			DroppedOps.Inc()
			w.logger.Error("sync: retry queue full, dropping operation", op.Entity, op.ID)
		}
		return
	}
	ProcessedOps.Inc()
}

func (w *Worker) apply(ctx context.Context, op core.MirrorOp) error {
	switch op.Entity {
	case "intern":
		if op.Verb == core.MirrorDelete {
			return w.remote.DeleteIntern(ctx, op.ID)
		}
		i, ok := op.Payload.(store.Intern)
		if !ok {
			return errors.Errorf("sync: bad intern payload for %s", op.ID)
		}
		if op.Verb == core.MirrorUpsert {
			if err := w.remote.UpdateIntern(ctx, i); err != nil {
				if core.IsNotFound(err) {
					return w.remote.CreateIntern(ctx, i)
				}
				return err
			}
			return nil
		}
	case "admin":
		a, ok := op.Payload.(store.Admin)
		if !ok {
			return errors.Errorf("sync: bad admin payload for %s", op.ID)
		}
		return w.remote.CreateAdmin(ctx, a)
	case "task":
		if op.Verb == core.MirrorDelete {
			return w.remote.DeleteTask(ctx, op.ID)
		}
		t, ok := op.Payload.(store.Task)
		if !ok {
			return errors.Errorf("sync: bad task payload for %s", op.ID)
		}
		if err := w.remote.UpdateTask(ctx, t); err != nil {
			if core.IsNotFound(err) {
				return w.remote.CreateTask(ctx, t)
			}
			return err
		}
		return nil
	case "attendance":
		a, ok := op.Payload.(store.Attendance)
		if !ok {
			return errors.Errorf("sync: bad attendance payload for %s", op.ID)
		}
		return w.remote.MarkAttendance(ctx, a)
	case "feedback":
		f, ok := op.Payload.(store.Feedback)
		if !ok {
			return errors.Errorf("sync: bad feedback payload for %s", op.ID)
		}
		if err := w.remote.UpdateFeedback(ctx, f); err != nil {
			if core.IsNotFound(err) {
				return w.remote.CreateFeedback(ctx, f)
			}
			return err
		}
		return nil
	case "document":
		if op.Verb == core.MirrorDelete {
			return w.remote.DeleteDocument(ctx, op.ID)
		}
		d, ok := op.Payload.(store.Document)
		if !ok {
			return errors.Errorf("sync: bad document payload for %s", op.ID)
		}
		return w.remote.UploadDocument(ctx, d)
	case "news":
		if op.Verb == core.MirrorDelete {
			return w.remote.DeleteNews(ctx, op.ID)
		}
		n, ok := op.Payload.(store.NewsItem)
		if !ok {
			return errors.Errorf("sync: bad news payload for %s", op.ID)
		}
		if err := w.remote.UpdateNews(ctx, n); err != nil {
			if core.IsNotFound(err) {
				return w.remote.CreateNews(ctx, n)
			}
			return err
		}
		return nil
	}
	return errors.Errorf("sync: unknown operation %s %s", op.Verb, op.Entity)
}

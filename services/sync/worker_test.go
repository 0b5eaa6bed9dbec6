package syncsvc

import (
	"context"
	"io/ioutil"
	"log"
	"testing"
	"time"

	"github.com/internhive/internhive/core"
	"github.com/internhive/internhive/core/store"
	logsvc "github.com/internhive/internhive/services/logger"
	dummydb "github.com/internhive/internhive/storage/database/dummy"
)

func setup(queueSize int) (*Worker, *dummydb.Repository) {
	remote := dummydb.Open()
	logger := logsvc.NewStdLogger(log.New(ioutil.Discard, "", 0))
	w := NewWorker(remote, logger, core.SyncConfig{
		PollInterval:  time.Hour,
		RetryInterval: time.Hour,
		QueueSize:     queueSize,
	})
	return w, remote
}

func TestWorker_upsertCreatesThenUpdates(t *testing.T) {
	w, remote := setup(16)
	ctx := context.Background()

	task := store.Task{ID: "t1", InternID: "i1", Title: "Write docs", Status: store.TaskPending}
	w.Enqueue(core.MirrorOp{Entity: "task", Verb: core.MirrorUpsert, ID: task.ID, Payload: task})
	w.ProcessOnce(ctx)

	got, ok := remote.TaskByID("t1")
	if !ok {
		t.Fatal("task t1 not mirrored")
	}
	if got.Status != store.TaskPending {
		t.Errorf("task.Status = %q; want %q", got.Status, store.TaskPending)
	}

	task.Status = store.TaskCompleted
	w.Enqueue(core.MirrorOp{Entity: "task", Verb: core.MirrorUpsert, ID: task.ID, Payload: task})
	w.ProcessOnce(ctx)

	if got, _ = remote.TaskByID("t1"); got.Status != store.TaskCompleted {
		t.Errorf("task.Status = %q; want %q", got.Status, store.TaskCompleted)
	}
	if n := remote.AttendanceCount(); n != 0 {
		t.Errorf("AttendanceCount() = %d; want 0", n)
	}
}

func TestWorker_delete(t *testing.T) {
	w, remote := setup(16)
	ctx := context.Background()

	task := store.Task{ID: "t1", InternID: "i1", Title: "Write docs", Status: store.TaskPending}
	w.Enqueue(core.MirrorOp{Entity: "task", Verb: core.MirrorUpsert, ID: task.ID, Payload: task})
	w.Enqueue(core.MirrorOp{Entity: "task", Verb: core.MirrorDelete, ID: task.ID})
	w.ProcessOnce(ctx)

	if _, ok := remote.TaskByID("t1"); ok {
		t.Error("task t1 still mirrored after delete")
	}
}

func TestWorker_attendanceUpsertKeepsOneRowPerDay(t *testing.T) {
	w, remote := setup(16)
	ctx := context.Background()

	rec := store.Attendance{ID: "a1", InternID: "i1", Date: "2024-03-01", Status: store.AttendancePresent}
	w.Enqueue(core.MirrorOp{Entity: "attendance", Verb: core.MirrorUpsert, ID: rec.ID, Payload: rec})
	rec.Status = store.AttendanceLate
	w.Enqueue(core.MirrorOp{Entity: "attendance", Verb: core.MirrorUpsert, ID: rec.ID, Payload: rec})
	w.ProcessOnce(ctx)

	if n := remote.AttendanceCount(); n != 1 {
		t.Errorf("AttendanceCount() = %d; want 1", n)
	}
}

func TestWorker_failedOpParksAndRetries(t *testing.T) {
	w, remote := setup(16)
	ctx := context.Background()
	remote.SetAvailable(false)

	task := store.Task{ID: "t1", InternID: "i1", Title: "Write docs", Status: store.TaskPending}
	w.Enqueue(core.MirrorOp{Entity: "task", Verb: core.MirrorUpsert, ID: task.ID, Payload: task})
	w.ProcessOnce(ctx)

	if _, ok := remote.TaskByID("t1"); ok {
		t.Fatal("task t1 mirrored while remote was down")
	}

	// One retry attempt per cycle once the remote comes back.
	remote.SetAvailable(true)
	w.retryOnce(ctx)

	if _, ok := remote.TaskByID("t1"); !ok {
		t.Error("task t1 not mirrored after retry")
	}
}

func TestWorker_fullOutboxDropsNewOps(t *testing.T) {
	w, remote := setup(1)
	ctx := context.Background()

	first := store.Task{ID: "t1", InternID: "i1", Title: "Kept", Status: store.TaskPending}
	second := store.Task{ID: "t2", InternID: "i1", Title: "Dropped", Status: store.TaskPending}
	w.Enqueue(core.MirrorOp{Entity: "task", Verb: core.MirrorUpsert, ID: first.ID, Payload: first})
	w.Enqueue(core.MirrorOp{Entity: "task", Verb: core.MirrorUpsert, ID: second.ID, Payload: second})
	w.ProcessOnce(ctx)

	if _, ok := remote.TaskByID("t1"); !ok {
		t.Error("task t1 not mirrored")
	}
	if _, ok := remote.TaskByID("t2"); ok {
		t.Error("task t2 mirrored; want dropped on full outbox")
	}
}

func TestWorker_badPayloadDoesNotReachRemote(t *testing.T) {
	w, remote := setup(16)

	w.Enqueue(core.MirrorOp{Entity: "task", Verb: core.MirrorUpsert, ID: "t1", Payload: 42})
	w.ProcessOnce(context.Background())

	if _, ok := remote.TaskByID("t1"); ok {
		t.Error("bad payload reached the remote")
	}
}

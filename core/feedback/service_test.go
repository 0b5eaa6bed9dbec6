package feedback

import (
	"testing"
	"time"

	"github.com/internhive/internhive/core"
	"github.com/internhive/internhive/core/store"
	testutil "github.com/internhive/internhive/tests"
)

func setup(t *testing.T) (*Service, *store.Store, store.Intern, store.Admin) {
	t.Helper()
	st := store.New(store.State{})
	jane := testutil.CreateIntern(t, st, "Jane", "jane@test.com")
	sarah := testutil.CreateAdmin(t, st, "Sarah", "sarah@test.com")
	return NewService(st, nil), st, jane, sarah
}

func TestService_create(t *testing.T) {
	origNowFunc := NowFunc
	NowFunc = func() time.Time { return time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC) }
	defer func() { NowFunc = origNowFunc }()

	svc, st, jane, sarah := setup(t)

	fb, err := svc.Create(NewFeedback{
		InternID: jane.ID,
		AdminID:  sarah.ID,
		Rating:   4,
		Comments: "  solid work  ",
	})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if fb.Comments != "solid work" {
		t.Errorf("comments = %q; want cleaned", fb.Comments)
	}
	if !fb.CreatedAt.Equal(NowFunc().UTC()) {
		t.Errorf("createdAt = %v", fb.CreatedAt)
	}
	if n := len(st.State().Feedback); n != 1 {
		t.Errorf("len(Feedback) = %d; want 1", n)
	}
}

func TestService_createValidation(t *testing.T) {
	svc, _, jane, sarah := setup(t)

	tests := []struct {
		name string
		in   NewFeedback
	}{
		{"missing intern", NewFeedback{AdminID: sarah.ID, Rating: 3}},
		{"unknown intern", NewFeedback{InternID: "ghost", AdminID: sarah.ID, Rating: 3}},
		{"rating too low", NewFeedback{InternID: jane.ID, AdminID: sarah.ID, Rating: 0}},
		{"rating too high", NewFeedback{InternID: jane.ID, AdminID: sarah.ID, Rating: 6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Create(tt.in); err == nil {
				t.Errorf("Create(%+v) succeeded; want error", tt.in)
			}
		})
	}
}

func TestService_update(t *testing.T) {
	svc, _, jane, sarah := setup(t)
	fb, err := svc.Create(NewFeedback{InternID: jane.ID, AdminID: sarah.ID, Rating: 3, Comments: "ok"})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	got, err := svc.Update(fb.ID, UpdateFeedback{Rating: 5})
	if err != nil {
		t.Fatalf("Update() failed: %v", err)
	}
	if got.Rating != 5 || got.Comments != "ok" {
		t.Errorf("feedback = %+v; want rating bumped, comments kept", got)
	}

	if _, err = svc.Update(fb.ID, UpdateFeedback{Rating: 9}); err == nil {
		t.Error("Update() with out-of-range rating succeeded")
	}
	if _, err = svc.Update("missing", UpdateFeedback{Rating: 2}); !core.IsNotFound(err) {
		t.Errorf("Update(missing) err = %v; want not found", err)
	}
}

func TestService_averageFor(t *testing.T) {
	svc, _, jane, sarah := setup(t)

	if _, ok := svc.AverageFor(jane.ID); ok {
		t.Error("AverageFor() ok = true without feedback")
	}

	for _, rating := range []int{4, 5} {
		if _, err := svc.Create(NewFeedback{InternID: jane.ID, AdminID: sarah.ID, Rating: rating}); err != nil {
			t.Fatalf("Create() failed: %v", err)
		}
	}
	avg, ok := svc.AverageFor(jane.ID)
	if !ok || avg != 4.5 {
		t.Errorf("AverageFor() = %v, %v; want 4.5, true", avg, ok)
	}
}

package attendance

import (
	"testing"

	"github.com/internhive/internhive/core/store"
	testutil "github.com/internhive/internhive/tests"
)

func setup(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	st := store.New(store.State{})
	return NewService(st, nil), st
}

func TestService_recordRequiresExistingIntern(t *testing.T) {
	svc, _ := setup(t)
	_, err := svc.Record(Mark{InternID: "ghost", Date: "2024-05-01", Status: store.AttendancePresent})
	if err == nil {
		t.Fatal("Record() succeeded for unknown intern; want error")
	}
}

// Marking the same day twice keeps exactly one record: the second mark
// overwrites the first instead of appending a duplicate row.
func TestService_sameDayMarkOverwrites(t *testing.T) {
	svc, st := setup(t)
	intern := testutil.CreateIntern(t, st, "Jane Doe", "jane@x.com")

	first, err := svc.Record(Mark{InternID: intern.ID, Date: "2024-05-01", Status: store.AttendancePresent, CheckInTime: "09:00"})
	if err != nil {
		t.Fatalf("Record() err = %v", err)
	}

	second, err := svc.Record(Mark{InternID: intern.ID, Date: "2024-05-01", Status: store.AttendanceLate})
	if err != nil {
		t.Fatalf("Record() err = %v", err)
	}

	records := svc.ForIntern(intern.ID)
	if len(records) != 1 {
		t.Fatalf("len(records) = %d; want 1 (deduplicated per day)", len(records))
	}
	if second.ID != first.ID {
		t.Errorf("second mark created new id %q; want overwrite of %q", second.ID, first.ID)
	}
	if records[0].Status != store.AttendanceLate {
		t.Errorf("status = %q; want the later mark to win", records[0].Status)
	}
	if records[0].CheckInTime != "09:00" {
		t.Errorf("checkInTime = %q; blank fields must not clobber", records[0].CheckInTime)
	}
}

func TestService_distinctDaysAccumulate(t *testing.T) {
	svc, st := setup(t)
	intern := testutil.CreateIntern(t, st, "Jane Doe", "jane@x.com")

	days := []string{"2024-05-01", "2024-05-02", "2024-05-03"}
	for _, d := range days {
		if _, err := svc.Record(Mark{InternID: intern.ID, Date: d, Status: store.AttendancePresent}); err != nil {
			t.Fatalf("Record(%s) err = %v", d, err)
		}
	}
	if got := len(svc.ForIntern(intern.ID)); got != len(days) {
		t.Errorf("len(records) = %d; want %d", got, len(days))
	}

	b := svc.Breakdown(intern.ID)
	if b.Present != 3 || b.Total != 3 {
		t.Errorf("breakdown = %+v", b)
	}
}

func TestService_validatesStatusAndDate(t *testing.T) {
	svc, st := setup(t)
	intern := testutil.CreateIntern(t, st, "Jane Doe", "jane@x.com")

	if _, err := svc.Record(Mark{InternID: intern.ID, Date: "2024-05-01", Status: "vacation"}); err == nil {
		t.Error("Record() accepted unknown status")
	}
	if _, err := svc.Record(Mark{InternID: intern.ID, Date: "May 1st", Status: store.AttendancePresent}); err == nil {
		t.Error("Record() accepted malformed date")
	}
}

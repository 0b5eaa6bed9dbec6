package attendance

import (
	"github.com/pkg/errors"

	"github.com/internhive/internhive/core"
	"github.com/internhive/internhive/core/store"
)

var ErrUnknownIntern = errors.New("attendance requires an existing intern")

// Mark contains information needed to record attendance for one day,
// whether marked by an admin or self-checked-in by the intern.
type Mark struct {
	InternID     string `json:"intern_id" validate:"required"`
	Date         string `json:"date" validate:"required,datetime=2006-01-02"`
	Status       string `json:"status" validate:"required,oneof=present absent late"`
	CheckInTime  string `json:"check_in_time"`
	CheckOutTime string `json:"check_out_time"`
}

func (m *Mark) Validate(svc *Service) error {
	if err := core.Validate.Struct(m); err != nil {
		return err
	}
	return svc.checkInternExists(m.InternID)
}

type Service struct {
	store  *store.Store
	mirror core.Mirror
}

func NewService(st *store.Store, mirror core.Mirror) *Service {
	if mirror == nil {
		mirror = core.NopMirror{}
	}
	return &Service{store: st, mirror: mirror}
}

func (svc *Service) checkInternExists(internID string) error {
	for _, i := range svc.store.State().Interns {
		if i.ID == internID {
			return nil
		}
	}
	return core.NewValidationError(ErrUnknownIntern, core.FieldError{Field: "intern_id", Error: ErrUnknownIntern.Error()})
}

// Record marks attendance for (intern, date). One record per pair: marking
// the same day again overwrites the existing record instead of appending a
// duplicate, matching the remote schema's unique key. This deviates from
// the in-memory reference behavior, which appended duplicate rows.
func (svc *Service) Record(m Mark) (store.Attendance, error) {
	if err := m.Validate(svc); err != nil {
		return store.Attendance{}, err
	}

	for _, a := range svc.store.State().Attendance {
		if a.InternID == m.InternID && a.Date == m.Date {
			a.Status = m.Status
			if m.CheckInTime != "" {
				a.CheckInTime = m.CheckInTime
			}
			if m.CheckOutTime != "" {
				a.CheckOutTime = m.CheckOutTime
			}
			svc.store.Dispatch(store.AttendanceUpdated(a))
			svc.mirror.Enqueue(core.MirrorOp{Entity: "attendance", Verb: core.MirrorUpsert, ID: a.ID, Payload: a})
			return a, nil
		}
	}

	rec := store.Attendance{
		ID:           store.NewID(),
		InternID:     m.InternID,
		Date:         m.Date,
		Status:       m.Status,
		CheckInTime:  m.CheckInTime,
		CheckOutTime: m.CheckOutTime,
	}
	svc.store.Dispatch(store.AttendanceAdded(rec))
	svc.mirror.Enqueue(core.MirrorOp{Entity: "attendance", Verb: core.MirrorUpsert, ID: rec.ID, Payload: rec})
	return rec, nil
}

func (svc *Service) ForIntern(internID string) []store.Attendance {
	return store.AttendanceFor(svc.store.State(), internID)
}

// Breakdown counts an intern's records by status.
func (svc *Service) Breakdown(internID string) store.Breakdown {
	return store.AttendanceBreakdown(svc.ForIntern(internID))
}

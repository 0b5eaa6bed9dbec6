package task

import (
	"time"

	"github.com/pkg/errors"

	"github.com/internhive/internhive/core"
	"github.com/internhive/internhive/core/store"
)

var (
	NowFunc = time.Now // mockable

	// errors
	ErrUnknownIntern = errors.New("task must be assigned to an existing intern")
	ErrNotAssignee   = errors.New("only the assigned intern may advance this task")
)

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

// Create assigns a new pending task. The intern must exist in the current
// snapshot; later intern deletion does not cascade here.
func (svc *Service) Create(nt NewTask) (store.Task, error) {
	if err := nt.Validate(svc); err != nil {
		return store.Task{}, err
	}

	rec := store.Task{
		ID:              store.NewID(),
		InternID:        nt.InternID,
		AssignedAdminID: nt.AssignedAdminID,
		Title:           nt.Title,
		Description:     nt.Description,
		Deadline:        nt.Deadline,
		Status:          store.TaskPending,
	}
	svc.store.Dispatch(store.TaskAdded(rec))
	svc.mirror.Enqueue(core.MirrorOp{Entity: "task", Verb: core.MirrorUpsert, ID: rec.ID, Payload: rec})
	return rec, nil
}

func (svc *Service) GetByID(id string) (store.Task, error) {
	for _, t := range svc.store.State().Tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return store.Task{}, core.NewNotFoundError("task", id)
}

func (svc *Service) QueryAll() []store.Task {
	return svc.store.State().Tasks
}

func (svc *Service) ForIntern(internID string) []store.Task {
	return store.TasksFor(svc.store.State(), internID)
}

// Advance is the intern self-service path: rule-gated, and only the
// assigned intern may call it.
func (svc *Service) Advance(actorInternID, taskID, target string, sub *Submission) (store.Task, error) {
	t, err := svc.GetByID(taskID)
	if err != nil {
		return store.Task{}, err
	}
	if t.InternID != actorInternID {
		return store.Task{}, core.NewValidationError(ErrNotAssignee)
	}
	if sub != nil {
		if err := sub.Validate(); err != nil {
			return store.Task{}, err
		}
	}

	next, err := AdvanceAsIntern(t, target, sub)
	if err != nil {
		return store.Task{}, err
	}
	svc.store.Dispatch(store.TaskUpdated(next))
	svc.mirror.Enqueue(core.MirrorOp{Entity: "task", Verb: core.MirrorUpsert, ID: next.ID, Payload: next})
	return next, nil
}

// ReplaceAsAdmin is the unrestricted admin edit: it replaces the stored
// record wholesale with no transition gating. Kept deliberately distinct
// from Advance.
func (svc *Service) ReplaceAsAdmin(id string, t store.Task) (store.Task, error) {
	if _, err := svc.GetByID(id); err != nil {
		return store.Task{}, err
	}
	t.ID = id
	svc.store.Dispatch(store.TaskUpdated(t))
	svc.mirror.Enqueue(core.MirrorOp{Entity: "task", Verb: core.MirrorUpsert, ID: t.ID, Payload: t})
	return t, nil
}

func (svc *Service) Delete(id string) error {
	if _, err := svc.GetByID(id); err != nil {
		return err
	}
	svc.store.Dispatch(store.TaskDeleted(id))
	svc.mirror.Enqueue(core.MirrorOp{Entity: "task", Verb: core.MirrorDelete, ID: id})
	return nil
}

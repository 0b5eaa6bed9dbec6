package feedback

import (
	"time"

	"github.com/pkg/errors"

	"github.com/internhive/internhive/core"
	"github.com/internhive/internhive/core/store"
)

var (
	NowFunc = time.Now

	ErrUnknownIntern = errors.New("feedback requires an existing intern")
)

// NewFeedback is an admin's performance review of an intern.
type NewFeedback struct {
	InternID string `json:"intern_id" validate:"required"`
	AdminID  string `json:"admin_id" validate:"required"`
	Rating   int    `json:"rating" validate:"required,min=1,max=5"`
	Comments string `json:"comments"`
}

func (nf *NewFeedback) Validate(svc *Service) error {
	nf.Comments = core.CleanString(nf.Comments)
	if err := core.Validate.Struct(nf); err != nil {
		return err
	}
	return svc.checkInternExists(nf.InternID)
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

func (svc *Service) Create(nf NewFeedback) (store.Feedback, error) {
	if err := nf.Validate(svc); err != nil {
		return store.Feedback{}, err
	}
	fb := store.Feedback{
		ID:        store.NewID(),
		InternID:  nf.InternID,
		AdminID:   nf.AdminID,
		Rating:    nf.Rating,
		Comments:  nf.Comments,
		CreatedAt: NowFunc().UTC(),
	}
	svc.store.Dispatch(store.FeedbackAdded(fb))
	svc.mirror.Enqueue(core.MirrorOp{Entity: "feedback", Verb: core.MirrorUpsert, ID: fb.ID, Payload: fb})
	return fb, nil
}

// UpdateFeedback lets the author amend the rating or comments afterwards.
type UpdateFeedback struct {
	Rating   int    `json:"rating" validate:"omitempty,min=1,max=5"`
	Comments string `json:"comments"`
}

func (uf *UpdateFeedback) Validate() error {
	uf.Comments = core.CleanString(uf.Comments)
	return core.Validate.Struct(uf)
}

func (svc *Service) Update(id string, uf UpdateFeedback) (store.Feedback, error) {
	if err := uf.Validate(); err != nil {
		return store.Feedback{}, err
	}
	fb, err := svc.GetByID(id)
	if err != nil {
		return store.Feedback{}, err
	}
	if uf.Rating != 0 {
		fb.Rating = uf.Rating
	}
	if uf.Comments != "" {
		fb.Comments = uf.Comments
	}
	svc.store.Dispatch(store.FeedbackUpdated(fb))
	svc.mirror.Enqueue(core.MirrorOp{Entity: "feedback", Verb: core.MirrorUpsert, ID: fb.ID, Payload: fb})
	return fb, nil
}

func (svc *Service) GetByID(id string) (store.Feedback, error) {
	for _, fb := range svc.store.State().Feedback {
		if fb.ID == id {
			return fb, nil
		}
	}
	return store.Feedback{}, core.NewNotFoundError("feedback", id)
}

func (svc *Service) ForIntern(internID string) []store.Feedback {
	return store.FeedbackFor(svc.store.State(), internID)
}

// AverageFor reports the intern's mean rating; ok is false with no feedback.
func (svc *Service) AverageFor(internID string) (avg float64, ok bool) {
	return store.AverageRating(svc.ForIntern(internID))
}

package intern

import (
	"fmt"
	"net/mail"
	"time"

	"github.com/pkg/errors"

	"github.com/internhive/internhive/core"
	"github.com/internhive/internhive/core/store"
)

var (
	NowFunc = time.Now // mockable

	// errors
	ErrEmailExists = errors.New("an intern with this email already exists")
)

// Service implements intern writes: each commits locally through the store
// and queues a best-effort mirror op. Local state is the source of truth.
type Service struct {
	store   *store.Store
	mirror  core.Mirror
	mailSvc core.EmailService
}

func NewService(st *store.Store, mirror core.Mirror, mailSvc core.EmailService) *Service {
	if mirror == nil {
		mirror = core.NopMirror{}
	}
	return &Service{store: st, mirror: mirror, mailSvc: mailSvc}
}

func (svc *Service) checkEmailUniqueness(email string) error {
	for _, i := range svc.store.State().Interns {
		if i.Email == email {
			return core.NewValidationError(ErrEmailExists, core.FieldError{Field: "email", Error: ErrEmailExists.Error()})
		}
	}
	return nil
}

// Signup registers a new intern account. The record is committed locally
// first; the remote mirror is attempted out-of-band and its failure never
// surfaces here.
func (svc *Service) Signup(ni NewIntern) (store.Intern, error) {
	if err := ni.Validate(svc); err != nil {
		return store.Intern{}, err
	}

	now := NowFunc().UTC()
	rec := store.Intern{
		ID:         store.NewID(),
		Name:       ni.Name,
		Email:      ni.Email,
		Phone:      ni.Phone,
		University: ni.University,
		Program:    ni.Program,
		Skills:     core.ParseSkills(ni.Skills),
		Status:     store.InternActive,
		StartDate:  now.Format(dateLayout),
		EndDate:    now.Add(DefaultTermLength).Format(dateLayout),
	}
	if admins := svc.store.State().Admins; len(admins) > 0 {
		rec.AssignedAdminID = admins[0].ID
	}

	hash, err := core.HashPassword(ni.Password)
	if err != nil {
		return store.Intern{}, errors.Wrap(err, "hashing password")
	}
	rec.PasswordHash = hash

	svc.store.Dispatch(store.InternAdded(rec))
	svc.mirror.Enqueue(core.MirrorOp{Entity: "intern", Verb: core.MirrorUpsert, ID: rec.ID, Payload: rec})
	svc.sendWelcomeMail(rec)
	return rec, nil
}

func (svc *Service) GetByID(id string) (store.Intern, error) {
	for _, i := range svc.store.State().Interns {
		if i.ID == id {
			return i, nil
		}
	}
	return store.Intern{}, core.NewNotFoundError("intern", id)
}

func (svc *Service) GetByEmail(email string) (store.Intern, error) {
	email = core.CleanString(email, true /* lower */)
	for _, i := range svc.store.State().Interns {
		if i.Email == email {
			return i, nil
		}
	}
	return store.Intern{}, core.NewNotFoundError("intern", email)
}

func (svc *Service) QueryAll() []store.Intern {
	return svc.store.State().Interns
}

func (svc *Service) Update(id string, ui UpdateIntern) (store.Intern, error) {
	orig, err := svc.GetByID(id)
	if err != nil {
		return store.Intern{}, err
	}
	if err := ui.Validate(orig, svc); err != nil {
		return store.Intern{}, err
	}

	next := ui.apply(orig)
	svc.store.Dispatch(store.InternUpdated(next))
	svc.mirror.Enqueue(core.MirrorOp{Entity: "intern", Verb: core.MirrorUpsert, ID: next.ID, Payload: next})
	return next, nil
}

// Delete removes the intern record. Tasks and attendance referencing the
// intern are left in place (no cascade), matching the reference behavior.
func (svc *Service) Delete(id string) error {
	if _, err := svc.GetByID(id); err != nil {
		return err
	}
	svc.store.Dispatch(store.InternDeleted(id))
	svc.mirror.Enqueue(core.MirrorOp{Entity: "intern", Verb: core.MirrorDelete, ID: id})
	return nil
}

func (svc *Service) sendWelcomeMail(rec store.Intern) {
	if svc.mailSvc == nil {
		return
	}
	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:      []mail.Address{{Name: rec.Name, Address: rec.Email}},
		Subject: "Welcome aboard",
		BodyStr: fmt.Sprintf(
			"Hi %s,\n\nYour intern account is ready. Your internship runs from %s to %s.\n",
			rec.Name, rec.StartDate, rec.EndDate,
		),
	})
}

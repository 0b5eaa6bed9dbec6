package admin

import (
	"time"

	"github.com/pkg/errors"

	"github.com/internhive/internhive/core"
	"github.com/internhive/internhive/core/store"
)

var (
	NowFunc = time.Now // mockable

	// errors
	ErrEmailExists = errors.New("an admin with this email already exists")
)

// Service implements admin account writes. Admins are never updated or
// deleted in-app; the observed action set only creates them.
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

func (svc *Service) checkEmailUniqueness(email string) error {
	for _, a := range svc.store.State().Admins {
		if a.Email == email {
			return core.NewValidationError(ErrEmailExists, core.FieldError{Field: "email", Error: ErrEmailExists.Error()})
		}
	}
	return nil
}

// Signup registers a new admin account, committing locally before the
// best-effort remote mirror.
func (svc *Service) Signup(na NewAdmin) (store.Admin, error) {
	if err := na.Validate(svc); err != nil {
		return store.Admin{}, err
	}

	rec := store.Admin{
		ID:        store.NewID(),
		Name:      na.Name,
		Email:     na.Email,
		Role:      na.Role,
		CreatedAt: NowFunc().UTC(),
	}
	hash, err := core.HashPassword(na.Password)
	if err != nil {
		return store.Admin{}, errors.Wrap(err, "hashing password")
	}
	rec.PasswordHash = hash

	svc.store.Dispatch(store.AdminAdded(rec))
	svc.mirror.Enqueue(core.MirrorOp{Entity: "admin", Verb: core.MirrorUpsert, ID: rec.ID, Payload: rec})
	return rec, nil
}

func (svc *Service) GetByEmail(email string) (store.Admin, error) {
	email = core.CleanString(email, true /* lower */)
	for _, a := range svc.store.State().Admins {
		if a.Email == email {
			return a, nil
		}
	}
	return store.Admin{}, core.NewNotFoundError("admin", email)
}

func (svc *Service) QueryAll() []store.Admin {
	return svc.store.State().Admins
}

package document

import (
	"time"

	"github.com/pkg/errors"

	"github.com/internhive/internhive/core"
	"github.com/internhive/internhive/core/store"
)

var (
	NowFunc = time.Now

	ErrUnknownIntern = errors.New("document requires an existing intern")
)

// Upload describes a file an intern attaches to their profile. The file
// itself lives elsewhere; only its metadata and URL are kept.
type Upload struct {
	InternID string `json:"intern_id" validate:"required"`
	Title    string `json:"title" validate:"required"`
	FileName string `json:"file_name" validate:"required"`
	FileURL  string `json:"file_url" validate:"required,url"`
	FileType string `json:"file_type"`
	FileSize int64  `json:"file_size" validate:"min=0"`
	Type     string `json:"type" validate:"omitempty,oneof=resume certificate report other"`
}

func (u *Upload) Validate(svc *Service) error {
	u.Title = core.CleanString(u.Title)
	if err := core.Validate.Struct(u); err != nil {
		return err
	}
	return svc.checkInternExists(u.InternID)
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

func (svc *Service) Create(u Upload) (store.Document, error) {
	if err := u.Validate(svc); err != nil {
		return store.Document{}, err
	}
	typ := u.Type
	if typ == "" {
		typ = "other"
	}
	doc := store.Document{
		ID:         store.NewID(),
		InternID:   u.InternID,
		Title:      u.Title,
		FileName:   u.FileName,
		FileURL:    u.FileURL,
		UploadDate: NowFunc().UTC().Format("2006-01-02"),
		FileType:   u.FileType,
		FileSize:   u.FileSize,
		Type:       typ,
	}
	svc.store.Dispatch(store.DocumentAdded(doc))
	svc.mirror.Enqueue(core.MirrorOp{Entity: "document", Verb: core.MirrorUpsert, ID: doc.ID, Payload: doc})
	return doc, nil
}

func (svc *Service) GetByID(id string) (store.Document, error) {
	for _, doc := range svc.store.State().Documents {
		if doc.ID == id {
			return doc, nil
		}
	}
	return store.Document{}, core.NewNotFoundError("document", id)
}

func (svc *Service) ForIntern(internID string) []store.Document {
	return store.DocumentsFor(svc.store.State(), internID)
}

func (svc *Service) Delete(id string) error {
	if _, err := svc.GetByID(id); err != nil {
		return err
	}
	svc.store.Dispatch(store.DocumentDeleted(id))
	svc.mirror.Enqueue(core.MirrorOp{Entity: "document", Verb: core.MirrorDelete, ID: id})
	return nil
}

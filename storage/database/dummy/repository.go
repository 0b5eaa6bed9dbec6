package dummydb

import (
	"context"
	"sync"

	"github.com/internhive/internhive/core"
	"github.com/internhive/internhive/core/store"
)

// Repository is an in-memory stand-in for the hosted backend, used by
// service tests and offline runs. SetAvailable(false) makes every call
// fail with ErrRemoteUnavailable.
type Repository struct {
	mu          sync.RWMutex
	unavailable bool

	admins     map[string]store.Admin
	interns    map[string]store.Intern
	tasks      map[string]store.Task
	attendance map[string]store.Attendance
	feedback   map[string]store.Feedback
	documents  map[string]store.Document
	news       map[string]store.NewsItem
}

var _ core.RemoteRepository = (*Repository)(nil)

func Open() *Repository {
	return &Repository{
		admins:     make(map[string]store.Admin),
		interns:    make(map[string]store.Intern),
		tasks:      make(map[string]store.Task),
		attendance: make(map[string]store.Attendance),
		feedback:   make(map[string]store.Feedback),
		documents:  make(map[string]store.Document),
		news:       make(map[string]store.NewsItem),
	}
}

func (repo *Repository) SetAvailable(available bool) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	repo.unavailable = !available
}

func (repo *Repository) check() error {
	if repo.unavailable {
		return core.ErrRemoteUnavailable
	}
	return nil
}

func (repo *Repository) Ping(context.Context) error {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	return repo.check()
}

func (repo *Repository) GetAdminByEmail(_ context.Context, email string) (store.Admin, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	if err := repo.check(); err != nil {
		return store.Admin{}, err
	}
	for _, a := range repo.admins {
		if a.Email == email {
			return a, nil
		}
	}
	return store.Admin{}, core.NewNotFoundError("admin", email)
}

func (repo *Repository) CreateAdmin(_ context.Context, a store.Admin) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if err := repo.check(); err != nil {
		return err
	}
	repo.admins[a.ID] = a
	return nil
}

func (repo *Repository) GetInterns(context.Context) ([]store.Intern, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	if err := repo.check(); err != nil {
		return nil, err
	}
	interns := make([]store.Intern, 0, len(repo.interns))
	for _, i := range repo.interns {
		interns = append(interns, i)
	}
	return interns, nil
}

func (repo *Repository) GetInternByEmail(_ context.Context, email string) (store.Intern, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	if err := repo.check(); err != nil {
		return store.Intern{}, err
	}
	for _, i := range repo.interns {
		if i.Email == email {
			return i, nil
		}
	}
	return store.Intern{}, core.NewNotFoundError("intern", email)
}

func (repo *Repository) CreateIntern(_ context.Context, i store.Intern) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if err := repo.check(); err != nil {
		return err
	}
	repo.interns[i.ID] = i
	return nil
}

func (repo *Repository) UpdateIntern(_ context.Context, i store.Intern) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if err := repo.check(); err != nil {
		return err
	}
	if _, ok := repo.interns[i.ID]; !ok {
		return core.NewNotFoundError("intern", i.ID)
	}
	repo.interns[i.ID] = i
	return nil
}

func (repo *Repository) DeleteIntern(_ context.Context, id string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if err := repo.check(); err != nil {
		return err
	}
	delete(repo.interns, id)
	return nil
}

func (repo *Repository) CreateTask(_ context.Context, t store.Task) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if err := repo.check(); err != nil {
		return err
	}
	repo.tasks[t.ID] = t
	return nil
}

func (repo *Repository) UpdateTask(_ context.Context, t store.Task) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if err := repo.check(); err != nil {
		return err
	}
	if _, ok := repo.tasks[t.ID]; !ok {
		return core.NewNotFoundError("task", t.ID)
	}
	repo.tasks[t.ID] = t
	return nil
}

func (repo *Repository) DeleteTask(_ context.Context, id string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if err := repo.check(); err != nil {
		return err
	}
	delete(repo.tasks, id)
	return nil
}

func (repo *Repository) MarkAttendance(_ context.Context, a store.Attendance) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if err := repo.check(); err != nil {
		return err
	}
	// enforce the (intern, date) unique key the real schema carries
	for id, existing := range repo.attendance {
		if existing.InternID == a.InternID && existing.Date == a.Date {
			delete(repo.attendance, id)
			break
		}
	}
	repo.attendance[a.ID] = a
	return nil
}

func (repo *Repository) CreateFeedback(_ context.Context, f store.Feedback) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if err := repo.check(); err != nil {
		return err
	}
	repo.feedback[f.ID] = f
	return nil
}

func (repo *Repository) UpdateFeedback(_ context.Context, f store.Feedback) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if err := repo.check(); err != nil {
		return err
	}
	if _, ok := repo.feedback[f.ID]; !ok {
		return core.NewNotFoundError("feedback", f.ID)
	}
	repo.feedback[f.ID] = f
	return nil
}

func (repo *Repository) UploadDocument(_ context.Context, d store.Document) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if err := repo.check(); err != nil {
		return err
	}
	repo.documents[d.ID] = d
	return nil
}

func (repo *Repository) DeleteDocument(_ context.Context, id string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if err := repo.check(); err != nil {
		return err
	}
	delete(repo.documents, id)
	return nil
}

func (repo *Repository) GetNews(context.Context) ([]store.NewsItem, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	if err := repo.check(); err != nil {
		return nil, err
	}
	items := make([]store.NewsItem, 0, len(repo.news))
	for _, n := range repo.news {
		items = append(items, n)
	}
	return items, nil
}

func (repo *Repository) CreateNews(_ context.Context, n store.NewsItem) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if err := repo.check(); err != nil {
		return err
	}
	repo.news[n.ID] = n
	return nil
}

func (repo *Repository) UpdateNews(_ context.Context, n store.NewsItem) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if err := repo.check(); err != nil {
		return err
	}
	if _, ok := repo.news[n.ID]; !ok {
		return core.NewNotFoundError("news", n.ID)
	}
	repo.news[n.ID] = n
	return nil
}

func (repo *Repository) DeleteNews(_ context.Context, id string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if err := repo.check(); err != nil {
		return err
	}
	delete(repo.news, id)
	return nil
}

// TaskByID exposes mirrored tasks to tests.
func (repo *Repository) TaskByID(id string) (store.Task, bool) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	t, ok := repo.tasks[id]
	return t, ok
}

// AttendanceCount reports the number of mirrored attendance rows.
func (repo *Repository) AttendanceCount() int {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	return len(repo.attendance)
}

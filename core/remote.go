package core

import (
	"context"

	"github.com/internhive/internhive/core/store"
)

// RemoteRepository is the hosted backend the store mirrors into. Writes go
// through the sync worker; the only synchronous reads are news (landing
// carousel) and credential lookups during login. Implementations report
// connectivity problems as ErrRemoteUnavailable so callers can fall through
// to local data.
type RemoteRepository interface {
	Ping(ctx context.Context) error

	GetNews(ctx context.Context) ([]store.NewsItem, error)
	CreateNews(ctx context.Context, n store.NewsItem) error
	UpdateNews(ctx context.Context, n store.NewsItem) error
	DeleteNews(ctx context.Context, id string) error

	GetAdminByEmail(ctx context.Context, email string) (store.Admin, error)
	CreateAdmin(ctx context.Context, a store.Admin) error

	GetInterns(ctx context.Context) ([]store.Intern, error)
	GetInternByEmail(ctx context.Context, email string) (store.Intern, error)
	CreateIntern(ctx context.Context, i store.Intern) error
	UpdateIntern(ctx context.Context, i store.Intern) error
	DeleteIntern(ctx context.Context, id string) error

	CreateTask(ctx context.Context, t store.Task) error
	UpdateTask(ctx context.Context, t store.Task) error
	DeleteTask(ctx context.Context, id string) error

	MarkAttendance(ctx context.Context, a store.Attendance) error
	CreateFeedback(ctx context.Context, f store.Feedback) error
	UpdateFeedback(ctx context.Context, f store.Feedback) error
	UploadDocument(ctx context.Context, d store.Document) error
	DeleteDocument(ctx context.Context, id string) error
}

package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/internhive/internhive/core"
	"github.com/internhive/internhive/core/store"
)

// Repository is the hosted Postgres implementation of core.RemoteRepository.
type Repository struct {
	db *sqlx.DB
}

var _ core.RemoteRepository = (*Repository)(nil)

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

func (repo *Repository) Ping(ctx context.Context) error {
	if err := repo.db.PingContext(ctx); err != nil {
		return errors.Wrapf(core.ErrRemoteUnavailable, "pinging: %v", err)
	}
	return nil
}

// wrapErr separates "the server rejected the statement" from "the server
// could not be reached"; only the latter maps to ErrRemoteUnavailable.
func wrapErr(err error, msg string) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(*pq.Error); ok {
		return errors.Wrap(err, msg)
	}
	return errors.Wrapf(core.ErrRemoteUnavailable, "%s: %v", msg, err)
}

// --- admins ---

type adminRow struct {
	ID           string    `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	Role         string    `db:"role"`
	PasswordHash []byte    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

func (r adminRow) toAdmin() store.Admin {
	return store.Admin{
		ID:           r.ID,
		Name:         r.Name,
		Email:        r.Email,
		Role:         r.Role,
		PasswordHash: r.PasswordHash,
		CreatedAt:    r.CreatedAt,
	}
}

func (repo *Repository) GetAdminByEmail(ctx context.Context, email string) (store.Admin, error) {
	var row adminRow
	err := repo.db.GetContext(ctx, &row,
		`SELECT id, name, email, role, password_hash, created_at FROM admins WHERE email = $1`, email)
	if err == sql.ErrNoRows {
		return store.Admin{}, core.NewNotFoundError("admin", email)
	}
	if err != nil {
		return store.Admin{}, wrapErr(err, "getting admin")
	}
	return row.toAdmin(), nil
}

func (repo *Repository) CreateAdmin(ctx context.Context, a store.Admin) error {
	_, err := repo.db.ExecContext(ctx,
		`INSERT INTO admins (id, name, email, role, password_hash, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (id) DO NOTHING`,
		a.ID, a.Name, a.Email, a.Role, a.PasswordHash, a.CreatedAt)
	return wrapErr(err, "creating admin")
}

// --- interns ---

type internRow struct {
	ID              string         `db:"id"`
	Name            string         `db:"name"`
	Email           string         `db:"email"`
	Phone           null.String    `db:"phone"`
	University      null.String    `db:"university"`
	Program         null.String    `db:"program"`
	Skills          pq.StringArray `db:"skills"`
	Status          string         `db:"status"`
	StartDate       null.String    `db:"start_date"`
	EndDate         null.String    `db:"end_date"`
	AssignedAdminID null.String    `db:"assigned_admin_id"`
	ProfileImage    null.String    `db:"profile_image"`
	PasswordHash    []byte         `db:"password_hash"`
}

func (r internRow) toIntern() store.Intern {
	return store.Intern{
		ID:              r.ID,
		Name:            r.Name,
		Email:           r.Email,
		Phone:           r.Phone.String,
		University:      r.University.String,
		Program:         r.Program.String,
		Skills:          []string(r.Skills),
		Status:          r.Status,
		StartDate:       r.StartDate.String,
		EndDate:         r.EndDate.String,
		AssignedAdminID: r.AssignedAdminID.String,
		ProfileImage:    r.ProfileImage.String,
		PasswordHash:    r.PasswordHash,
	}
}

const internCols = `id, name, email, phone, university, program, skills, status,
	start_date, end_date, assigned_admin_id, profile_image, password_hash`

func (repo *Repository) GetInterns(ctx context.Context) ([]store.Intern, error) {
	var rows []internRow
	err := repo.db.SelectContext(ctx, &rows, `SELECT `+internCols+` FROM interns ORDER BY name`)
	if err != nil {
		return nil, wrapErr(err, "listing interns")
	}
	interns := make([]store.Intern, 0, len(rows))
	for _, r := range rows {
		interns = append(interns, r.toIntern())
	}
	return interns, nil
}

func (repo *Repository) GetInternByEmail(ctx context.Context, email string) (store.Intern, error) {
	var row internRow
	err := repo.db.GetContext(ctx, &row, `SELECT `+internCols+` FROM interns WHERE email = $1`, email)
	if err == sql.ErrNoRows {
		return store.Intern{}, core.NewNotFoundError("intern", email)
	}
	if err != nil {
		return store.Intern{}, wrapErr(err, "getting intern")
	}
	return row.toIntern(), nil
}

func (repo *Repository) CreateIntern(ctx context.Context, i store.Intern) error {
	_, err := repo.db.ExecContext(ctx,
		`INSERT INTO interns (`+internCols+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		 ON CONFLICT (id) DO NOTHING`,
		i.ID, i.Name, i.Email, null.NewString(i.Phone, i.Phone != ""),
		null.NewString(i.University, i.University != ""), null.NewString(i.Program, i.Program != ""),
		pq.StringArray(i.Skills), i.Status, null.NewString(i.StartDate, i.StartDate != ""),
		null.NewString(i.EndDate, i.EndDate != ""), null.NewString(i.AssignedAdminID, i.AssignedAdminID != ""),
		null.NewString(i.ProfileImage, i.ProfileImage != ""), i.PasswordHash)
	return wrapErr(err, "creating intern")
}

func (repo *Repository) UpdateIntern(ctx context.Context, i store.Intern) error {
	res, err := repo.db.ExecContext(ctx,
		`UPDATE interns SET name = $2, email = $3, phone = $4, university = $5, program = $6,
		 skills = $7, status = $8, start_date = $9, end_date = $10, assigned_admin_id = $11,
		 profile_image = $12, password_hash = $13
		 WHERE id = $1`,
		i.ID, i.Name, i.Email, null.NewString(i.Phone, i.Phone != ""),
		null.NewString(i.University, i.University != ""), null.NewString(i.Program, i.Program != ""),
		pq.StringArray(i.Skills), i.Status, null.NewString(i.StartDate, i.StartDate != ""),
		null.NewString(i.EndDate, i.EndDate != ""), null.NewString(i.AssignedAdminID, i.AssignedAdminID != ""),
		null.NewString(i.ProfileImage, i.ProfileImage != ""), i.PasswordHash)
	if err != nil {
		return wrapErr(err, "updating intern")
	}
	return noneUpdated(res, "intern", i.ID)
}

func (repo *Repository) DeleteIntern(ctx context.Context, id string) error {
	_, err := repo.db.ExecContext(ctx, `DELETE FROM interns WHERE id = $1`, id)
	return wrapErr(err, "deleting intern")
}

// --- tasks ---

func (repo *Repository) CreateTask(ctx context.Context, t store.Task) error {
	_, err := repo.db.ExecContext(ctx,
		`INSERT INTO tasks (id, intern_id, assigned_admin_id, title, description, deadline, status,
		 submission_url, submitted_at, submission_file_name, submission_comment)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 ON CONFLICT (id) DO NOTHING`,
		t.ID, t.InternID, null.NewString(t.AssignedAdminID, t.AssignedAdminID != ""), t.Title,
		null.NewString(t.Description, t.Description != ""), null.NewString(t.Deadline, t.Deadline != ""),
		t.Status, null.NewString(t.SubmissionURL, t.SubmissionURL != ""),
		null.NewString(t.SubmittedAt, t.SubmittedAt != ""),
		null.NewString(t.SubmissionFileName, t.SubmissionFileName != ""),
		null.NewString(t.SubmissionComment, t.SubmissionComment != ""))
	return wrapErr(err, "creating task")
}

func (repo *Repository) UpdateTask(ctx context.Context, t store.Task) error {
	res, err := repo.db.ExecContext(ctx,
		`UPDATE tasks SET intern_id = $2, assigned_admin_id = $3, title = $4, description = $5,
		 deadline = $6, status = $7, submission_url = $8, submitted_at = $9,
		 submission_file_name = $10, submission_comment = $11
		 WHERE id = $1`,
		t.ID, t.InternID, null.NewString(t.AssignedAdminID, t.AssignedAdminID != ""), t.Title,
		null.NewString(t.Description, t.Description != ""), null.NewString(t.Deadline, t.Deadline != ""),
		t.Status, null.NewString(t.SubmissionURL, t.SubmissionURL != ""),
		null.NewString(t.SubmittedAt, t.SubmittedAt != ""),
		null.NewString(t.SubmissionFileName, t.SubmissionFileName != ""),
		null.NewString(t.SubmissionComment, t.SubmissionComment != ""))
	if err != nil {
		return wrapErr(err, "updating task")
	}
	return noneUpdated(res, "task", t.ID)
}

func (repo *Repository) DeleteTask(ctx context.Context, id string) error {
	_, err := repo.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	return wrapErr(err, "deleting task")
}

// --- attendance ---

func (repo *Repository) MarkAttendance(ctx context.Context, a store.Attendance) error {
	// the (intern_id, date) unique key makes the overwrite policy explicit
	_, err := repo.db.ExecContext(ctx,
		`INSERT INTO attendance (id, intern_id, date, status, check_in_time, check_out_time)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (intern_id, date) DO UPDATE
		 SET status = EXCLUDED.status, check_in_time = EXCLUDED.check_in_time,
		     check_out_time = EXCLUDED.check_out_time`,
		a.ID, a.InternID, a.Date, a.Status,
		null.NewString(a.CheckInTime, a.CheckInTime != ""),
		null.NewString(a.CheckOutTime, a.CheckOutTime != ""))
	return wrapErr(err, "marking attendance")
}

// --- feedback ---

func (repo *Repository) CreateFeedback(ctx context.Context, f store.Feedback) error {
	_, err := repo.db.ExecContext(ctx,
		`INSERT INTO feedback (id, intern_id, admin_id, rating, comments, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (id) DO NOTHING`,
		f.ID, f.InternID, null.NewString(f.AdminID, f.AdminID != ""), f.Rating,
		null.NewString(f.Comments, f.Comments != ""), f.CreatedAt)
	return wrapErr(err, "creating feedback")
}

func (repo *Repository) UpdateFeedback(ctx context.Context, f store.Feedback) error {
	res, err := repo.db.ExecContext(ctx,
		`UPDATE feedback SET rating = $2, comments = $3 WHERE id = $1`,
		f.ID, f.Rating, null.NewString(f.Comments, f.Comments != ""))
	if err != nil {
		return wrapErr(err, "updating feedback")
	}
	return noneUpdated(res, "feedback", f.ID)
}

// --- documents ---

func (repo *Repository) UploadDocument(ctx context.Context, d store.Document) error {
	_, err := repo.db.ExecContext(ctx,
		`INSERT INTO documents (id, intern_id, title, file_name, file_url, upload_date, file_type, file_size, type)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 ON CONFLICT (id) DO NOTHING`,
		d.ID, d.InternID, d.Title, d.FileName, d.FileURL,
		null.NewString(d.UploadDate, d.UploadDate != ""),
		null.NewString(d.FileType, d.FileType != ""), d.FileSize, d.Type)
	return wrapErr(err, "uploading document")
}

func (repo *Repository) DeleteDocument(ctx context.Context, id string) error {
	_, err := repo.db.ExecContext(ctx, `DELETE FROM documents WHERE id = $1`, id)
	return wrapErr(err, "deleting document")
}

// --- news ---

type newsRow struct {
	ID          string      `db:"id"`
	Title       string      `db:"title"`
	Description null.String `db:"description"`
	Content     null.String `db:"content"`
	Date        null.String `db:"date"`
	Image       null.String `db:"image"`
	CreatedBy   null.String `db:"created_by"`
	CreatedAt   time.Time   `db:"created_at"`
	Published   bool        `db:"published"`
}

func (r newsRow) toNewsItem() store.NewsItem {
	return store.NewsItem{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description.String,
		Content:     r.Content.String,
		Date:        r.Date.String,
		Image:       r.Image.String,
		CreatedBy:   r.CreatedBy.String,
		CreatedAt:   r.CreatedAt,
		Published:   r.Published,
	}
}

func (repo *Repository) GetNews(ctx context.Context) ([]store.NewsItem, error) {
	var rows []newsRow
	err := repo.db.SelectContext(ctx, &rows,
		`SELECT id, title, description, content, date, image, created_by, created_at, published
		 FROM news ORDER BY created_at DESC`)
	if err != nil {
		return nil, wrapErr(err, "listing news")
	}
	items := make([]store.NewsItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, r.toNewsItem())
	}
	return items, nil
}

func (repo *Repository) CreateNews(ctx context.Context, n store.NewsItem) error {
	_, err := repo.db.ExecContext(ctx,
		`INSERT INTO news (id, title, description, content, date, image, created_by, created_at, published)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 ON CONFLICT (id) DO NOTHING`,
		n.ID, n.Title, null.NewString(n.Description, n.Description != ""),
		null.NewString(n.Content, n.Content != ""), null.NewString(n.Date, n.Date != ""),
		null.NewString(n.Image, n.Image != ""), null.NewString(n.CreatedBy, n.CreatedBy != ""),
		n.CreatedAt, n.Published)
	return wrapErr(err, "creating news")
}

func (repo *Repository) UpdateNews(ctx context.Context, n store.NewsItem) error {
	res, err := repo.db.ExecContext(ctx,
		`UPDATE news SET title = $2, description = $3, content = $4, date = $5, image = $6, published = $7
		 WHERE id = $1`,
		n.ID, n.Title, null.NewString(n.Description, n.Description != ""),
		null.NewString(n.Content, n.Content != ""), null.NewString(n.Date, n.Date != ""),
		null.NewString(n.Image, n.Image != ""), n.Published)
	if err != nil {
		return wrapErr(err, "updating news")
	}
	return noneUpdated(res, "news", n.ID)
}

func (repo *Repository) DeleteNews(ctx context.Context, id string) error {
	_, err := repo.db.ExecContext(ctx, `DELETE FROM news WHERE id = $1`, id)
	return wrapErr(err, "deleting news")
}

// noneUpdated turns a zero-row UPDATE into NotFoundError so the sync worker
// can fall back to an INSERT.
func noneUpdated(res sql.Result, entity, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "checking affected rows")
	}
	if n == 0 {
		return core.NewNotFoundError(entity, id)
	}
	return nil
}

package testutil

import (
	"testing"
	"time"

	"github.com/internhive/internhive/core"
	"github.com/internhive/internhive/core/store"
)

// CreateIntern dispatches an active intern record directly into the store.
func CreateIntern(t *testing.T, st *store.Store, name, email string, pwd ...string) store.Intern {
	t.Helper()
	rec := store.Intern{
		ID:        store.NewID(),
		Name:      name,
		Email:     email,
		Status:    store.InternActive,
		StartDate: "2024-01-15",
		EndDate:   "2024-06-15",
	}
	if len(pwd) > 0 {
		hash, err := core.HashPassword(pwd[0])
		if err != nil {
			t.Fatalf("CreateIntern() failed: %v", err)
		}
		rec.PasswordHash = hash
	}
	st.Dispatch(store.InternAdded(rec))
	return rec
}

// CreateAdmin dispatches an admin record directly into the store.
func CreateAdmin(t *testing.T, st *store.Store, name, email string, pwd ...string) store.Admin {
	t.Helper()
	rec := store.Admin{
		ID:        store.NewID(),
		Name:      name,
		Email:     email,
		Role:      store.AdminRoleHR,
		CreatedAt: time.Now().UTC(),
	}
	if len(pwd) > 0 {
		hash, err := core.HashPassword(pwd[0])
		if err != nil {
			t.Fatalf("CreateAdmin() failed: %v", err)
		}
		rec.PasswordHash = hash
	}
	st.Dispatch(store.AdminAdded(rec))
	return rec
}

// CreateTask dispatches a task record directly into the store.
func CreateTask(t *testing.T, st *store.Store, internID, title, status string) store.Task {
	t.Helper()
	rec := store.Task{
		ID:       store.NewID(),
		InternID: internID,
		Title:    title,
		Status:   status,
	}
	st.Dispatch(store.TaskAdded(rec))
	return rec
}

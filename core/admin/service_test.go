package admin

import (
	"testing"

	"github.com/internhive/internhive/core"
	"github.com/internhive/internhive/core/store"
)

func validSignup() NewAdmin {
	return NewAdmin{
		Name:            " Sarah Wilson ",
		Email:           " Sarah@Test.com ",
		Role:            store.AdminRoleSupervisor,
		Password:        "s3cr3t-pwd!",
		PasswordConfirm: "s3cr3t-pwd!",
	}
}

func TestService_signup(t *testing.T) {
	st := store.New(store.State{})
	svc := NewService(st, nil)

	rec, err := svc.Signup(validSignup())
	if err != nil {
		t.Fatalf("Signup() failed: %v", err)
	}
	if rec.Name != "Sarah Wilson" || rec.Email != "sarah@test.com" {
		t.Errorf("admin = %+v; want cleaned name and lowered email", rec)
	}
	if core.CheckPassword(rec.PasswordHash, "s3cr3t-pwd!") != nil {
		t.Error("stored hash does not match the password")
	}
	if n := len(st.State().Admins); n != 1 {
		t.Errorf("len(Admins) = %d; want 1", n)
	}
}

func TestService_signupValidation(t *testing.T) {
	st := store.New(store.State{})
	svc := NewService(st, nil)
	if _, err := svc.Signup(validSignup()); err != nil {
		t.Fatalf("Signup() failed: %v", err)
	}

	dupEmail := validSignup()
	badRole := validSignup()
	badRole.Email = "other@test.com"
	badRole.Role = "Boss"
	mismatch := validSignup()
	mismatch.Email = "other@test.com"
	mismatch.PasswordConfirm = "different"

	tests := []struct {
		name string
		in   NewAdmin
	}{
		{"duplicate email", dupEmail},
		{"unknown role", badRole},
		{"password mismatch", mismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Signup(tt.in); err == nil {
				t.Errorf("Signup(%+v) succeeded; want error", tt.in)
			}
		})
	}
}

func TestService_getByEmail(t *testing.T) {
	st := store.New(store.State{})
	svc := NewService(st, nil)
	if _, err := svc.Signup(validSignup()); err != nil {
		t.Fatalf("Signup() failed: %v", err)
	}

	rec, err := svc.GetByEmail(" Sarah@Test.com ")
	if err != nil {
		t.Fatalf("GetByEmail() failed: %v", err)
	}
	if rec.Email != "sarah@test.com" {
		t.Errorf("email = %q", rec.Email)
	}

	if _, err = svc.GetByEmail("ghost@test.com"); !core.IsNotFound(err) {
		t.Errorf("GetByEmail(ghost) err = %v; want not found", err)
	}
}

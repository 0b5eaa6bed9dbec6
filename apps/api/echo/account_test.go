package echoapi

import (
	"net/http"
	"testing"

	"github.com/internhive/internhive/core"
	"github.com/internhive/internhive/core/store"
	testutil "github.com/internhive/internhive/tests"
)

func TestAccountApi_login(t *testing.T) {
	core.Conf.EnableDemoLogin = true
	app := newTestApp(t, store.DemoState())

	invalidCreds := marshallObj(t, httpErr{Error: "invalid email or password"})

	tests := []httpTest{
		{
			name: "missing fields", method: http.MethodPost, path: "/v1/auth/admin/login",
			body: []byte(`{}`), wantCode: http.StatusBadRequest,
			wantData: marshallObj(t, map[string]string{
				"email":    "this field is required",
				"password": "this field is required",
			}),
		},
		{
			name: "bad email format", method: http.MethodPost, path: "/v1/auth/admin/login",
			body: []byte(`{"email": "nope", "password": "x"}`), wantCode: http.StatusBadRequest,
			wantData: marshallObj(t, map[string]string{"email": "email must be a valid email address"}),
		},
		{
			name: "wrong password", method: http.MethodPost, path: "/v1/auth/admin/login",
			body: []byte(`{"email": "admin@company.com", "password": "nope"}`),
			wantCode: http.StatusBadRequest, wantData: invalidCreds,
		},
		{
			name: "admin creds on intern endpoint", method: http.MethodPost, path: "/v1/auth/intern/login",
			body: []byte(`{"email": "admin@company.com", "password": "admin123"}`),
			wantCode: http.StatusBadRequest, wantData: invalidCreds,
		},
		{
			name: "unknown account", method: http.MethodPost, path: "/v1/auth/intern/login",
			body: []byte(`{"email": "ghost@test.com", "password": "intern123"}`),
			wantCode: http.StatusBadRequest, wantData: invalidCreds,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) { app.check(t, tt) })
	}

	t.Run("demo admin login", func(t *testing.T) {
		rec := app.do(t, httpTest{
			method: http.MethodPost, path: "/v1/auth/admin/login",
			body: []byte(`{"email": "Admin@Company.com", "password": "admin123"}`),
		})
		if rec.Code != http.StatusOK {
			t.Fatalf("code = %v; body %s", rec.Code, rec.Body.String())
		}
		var resp LoginResponse
		decodeBody(t, rec, &resp)
		if resp.Token == "" {
			t.Error("token is empty")
		}
		if resp.User.Role != store.UserRoleAdmin || !resp.User.IsLoggedIn {
			t.Errorf("user = %+v; want logged-in admin", resp.User)
		}
		if cur := app.store.State().CurrentUser; cur == nil || cur.ID != resp.User.ID {
			t.Errorf("CurrentUser = %+v; want %q", cur, resp.User.ID)
		}
	})

	t.Run("demo intern login", func(t *testing.T) {
		rec := app.do(t, httpTest{
			method: http.MethodPost, path: "/v1/auth/intern/login",
			body: []byte(`{"email": "alice@example.com", "password": "intern123"}`),
		})
		if rec.Code != http.StatusOK {
			t.Fatalf("code = %v; body %s", rec.Code, rec.Body.String())
		}
		var resp LoginResponse
		decodeBody(t, rec, &resp)
		if resp.User.Role != store.UserRoleIntern || resp.User.Email != "alice@example.com" {
			t.Errorf("user = %+v; want alice", resp.User)
		}
	})
}

func TestAccountApi_internSignup(t *testing.T) {
	app := newTestApp(t, store.State{})
	testutil.CreateAdmin(t, app.store, "Sarah", "sarah@test.com")

	rec := app.do(t, httpTest{
		method: http.MethodPost, path: "/v1/auth/intern/signup",
		body: []byte(`{
			"name": "Jane Doe",
			"email": "jane@test.com",
			"password": "s3cr3t-pwd!",
			"password_confirm": "s3cr3t-pwd!",
			"university": "MIT",
			"skills": "React, Go"
		}`),
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("code = %v; body %s", rec.Code, rec.Body.String())
	}
	var created store.Intern
	decodeBody(t, rec, &created)
	if created.Email != "jane@test.com" || created.Status != store.InternActive {
		t.Errorf("intern = %+v; want active jane", created)
	}

	app.check(t, httpTest{
		name: "duplicate email", method: http.MethodPost, path: "/v1/auth/intern/signup",
		body: []byte(`{"name": "Jane Again", "email": "jane@test.com", "password": "s3cr3t-pwd!", "password_confirm": "s3cr3t-pwd!"}`),
		wantCode: http.StatusBadRequest,
	})
	app.check(t, httpTest{
		name: "weak password", method: http.MethodPost, path: "/v1/auth/intern/signup",
		body: []byte(`{"name": "Joe", "email": "joe@test.com", "password": "123456789", "password_confirm": "123456789"}`),
		wantCode: http.StatusBadRequest,
		wantData: marshallObj(t, map[string]string{"password": "password cannot be entirely numeric"}),
	})
}

func TestAccountApi_adminSignup(t *testing.T) {
	app := newTestApp(t, store.State{})
	sarah := testutil.CreateAdmin(t, app.store, "Sarah", "sarah@test.com")
	jane := testutil.CreateIntern(t, app.store, "Jane", "jane@test.com")

	body := []byte(`{"name": "New Admin", "email": "new@test.com", "password": "s3cr3t-pwd!", "password_confirm": "s3cr3t-pwd!", "role": "Supervisor"}`)

	tests := []httpTest{
		{
			name: "auth required", method: http.MethodPost, path: "/v1/auth/admin/signup", body: body,
			wantCode: http.StatusUnauthorized, wantData: marshallObj(t, errMissingToken),
		},
		{
			name: "admin required", method: http.MethodPost, path: "/v1/auth/admin/signup", body: body,
			token: internToken(t, jane), wantCode: http.StatusForbidden, wantData: marshallObj(t, errForbidden),
		},
		{
			name: "created", method: http.MethodPost, path: "/v1/auth/admin/signup", body: body,
			token: adminToken(t, sarah), wantCode: http.StatusCreated,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) { app.check(t, tt) })
	}

	if n := len(app.store.State().Admins); n != 2 {
		t.Errorf("len(Admins) = %d; want 2", n)
	}
}

func TestAccountApi_logout(t *testing.T) {
	core.Conf.EnableDemoLogin = true
	app := newTestApp(t, store.DemoState())

	rec := app.do(t, httpTest{
		method: http.MethodPost, path: "/v1/auth/admin/login",
		body: []byte(`{"email": "admin@company.com", "password": "admin123"}`),
	})
	var resp LoginResponse
	decodeBody(t, rec, &resp)

	app.check(t, httpTest{
		method: http.MethodPost, path: "/v1/auth/logout", token: resp.Token,
		wantData: marshallObj(t, SuccessResponse{Success: "logged out"}),
	})
	if cur := app.store.State().CurrentUser; cur != nil {
		t.Errorf("CurrentUser = %+v after logout; want nil", cur)
	}
}

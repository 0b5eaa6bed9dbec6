package auth

import (
	"context"

	"github.com/pkg/errors"

	"github.com/internhive/internhive/core"
	"github.com/internhive/internhive/core/store"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// credentialValidator is one link in the login chain. ok reports whether the
// link recognized the credentials; a link that cannot answer (remote down,
// account unknown) returns ok=false so the next link gets a chance.
type credentialValidator func(ctx context.Context, email, password, role string) (store.User, bool)

type Service struct {
	store  *store.Store
	remote core.RemoteRepository
	logger core.Logger
	chain  []credentialValidator
}

func NewService(st *store.Store, remote core.RemoteRepository, logger core.Logger) *Service {
	svc := &Service{store: st, remote: remote, logger: logger}
	svc.chain = []credentialValidator{svc.demoCredentials, svc.localAccount, svc.remoteAccount}
	return svc
}

// Authenticate walks the credential chain and, on success, commits the
// session user via the store. Every failure mode collapses into the same
// invalid-credentials error so callers cannot probe which accounts exist.
func (svc *Service) Authenticate(ctx context.Context, email, password, role string) (store.User, error) {
	email = core.CleanString(email, true)
	if email == "" || password == "" {
		return store.User{}, invalidCredentials()
	}
	for _, validate := range svc.chain {
		if user, ok := validate(ctx, email, password, role); ok {
			user.IsLoggedIn = true
			svc.store.Dispatch(store.Login(user))
			return user, nil
		}
	}
	return store.User{}, invalidCredentials()
}

func (svc *Service) Logout() {
	svc.store.Dispatch(store.Logout())
}

func invalidCredentials() error {
	return core.NewValidationError(ErrInvalidCredentials)
}

// demoCredentials accepts the canned demo logins when the deployment allows
// them: the seeded admin with a fixed password, and any seeded intern with
// the shared intern password.
func (svc *Service) demoCredentials(_ context.Context, email, password, role string) (store.User, bool) {
	if !core.Conf.EnableDemoLogin {
		return store.User{}, false
	}
	state := svc.store.State()
	switch role {
	case store.UserRoleAdmin:
		if email != "admin@company.com" || password != "admin123" {
			return store.User{}, false
		}
		for _, a := range state.Admins {
			if a.Email == email {
				return adminUser(a), true
			}
		}
	case store.UserRoleIntern:
		if password != "intern123" {
			return store.User{}, false
		}
		for _, i := range state.Interns {
			if i.Email == email {
				return internUser(i), true
			}
		}
	}
	return store.User{}, false
}

// localAccount checks accounts created through the store, comparing the
// stored bcrypt hash.
func (svc *Service) localAccount(_ context.Context, email, password, role string) (store.User, bool) {
	state := svc.store.State()
	switch role {
	case store.UserRoleAdmin:
		for _, a := range state.Admins {
			if a.Email == email && len(a.PasswordHash) > 0 {
				if core.CheckPassword(a.PasswordHash, password) == nil {
					return adminUser(a), true
				}
				return store.User{}, false
			}
		}
	case store.UserRoleIntern:
		for _, i := range state.Interns {
			if i.Email == email && len(i.PasswordHash) > 0 {
				if core.CheckPassword(i.PasswordHash, password) == nil {
					return internUser(i), true
				}
				return store.User{}, false
			}
		}
	}
	return store.User{}, false
}

// remoteAccount is the last resort: accounts that only exist in the hosted
// backend. Remote unavailability passes silently to chain exhaustion.
func (svc *Service) remoteAccount(ctx context.Context, email, password, role string) (store.User, bool) {
	if svc.remote == nil {
		return store.User{}, false
	}
	switch role {
	case store.UserRoleAdmin:
		a, err := svc.remote.GetAdminByEmail(ctx, email)
		if err != nil {
			svc.logRemoteErr(err)
			return store.User{}, false
		}
		if core.CheckPassword(a.PasswordHash, password) == nil {
			return adminUser(a), true
		}
	case store.UserRoleIntern:
		i, err := svc.remote.GetInternByEmail(ctx, email)
		if err != nil {
			svc.logRemoteErr(err)
			return store.User{}, false
		}
		if core.CheckPassword(i.PasswordHash, password) == nil {
			return internUser(i), true
		}
	}
	return store.User{}, false
}

func (svc *Service) logRemoteErr(err error) {
	if svc.logger == nil {
		return
	}
	if errors.Is(err, core.ErrRemoteUnavailable) {
		svc.logger.Warn("auth: remote unavailable during login", err)
	} else if !core.IsNotFound(err) {
		svc.logger.Error("auth: remote lookup failed", err)
	}
}

func adminUser(a store.Admin) store.User {
	return store.User{ID: a.ID, Name: a.Name, Email: a.Email, Role: store.UserRoleAdmin}
}

func internUser(i store.Intern) store.User {
	return store.User{ID: i.ID, Name: i.Name, Email: i.Email, Role: store.UserRoleIntern}
}

package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/internhive/internhive/core"
	"github.com/internhive/internhive/core/admin"
	"github.com/internhive/internhive/core/auth"
	"github.com/internhive/internhive/core/intern"
	"github.com/internhive/internhive/core/store"
)

type accountApi struct {
	authSvc   *auth.Service
	internSvc *intern.Service
	adminSvc  *admin.Service
}

func registerAccountAPI(g *echo.Group, jwt echo.MiddlewareFunc, opts *Options) {
	api := accountApi{
		authSvc:   opts.AuthSvc,
		internSvc: opts.InternSvc,
		adminSvc:  opts.AdminSvc,
	}

	ag := g.Group("/auth")
	ag.POST("/admin/login", api.adminLogin)
	ag.POST("/intern/login", api.internLogin)
	ag.POST("/intern/signup", api.internSignup)

	authed := ag.Group("", jwt)
	authed.POST("/admin/signup", api.adminSignup, adminMiddleware())
	authed.POST("/logout", api.logout)
}

type (
	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string     `json:"token"`
		User  store.User `json:"user"`
	}

	SuccessResponse struct {
		Success string `json:"success"`
	}
)

func (lr *LoginRequest) Validate() error {
	lr.Email = core.CleanString(lr.Email, true /* lower */)
	return core.Validate.Struct(lr)
}

func (api *accountApi) login(ctx echo.Context, role string) error {
	var data LoginRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to LoginRequest")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	usr, err := api.authSvc.Authenticate(ctx.Request().Context(), data.Email, data.Password, role)
	if err != nil {
		return err
	}
	token, err := GenerateToken(GetUserClaims(usr))
	if err != nil {
		return errors.Wrap(err, "generating token")
	}
	return ctx.JSON(http.StatusOK, LoginResponse{Token: token, User: usr})
}

func (api *accountApi) adminLogin(ctx echo.Context) error {
	return api.login(ctx, store.UserRoleAdmin)
}

func (api *accountApi) internLogin(ctx echo.Context) error {
	return api.login(ctx, store.UserRoleIntern)
}

func (api *accountApi) internSignup(ctx echo.Context) error {
	var data intern.NewIntern
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewIntern")
	}
	rec, err := api.internSvc.Signup(data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, rec)
}

func (api *accountApi) adminSignup(ctx echo.Context) error {
	var data admin.NewAdmin
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewAdmin")
	}
	rec, err := api.adminSvc.Signup(data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, rec)
}

func (api *accountApi) logout(ctx echo.Context) error {
	api.authSvc.Logout()
	return ctx.JSON(http.StatusOK, SuccessResponse{Success: "logged out"})
}

package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/internhive/internhive/core/intern"
	"github.com/internhive/internhive/core/store"
)

type internApi struct {
	svc *intern.Service
}

func registerInternAPI(g *echo.Group, jwt echo.MiddlewareFunc, opts *Options) {
	api := internApi{svc: opts.InternSvc}

	ig := g.Group("/interns", jwt)
	ig.GET("", api.query, adminMiddleware())
	ig.POST("", api.create, adminMiddleware())

	dg := ig.Group("/:id", selfOrAdminMiddleware())
	dg.GET("", api.retrieve)
	dg.PUT("", api.update, adminMiddleware())
	dg.DELETE("", api.destroy, adminMiddleware())
}

// selfOrAdminMiddleware lets interns reach only their own detail routes.
func selfOrAdminMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			claims, err := getContextClaims(ctx)
			if err != nil {
				return errors.Wrap(err, "getting context claims")
			}
			if claims.IsAdmin() || ctx.Param("id") == claims.Subject {
				return next(ctx)
			}
			return errHttpNotFound
		}
	}
}

func (api *internApi) query(ctx echo.Context) error {
	interns := api.svc.QueryAll()
	if interns == nil {
		interns = []store.Intern{}
	}
	return ctx.JSON(http.StatusOK, interns)
}

func (api *internApi) create(ctx echo.Context) error {
	var data intern.NewIntern
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewIntern")
	}
	rec, err := api.svc.Signup(data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, rec)
}

func (api *internApi) retrieve(ctx echo.Context) error {
	rec, err := api.svc.GetByID(ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, rec)
}

func (api *internApi) update(ctx echo.Context) error {
	var data intern.UpdateIntern
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateIntern")
	}
	rec, err := api.svc.Update(ctx.Param("id"), data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, rec)
}

func (api *internApi) destroy(ctx echo.Context) error {
	if err := api.svc.Delete(ctx.Param("id")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/internhive/internhive/core/document"
	"github.com/internhive/internhive/core/store"
)

type documentApi struct {
	svc *document.Service
}

func registerDocumentAPI(g *echo.Group, jwt echo.MiddlewareFunc, opts *Options) {
	api := documentApi{svc: opts.DocumentSvc}

	dg := g.Group("/documents", jwt)
	dg.POST("", api.create)
	dg.DELETE("/:id", api.destroy)
	dg.GET("/interns/:id", api.forIntern, selfOrAdminMiddleware())
}

func (api *documentApi) create(ctx echo.Context) error {
	var data document.Upload
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Upload")
	}

	// interns may only attach documents to their own profile
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}
	if claims.IsIntern() {
		data.InternID = claims.Subject
	}

	rec, err := api.svc.Create(data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, rec)
}

func (api *documentApi) destroy(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}
	if claims.IsIntern() {
		rec, err := api.svc.GetByID(ctx.Param("id"))
		if err != nil {
			return err
		}
		if rec.InternID != claims.Subject {
			return errHttpNotFound
		}
	}
	if err := api.svc.Delete(ctx.Param("id")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *documentApi) forIntern(ctx echo.Context) error {
	records := api.svc.ForIntern(ctx.Param("id"))
	if records == nil {
		records = []store.Document{}
	}
	return ctx.JSON(http.StatusOK, records)
}

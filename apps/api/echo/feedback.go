package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/internhive/internhive/core/feedback"
	"github.com/internhive/internhive/core/store"
)

type feedbackApi struct {
	svc *feedback.Service
}

func registerFeedbackAPI(g *echo.Group, jwt echo.MiddlewareFunc, opts *Options) {
	api := feedbackApi{svc: opts.FeedbackSvc}

	fg := g.Group("/feedback", jwt)
	fg.POST("", api.create, adminMiddleware())
	fg.PUT("/:id", api.update, adminMiddleware())
	fg.GET("/interns/:id", api.forIntern, selfOrAdminMiddleware())
}

func (api *feedbackApi) create(ctx echo.Context) error {
	var data feedback.NewFeedback
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewFeedback")
	}
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}
	data.AdminID = claims.Subject

	rec, err := api.svc.Create(data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, rec)
}

func (api *feedbackApi) update(ctx echo.Context) error {
	var data feedback.UpdateFeedback
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateFeedback")
	}
	rec, err := api.svc.Update(ctx.Param("id"), data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, rec)
}

func (api *feedbackApi) forIntern(ctx echo.Context) error {
	records := api.svc.ForIntern(ctx.Param("id"))
	if records == nil {
		records = []store.Feedback{}
	}
	return ctx.JSON(http.StatusOK, records)
}

package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/internhive/internhive/core"
	"github.com/internhive/internhive/core/store"
	"github.com/internhive/internhive/core/task"
)

type taskApi struct {
	svc *task.Service
}

func registerTaskAPI(g *echo.Group, jwt echo.MiddlewareFunc, opts *Options) {
	api := taskApi{svc: opts.TaskSvc}

	tg := g.Group("/tasks", jwt)
	tg.GET("", api.query)
	tg.POST("", api.create, adminMiddleware())
	tg.GET("/:id", api.retrieve)
	tg.PUT("/:id", api.replace, adminMiddleware())
	tg.DELETE("/:id", api.destroy, adminMiddleware())
	tg.POST("/:id/advance", api.advance, internMiddleware())
}

// AdvanceRequest carries the target status and, when completing, the work
// being turned in.
type AdvanceRequest struct {
	Status     string           `json:"status" validate:"required,oneof=in-progress completed"`
	Submission *task.Submission `json:"submission"`
}

func (ar *AdvanceRequest) Validate() error {
	return core.Validate.Struct(ar)
}

func (api *taskApi) query(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	var tasks []store.Task
	if claims.IsAdmin() {
		tasks = api.svc.QueryAll()
	} else {
		tasks = api.svc.ForIntern(claims.Subject)
	}
	if tasks == nil {
		tasks = []store.Task{}
	}
	return ctx.JSON(http.StatusOK, tasks)
}

func (api *taskApi) create(ctx echo.Context) error {
	var data task.NewTask
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewTask")
	}
	rec, err := api.svc.Create(data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, rec)
}

func (api *taskApi) retrieve(ctx echo.Context) error {
	rec, err := api.svc.GetByID(ctx.Param("id"))
	if err != nil {
		return err
	}
	claims, cErr := getContextClaims(ctx)
	if cErr != nil {
		return errors.Wrap(cErr, "getting context claims")
	}
	if !claims.IsAdmin() && rec.InternID != claims.Subject {
		return errHttpNotFound
	}
	return ctx.JSON(http.StatusOK, rec)
}

func (api *taskApi) replace(ctx echo.Context) error {
	var data store.Task
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Task")
	}
	rec, err := api.svc.ReplaceAsAdmin(ctx.Param("id"), data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, rec)
}

func (api *taskApi) advance(ctx echo.Context) error {
	var data AdvanceRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to AdvanceRequest")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}
	rec, err := api.svc.Advance(claims.Subject, ctx.Param("id"), data.Status, data.Submission)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, rec)
}

func (api *taskApi) destroy(ctx echo.Context) error {
	if err := api.svc.Delete(ctx.Param("id")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

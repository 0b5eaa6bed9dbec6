package echoapi

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/internhive/internhive/core/attendance"
	"github.com/internhive/internhive/core/store"
)

type attendanceApi struct {
	svc *attendance.Service
}

func registerAttendanceAPI(g *echo.Group, jwt echo.MiddlewareFunc, opts *Options) {
	api := attendanceApi{svc: opts.AttendanceSvc}

	ag := g.Group("/attendance", jwt)
	ag.POST("", api.mark, adminMiddleware())
	ag.POST("/check-in", api.checkIn, internMiddleware())
	ag.GET("/interns/:id", api.forIntern, selfOrAdminMiddleware())
}

func (api *attendanceApi) mark(ctx echo.Context) error {
	var data attendance.Mark
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Mark")
	}
	rec, err := api.svc.Record(data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, rec)
}

// checkIn marks the calling intern present today.
func (api *attendanceApi) checkIn(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}
	now := time.Now()
	rec, err := api.svc.Record(attendance.Mark{
		InternID:    claims.Subject,
		Date:        now.Format("2006-01-02"),
		Status:      store.AttendancePresent,
		CheckInTime: now.Format("15:04"),
	})
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, rec)
}

func (api *attendanceApi) forIntern(ctx echo.Context) error {
	records := api.svc.ForIntern(ctx.Param("id"))
	if records == nil {
		records = []store.Attendance{}
	}
	return ctx.JSON(http.StatusOK, records)
}

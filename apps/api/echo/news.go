package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/internhive/internhive/core/news"
	"github.com/internhive/internhive/core/store"
)

type newsApi struct {
	svc     *news.Service
	rotator *news.Rotator
}

func registerNewsAPI(g *echo.Group, jwt echo.MiddlewareFunc, opts *Options) {
	api := newsApi{svc: opts.NewsSvc, rotator: opts.NewsRotator}

	ng := g.Group("/news")

	// Creating the admin sub-group registers an Any("") catch-all carrying
	// the jwt middleware, which would shadow a previously registered public
	// GET on the same path — so the admin group is wired first and the
	// public routes after it.
	ag := ng.Group("", jwt, adminMiddleware())
	ag.POST("", api.create)
	ag.PUT("/:id", api.update)
	ag.DELETE("/:id", api.destroy)

	// public: the landing page carousel reads without a session
	ng.GET("", api.query)
	if api.rotator != nil {
		ng.GET("/carousel", api.carousel)
		ng.POST("/carousel/next", api.carouselNext)
		ng.POST("/carousel/prev", api.carouselPrev)
	}
}

// CarouselResponse is the rotating slide position for the landing page.
type CarouselResponse struct {
	Index int `json:"index"`
	Count int `json:"count"`
}

func (api *newsApi) query(ctx echo.Context) error {
	items := api.svc.QueryPublished(ctx.Request().Context())
	if items == nil {
		items = []store.NewsItem{}
	}
	api.syncRotator(len(items))
	return ctx.JSON(http.StatusOK, items)
}

func (api *newsApi) syncRotator(count int) {
	if api.rotator != nil {
		api.rotator.SetCount(count)
	}
}

func (api *newsApi) carousel(ctx echo.Context) error {
	count := len(api.svc.QueryPublished(ctx.Request().Context()))
	api.rotator.SetCount(count)
	return ctx.JSON(http.StatusOK, CarouselResponse{Index: api.rotator.Index(), Count: count})
}

func (api *newsApi) carouselNext(ctx echo.Context) error {
	count := len(api.svc.QueryPublished(ctx.Request().Context()))
	api.rotator.SetCount(count)
	return ctx.JSON(http.StatusOK, CarouselResponse{Index: api.rotator.Next(), Count: count})
}

func (api *newsApi) carouselPrev(ctx echo.Context) error {
	count := len(api.svc.QueryPublished(ctx.Request().Context()))
	api.rotator.SetCount(count)
	return ctx.JSON(http.StatusOK, CarouselResponse{Index: api.rotator.Prev(), Count: count})
}

func (api *newsApi) create(ctx echo.Context) error {
	var data news.NewItem
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewItem")
	}
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}
	data.CreatedBy = claims.Name

	item, err := api.svc.Create(data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, item)
}

func (api *newsApi) update(ctx echo.Context) error {
	var data news.UpdateItem
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateItem")
	}
	item, err := api.svc.Update(ctx.Param("id"), data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, item)
}

func (api *newsApi) destroy(ctx echo.Context) error {
	if err := api.svc.Delete(ctx.Param("id")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

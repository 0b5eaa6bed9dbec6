package news

import (
	"context"
	"time"

	"github.com/internhive/internhive/core"
	"github.com/internhive/internhive/core/store"
)

var NowFunc = time.Now

// NewItem is the admin input for a published announcement.
type NewItem struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Content     string `json:"content"`
	Image       string `json:"image" validate:"omitempty,url"`
	CreatedBy   string `json:"created_by"`
	Published   bool   `json:"published"`
}

func (ni *NewItem) Validate() error {
	ni.Title = core.CleanString(ni.Title)
	ni.Description = core.CleanString(ni.Description)
	return core.Validate.Struct(ni)
}

type UpdateItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	Image       string `json:"image" validate:"omitempty,url"`
	Published   *bool  `json:"published"`
}

func (ui *UpdateItem) Validate() error {
	ui.Title = core.CleanString(ui.Title)
	ui.Description = core.CleanString(ui.Description)
	return core.Validate.Struct(ui)
}

type Service struct {
	store  *store.Store
	mirror core.Mirror
	remote core.RemoteRepository
	logger core.Logger
}

func NewService(st *store.Store, mirror core.Mirror, remote core.RemoteRepository, logger core.Logger) *Service {
	if mirror == nil {
		mirror = core.NopMirror{}
	}
	return &Service{store: st, mirror: mirror, remote: remote, logger: logger}
}

func (svc *Service) Create(ni NewItem) (store.NewsItem, error) {
	if err := ni.Validate(); err != nil {
		return store.NewsItem{}, err
	}
	now := NowFunc().UTC()
	item := store.NewsItem{
		ID:          store.NewID(),
		Title:       ni.Title,
		Description: ni.Description,
		Content:     ni.Content,
		Date:        now.Format("2006-01-02"),
		Image:       ni.Image,
		CreatedBy:   ni.CreatedBy,
		CreatedAt:   now,
		Published:   ni.Published,
	}
	svc.store.Dispatch(store.NewsAdded(item))
	svc.mirror.Enqueue(core.MirrorOp{Entity: "news", Verb: core.MirrorUpsert, ID: item.ID, Payload: item})
	return item, nil
}

func (svc *Service) Update(id string, ui UpdateItem) (store.NewsItem, error) {
	if err := ui.Validate(); err != nil {
		return store.NewsItem{}, err
	}
	item, err := svc.GetByID(id)
	if err != nil {
		return store.NewsItem{}, err
	}
	if ui.Title != "" {
		item.Title = ui.Title
	}
	if ui.Description != "" {
		item.Description = ui.Description
	}
	if ui.Content != "" {
		item.Content = ui.Content
	}
	if ui.Image != "" {
		item.Image = ui.Image
	}
	if ui.Published != nil {
		item.Published = *ui.Published
	}
	svc.store.Dispatch(store.NewsUpdated(item))
	svc.mirror.Enqueue(core.MirrorOp{Entity: "news", Verb: core.MirrorUpsert, ID: item.ID, Payload: item})
	return item, nil
}

func (svc *Service) GetByID(id string) (store.NewsItem, error) {
	for _, n := range svc.store.State().News {
		if n.ID == id {
			return n, nil
		}
	}
	return store.NewsItem{}, core.NewNotFoundError("news", id)
}

// QueryAll prefers the hosted copy so the public carousel shows items
// published from other instances; it serves the local snapshot when the
// remote is unreachable.
func (svc *Service) QueryAll(ctx context.Context) []store.NewsItem {
	if svc.remote != nil {
		items, err := svc.remote.GetNews(ctx)
		if err == nil {
			return items
		}
		if svc.logger != nil {
			svc.logger.Warn("news: remote fetch failed, serving local copy", err)
		}
	}
	return svc.store.State().News
}

// QueryPublished filters QueryAll down to what the landing page may show.
func (svc *Service) QueryPublished(ctx context.Context) []store.NewsItem {
	all := svc.QueryAll(ctx)
	published := make([]store.NewsItem, 0, len(all))
	for _, n := range all {
		if n.Published {
			published = append(published, n)
		}
	}
	return published
}

func (svc *Service) Delete(id string) error {
	if _, err := svc.GetByID(id); err != nil {
		return err
	}
	svc.store.Dispatch(store.NewsDeleted(id))
	svc.mirror.Enqueue(core.MirrorOp{Entity: "news", Verb: core.MirrorDelete, ID: id})
	return nil
}

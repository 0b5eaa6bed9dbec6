package echoapi

import (
	"net/http"
	"testing"

	"github.com/internhive/internhive/core/store"
	testutil "github.com/internhive/internhive/tests"
)

func TestNewsApi_publicQuery(t *testing.T) {
	app := newTestApp(t, store.State{})
	app.remote.SetAvailable(false) // serve the local copy

	published := store.NewsItem{ID: "1", Title: "Launch", Published: true}
	app.store.Dispatch(store.NewsAdded(published))
	app.store.Dispatch(store.NewsAdded(store.NewsItem{ID: "2", Title: "Draft", Published: false}))

	// no token required, drafts stay hidden
	app.check(t, httpTest{path: "/v1/news", wantData: marshallList(t, published)})
}

func TestNewsApi_carousel(t *testing.T) {
	app := newTestApp(t, store.State{})
	app.remote.SetAvailable(false)
	for _, id := range []string{"1", "2", "3"} {
		app.store.Dispatch(store.NewsAdded(store.NewsItem{ID: id, Title: "Item " + id, Published: true}))
	}

	app.check(t, httpTest{path: "/v1/news/carousel", wantData: marshallObj(t, CarouselResponse{Index: 0, Count: 3})})
	app.check(t, httpTest{method: http.MethodPost, path: "/v1/news/carousel/next", wantData: marshallObj(t, CarouselResponse{Index: 1, Count: 3})})
	app.check(t, httpTest{method: http.MethodPost, path: "/v1/news/carousel/next", wantData: marshallObj(t, CarouselResponse{Index: 2, Count: 3})})
	app.check(t, httpTest{method: http.MethodPost, path: "/v1/news/carousel/next", wantData: marshallObj(t, CarouselResponse{Index: 0, Count: 3})})
	app.check(t, httpTest{method: http.MethodPost, path: "/v1/news/carousel/prev", wantData: marshallObj(t, CarouselResponse{Index: 2, Count: 3})})
}

func TestNewsApi_adminWrites(t *testing.T) {
	app := newTestApp(t, store.State{})
	sarah := testutil.CreateAdmin(t, app.store, "Sarah", "sarah@test.com")
	jane := testutil.CreateIntern(t, app.store, "Jane", "jane@test.com")
	token := adminToken(t, sarah)

	body := []byte(`{"title": "Hack Week", "description": "All hands on deck", "published": true}`)

	app.check(t, httpTest{
		name: "auth required", method: http.MethodPost, path: "/v1/news", body: body,
		wantCode: http.StatusUnauthorized, wantData: marshallObj(t, errMissingToken),
	})
	app.check(t, httpTest{
		name: "admin required", method: http.MethodPost, path: "/v1/news", body: body,
		token: internToken(t, jane), wantCode: http.StatusForbidden, wantData: marshallObj(t, errForbidden),
	})

	rec := app.do(t, httpTest{method: http.MethodPost, path: "/v1/news", body: body, token: token})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create code = %v; body %s", rec.Code, rec.Body.String())
	}
	var item store.NewsItem
	decodeBody(t, rec, &item)
	if item.CreatedBy != sarah.Name {
		t.Errorf("createdBy = %q; want %q", item.CreatedBy, sarah.Name)
	}

	rec = app.do(t, httpTest{
		method: http.MethodPut, path: "/v1/news/" + item.ID, token: token,
		body: []byte(`{"title": "Hack Week 2024"}`),
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("update code = %v; body %s", rec.Code, rec.Body.String())
	}
	var updated store.NewsItem
	decodeBody(t, rec, &updated)
	if updated.Title != "Hack Week 2024" || !updated.Published {
		t.Errorf("item = %+v; want renamed, still published", updated)
	}

	app.check(t, httpTest{
		name: "delete", method: http.MethodDelete, path: "/v1/news/" + item.ID, token: token,
		wantCode: http.StatusNoContent,
	})
	app.check(t, httpTest{
		name: "update after delete", method: http.MethodPut, path: "/v1/news/" + item.ID, token: token,
		body: []byte(`{"title": "x"}`), wantCode: http.StatusNotFound,
	})
}

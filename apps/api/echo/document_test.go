package echoapi

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/internhive/internhive/core/store"
	testutil "github.com/internhive/internhive/tests"
)

func TestDocumentApi(t *testing.T) {
	app := newTestApp(t, store.State{})
	sarah := testutil.CreateAdmin(t, app.store, "Sarah", "sarah@test.com")
	jane := testutil.CreateIntern(t, app.store, "Jane", "jane@test.com")
	bob := testutil.CreateIntern(t, app.store, "Bob", "bob@test.com")

	uploadBody := func(internID string) []byte {
		return []byte(fmt.Sprintf(`{
			"intern_id": %q,
			"title": "Resume",
			"file_name": "resume.pdf",
			"file_url": "https://files.test/resume.pdf",
			"type": "resume"
		}`, internID))
	}

	// an intern uploading "for bob" still lands on their own profile
	rec := app.do(t, httpTest{
		method: http.MethodPost, path: "/v1/documents", token: internToken(t, jane),
		body: uploadBody(bob.ID),
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create code = %v; body %s", rec.Code, rec.Body.String())
	}
	var doc store.Document
	decodeBody(t, rec, &doc)
	if doc.InternID != jane.ID {
		t.Errorf("internID = %q; want the caller %q", doc.InternID, jane.ID)
	}

	app.check(t, httpTest{
		name: "admin uploads for any intern", method: http.MethodPost, path: "/v1/documents",
		token: adminToken(t, sarah), body: uploadBody(bob.ID), wantCode: http.StatusCreated,
	})

	listPath := "/v1/documents/interns/" + jane.ID
	app.check(t, httpTest{name: "self lists own documents", path: listPath, token: internToken(t, jane), wantData: marshallList(t, doc)})
	app.check(t, httpTest{
		name: "other intern gets 404", path: listPath, token: internToken(t, bob),
		wantCode: http.StatusNotFound, wantData: marshallObj(t, errNotFound),
	})

	app.check(t, httpTest{
		name: "intern cannot delete someone else's document", method: http.MethodDelete,
		path: "/v1/documents/" + doc.ID, token: internToken(t, bob),
		wantCode: http.StatusNotFound, wantData: marshallObj(t, errNotFound),
	})
	app.check(t, httpTest{
		name: "owner deletes", method: http.MethodDelete, path: "/v1/documents/" + doc.ID,
		token: internToken(t, jane), wantCode: http.StatusNoContent,
	})
	if got := len(store.DocumentsFor(app.store.State(), jane.ID)); got != 0 {
		t.Errorf("documents left = %d; want 0", got)
	}
}

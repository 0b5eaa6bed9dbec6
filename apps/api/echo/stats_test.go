package echoapi

import (
	"net/http"
	"testing"

	"github.com/internhive/internhive/core/store"
	testutil "github.com/internhive/internhive/tests"
)

func TestStatsApi_dashboard(t *testing.T) {
	app := newTestApp(t, store.State{})
	sarah := testutil.CreateAdmin(t, app.store, "Sarah", "sarah@test.com")
	jane := testutil.CreateIntern(t, app.store, "Jane", "jane@test.com")
	testutil.CreateTask(t, app.store, jane.ID, "Docs", store.TaskCompleted)
	testutil.CreateTask(t, app.store, jane.ID, "API", store.TaskPending)
	testutil.CreateTask(t, app.store, jane.ID, "UI", store.TaskInProgress)

	tests := []httpTest{
		{
			name: "auth required", path: "/v1/stats/dashboard",
			wantCode: http.StatusUnauthorized, wantData: marshallObj(t, errMissingToken),
		},
		{
			name: "admin required", path: "/v1/stats/dashboard", token: internToken(t, jane),
			wantCode: http.StatusForbidden, wantData: marshallObj(t, errForbidden),
		},
		{
			name: "counters", path: "/v1/stats/dashboard", token: adminToken(t, sarah),
			wantData: marshallObj(t, store.DashboardStats{
				ActiveInterns:  1,
				TotalTasks:     3,
				CompletedTasks: 1,
				PendingTasks:   1,
			}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) { app.check(t, tt) })
	}
}

func TestStatsApi_internStats(t *testing.T) {
	app := newTestApp(t, store.State{})
	sarah := testutil.CreateAdmin(t, app.store, "Sarah", "sarah@test.com")
	jane := testutil.CreateIntern(t, app.store, "Jane", "jane@test.com")
	bob := testutil.CreateIntern(t, app.store, "Bob", "bob@test.com")
	testutil.CreateTask(t, app.store, jane.ID, "Docs", store.TaskCompleted)
	testutil.CreateTask(t, app.store, jane.ID, "API", store.TaskPending)
	app.store.Dispatch(store.AttendanceAdded(store.Attendance{
		ID: store.NewID(), InternID: jane.ID, Date: "2024-03-01", Status: store.AttendancePresent,
	}))
	app.store.Dispatch(store.AttendanceAdded(store.Attendance{
		ID: store.NewID(), InternID: jane.ID, Date: "2024-03-02", Status: store.AttendanceLate,
	}))

	path := "/v1/stats/interns/" + jane.ID

	t.Run("another intern gets 404", func(t *testing.T) {
		app.check(t, httpTest{
			path: path, token: internToken(t, bob),
			wantCode: http.StatusNotFound, wantData: marshallObj(t, errNotFound),
		})
	})

	for name, token := range map[string]string{
		"self":  internToken(t, jane),
		"admin": adminToken(t, sarah),
	} {
		t.Run(name, func(t *testing.T) {
			rec := app.do(t, httpTest{path: path, token: token})
			if rec.Code != http.StatusOK {
				t.Fatalf("code = %v; body %s", rec.Code, rec.Body.String())
			}
			var resp InternStatsResponse
			decodeBody(t, rec, &resp)
			if resp.CompletionRate != 0.5 {
				t.Errorf("completionRate = %v; want 0.5", resp.CompletionRate)
			}
			if resp.AverageRating != nil {
				t.Errorf("averageRating = %v; want null without feedback", *resp.AverageRating)
			}
			want := store.Breakdown{Present: 1, Late: 1, Total: 2}
			if resp.Attendance != want {
				t.Errorf("attendance = %+v; want %+v", resp.Attendance, want)
			}
		})
	}

	t.Run("rating appears with feedback", func(t *testing.T) {
		app.store.Dispatch(store.FeedbackAdded(store.Feedback{
			ID: store.NewID(), InternID: jane.ID, AdminID: sarah.ID, Rating: 4,
		}))
		app.store.Dispatch(store.FeedbackAdded(store.Feedback{
			ID: store.NewID(), InternID: jane.ID, AdminID: sarah.ID, Rating: 5,
		}))

		rec := app.do(t, httpTest{path: path, token: adminToken(t, sarah)})
		var resp InternStatsResponse
		decodeBody(t, rec, &resp)
		if resp.AverageRating == nil || *resp.AverageRating != 4.5 {
			t.Errorf("averageRating = %v; want 4.5", resp.AverageRating)
		}
	})
}

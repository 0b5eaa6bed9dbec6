package task

import (
	"time"

	"github.com/internhive/internhive/core"
	"github.com/internhive/internhive/core/store"
)

// AdvanceAsIntern applies the rule-gated status transition available to the
// assigned intern: pending -> in-progress, then in-progress -> completed
// (with the submission attached on that edge only). Any other jump is
// rejected with an InvalidTransitionError and the task is returned
// unchanged. Admin edits do not go through here; see Service.ReplaceAsAdmin.
func AdvanceAsIntern(t store.Task, target string, sub *Submission) (store.Task, error) {
	reject := func() (store.Task, error) {
		return t, &core.InvalidTransitionError{Entity: "task", From: t.Status, To: target}
	}

	switch t.Status {
	case store.TaskPending:
		if target != store.TaskInProgress {
			return reject()
		}
		t.Status = store.TaskInProgress
		return t, nil

	case store.TaskInProgress:
		if target != store.TaskCompleted {
			return reject()
		}
		t.Status = store.TaskCompleted
		if sub != nil {
			t.SubmissionURL = sub.URL
			t.SubmissionFileName = sub.FileName
			t.SubmissionComment = sub.Comment
			t.SubmittedAt = NowFunc().UTC().Format(time.RFC3339)
		}
		return t, nil

	default: // completed: no further transition via the standard flow
		return reject()
	}
}

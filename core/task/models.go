package task

import (
	"github.com/internhive/internhive/core"
)

// NewTask contains information needed to assign a task to an intern.
type NewTask struct {
	InternID        string `json:"intern_id" validate:"required"`
	AssignedAdminID string `json:"assigned_admin_id" validate:"required"`
	Title           string `json:"title" validate:"required"`
	Description     string `json:"description"`
	Deadline        string `json:"deadline" validate:"omitempty,datetime=2006-01-02"`
}

func (nt *NewTask) Validate(svc *Service) error {
	nt.Title = core.CleanString(nt.Title)
	nt.Description = core.CleanString(nt.Description)

	if err := core.Validate.Struct(nt); err != nil {
		return err
	}
	return svc.checkInternExists(nt.InternID)
}

// Submission is the proof-of-work payload attached when an intern moves a
// task from in-progress to completed.
type Submission struct {
	URL      string `json:"url" validate:"required"`
	FileName string `json:"file_name"`
	Comment  string `json:"comment"`
}

func (s *Submission) Validate() error {
	return core.Validate.Struct(s)
}

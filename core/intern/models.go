package intern

import (
	"time"

	"github.com/internhive/internhive/core"
	"github.com/internhive/internhive/core/store"
)

const dateLayout = "2006-01-02"

// DefaultTermLength is the internship length applied when signup does not
// provide an end date.
const DefaultTermLength = 6 * 30 * 24 * time.Hour

// NewIntern contains information needed to register a new intern.
type NewIntern struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone"`
	University      string `json:"university"`
	Program         string `json:"program"`
	Skills          string `json:"skills"` // comma-separated
	Password        string `json:"password" validate:"required"`
	PasswordConfirm string `json:"password_confirm" validate:"required,eqfield=Password"`
}

func (ni *NewIntern) Validate(svc *Service) error {
	ni.Name = core.CleanString(ni.Name)
	ni.Email = core.CleanString(ni.Email, true /* lower */)
	ni.University = core.CleanString(ni.University)
	ni.Program = core.CleanString(ni.Program)

	if err := core.Validate.Struct(ni); err != nil {
		return err
	}
	return svc.checkEmailUniqueness(ni.Email)
}

// UpdateIntern defines what information may be provided to modify an
// existing intern. Zero-valued fields keep the original values.
type UpdateIntern struct {
	Name            string `json:"name"`
	Email           string `json:"email" validate:"omitempty,email"`
	Phone           string `json:"phone"`
	University      string `json:"university"`
	Program         string `json:"program"`
	Skills          string `json:"skills"`
	Status          string `json:"status" validate:"omitempty,oneof=active completed dropped"`
	StartDate       string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate         string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	AssignedAdminID string `json:"assigned_admin_id"`
	ProfileImage    string `json:"profile_image"`
}

func (ui *UpdateIntern) Validate(orig store.Intern, svc *Service) error {
	ui.Name = core.CleanString(ui.Name)
	if ui.Name == "" {
		ui.Name = orig.Name
	}
	ui.Email = core.CleanString(ui.Email, true /* lower */)
	if ui.Email == "" {
		ui.Email = orig.Email
	}

	if err := core.Validate.Struct(ui); err != nil {
		return err
	}
	if ui.Email != orig.Email {
		return svc.checkEmailUniqueness(ui.Email)
	}
	return nil
}

// apply merges the update into the original record.
func (ui UpdateIntern) apply(orig store.Intern) store.Intern {
	next := orig
	next.Name = ui.Name
	next.Email = ui.Email
	if ui.Phone != "" {
		next.Phone = ui.Phone
	}
	if ui.University != "" {
		next.University = ui.University
	}
	if ui.Program != "" {
		next.Program = ui.Program
	}
	if ui.Skills != "" {
		next.Skills = core.ParseSkills(ui.Skills)
	}
	if ui.Status != "" {
		next.Status = ui.Status
	}
	if ui.StartDate != "" {
		next.StartDate = ui.StartDate
	}
	if ui.EndDate != "" {
		next.EndDate = ui.EndDate
	}
	if ui.AssignedAdminID != "" {
		next.AssignedAdminID = ui.AssignedAdminID
	}
	if ui.ProfileImage != "" {
		next.ProfileImage = ui.ProfileImage
	}
	return next
}

// IsExpired reports whether the internship end date has passed as of the
// given time. It is a pure helper; nothing transitions intern status
// automatically.
func IsExpired(i store.Intern, asOf time.Time) bool {
	if i.EndDate == "" {
		return false
	}
	end, err := time.Parse(dateLayout, i.EndDate)
	if err != nil {
		return false
	}
	return end.Before(asOf.Truncate(24 * time.Hour))
}

package admin

import (
	"github.com/go-playground/validator/v10"

	"github.com/internhive/internhive/core"
)

// NewAdmin contains information needed to register a new admin account.
type NewAdmin struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Role            string `json:"role" validate:"required,oneof=HR Supervisor Mentor"`
	Password        string `json:"password" validate:"required"`
	PasswordConfirm string `json:"password_confirm" validate:"required,eqfield=Password"`
}

func (na *NewAdmin) Validate(svc *Service) error {
	na.Name = core.CleanString(na.Name)
	na.Email = core.CleanString(na.Email, true /* lower */)

	if err := core.Validate.Struct(na); err != nil {
		return err
	}
	return svc.checkEmailUniqueness(na.Email)
}

func init() {
	core.Validate.RegisterStructValidation(adminStructValidation, NewAdmin{})
}

// adminStructValidation applies the password policy to NewAdmin.
func adminStructValidation(sl validator.StructLevel) {
	if na, ok := sl.Current().Interface().(NewAdmin); ok {
		core.ValidatePassword(sl, na.Password, na.Name, na.Email)
	}
}

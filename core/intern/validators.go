package intern

import (
	"github.com/go-playground/validator/v10"

	"github.com/internhive/internhive/core"
)

func init() {
	core.Validate.RegisterStructValidation(internStructValidation, NewIntern{})
}

// internStructValidation applies the password policy to NewIntern.
func internStructValidation(sl validator.StructLevel) {
	if ni, ok := sl.Current().Interface().(NewIntern); ok {
		core.ValidatePassword(sl, ni.Password, ni.Name, ni.Email)
	}
}

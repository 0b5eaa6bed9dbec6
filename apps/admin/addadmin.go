package main

import (
	"context"
	"time"

	"github.com/internhive/internhive/core"
	"github.com/internhive/internhive/core/store"
)

func (cli *commandLine) addAdmin(name, email, role, pwd string) error {
	name = core.CleanString(name)
	email = core.CleanString(email, true /* lower */)
	if name == "" {
		name = email
	}

	found := false
	for _, r := range store.AdminRoles {
		if r == role {
			found = true
			break
		}
	}
	if !found {
		return core.NewValidationError(nil, core.FieldError{Field: "role", Error: "must be HR, Supervisor or Mentor"})
	}

	hash, err := core.HashPassword(pwd)
	if err != nil {
		return err
	}

	rec := store.Admin{
		ID:           store.NewID(),
		Name:         name,
		Email:        email,
		Role:         role,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := cli.remote.CreateAdmin(context.Background(), rec); err != nil {
		return err
	}
	logger.Printf("admin %s created", email)
	return nil
}

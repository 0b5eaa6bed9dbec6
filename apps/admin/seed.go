package main

import (
	"context"

	"github.com/internhive/internhive/core/store"
)

// seed loads the demo dataset into the remote database, so a fresh
// deployment has the same canned accounts the local store boots with.
func (cli *commandLine) seed() error {
	ctx := context.Background()
	state := store.DemoState()

	for _, a := range state.Admins {
		if err := cli.remote.CreateAdmin(ctx, a); err != nil {
			return err
		}
	}
	for _, i := range state.Interns {
		if err := cli.remote.CreateIntern(ctx, i); err != nil {
			return err
		}
	}
	for _, t := range state.Tasks {
		if err := cli.remote.CreateTask(ctx, t); err != nil {
			return err
		}
	}
	for _, n := range state.News {
		if err := cli.remote.CreateNews(ctx, n); err != nil {
			return err
		}
	}

	logger.Printf("seeded %d admins, %d interns, %d tasks, %d news items",
		len(state.Admins), len(state.Interns), len(state.Tasks), len(state.News))
	return nil
}

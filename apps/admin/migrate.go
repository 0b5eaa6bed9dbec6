package main

import (
	"github.com/internhive/internhive/core"
	"github.com/internhive/internhive/storage/database"
)

func (cli *commandLine) migrate() error {
	if err := database.CreateIfNotExist(core.Conf); err != nil {
		return err
	}
	if err := database.Migrate(cli.db.DB, core.Conf); err != nil {
		return err
	}
	logger.Println("migrations applied")
	return nil
}

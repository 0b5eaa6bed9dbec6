package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	echoapi "github.com/internhive/internhive/apps/api/echo"
	"github.com/internhive/internhive/core"
	"github.com/internhive/internhive/core/admin"
	"github.com/internhive/internhive/core/attendance"
	"github.com/internhive/internhive/core/auth"
	"github.com/internhive/internhive/core/document"
	"github.com/internhive/internhive/core/feedback"
	"github.com/internhive/internhive/core/intern"
	"github.com/internhive/internhive/core/news"
	"github.com/internhive/internhive/core/store"
	"github.com/internhive/internhive/core/task"
	emailsvc "github.com/internhive/internhive/services/email"
	logsvc "github.com/internhive/internhive/services/logger"
	syncsvc "github.com/internhive/internhive/services/sync"
	"github.com/internhive/internhive/storage/database"
	dummydb "github.com/internhive/internhive/storage/database/dummy"
)

func main() {
	std := log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	var logger core.Logger
	if core.Conf.Debug || core.Conf.RollbarToken == "" {
		logger = logsvc.NewStdLogger(std)
	} else {
		logger = logsvc.NewRollbarLogger(std, core.Conf)
	}

	// set up remote repository; fall back to the in-memory stand-in when no
	// database is configured
	var remote core.RemoteRepository
	if core.Conf.Database.User != "" {
		db, err := database.Open(core.Conf)
		if err != nil {
			logger.Fatal("opening database", err)
		}
		defer func() { _ = db.Close() }()
		remote = database.NewRepository(db)
	} else {
		remote = dummydb.Open()
	}

	// local store
	initial := store.State{}
	if core.Conf.EnableDemoLogin {
		initial = store.DemoState()
	}
	st := store.New(initial)

	// sync worker
	syncsvc.Register()
	worker := syncsvc.NewWorker(remote, logger, core.Conf.Sync)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go worker.Run(ctx)

	// services
	var mailSvc core.EmailService
	if core.Conf.Debug {
		mailSvc = emailsvc.NewConsoleService()
	} else {
		mailSvc = emailsvc.NewSendgridService(logger)
	}

	// landing page carousel; sized lazily by the news handlers
	rotator := news.NewRotator(0, core.Conf.News.RotationInterval)
	defer rotator.Stop()

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, os.Interrupt, syscall.SIGTERM)

	app := echoapi.NewServer(&echoapi.Options{
		Address:        core.Conf.Server.Addr,
		Logger:         logger,
		SignalShutdown: func() { shutdownCh <- syscall.SIGTERM },

		Store:         st,
		AuthSvc:       auth.NewService(st, remote, logger),
		InternSvc:     intern.NewService(st, worker, mailSvc),
		AdminSvc:      admin.NewService(st, worker),
		TaskSvc:       task.NewService(st, worker),
		AttendanceSvc: attendance.NewService(st, worker),
		FeedbackSvc:   feedback.NewService(st, worker),
		DocumentSvc:   document.NewService(st, worker),
		NewsSvc:       news.NewService(st, worker, remote, logger),
		NewsRotator:   rotator,
	})

	go app.Start()

	<-shutdownCh
	logger.Info("shutting down")

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer stopCancel()
	if err := app.Stop(stopCtx); err != nil {
		logger.Error("stopping server", err)
	}
}

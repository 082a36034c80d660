// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/expense-keeper/internal/config"
	"github.com/MKhiriev/expense-keeper/internal/logger"
	"github.com/MKhiriev/expense-keeper/internal/service"
	"github.com/MKhiriev/expense-keeper/internal/tui"
	"github.com/MKhiriev/expense-keeper/internal/workers"
)

const defaultRefreshInterval = 5 * time.Minute

// App ties the terminal UI, the client services and the background cache
// refresh worker into one process lifecycle. One Run call covers one full
// login session; logging out starts the cycle over.
type App struct {
	services *service.ClientServices
	ui       *tui.TUI
	cfg      config.ClientWorkers
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, cfg config.ClientWorkers, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errNoClientDependencies
	}

	return &App{
		services: services,
		ui:       ui,
		cfg:      cfg,
		logger:   logger,
	}, nil
}

// Run implements [Client]. It drives the login flow, launches the background
// refresh worker for the opened session and hands control to the main UI
// loop. The session key is wiped when the loop ends, whatever the reason.
func (a *App) Run() error {
	ctx := context.Background()

	for {
		session, err := a.ui.LoginFlow(ctx)
		if err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return err
		}

		a.logger.Info().Int64("user_id", session.UserID).Msg("session opened")

		interval := a.cfg.RefreshInterval
		if interval <= 0 {
			interval = defaultRefreshInterval
		}

		background := workers.NewWorkers(&refreshWorker{
			ctx:      ctx,
			job:      a.services.RefreshJob,
			session:  session,
			interval: interval,
		})
		background.Run()

		logout, err := a.ui.MainLoop(ctx, session)

		a.services.RefreshJob.Stop()
		session.Close()

		if err != nil {
			return err
		}
		if !logout {
			return nil
		}

		a.logger.Info().Msg("user logged out")
	}
}

// refreshWorker adapts the session-scoped refresh job to the [workers.Worker]
// contract so it can run next to any other background workers the client
// grows later.
type refreshWorker struct {
	ctx      context.Context
	job      service.ClientRefreshJob
	session  *service.Session
	interval time.Duration
}

func (w *refreshWorker) Run() {
	w.job.Start(w.ctx, w.session, w.interval)
}

package app

import (
	"context"

	"record-form/internal/logger"
	"record-form/internal/shutdown"

	"fyne.io/fyne/v2"
)

// Lifecycle quits the GUI when the process is asked to stop.
type Lifecycle struct {
	manager *shutdown.Manager
	logger  logger.Logger
}

func NewLifecycle(fyneApp fyne.App, log logger.Logger) *Lifecycle {
	manager := shutdown.NewManager(log)
	manager.Register("gui", shutdown.Func(func() {
		fyne.Do(fyneApp.Quit)
	}))

	return &Lifecycle{manager: manager, logger: log}
}

// Register adds a component stopped before the GUI quits.
func (l *Lifecycle) Register(name string, c shutdown.Shutdownable) {
	l.manager.Register(name, c)
}

func (l *Lifecycle) Listen(ctx context.Context) {
	l.manager.Listen(ctx)
}

func (l *Lifecycle) Shutdown() {
	l.logger.Info("Lifecycle", "shutdown requested", nil)
	l.manager.Shutdown()
}

func (l *Lifecycle) Done() <-chan struct{} {
	return l.manager.Done()
}

package app

import (
	"context"

	"record-form/internal/config"
	"record-form/internal/controllers"
	"record-form/internal/logger"
	"record-form/internal/store"
	"record-form/internal/views"

	"fyne.io/fyne/v2"
)

const (
	AppName    = "Data Storage App"
	AppID      = "com.example.recordform"
	AppVersion = "1.0.0"
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	view       *views.FormView
	controller *controllers.FormController
	store      *store.Store
	logger     logger.Logger
	lifecycle  *Lifecycle
}

// NewApplication loads the data file and builds the entry window on fyneApp.
// A load failure is reported in the window; the application still starts
// with an empty store.
func NewApplication(fyneApp fyne.App, cfg config.Config, log logger.Logger) *Application {
	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	window.CenterOnScreen()
	window.SetMaster()

	log.Info("Application", "starting application", map[string]interface{}{
		"version":   AppVersion,
		"data_file": cfg.DataFile,
		"log_level": cfg.LogLevel,
	})

	records, loadErr := store.Load(cfg.DataFile)

	view := views.NewFormView(window)
	controller := controllers.NewFormController(records, log)
	controller.SetView(view)

	a := &Application{
		fyneApp:    fyneApp,
		window:     window,
		view:       view,
		controller: controller,
		store:      records,
		logger:     log,
		lifecycle:  NewLifecycle(fyneApp, log),
	}
	a.setupHandlers()
	a.setupMenus()

	controller.ReportLoad(loadErr)
	return a
}

func (a *Application) setupHandlers() {
	a.view.SetSaveHandler(a.controller.Save)
	a.view.SetFindHandler(a.controller.Find)
	a.view.SetCloseHandler(func() {
		a.logger.Info("Application", "close requested", nil)
		a.window.Close()
	})
}

// Run shows the window and blocks until the application quits. Cancelling
// ctx stops signal handling.
func (a *Application) Run(ctx context.Context) {
	a.lifecycle.Listen(ctx)

	a.window.ShowAndRun()
	a.logger.Info("Application", "application stopped", nil)
}

func (a *Application) Window() fyne.Window {
	return a.window
}

func (a *Application) View() *views.FormView {
	return a.view
}

func (a *Application) Store() *store.Store {
	return a.store
}

func (a *Application) Lifecycle() *Lifecycle {
	return a.lifecycle
}

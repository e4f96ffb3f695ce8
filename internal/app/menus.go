package app

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

func (a *Application) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Save Record", a.controller.Save),
		fyne.NewMenuItem("Find Record...", a.controller.Find),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", a.fyneApp.Quit),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", a.showAbout),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu, helpMenu))
}

func (a *Application) showAbout() {
	message := fmt.Sprintf("%s %s\n\n%d records in %s",
		AppName, AppVersion, a.store.Len(), a.store.Path())
	dialog.ShowInformation("About", message, a.window)
}

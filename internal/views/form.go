package views

import (
	"record-form/internal/models"
	"record-form/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

type NotificationKind int

const (
	NotifyInfo NotificationKind = iota
	NotifyError
)

// Notification is a modal message shown to the user.
type Notification struct {
	Kind    NotificationKind
	Title   string
	Message string
}

// FormView is the person entry screen. Handlers are attached by the caller.
type FormView struct {
	window  fyne.Window
	content *fyne.Container

	nameEntry      *widget.Entry
	idEntry        *widget.Entry
	genderGroup    *widget.RadioGroup
	provinceSelect *widget.Select
	dobEntry       *widget.DateEntry

	saveButton  *widget.Button
	findButton  *widget.Button
	closeButton *widget.Button
	statusBar   *components.StatusBar

	saveHandler  func()
	findHandler  func()
	closeHandler func()
}

// NewFormView builds the form and installs it as the window content.
func NewFormView(window fyne.Window) *FormView {
	v := &FormView{window: window}

	v.initializeComponents()
	v.buildLayout()

	return v
}

func (v *FormView) initializeComponents() {
	v.nameEntry = widget.NewEntry()
	v.idEntry = widget.NewEntry()

	v.genderGroup = widget.NewRadioGroup(models.Genders, nil)
	v.genderGroup.Horizontal = true

	v.provinceSelect = widget.NewSelect(models.Provinces, nil)

	v.dobEntry = widget.NewDateEntry()

	v.saveButton = widget.NewButton("Save", func() { v.fire(v.saveHandler) })
	v.findButton = widget.NewButton("Find", func() { v.fire(v.findHandler) })
	v.closeButton = widget.NewButton("Close", func() { v.fire(v.closeHandler) })

	v.statusBar = components.NewStatusBar()
}

func (v *FormView) buildLayout() {
	fields := container.New(layout.NewFormLayout(),
		widget.NewLabel("Full Name:"), v.nameEntry,
		widget.NewLabel("ID:"), v.idEntry,
		widget.NewLabel("Gender:"), v.genderGroup,
		widget.NewLabel("Province:"), v.provinceSelect,
		widget.NewLabel("Date of Birth:"), v.dobEntry,
		v.saveButton, v.findButton,
		layout.NewSpacer(), v.closeButton,
	)

	v.content = container.NewBorder(nil, v.statusBar.GetContainer(), nil, nil,
		container.NewPadded(fields))

	v.window.SetContent(v.content)
}

func (v *FormView) fire(handler func()) {
	if handler != nil {
		handler()
	}
}

func (v *FormView) SetSaveHandler(handler func())  { v.saveHandler = handler }
func (v *FormView) SetFindHandler(handler func())  { v.findHandler = handler }
func (v *FormView) SetCloseHandler(handler func()) { v.closeHandler = handler }

// Values reads the inputs. Unset choices come back as empty strings.
func (v *FormView) Values() models.Record {
	dob := ""
	if v.dobEntry.Date != nil {
		dob = v.dobEntry.Date.Format(models.DateLayout)
	}

	return models.Record{
		FullName:    v.nameEntry.Text,
		ID:          v.idEntry.Text,
		Gender:      v.genderGroup.Selected,
		Province:    v.provinceSelect.Selected,
		DateOfBirth: dob,
	}
}

// Reset clears every input.
func (v *FormView) Reset() {
	v.nameEntry.SetText("")
	v.idEntry.SetText("")
	v.genderGroup.SetSelected("")
	v.provinceSelect.ClearSelected()
	v.dobEntry.SetDate(nil)
}

// Notify shows n in a modal dialog.
func (v *FormView) Notify(n Notification) {
	icon := theme.InfoIcon()
	if n.Kind == NotifyError {
		icon = theme.ErrorIcon()
	}

	content := container.NewHBox(widget.NewIcon(icon), widget.NewLabel(n.Message))
	dialog.NewCustom(n.Title, "OK", content, v.window).Show()
}

// PromptID asks for an ID and passes it to onSubmit unless cancelled.
func (v *FormView) PromptID(onSubmit func(id string)) {
	entry := widget.NewEntry()
	items := []*widget.FormItem{widget.NewFormItem("Enter ID:", entry)}

	d := dialog.NewForm("Find Data", "Find", "Cancel", items, func(confirmed bool) {
		if confirmed {
			onSubmit(entry.Text)
		}
	}, v.window)
	d.Show()
	v.window.Canvas().Focus(entry)
}

// SetStatus reports the record count and data file in the status bar.
func (v *FormView) SetStatus(count int, path string) {
	v.statusBar.SetRecordInfo(count, path)
}

func (v *FormView) Content() fyne.CanvasObject {
	return v.content
}

func (v *FormView) Window() fyne.Window {
	return v.window
}

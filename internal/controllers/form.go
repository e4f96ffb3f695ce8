package controllers

import (
	"errors"

	"record-form/internal/logger"
	"record-form/internal/models"
	"record-form/internal/store"
	"record-form/internal/views"
)

const component = "FormController"

// User-facing messages. They are fixed regardless of the underlying error.
const (
	MsgLoadFailed = "Failed to load data from file."
	MsgIDRequired = "ID is required to save data."
	MsgSaveFailed = "Failed to save data to file."
	MsgSaved      = "Data saved successfully."
	MsgNotFound   = "No data found for the given ID."
	TitleError    = "Error"
	TitleSuccess  = "Success"
	TitleFound    = "Data Found"
	TitleNotFound = "Not Found"
)

// Repository is the record storage the controller drives.
type Repository interface {
	Put(rec models.Record) error
	Find(id string) (models.Record, error)
	Len() int
	Path() string
}

// FormView is the part of the entry screen the controller talks to.
type FormView interface {
	Values() models.Record
	Reset()
	Notify(n views.Notification)
	PromptID(onSubmit func(id string))
	SetStatus(count int, path string)
}

// FormController turns form actions into store operations and reports the
// outcome through the view.
type FormController struct {
	repo   Repository
	view   FormView
	logger logger.Logger
}

func NewFormController(repo Repository, log logger.Logger) *FormController {
	return &FormController{repo: repo, logger: log}
}

// SetView attaches the view and refreshes its status line.
func (fc *FormController) SetView(view FormView) {
	fc.view = view
	fc.refreshStatus()
}

// ReportLoad surfaces the result of the startup load. A nil error only logs.
func (fc *FormController) ReportLoad(err error) {
	if err != nil {
		fc.logger.Error(component, err, map[string]interface{}{"path": fc.repo.Path()})
		fc.notifyError(TitleError, MsgLoadFailed)
		return
	}
	fc.logger.Info(component, "records loaded", map[string]interface{}{
		"path":  fc.repo.Path(),
		"count": fc.repo.Len(),
	})
}

// Save stores the form contents and clears the form when it succeeds.
func (fc *FormController) Save() {
	rec := fc.view.Values()

	err := fc.repo.Put(rec)
	var verr *store.ValidationError
	switch {
	case errors.As(err, &verr):
		fc.logger.Debug(component, "save rejected", map[string]interface{}{"reason": verr.Error()})
		fc.notifyError(TitleError, MsgIDRequired)
		return
	case err != nil:
		fc.logger.Error(component, err, map[string]interface{}{"id": rec.ID})
		fc.refreshStatus()
		fc.notifyError(TitleError, MsgSaveFailed)
		return
	}

	fc.logger.Info(component, "record saved", map[string]interface{}{"id": rec.ID})
	fc.refreshStatus()
	fc.view.Notify(views.Notification{Kind: views.NotifyInfo, Title: TitleSuccess, Message: MsgSaved})
	fc.view.Reset()
}

// Find prompts for an ID and shows the matching record.
func (fc *FormController) Find() {
	fc.view.PromptID(fc.Lookup)
}

// Lookup shows the record stored under id, or a not-found message.
func (fc *FormController) Lookup(id string) {
	rec, err := fc.repo.Find(id)
	if errors.Is(err, store.ErrNotFound) {
		fc.logger.Debug(component, "record not found", map[string]interface{}{"id": id})
		fc.notifyError(TitleNotFound, MsgNotFound)
		return
	}

	fc.logger.Debug(component, "record found", map[string]interface{}{"id": id})
	fc.view.Notify(views.Notification{Kind: views.NotifyInfo, Title: TitleFound, Message: rec.Summary()})
}

func (fc *FormController) notifyError(title, message string) {
	fc.view.Notify(views.Notification{Kind: views.NotifyError, Title: title, Message: message})
}

func (fc *FormController) refreshStatus() {
	if fc.view != nil {
		fc.view.SetStatus(fc.repo.Len(), fc.repo.Path())
	}
}

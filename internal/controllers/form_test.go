package controllers

import (
	"os"
	"path/filepath"
	"testing"

	"record-form/internal/logger"
	"record-form/internal/models"
	"record-form/internal/store"
	"record-form/internal/views"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeView struct {
	values        models.Record
	resets        int
	notifications []views.Notification
	promptAnswer  *string
	statusCount   int
	statusPath    string
}

func (f *fakeView) Values() models.Record { return f.values }
func (f *fakeView) Reset()                { f.resets++; f.values = models.Record{} }
func (f *fakeView) Notify(n views.Notification) {
	f.notifications = append(f.notifications, n)
}
func (f *fakeView) PromptID(onSubmit func(string)) {
	if f.promptAnswer != nil {
		onSubmit(*f.promptAnswer)
	}
}
func (f *fakeView) SetStatus(count int, path string) {
	f.statusCount = count
	f.statusPath = path
}

func (f *fakeView) last(t *testing.T) views.Notification {
	t.Helper()
	require.NotEmpty(t, f.notifications)
	return f.notifications[len(f.notifications)-1]
}

func newController(t *testing.T, path string) (*FormController, *store.Store, *fakeView) {
	t.Helper()
	s, err := store.Load(path)
	require.NoError(t, err)

	view := &fakeView{}
	fc := NewFormController(s, logger.Nop())
	fc.SetView(view)
	return fc, s, view
}

func TestSetView_RefreshesStatus(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.txt")
	require.NoError(t, os.WriteFile(path, []byte("Ali;123;Male;Punjab;1990-01-01\n"), 0o644))

	_, _, view := newController(t, path)

	assert.Equal(t, 1, view.statusCount)
	assert.Equal(t, path, view.statusPath)
}

func TestSave_Success(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.txt")
	fc, s, view := newController(t, path)

	view.values = models.Record{FullName: "Ali", ID: "123", Gender: "Male", Province: "Punjab", DateOfBirth: "1990-01-01"}
	fc.Save()

	n := view.last(t)
	assert.Equal(t, views.NotifyInfo, n.Kind)
	assert.Equal(t, TitleSuccess, n.Title)
	assert.Equal(t, MsgSaved, n.Message)
	assert.Equal(t, 1, view.resets)
	assert.Equal(t, 1, view.statusCount)

	got, err := s.Find("123")
	require.NoError(t, err)
	assert.Equal(t, "Ali", got.FullName)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Ali;123;Male;Punjab;1990-01-01\n", string(data))
}

func TestSave_MissingID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.txt")
	fc, s, view := newController(t, path)

	view.values = models.Record{FullName: "Ali"}
	fc.Save()

	n := view.last(t)
	assert.Equal(t, views.NotifyError, n.Kind)
	assert.Equal(t, MsgIDRequired, n.Message)
	assert.Zero(t, view.resets, "form keeps its input")
	assert.Equal(t, 0, s.Len())

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestSave_WriteFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "data.txt")
	fc, _, view := newController(t, path)

	view.values = models.Record{FullName: "Ali", ID: "123"}
	fc.Save()

	require.Len(t, view.notifications, 1, "only the failure is reported")
	n := view.last(t)
	assert.Equal(t, views.NotifyError, n.Kind)
	assert.Equal(t, MsgSaveFailed, n.Message)
	assert.Zero(t, view.resets)
}

func TestFind_Found(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.txt")
	require.NoError(t, os.WriteFile(path, []byte("Ali;123;Male;Punjab;1990-01-01\n"), 0o644))
	fc, _, view := newController(t, path)

	id := "123"
	view.promptAnswer = &id
	fc.Find()

	n := view.last(t)
	assert.Equal(t, views.NotifyInfo, n.Kind)
	assert.Equal(t, TitleFound, n.Title)
	assert.Equal(t, "Full Name: Ali\nID: 123\nGender: Male\nProvince: Punjab\nDate of Birth: 1990-01-01", n.Message)
}

func TestFind_NotFound(t *testing.T) {
	fc, _, view := newController(t, filepath.Join(t.TempDir(), "data.txt"))

	id := "999"
	view.promptAnswer = &id
	fc.Find()

	n := view.last(t)
	assert.Equal(t, views.NotifyError, n.Kind)
	assert.Equal(t, TitleNotFound, n.Title)
	assert.Equal(t, MsgNotFound, n.Message)
}

func TestFind_Cancelled(t *testing.T) {
	fc, _, view := newController(t, filepath.Join(t.TempDir(), "data.txt"))

	fc.Find()

	assert.Empty(t, view.notifications)
}

func TestReportLoad(t *testing.T) {
	fc, _, view := newController(t, filepath.Join(t.TempDir(), "data.txt"))

	fc.ReportLoad(nil)
	assert.Empty(t, view.notifications)

	fc.ReportLoad(&store.IOError{Op: "load", Path: "data.txt", Err: os.ErrPermission})
	require.Len(t, view.notifications, 1)
	assert.Equal(t, MsgLoadFailed, view.last(t).Message)
	assert.Equal(t, views.NotifyError, view.last(t).Kind)
}

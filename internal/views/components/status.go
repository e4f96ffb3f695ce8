package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusBar shows how many records are held and where they are stored.
type StatusBar struct {
	container  *fyne.Container
	recordInfo *widget.Label
	fileInfo   *widget.Label
}

func NewStatusBar() *StatusBar {
	sb := &StatusBar{}
	sb.createComponents()
	sb.buildLayout()
	return sb
}

func (sb *StatusBar) createComponents() {
	sb.recordInfo = widget.NewLabel("No records")
	sb.fileInfo = widget.NewLabel("")
}

func (sb *StatusBar) buildLayout() {
	sb.container = container.NewHBox(
		sb.recordInfo,
		widget.NewSeparator(),
		sb.fileInfo,
	)
}

// SetRecordInfo updates the count and file labels.
func (sb *StatusBar) SetRecordInfo(count int, path string) {
	switch count {
	case 0:
		sb.recordInfo.SetText("No records")
	case 1:
		sb.recordInfo.SetText("1 record")
	default:
		sb.recordInfo.SetText(fmt.Sprintf("%d records", count))
	}
	sb.fileInfo.SetText(path)
}

func (sb *StatusBar) RecordText() string {
	return sb.recordInfo.Text
}

func (sb *StatusBar) FileText() string {
	return sb.fileInfo.Text
}

func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

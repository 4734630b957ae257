//go:build !nogui

package window

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/username/feestdagen/internal/calendar"
	"github.com/username/feestdagen/internal/gui"
	"github.com/username/feestdagen/pkg/dateutil"
)

const appID = "nl.feestdagen.christelijk"

// Run opens the feast day window and blocks until it is closed
func Run(opts Options, cal calendar.Calendar, logger *zap.Logger) error {
	a := app.NewWithID(appID)
	w := a.NewWindow(opts.Title)
	p := gui.NewPresenter(cal, logger)

	header := widget.NewLabelWithStyle("Belangrijke Christelijke Feestdagen in Nederland",
		fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	yearEntry := widget.NewEntry()
	yearEntry.SetText(strconv.Itoa(opts.Year))

	status := widget.NewLabel("")

	table := widget.NewTable(
		func() (int, int) {
			return len(p.View().Rows), 2
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(id widget.TableCellID, obj fyne.CanvasObject) {
			rows := p.View().Rows
			label := obj.(*widget.Label)
			if id.Row >= len(rows) {
				label.SetText("")
				return
			}
			if id.Col == 0 {
				label.SetText(rows[id.Row].Date)
			} else {
				label.SetText(rows[id.Row].Name)
			}
		},
	)
	table.SetColumnWidth(0, opts.Width*0.35)
	table.SetColumnWidth(1, opts.Width*0.6)

	show := func() {
		view := p.Show(yearEntry.Text)
		status.SetText(view.Status)
		table.Refresh()
		table.ScrollToTop()
	}
	yearEntry.OnSubmitted = func(string) { show() }

	yearRow := container.NewBorder(nil, nil,
		widget.NewLabel("Selecteer jaar:"),
		widget.NewButton("Toon feestdagen", show),
		yearEntry)
	columns := container.NewGridWithColumns(2,
		widget.NewLabelWithStyle("Datum", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Feestdag", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))

	w.SetContent(container.NewBorder(
		container.NewVBox(header, yearRow, columns),
		status,
		nil, nil,
		table))
	w.Resize(fyne.NewSize(opts.Width, opts.Height))
	w.SetMaster()

	if desk, ok := a.(desktop.App); ok {
		desk.SetSystemTrayMenu(fyne.NewMenu("Feestdagen",
			fyne.NewMenuItem("Toon venster", w.Show),
			fyne.NewMenuItem("Dit jaar", func() {
				yearEntry.SetText(strconv.Itoa(dateutil.Today().Year))
				show()
				w.Show()
			}),
		))
	}

	show()
	logger.Info("Window opened", zap.Int("year", opts.Year))
	w.ShowAndRun()
	logger.Info("Window closed")

	return nil
}

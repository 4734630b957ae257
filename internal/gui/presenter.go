package gui

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/username/feestdagen/internal/calendar"
	"github.com/username/feestdagen/internal/export"
	"github.com/username/feestdagen/internal/feestdagen"
)

// Row is one line of the Datum/Feestdag table
type Row struct {
	Date string
	Name string
}

// View is everything the window shows for one request
type View struct {
	Year   int
	Rows   []Row
	Status string
	Err    error
}

// Presenter turns year input into a View. It keeps the last successful
// rows so a failed request only changes the status line.
type Presenter struct {
	cal    calendar.Calendar
	logger *zap.Logger
	view   View
}

// NewPresenter creates a new Presenter
func NewPresenter(cal calendar.Calendar, logger *zap.Logger) *Presenter {
	return &Presenter{
		cal:    cal,
		logger: logger,
	}
}

// Show computes the view for the given year input
func (p *Presenter) Show(input string) View {
	year, err := feestdagen.ParseYear(input)
	if err == nil {
		var list feestdagen.List
		list, err = p.cal.GetYear(year)
		if err == nil {
			p.view = View{
				Year:   year,
				Rows:   toRows(list),
				Status: fmt.Sprintf("Toont christelijke feestdagen voor %d", year),
			}
			p.logger.Info("Showing feast days", zap.Int("year", year))
			return p.view
		}
	}

	p.logger.Warn("Cannot show feast days",
		zap.String("input", input),
		zap.Error(err))

	p.view.Status = fmt.Sprintf("Fout: %v", err)
	p.view.Err = err
	return p.view
}

// View returns the current view
func (p *Presenter) View() View {
	return p.view
}

func toRows(list feestdagen.List) []Row {
	rows := make([]Row, 0, len(list))
	for _, h := range list {
		rows = append(rows, Row{Date: export.FormatDate(h.Date), Name: h.Name})
	}
	return rows
}

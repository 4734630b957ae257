package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode"

	"github.com/gocarina/gocsv"

	"github.com/username/feestdagen/internal/feestdagen"
	"github.com/username/feestdagen/pkg/dateutil"
)

// Output formats
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatCSV   = "csv"
	FormatICS   = "ics"

	ICSProductID = "-//Feestdagen//Christelijke Feestdagen//NL"
	icsUIDDomain = "feestdagen"
)

// ErrUnknownFormat is returned by New for unsupported formats
var ErrUnknownFormat = errors.New("unknown output format")

// Formats lists the supported output formats
var Formats = []string{FormatTable, FormatJSON, FormatCSV, FormatICS}

// Writer renders a feast day list
type Writer interface {
	Write(w io.Writer, year int, list feestdagen.List) error
}

// New returns the Writer for the given format name
func New(format string) (Writer, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatTable, "":
		return TableWriter{}, nil
	case FormatJSON:
		return JSONWriter{Indent: "  "}, nil
	case FormatCSV:
		return CSVWriter{}, nil
	case FormatICS:
		return ICSWriter{Now: time.Now}, nil
	}
	return nil, fmt.Errorf("%w: %q (supported: %s)", ErrUnknownFormat, format, strings.Join(Formats, ", "))
}

// TableWriter prints a two-column Datum/Feestdag table
type TableWriter struct{}

// Write implements Writer
func (TableWriter) Write(w io.Writer, year int, list feestdagen.List) error {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "Christelijke feestdagen %d\n", year)
	fmt.Fprintln(&buf, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintf(&buf, "  %-28s | %s\n", "Datum", "Feestdag")
	fmt.Fprintln(&buf, "--------------------------------+------------------------------")
	for _, h := range list {
		fmt.Fprintf(&buf, "  %-28s | %s\n", FormatDate(h.Date), h.Name)
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// JSONWriter encodes the list as a JSON document
type JSONWriter struct {
	Indent string
}

type jsonHoliday struct {
	Date      dateutil.Date `json:"date"`
	ISO       string        `json:"iso"`
	Formatted string        `json:"formatted"`
	Name      string        `json:"name"`
}

type jsonDocument struct {
	Year     int           `json:"year"`
	Easter   dateutil.Date `json:"easter"`
	Holidays []jsonHoliday `json:"holidays"`
}

// Write implements Writer
func (jw JSONWriter) Write(w io.Writer, year int, list feestdagen.List) error {
	doc := jsonDocument{
		Year:     year,
		Easter:   feestdagen.Easter(year),
		Holidays: make([]jsonHoliday, 0, len(list)),
	}
	for _, h := range list {
		doc.Holidays = append(doc.Holidays, jsonHoliday{
			Date:      h.Date,
			ISO:       h.Date.String(),
			Formatted: FormatDate(h.Date),
			Name:      h.Name,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", jw.Indent)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// CSVWriter writes one row per feast day
type CSVWriter struct{}

type csvRow struct {
	Date    string `csv:"datum"`
	Weekday string `csv:"weekdag"`
	Name    string `csv:"feestdag"`
}

// Write implements Writer
func (CSVWriter) Write(w io.Writer, year int, list feestdagen.List) error {
	rows := make([]*csvRow, 0, len(list))
	for _, h := range list {
		rows = append(rows, &csvRow{
			Date:    h.Date.String(),
			Weekday: FormatWeekday(h.Date),
			Name:    h.Name,
		})
	}

	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	return nil
}

// ICSWriter generates an iCalendar file with one all-day event per feast day
type ICSWriter struct {
	Now func() time.Time
}

// Write implements Writer
func (iw ICSWriter) Write(w io.Writer, year int, list feestdagen.List) error {
	now := time.Now
	if iw.Now != nil {
		now = iw.Now
	}
	stamp := now().UTC().Format("20060102T150405Z")

	var buf bytes.Buffer
	line := func(format string, a ...interface{}) {
		fmt.Fprintf(&buf, format, a...)
		buf.WriteString("\r\n")
	}

	line("BEGIN:VCALENDAR")
	line("VERSION:2.0")
	line("PRODID:%s", ICSProductID)
	line("CALSCALE:GREGORIAN")
	line("X-WR-CALNAME:Christelijke feestdagen %d", year)

	for _, h := range list {
		line("BEGIN:VEVENT")
		line("UID:%s-%s@%s", h.Date.String(), slug(h.Name), icsUIDDomain)
		line("DTSTAMP:%s", stamp)
		line("DTSTART;VALUE=DATE:%s", h.Date.Time().Format("20060102"))
		line("DTEND;VALUE=DATE:%s", h.Date.AddDays(1).Time().Format("20060102"))
		line("SUMMARY:%s", escapeText(h.Name))
		line("TRANSP:TRANSPARENT")
		line("END:VEVENT")
	}

	line("END:VCALENDAR")

	_, err := w.Write(buf.Bytes())
	return err
}

// slug lowercases s and collapses everything but letters and digits into dashes
func slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

var icsEscaper = strings.NewReplacer(`\`, `\\`, ";", `\;`, ",", `\,`, "\n", `\n`)

func escapeText(s string) string {
	return icsEscaper.Replace(s)
}

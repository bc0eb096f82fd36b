package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/pehdsa/journey-native/internal/timecalc"
)

// Supported label locales.
const (
	LocaleEnglish    = "en"
	LocalePortuguese = "pt-BR"
)

var portugueseMonths = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// Formatter renders range labels in a given locale.
type Formatter struct {
	Locale string
}

// FormatRangeLabel renders r with the English formatter.
func FormatRangeLabel(r DateRange) string {
	return Formatter{Locale: LocaleEnglish}.Label(r)
}

// SupportedLocale reports whether Formatter knows locale. "pt" is accepted
// as Brazilian Portuguese.
func SupportedLocale(locale string) bool {
	return strings.EqualFold(locale, LocaleEnglish) || Formatter{Locale: locale}.portuguese()
}

// Label summarizes a complete range, e.g. "12 to 19 of August". Ranges
// crossing a month name both months; ranges crossing a year also carry
// the years. Incomplete ranges yield "".
func (f Formatter) Label(r DateRange) string {
	if !r.Complete() {
		return ""
	}
	start, end := r.Start.Date(), r.End.Date()
	to, of := f.words()

	switch {
	case timecalc.SameMonth(start, end):
		return fmt.Sprintf("%d %s %d %s %s", start.Day(), to, end.Day(), of, f.month(start.Month()))
	case start.Year() == end.Year():
		return fmt.Sprintf("%d %s %s %s %d %s %s",
			start.Day(), of, f.month(start.Month()), to, end.Day(), of, f.month(end.Month()))
	default:
		return fmt.Sprintf("%d %s %s %d %s %d %s %s %d",
			start.Day(), of, f.month(start.Month()), start.Year(), to,
			end.Day(), of, f.month(end.Month()), end.Year())
	}
}

func (f Formatter) words() (to, of string) {
	if f.portuguese() {
		return "até", "de"
	}
	return "to", "of"
}

func (f Formatter) month(m time.Month) string {
	if f.portuguese() {
		return portugueseMonths[m-1]
	}
	return m.String()
}

func (f Formatter) portuguese() bool {
	return strings.EqualFold(f.Locale, LocalePortuguese) || strings.EqualFold(f.Locale, "pt")
}

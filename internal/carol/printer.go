package carol

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Printer renders the cumulative verses of an additive song.
type Printer struct {
	// Subject is the occasion named in each header, e.g. "Christmas"
	Subject string

	// Header decorates each header line before it is written. Nil leaves
	// headers untouched.
	Header func(string) string
}

// NewPrinter creates a printer for the default subject
func NewPrinter() *Printer {
	return &Printer{Subject: DefaultSubject}
}

// Run writes one block per day using the default printer.
func Run(w io.Writer, days []Day) error {
	return NewPrinter().Run(w, days)
}

// Run writes, for every day in ascending order, a blank separator, the day's
// header and then the gifts of that day and all earlier days, newest first.
func (p *Printer) Run(w io.Writer, days []Day) error {
	if len(days) == 0 {
		return fmt.Errorf("%w: no days", ErrInvalidInput)
	}

	for day := range days {
		if err := p.writeBlock(w, days, day); err != nil {
			return fmt.Errorf("failed to write day %d: %w", day+1, err)
		}
	}
	return nil
}

// block returns the lines for day, separator included. Callers keep day
// within [0, len(days)).
func (p *Printer) block(days []Day, day int) []string {
	lines := make([]string, 0, day+2)
	lines = append(lines, "", p.header(days[day].Label))
	for line := day; line >= 0; line-- {
		lines = append(lines, days[line].Gift)
	}
	return lines
}

func (p *Printer) writeBlock(w io.Writer, days []Day, day int) error {
	var b strings.Builder
	for _, line := range p.block(days, day) {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func (p *Printer) header(label string) string {
	subject := p.Subject
	if subject == "" {
		subject = DefaultSubject
	}
	line := fmt.Sprintf("On the %s day of %s my true love sent to me", label, subject)
	if p.Header != nil {
		return p.Header(line)
	}
	return line
}

// Banner writes the title underlined with a dash rule of the same width.
func Banner(w io.Writer, title string, style func(string) string) error {
	rule := strings.Repeat("-", utf8.RuneCountInString(title))
	if style != nil {
		title = style(title)
	}
	_, err := fmt.Fprintf(w, "%s\n%s\n", title, rule)
	return err
}

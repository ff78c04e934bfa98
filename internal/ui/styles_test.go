package ui

import (
	"os"
	"testing"

	"github.com/rail44/drills/internal/config"
)

func TestStyles_DisabledIsIdentity(t *testing.T) {
	const line = "On the first day of Christmas my true love sent to me"

	for _, s := range []*Styles{nil, NewStyles(false)} {
		if s.Enabled() {
			t.Fatal("Enabled() = true")
		}
		if got := s.Title(line); got != line {
			t.Errorf("Title() = %q", got)
		}
		if got := s.Header(line); got != line {
			t.Errorf("Header() = %q", got)
		}
	}
}

func TestForStdout_Never(t *testing.T) {
	if ForStdout("never").Enabled() {
		t.Error("styling enabled with color=never")
	}
}

func TestForStdout_AutoWithoutTerminal(t *testing.T) {
	// test binaries write stdout to a pipe
	if IsTerminal(os.Stdout.Fd()) {
		t.Skip("stdout is a terminal")
	}
	if ForStdout(config.ColorAuto).Enabled() {
		t.Error("styling enabled for non-terminal stdout")
	}
}

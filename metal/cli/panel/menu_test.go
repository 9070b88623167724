package panel

import (
	"bufio"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/ehihameneromosele/fullblog2c/pkg/portal"
)

func menuWithInput(input string) Menu {
	return Menu{
		Reader:    bufio.NewReader(strings.NewReader(input)),
		Validator: portal.GetDefaultValidator(),
	}
}

// silence swallows stdout while fn runs, the panel prints its prompts there.
func silence(fn func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	fn()

	w.Close()
	out, _ := io.ReadAll(r)
	os.Stdout = old

	return string(out)
}

func TestMenuRendering(t *testing.T) {
	m := Menu{}

	if got := m.CenterText("hi", 6); got != "  hi  " {
		t.Fatalf("centering broke: %q", got)
	}

	if got := m.CenterText("toolong", 4); got != "tool" {
		t.Fatalf("expected overlong text to be clipped, got %q", got)
	}

	if out := silence(func() { m.PrintOption("x", 5) }); !strings.Contains(out, "║ x   ║") {
		t.Fatalf("unexpected option row: %q", out)
	}

	if out := silence(func() { menuWithInput("").Print() }); !strings.Contains(out, "1. Create a blog admin account") {
		t.Fatalf("menu body missing: %q", out)
	}

	m.PrintLine()
}

func TestGetChoiceDefaultsToExit(t *testing.T) {
	if (Menu{}).GetChoice() != 0 {
		t.Fatalf("an unanswered menu should read as exit")
	}
}

func TestCaptureInput(t *testing.T) {
	m := menuWithInput("2\n")

	silence(func() {
		if err := m.CaptureInput(); err != nil {
			t.Fatalf("capture: %v", err)
		}
	})

	if m.GetChoice() != 2 {
		t.Fatalf("choice: %d", m.GetChoice())
	}

	bad := menuWithInput("bad\n")

	silence(func() {
		if err := bad.CaptureInput(); err == nil {
			t.Fatalf("expected a non-numeric answer to fail")
		}
	})
}

func TestCaptureUsername(t *testing.T) {
	var name string
	var err error

	m := menuWithInput("alice\n")
	silence(func() { name, err = m.CaptureUsername() })

	if err != nil || name != "alice" {
		t.Fatalf("got %q err %v", name, err)
	}

	blank := menuWithInput("\n")
	silence(func() { _, err = blank.CaptureUsername() })

	if err == nil {
		t.Fatalf("expected a blank answer to fail")
	}
}

func TestCaptureNewAdmin(t *testing.T) {
	var input *AdminInput
	var err error

	m := menuWithInput("alice\nalice@example.com\nsuper-secret\nAlice\nAdams\n")
	silence(func() { input, err = m.CaptureNewAdmin() })

	if err != nil {
		t.Fatalf("capture admin: %v", err)
	}

	if input.Username != "alice" || input.Email != "alice@example.com" {
		t.Fatalf("unexpected input: %+v", input)
	}

	if input.FirstName != "Alice" || input.LastName != "Adams" {
		t.Fatalf("unexpected names: %+v", input)
	}
}

func TestCaptureNewAdminRejectsInvalidEmail(t *testing.T) {
	var err error

	m := menuWithInput("alice\nnot-an-email\nsuper-secret\n\n\n")
	silence(func() { _, err = m.CaptureNewAdmin() })

	if err == nil {
		t.Fatalf("expected a validation error")
	}
}

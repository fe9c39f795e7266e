package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"sheetforecast.app/internal/core/autocomplete"
	"sheetforecast.app/internal/core/sidebar"
	"sheetforecast.app/pkg/errors"
)

const helpText = `Type a city name to search. Commands:
  /down /up /enter /esc   navigate suggestions
  /pick N                 choose suggestion N
  /blur                   leave the city input
  /date YYYY-MM-DD        set the start date (empty resets)
  /days N                 set days (1..3)
  /filter temp|wind|condition   toggle a column group
  /key VALUE              store the WeatherAPI key on the host
  /generate               write the report
  /show                   print the form
  /quit                   exit`

// KeySetter stores the provider key on the host
type KeySetter interface {
	SetAPIKey(ctx context.Context, key string) error
}

// session drives the controller and form from line input
type session struct {
	ctl     *autocomplete.Controller
	form    *sidebar.Form
	keys    KeySetter
	timeout time.Duration

	mu       sync.Mutex
	out      io.Writer
	rendered string
}

func newSession(ctl *autocomplete.Controller, form *sidebar.Form, keys KeySetter, out io.Writer, timeout time.Duration) *session {
	s := &session{ctl: ctl, form: form, keys: keys, out: out, timeout: timeout}
	ctl.Subscribe(s.render)
	return s
}

func (s *session) printf(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = fmt.Fprintf(s.out, format, args...)
}

// render prints the suggestion list whenever its visible lines change
func (s *session) render(st autocomplete.State) {
	var b strings.Builder
	for _, item := range st.Items() {
		switch item.Kind {
		case autocomplete.ItemOption:
			marker := " "
			if item.Active {
				marker = ">"
			}
			fmt.Fprintf(&b, "%s %d. %s\n", marker, item.Index+1, item.Text)
		default:
			fmt.Fprintf(&b, "  %s\n", item.Text)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if b.String() == s.rendered {
		return
	}
	s.rendered = b.String()
	if s.rendered != "" {
		_, _ = io.WriteString(s.out, s.rendered)
	}
}

// handle runs one input line and reports whether the session continues
func (s *session) handle(ctx context.Context, line string) bool {
	line = strings.TrimRight(line, "\r\n")
	if !strings.HasPrefix(line, "/") {
		s.form.ClearCity()
		s.ctl.Input(line)
		return true
	}

	cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)

	switch cmd {
	case "/quit", "/exit":
		return false
	case "/help":
		s.printf("%s\n", helpText)
	case "/down":
		s.ctl.HandleKey(autocomplete.KeyArrowDown)
	case "/up":
		s.ctl.HandleKey(autocomplete.KeyArrowUp)
	case "/esc":
		s.ctl.HandleKey(autocomplete.KeyEscape)
	case "/enter":
		if s.ctl.HandleKey(autocomplete.KeyEnter) {
			s.syncSelection()
		}
	case "/pick":
		s.pick(arg)
	case "/blur":
		s.ctl.Blur(nil)
	case "/date":
		if err := s.form.SetStartDate(arg); err != nil {
			s.printf("%s\n", errors.Message(err))
		}
	case "/days":
		if !s.form.SetDays(arg) {
			s.printf("Days must be a number\n")
		}
	case "/filter":
		on, err := s.form.ToggleFilter(sidebar.FilterGroup(strings.ToLower(arg)))
		if err != nil {
			s.printf("%s\n", errors.Message(err))
			return true
		}
		s.printf("%s: %t\n", arg, on)
	case "/key":
		s.setKey(ctx, arg)
	case "/generate":
		s.generate(ctx)
	case "/show":
		s.show()
	default:
		s.printf("Unknown command %s, try /help\n", cmd)
	}
	return true
}

func (s *session) pick(arg string) {
	n, err := strconv.Atoi(arg)
	options := s.ctl.State().Options
	if err != nil || n < 1 || n > len(options) {
		s.printf("No suggestion %q\n", arg)
		return
	}
	s.ctl.Select(options[n-1])
	s.syncSelection()
}

func (s *session) syncSelection() {
	st := s.ctl.State()
	if st.Selected == nil {
		return
	}
	s.form.SelectCity(*st.Selected)
	s.printf("City: %s\n", st.Selected.Label)
}

func (s *session) setKey(ctx context.Context, key string) {
	if s.keys == nil {
		s.printf("Key storage is not available\n")
		return
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	if err := s.keys.SetAPIKey(ctx, key); err != nil {
		s.printf("%s\n", errors.Message(err))
		return
	}
	s.printf("API key saved\n")
}

func (s *session) generate(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	summary, err := s.form.Generate(ctx)
	if err != nil {
		s.printf("Error: %s\n", errors.Message(err))
		return
	}

	switch {
	case summary.Message != "":
		s.printf("%s\n", summary.Message)
	default:
		s.printf("%s\n%s (%d rows)\n", summary.Title, strings.Join(summary.Header, " | "), summary.Rows)
	}
}

func (s *session) show() {
	st := s.form.State()
	city := "(none)"
	if st.City != nil {
		city = st.City.Label
	}
	s.printf("City: %s\nStart: %s (%s..%s)\nDays: %d\nTemp: %t  Wind: %t  Condition: %t\n",
		city, st.StartDate, st.MinDate, st.MaxDate, st.Days, st.Temp, st.Wind, st.Condition)
	if st.Error != "" {
		s.printf("Last error: %s\n", st.Error)
	}
}

package autocomplete

import (
	"strings"

	"sheetforecast.app/internal/ports"
)

const (
	// MinQueryLength is the shortest trimmed query that triggers a lookup
	MinQueryLength = 2

	LoadingText = "Loading suggestions…"
	NoMatchText = "No matches"
)

// State is a snapshot of the controller. ActiveIndex is -1 when nothing is highlighted.
type State struct {
	Query              string
	DebouncedQuery     string
	Options            []ports.CityOption
	IsOpen             bool
	ActiveIndex        int
	Loading            bool
	Error              string
	LastRequestID      uint64
	SuppressNextSearch bool
	Selected           *ports.CityOption
}

func initialState() State {
	return State{ActiveIndex: -1}
}

func (s State) clone() State {
	out := s
	if s.Options != nil {
		out.Options = append([]ports.CityOption(nil), s.Options...)
	}
	if s.Selected != nil {
		sel := *s.Selected
		out.Selected = &sel
	}
	return out
}

// ActiveOption returns the highlighted option, if any
func (s State) ActiveOption() (ports.CityOption, bool) {
	if s.ActiveIndex < 0 || s.ActiveIndex >= len(s.Options) {
		return ports.CityOption{}, false
	}
	return s.Options[s.ActiveIndex], true
}

// ItemKind classifies one rendered suggestion line
type ItemKind int

const (
	ItemOption ItemKind = iota
	ItemLoading
	ItemEmpty
	ItemError
)

// Item is one line of the suggestion list as the UI should render it
type Item struct {
	Kind   ItemKind
	Text   string
	Index  int
	Active bool
}

// Items renders the suggestion list. A closed list renders nothing.
func (s State) Items() []Item {
	if !s.IsOpen {
		return nil
	}

	var items []Item
	if s.Loading {
		items = append(items, Item{Kind: ItemLoading, Text: LoadingText, Index: -1})
	}
	if !s.Loading && s.Error == "" {
		if len(s.Options) == 0 && !isShort(s.DebouncedQuery) {
			items = append(items, Item{Kind: ItemEmpty, Text: NoMatchText, Index: -1})
		}
		for i, opt := range s.Options {
			items = append(items, Item{Kind: ItemOption, Text: opt.Label, Index: i, Active: i == s.ActiveIndex})
		}
	}
	if s.Error != "" {
		items = append(items, Item{Kind: ItemError, Text: s.Error, Index: -1})
	}
	return items
}

func isShort(q string) bool {
	return len([]rune(strings.TrimSpace(q))) < MinQueryLength
}

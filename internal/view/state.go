package view

import "sync"

// Theme names.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// State is the projector's mutable screen state: the current selection and
// the active theme. The mutex only provides memory safety; concurrent detail
// lookups still resolve last-writer-wins by completion order.
type State struct {
	mu        sync.Mutex
	selection *Detail
	theme     string
}

// NewState returns an empty state with the default theme.
func NewState() *State {
	return &State{theme: ThemeDark}
}

// Selection returns the current selection, if any.
func (s *State) Selection() (Detail, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selection == nil {
		return Detail{}, false
	}
	return *s.selection, true
}

func (s *State) setSelection(d Detail) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection = &d
}

// clearSelection drops the selection and reports whether one was set.
func (s *State) clearSelection() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	had := s.selection != nil
	s.selection = nil
	return had
}

// Theme returns the active theme name.
func (s *State) Theme() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

func (s *State) setTheme(theme string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = theme
}

// NextTheme returns the theme a toggle switches to.
func NextTheme(theme string) string {
	if theme == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// ValidTheme reports whether name is a known theme.
func ValidTheme(name string) bool {
	return name == ThemeDark || name == ThemeLight
}

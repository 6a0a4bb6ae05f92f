// Package shell holds the interactive application state and maps user
// actions to the text service. It has no terminal dependencies; the tui
// package drives it.
package shell

import (
	"errors"
	"fmt"
	"strings"

	"textkit/internal/domain"
	"textkit/internal/logger"
	"textkit/internal/render"
)

// Action identifies a user action.
type Action string

const (
	ActionLoad          Action = "load"
	ActionSaveEncrypted Action = "save-encrypted"
	ActionDecrypt       Action = "decrypt"
	ActionAnalyze       Action = "analyze"
	ActionHistogram     Action = "histogram"
	ActionCompare       Action = "compare"
	ActionFindPatterns  Action = "find-patterns"
)

// Actions lists every action in menu order.
var Actions = []Action{
	ActionLoad,
	ActionSaveEncrypted,
	ActionDecrypt,
	ActionAnalyze,
	ActionHistogram,
	ActionCompare,
	ActionFindPatterns,
}

// Notice is a modal notification shown to the user.
type Notice struct {
	Title   string
	Message string
	Error   bool
}

// State is everything the interactive shell shows or remembers.
type State struct {
	// Buffer is the editable text.
	Buffer string
	// Primary is the last loaded document, nil before the first load.
	Primary *domain.Document
	// Comparison is the last document loaded for comparison.
	Comparison *domain.Document
	// Output is the content of the results region.
	Output string
	// Notice is the pending modal notification, if any.
	Notice *Notice
	// Chart holds the words of the histogram to display, if any.
	Chart []domain.WordCount
}

// Request carries the input of a single action. Path is the file chosen by
// the user; it is empty when the choice was cancelled.
type Request struct {
	Path string
}

// Handler applies one action to a state.
type Handler func(State, Request) (State, error)

// Shell dispatches actions to their handlers.
type Shell struct {
	service  domain.TextService
	handlers map[Action]Handler
}

// New creates a shell backed by service.
func New(service domain.TextService) *Shell {
	s := &Shell{service: service}
	s.handlers = map[Action]Handler{
		ActionLoad:          s.load,
		ActionSaveEncrypted: s.saveEncrypted,
		ActionDecrypt:       s.decrypt,
		ActionAnalyze:       s.analyze,
		ActionHistogram:     s.histogram,
		ActionCompare:       s.compare,
		ActionFindPatterns:  s.findPatterns,
	}
	return s
}

// NeedsPath reports whether action asks the user for a file.
func NeedsPath(action Action) bool {
	switch action {
	case ActionLoad, ActionSaveEncrypted, ActionCompare:
		return true
	}
	return false
}

// Check reports whether action may start in state, before any file is chosen.
// An empty primary document counts as not loaded.
func (s *Shell) Check(action Action, state State) error {
	if action == ActionCompare && (state.Primary == nil || state.Primary.Content == "") {
		return domain.ErrNoPrimaryDocument
	}
	return nil
}

// Dispatch runs action against state. On failure the original state is
// returned unchanged together with the error.
func (s *Shell) Dispatch(action Action, state State, req Request) (State, error) {
	h, ok := s.handlers[action]
	if !ok {
		return state, fmt.Errorf("unknown action %q: %w", action, domain.ErrInvalidInput)
	}
	if err := s.Check(action, state); err != nil {
		return state, err
	}
	if NeedsPath(action) && strings.TrimSpace(req.Path) == "" {
		logger.Info("%s cancelled", action)
		return state, nil
	}
	logger.Debug("dispatch %s", action)
	next, err := h(state, req)
	if err != nil {
		logger.Warn("%s failed: %v", action, err)
		return state, err
	}
	return next, nil
}

// ErrorNotice converts an action error into the notification shown to the user.
func ErrorNotice(err error) *Notice {
	msg := err.Error()
	switch {
	case errors.Is(err, domain.ErrNoPrimaryDocument):
		msg = "Load a file first!"
	case errors.Is(err, domain.ErrNotEnoughText):
		msg = "Not enough text for a histogram."
	}
	return &Notice{Title: "Error", Message: msg, Error: true}
}

func (s *Shell) load(state State, req Request) (State, error) {
	doc, err := s.service.LoadDocument(req.Path)
	if err != nil {
		return state, err
	}
	state.Primary = &doc
	state.Buffer = doc.Content
	return state, nil
}

func (s *Shell) saveEncrypted(state State, req Request) (State, error) {
	if _, err := s.service.SaveEncrypted(req.Path, state.Buffer); err != nil {
		return state, err
	}
	state.Notice = &Notice{Title: "Saved", Message: "Encrypted text has been saved!"}
	return state, nil
}

func (s *Shell) decrypt(state State, _ Request) (State, error) {
	state.Buffer = s.service.Decrypt(state.Buffer)
	return state, nil
}

func (s *Shell) analyze(state State, _ Request) (State, error) {
	state.Output = render.Analysis(s.service.Analyze(state.Buffer))
	return state, nil
}

func (s *Shell) histogram(state State, _ Request) (State, error) {
	words, err := s.service.Histogram(state.Buffer)
	if err != nil {
		return state, err
	}
	state.Chart = words
	return state, nil
}

func (s *Shell) compare(state State, req Request) (State, error) {
	doc, err := s.service.LoadDocument(req.Path)
	if err != nil {
		return state, err
	}
	state.Comparison = &doc
	c := s.service.Compare(state.Primary.Content, doc.Content)
	state.Notice = &Notice{Title: "Text comparison", Message: render.Comparison(c)}
	return state, nil
}

func (s *Shell) findPatterns(state State, _ Request) (State, error) {
	state.Output = render.Patterns(s.service.FindPatterns(state.Buffer))
	return state, nil
}

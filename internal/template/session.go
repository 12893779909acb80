// Package template implements the edit session over an AMF request's XML
// body template.
package template

import (
	"fmt"
	"sync"
	"unicode/utf8"

	"fyne.io/fyne/v2/data/binding"
	apperrors "github.com/shhac/amfconf/internal/errors"
)

// Session edits a template held in a shared binding.
//
// Every write goes straight to the shared binding, so anything else holding
// the same binding sees edits as they happen. Save is the commit signal: it
// hands the current text to the save hook. Close ends the session without
// reverting anything.
type Session struct {
	mu     sync.Mutex
	ref    binding.String
	open   bool
	onSave func(text string)

	// Called once when the session closes
	onClose func()
}

// Open starts a session over ref. onSave may be nil.
func Open(ref binding.String, onSave func(text string)) *Session {
	return &Session{
		ref:    ref,
		open:   true,
		onSave: onSave,
	}
}

// SetOnClose sets the callback run when the session is closed
func (s *Session) SetOnClose(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onClose = fn
}

// IsOpen reports whether the session still accepts edits.
func (s *Session) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

// Text returns the current template text.
func (s *Session) Text() string {
	text, _ := s.ref.Get()
	return text
}

// Len returns the number of characters in the template.
func (s *Session) Len() int {
	return utf8.RuneCountInString(s.Text())
}

// SetText replaces the template text.
func (s *Session) SetText(text string) error {
	if !s.IsOpen() {
		return apperrors.ErrSessionClosed
	}
	if err := s.ref.Set(text); err != nil {
		return fmt.Errorf("set template text: %w", err)
	}
	return nil
}

// Append adds text to the end of the template.
func (s *Session) Append(text string) error {
	if !s.IsOpen() {
		return apperrors.ErrSessionClosed
	}
	return s.SetText(s.Text() + text)
}

// Save commits the session's edits by running the save hook once.
func (s *Session) Save() error {
	s.mu.Lock()
	if !s.open {
		s.mu.Unlock()
		return apperrors.ErrSessionClosed
	}
	callback := s.onSave
	s.mu.Unlock()

	// Call callback outside lock so it may read the session
	if callback != nil {
		callback(s.Text())
	}
	return nil
}

// Close ends the session. Edits already made stay in the shared binding.
// Closing twice is a no-op.
func (s *Session) Close() {
	s.mu.Lock()
	if !s.open {
		s.mu.Unlock()
		return
	}
	s.open = false
	callback := s.onClose
	s.mu.Unlock()

	if callback != nil {
		callback()
	}
}

// FormatSize renders the size indicator shown next to the template.
func FormatSize(text string) string {
	return fmt.Sprintf("(%d chars)", utf8.RuneCountInString(text))
}

package model

import (
	"fyne.io/fyne/v2/data/binding"
	"github.com/shhac/amfconf/internal/domain"
)

// EncodingSelector offers the closed list of object encodings and only
// accepts selections from it, like a non-editable combo box.
type EncodingSelector struct {
	value binding.String
}

// NewEncodingSelector creates a selector writing to value.
func NewEncodingSelector(value binding.String) *EncodingSelector {
	return &EncodingSelector{value: value}
}

// Options returns the encodings a user may choose from.
func (s *EncodingSelector) Options() []string {
	encodings := domain.SupportedEncodings()
	options := make([]string, 0, len(encodings))
	for _, e := range encodings {
		options = append(options, e.String())
	}
	return options
}

// Select stores name if it is one of the options.
func (s *EncodingSelector) Select(name string) error {
	e, err := domain.ParseObjectEncoding(name)
	if err != nil {
		return err
	}
	return s.value.Set(e.String())
}

// Selected returns the stored encoding. It may be outside Options when it
// was loaded from stored configuration.
func (s *EncodingSelector) Selected() string {
	v, _ := s.value.Get()
	return v
}

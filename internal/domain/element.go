package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shhac/amfconf/internal/property"
)

// Element is a stored test element: a named property bag
type Element struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	SavedAt    time.Time     `json:"saved_at"`
	Properties *property.Map `json:"properties"`
}

// NewElement creates an element with a fresh ID.
func NewElement(name string, props *property.Map) Element {
	if props == nil {
		props = property.NewMap()
	}
	return Element{
		ID:         uuid.NewString(),
		Name:       name,
		Properties: props,
	}
}

// Clone returns a copy that shares no property storage with e.
func (e Element) Clone() Element {
	c := e
	if e.Properties != nil {
		c.Properties = e.Properties.Clone()
	}
	return c
}

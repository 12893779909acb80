package storage

import "github.com/shhac/amfconf/internal/domain"

// Repository defines persistence operations for stored elements
type Repository interface {
	SaveElement(element domain.Element) error
	LoadElement(name string) (*domain.Element, error)
	ListElements() ([]string, error)
	DeleteElement(name string) error
}

package storage

import (
	"fmt"
	"sort"
	"sync"

	"github.com/shhac/amfconf/internal/domain"
	apperrors "github.com/shhac/amfconf/internal/errors"
)

// MemoryRepository implements Repository using in-memory storage for tests
type MemoryRepository struct {
	elements map[string]domain.Element
	mu       sync.RWMutex
}

// NewMemoryRepository creates a new in-memory storage repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		elements: make(map[string]domain.Element),
	}
}

// SaveElement stores a copy of the element
func (m *MemoryRepository) SaveElement(element domain.Element) error {
	if err := validateElementName(element.Name); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.elements[element.Name] = element.Clone()
	return nil
}

// LoadElement returns a copy of the stored element
func (m *MemoryRepository) LoadElement(name string) (*domain.Element, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	element, ok := m.elements[name]
	if !ok {
		return nil, fmt.Errorf("element %q: %w", name, apperrors.ErrElementNotFound)
	}

	c := element.Clone()
	return &c, nil
}

// ListElements returns the sorted names of all stored elements
func (m *MemoryRepository) ListElements() ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.elements))
	for name := range m.elements {
		names = append(names, name)
	}
	sort.Strings(names)

	return names, nil
}

// DeleteElement removes an element
func (m *MemoryRepository) DeleteElement(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.elements[name]; !ok {
		return fmt.Errorf("element %q: %w", name, apperrors.ErrElementNotFound)
	}

	delete(m.elements, name)
	return nil
}

package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/shhac/amfconf/internal/domain"
	apperrors "github.com/shhac/amfconf/internal/errors"
	"github.com/shhac/amfconf/internal/property"
)

const (
	elementsDir    = "elements"
	filePermission = 0644
	dirPermission  = 0755
)

// JSONRepository implements Repository using one JSON file per element
type JSONRepository struct {
	basePath string
	logger   *slog.Logger
	now      func() time.Time
}

// NewJSONRepository creates a new JSON-based storage repository
func NewJSONRepository(basePath string, logger *slog.Logger) *JSONRepository {
	return &JSONRepository{
		basePath: basePath,
		logger:   logger,
		now:      time.Now,
	}
}

// SaveElement writes an element to its JSON file, replacing any previous
// version stored under the same name.
func (r *JSONRepository) SaveElement(element domain.Element) error {
	if err := validateElementName(element.Name); err != nil {
		return err
	}
	if err := r.ensureElementsDir(); err != nil {
		return fmt.Errorf("ensure elements directory: %w", err)
	}

	path := r.elementPath(element.Name)
	if err := r.verifyPathInElementsDir(path); err != nil {
		return err
	}

	element.SavedAt = r.now().UTC()
	data, err := json.MarshalIndent(element, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal element: %w", err)
	}

	if err := atomicWriteFile(path, data, filePermission); err != nil {
		return fmt.Errorf("write element file: %w", err)
	}

	r.logger.Debug("saved element",
		slog.String("name", element.Name),
		slog.String("id", element.ID),
		slog.String("path", path))

	return nil
}

// LoadElement reads an element from its JSON file
func (r *JSONRepository) LoadElement(name string) (*domain.Element, error) {
	if err := validateElementName(name); err != nil {
		return nil, err
	}
	path := r.elementPath(name)
	if err := r.verifyPathInElementsDir(path); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("element %q: %w", name, apperrors.ErrElementNotFound)
		}
		return nil, fmt.Errorf("read element file: %w", err)
	}

	var element domain.Element
	if err := json.Unmarshal(data, &element); err != nil {
		return nil, fmt.Errorf("unmarshal element: %w", err)
	}
	if element.Properties == nil {
		element.Properties = property.NewMap()
	}

	r.logger.Debug("loaded element",
		slog.String("name", name),
		slog.Int("properties", element.Properties.Len()))

	return &element, nil
}

// ListElements returns the sorted names of all stored elements
func (r *JSONRepository) ListElements() ([]string, error) {
	dir := filepath.Join(r.basePath, elementsDir)

	// A missing directory just means nothing was saved yet
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return []string{}, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read elements directory: %w", err)
	}

	names := []string{}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ".json"))
	}
	sort.Strings(names)

	r.logger.Debug("listed elements", slog.Int("count", len(names)))
	return names, nil
}

// DeleteElement removes an element file
func (r *JSONRepository) DeleteElement(name string) error {
	if err := validateElementName(name); err != nil {
		return err
	}
	path := r.elementPath(name)
	if err := r.verifyPathInElementsDir(path); err != nil {
		return err
	}

	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("element %q: %w", name, apperrors.ErrElementNotFound)
		}
		return fmt.Errorf("delete element file: %w", err)
	}

	r.logger.Debug("deleted element", slog.String("name", name))
	return nil
}

// atomicWriteFile writes data to a file atomically by writing to a temp file
// in the same directory, syncing, then renaming over the target path.
func atomicWriteFile(path string, data []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := f.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}

	success = true
	return nil
}

// validateElementName checks that an element name is safe for use as a filename.
func validateElementName(name string) error {
	var reason string
	switch {
	case name == "":
		reason = "must not be empty"
	case strings.Contains(name, ".."):
		reason = fmt.Sprintf("must not contain %q", "..")
	case strings.ContainsAny(name, "/\\"):
		reason = "must not contain path separators"
	case strings.ContainsRune(name, 0):
		reason = "must not contain null bytes"
	default:
		return nil
	}
	return fmt.Errorf("%w: %q %s", apperrors.ErrInvalidName, name, reason)
}

func (r *JSONRepository) ensureElementsDir() error {
	path := filepath.Join(r.basePath, elementsDir)
	if err := os.MkdirAll(path, dirPermission); err != nil {
		return fmt.Errorf("create elements directory: %w", err)
	}
	return nil
}

func (r *JSONRepository) elementPath(name string) string {
	return filepath.Join(r.basePath, elementsDir, name+".json")
}

// verifyPathInElementsDir checks that the resolved path is within the elements directory.
func (r *JSONRepository) verifyPathInElementsDir(path string) error {
	base := filepath.Join(r.basePath, elementsDir)
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return fmt.Errorf("path outside elements directory: %w", err)
	}
	if strings.HasPrefix(rel, "..") {
		return fmt.Errorf("path %q escapes elements directory", path)
	}
	return nil
}

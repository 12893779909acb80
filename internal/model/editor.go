package model

import (
	"log/slog"
	"sync"

	"github.com/shhac/amfconf/internal/binder"
	"github.com/shhac/amfconf/internal/domain"
	apperrors "github.com/shhac/amfconf/internal/errors"
	"github.com/shhac/amfconf/internal/property"
	"github.com/shhac/amfconf/internal/template"
)

// Editor moves an AMF request between a property bag and editable state.
//
// Configure loads a bag into the state, ModifyBag writes the state back.
// At most one template edit session is open at a time; OpenTemplateEditor
// refuses a second one until the first is closed.
type Editor struct {
	mu       sync.Mutex
	state    *RequestState
	encoding *EncodingSelector
	session  *template.Session
	logger   *slog.Logger

	// Called after the template size indicator is recomputed
	onTemplateSaved func(size string)
}

// NewEditor creates an editor holding a default request.
func NewEditor(logger *slog.Logger) *Editor {
	state := NewRequestState()
	e := &Editor{
		state:    state,
		encoding: NewEncodingSelector(state.Encoding),
		logger:   logger,
	}
	e.Load(domain.NewAMFRequest())
	return e
}

// State returns the bindings backing the editor.
func (e *Editor) State() *RequestState {
	return e.state
}

// Encoding returns the object encoding selector.
func (e *Editor) Encoding() *EncodingSelector {
	return e.encoding
}

// SetOnTemplateSaved sets the callback run after a template session saves
func (e *Editor) SetOnTemplateSaved(fn func(size string)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onTemplateSaved = fn
}

// Configure replaces the editor contents with the request stored in bag.
func (e *Editor) Configure(bag property.Bag) {
	req := binder.Import(bag)
	e.Load(req)

	e.logger.Debug("configured AMF request",
		slog.String("name", req.Name),
		slog.String("encoding", req.ObjectEncoding.String()),
		slog.Int("template_chars", len([]rune(req.BodyTemplate))))
}

// ModifyBag replaces the contents of bag with the edited request.
func (e *Editor) ModifyBag(bag property.Bag) {
	binder.Export(e.Snapshot(), bag)
}

// CreateBag returns a new bag describing the edited request.
func (e *Editor) CreateBag() *property.Map {
	bag := property.NewMap()
	e.ModifyBag(bag)
	return bag
}

// Clear resets every field to its default.
func (e *Editor) Clear() {
	e.Load(domain.NewAMFRequest())
}

// Load copies req into the editor state.
func (e *Editor) Load(req domain.AMFRequest) {
	s := e.state
	_ = s.Name.Set(req.Name)
	_ = s.Comment.Set(req.Comment)

	ep := s.Endpoint
	_ = ep.Protocol.Set(req.Endpoint.Protocol)
	_ = ep.Host.Set(req.Endpoint.Host)
	_ = ep.Port.Set(req.Endpoint.Port)
	_ = ep.Path.Set(req.Endpoint.Path)
	_ = ep.Method.Set(req.Endpoint.Method)
	_ = ep.ContentEncoding.Set(req.Endpoint.ContentEncoding)

	args := make([]interface{}, 0, len(req.Endpoint.Arguments))
	for _, a := range req.Endpoint.Arguments {
		args = append(args, a)
	}
	_ = ep.Arguments.Set(args)

	// Stored value is kept even when outside the selector options
	_ = s.Encoding.Set(req.ObjectEncoding.String())
	_ = s.Template.Set(req.BodyTemplate)
	_ = s.ResponseVariable.Set(req.ResponseVariable)

	e.updateTemplateSize(req.BodyTemplate)
}

// Snapshot returns the request currently held by the editor.
func (e *Editor) Snapshot() domain.AMFRequest {
	s := e.state
	ep := s.Endpoint

	req := domain.AMFRequest{
		Name:    getString(s.Name),
		Comment: getString(s.Comment),
		Endpoint: domain.Endpoint{
			Protocol:        getString(ep.Protocol),
			Host:            getString(ep.Host),
			Port:            getString(ep.Port),
			Path:            getString(ep.Path),
			Method:          getString(ep.Method),
			ContentEncoding: getString(ep.ContentEncoding),
		},
		ObjectEncoding:   domain.ObjectEncoding(getString(s.Encoding)),
		BodyTemplate:     getString(s.Template),
		ResponseVariable: getString(s.ResponseVariable),
	}

	items, _ := ep.Arguments.Get()
	for _, item := range items {
		if arg, ok := item.(domain.Argument); ok {
			req.Endpoint.Arguments = append(req.Endpoint.Arguments, arg)
		}
	}

	return req
}

// OpenTemplateEditor starts an edit session over the shared template
// binding. Saving the session recomputes the size indicator.
func (e *Editor) OpenTemplateEditor() (*template.Session, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.session != nil {
		return nil, apperrors.ErrSessionOpen
	}

	session := template.Open(e.state.Template, e.templateSaved)
	session.SetOnClose(func() {
		e.mu.Lock()
		if e.session == session {
			e.session = nil
		}
		e.mu.Unlock()
		e.logger.Debug("template editor closed")
	})
	e.session = session

	e.logger.Debug("template editor opened")
	return session, nil
}

// IsEditingTemplate reports whether a template session is open.
func (e *Editor) IsEditingTemplate() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session != nil
}

// TemplateSize returns the current size indicator text.
func (e *Editor) TemplateSize() string {
	return getString(e.state.TemplateSize)
}

func (e *Editor) templateSaved(text string) {
	size := e.updateTemplateSize(text)

	e.mu.Lock()
	callback := e.onTemplateSaved
	e.mu.Unlock()

	if callback != nil {
		callback(size)
	}
}

func (e *Editor) updateTemplateSize(text string) string {
	size := template.FormatSize(text)
	_ = e.state.TemplateSize.Set(size)
	return size
}

func getString(s interface{ Get() (string, error) }) string {
	v, _ := s.Get()
	return v
}

package model

import "fyne.io/fyne/v2/data/binding"

// RequestState holds the editable fields of one AMF request as data
// bindings. A presenting layer binds its widgets to these values; the
// Template binding is the shared reference handed to template edit sessions.
type RequestState struct {
	Name    binding.String
	Comment binding.String

	Endpoint *EndpointState

	Encoding         binding.String // Object encoding version, stored form
	Template         binding.String // XML body template
	ResponseVariable binding.String

	// Derived, e.g. "(42 chars)"
	TemplateSize binding.String
}

// NewRequestState creates a new RequestState with initialized bindings.
func NewRequestState() *RequestState {
	return &RequestState{
		Name:             binding.NewString(),
		Comment:          binding.NewString(),
		Endpoint:         NewEndpointState(),
		Encoding:         binding.NewString(),
		Template:         binding.NewString(),
		ResponseVariable: binding.NewString(),
		TemplateSize:     binding.NewString(),
	}
}

// EndpointState holds the URL configuration fields.
type EndpointState struct {
	Protocol        binding.String
	Host            binding.String
	Port            binding.String
	Path            binding.String
	Method          binding.String
	ContentEncoding binding.String
	Arguments       binding.UntypedList // []domain.Argument
}

// NewEndpointState creates a new EndpointState with initialized bindings.
func NewEndpointState() *EndpointState {
	return &EndpointState{
		Protocol:        binding.NewString(),
		Host:            binding.NewString(),
		Port:            binding.NewString(),
		Path:            binding.NewString(),
		Method:          binding.NewString(),
		ContentEncoding: binding.NewString(),
		Arguments:       binding.NewUntypedList(),
	}
}

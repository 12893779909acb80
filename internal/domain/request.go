package domain

// DefaultMethod is the HTTP method AMF requests are sent with unless
// configured otherwise.
const DefaultMethod = "POST"

// AMFRequest is the editable configuration of one AMF request
type AMFRequest struct {
	Name    string
	Comment string

	Endpoint         Endpoint
	ObjectEncoding   ObjectEncoding
	BodyTemplate     string // XML describing the message body, not parsed here
	ResponseVariable string // Empty means the response is not captured
}

// Endpoint holds the HTTP target of an AMF request
type Endpoint struct {
	Protocol        string
	Host            string
	Port            string // Kept as entered so it can hold variable references
	Path            string
	Method          string
	ContentEncoding string
	Arguments       []Argument
}

// Argument is a single query or body parameter
type Argument struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// NewAMFRequest returns a request with every field at its default.
func NewAMFRequest() AMFRequest {
	return AMFRequest{
		Endpoint:       NewEndpoint(),
		ObjectEncoding: DefaultEncoding,
	}
}

// NewEndpoint returns an endpoint with every field at its default.
func NewEndpoint() Endpoint {
	return Endpoint{Method: DefaultMethod}
}

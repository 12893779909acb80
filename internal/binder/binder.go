// Package binder converts AMF request configuration to and from the flat
// property bag the host persists, clones and replays.
package binder

import (
	"github.com/shhac/amfconf/internal/domain"
	"github.com/shhac/amfconf/internal/property"
)

// Property keys owned by the AMF request element.
const (
	KeyObjectEncoding   = "objectEncodingVersion"
	KeyBodyTemplate     = "AMFXML"
	KeyResponseVariable = "responseVariable"
)

// Property keys written for every test element.
const (
	KeyName      = "TestElement.name"
	KeyComment   = "TestElement.comments"
	KeyTestClass = "TestElement.test_class"
)

// TestClass identifies bags produced by Export.
const TestClass = "AmfRequest"

// Export replaces the contents of bag with the properties describing req.
// The request itself is not modified.
func Export(req domain.AMFRequest, bag property.Bag) {
	bag.Clear()

	bag.Set(KeyTestClass, TestClass)
	bag.Set(KeyName, req.Name)
	bag.SetWithDefault(KeyComment, req.Comment, "")

	ExportEndpoint(req.Endpoint, bag)

	bag.Set(KeyObjectEncoding, req.ObjectEncoding.String())
	bag.SetWithDefault(KeyBodyTemplate, req.BodyTemplate, "")
	bag.Set(KeyResponseVariable, req.ResponseVariable)
}

// Import reads an AMF request out of bag. Missing properties take their
// defaults; an encoding outside the supported set is kept as stored and left
// for Validate to report.
func Import(bag property.Bag) domain.AMFRequest {
	req := domain.AMFRequest{
		Name:     bag.Get(KeyName, ""),
		Comment:  bag.Get(KeyComment, ""),
		Endpoint: ImportEndpoint(bag),

		ObjectEncoding:   domain.ObjectEncoding(bag.Get(KeyObjectEncoding, "")),
		BodyTemplate:     bag.Get(KeyBodyTemplate, ""),
		ResponseVariable: bag.Get(KeyResponseVariable, ""),
	}

	if req.ObjectEncoding == "" {
		req.ObjectEncoding = domain.DefaultEncoding
	}

	return req
}

// IsAMFRequest reports whether bag was produced by Export.
func IsAMFRequest(bag property.Bag) bool {
	return bag.Get(KeyTestClass, "") == TestClass
}

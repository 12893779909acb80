package binder

import (
	"strconv"

	"github.com/shhac/amfconf/internal/domain"
	"github.com/shhac/amfconf/internal/property"
)

// Endpoint property keys, shared with the host's HTTP request elements.
const (
	KeyProtocol        = "HTTPSampler.protocol"
	KeyHost            = "HTTPSampler.domain"
	KeyPort            = "HTTPSampler.port"
	KeyPath            = "HTTPSampler.path"
	KeyMethod          = "HTTPSampler.method"
	KeyContentEncoding = "HTTPSampler.contentEncoding"

	argumentsPrefix = "HTTPsampler.Arguments."
)

// ExportEndpoint writes the endpoint properties into bag.
func ExportEndpoint(ep domain.Endpoint, bag property.Bag) {
	bag.Set(KeyProtocol, ep.Protocol)
	bag.Set(KeyHost, ep.Host)
	bag.Set(KeyPort, ep.Port)
	bag.Set(KeyPath, ep.Path)
	bag.Set(KeyMethod, ep.Method)
	bag.SetWithDefault(KeyContentEncoding, ep.ContentEncoding, "")

	for i, arg := range ep.Arguments {
		bag.Set(ArgumentNameKey(i), arg.Name)
		bag.Set(ArgumentValueKey(i), arg.Value)
	}
}

// ImportEndpoint reads the endpoint properties from bag.
func ImportEndpoint(bag property.Bag) domain.Endpoint {
	ep := domain.Endpoint{
		Protocol:        bag.Get(KeyProtocol, ""),
		Host:            bag.Get(KeyHost, ""),
		Port:            bag.Get(KeyPort, ""),
		Path:            bag.Get(KeyPath, ""),
		Method:          bag.Get(KeyMethod, domain.DefaultMethod),
		ContentEncoding: bag.Get(KeyContentEncoding, ""),
	}

	// Arguments are numbered from zero without gaps
	for i := 0; bag.Has(ArgumentNameKey(i)); i++ {
		ep.Arguments = append(ep.Arguments, domain.Argument{
			Name:  bag.Get(ArgumentNameKey(i), ""),
			Value: bag.Get(ArgumentValueKey(i), ""),
		})
	}

	return ep
}

// ArgumentNameKey returns the property key holding the name of argument i.
func ArgumentNameKey(i int) string {
	return argumentsPrefix + strconv.Itoa(i) + ".name"
}

// ArgumentValueKey returns the property key holding the value of argument i.
func ArgumentValueKey(i int) string {
	return argumentsPrefix + strconv.Itoa(i) + ".value"
}

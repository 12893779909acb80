package domain

import (
	"fmt"

	apperrors "github.com/shhac/amfconf/internal/errors"
)

// ObjectEncoding is the AMF object-encoding version a request is built with.
// It is persisted as its string form; values outside SupportedEncodings may
// appear after loading stored configuration and are kept as-is.
type ObjectEncoding string

// EncodingAMF3 is the AMF3 object encoding.
const EncodingAMF3 ObjectEncoding = "AMF3"

// DefaultEncoding is used when no encoding has been chosen.
const DefaultEncoding = EncodingAMF3

var supportedEncodings = []ObjectEncoding{EncodingAMF3}

// SupportedEncodings returns the closed set of selectable encodings.
func SupportedEncodings() []ObjectEncoding {
	out := make([]ObjectEncoding, len(supportedEncodings))
	copy(out, supportedEncodings)
	return out
}

// IsSupported reports whether e is in the supported set.
func (e ObjectEncoding) IsSupported() bool {
	for _, s := range supportedEncodings {
		if e == s {
			return true
		}
	}
	return false
}

func (e ObjectEncoding) String() string {
	return string(e)
}

// ParseObjectEncoding converts s into a supported encoding.
func ParseObjectEncoding(s string) (ObjectEncoding, error) {
	e := ObjectEncoding(s)
	if !e.IsSupported() {
		return "", fmt.Errorf("%w: %q", apperrors.ErrUnsupportedEncoding, s)
	}
	return e, nil
}

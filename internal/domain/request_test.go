package domain

import (
	"errors"
	"testing"

	apperrors "github.com/shhac/amfconf/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAMFRequest_Defaults(t *testing.T) {
	req := NewAMFRequest()

	assert.Equal(t, EncodingAMF3, req.ObjectEncoding)
	assert.Equal(t, "", req.BodyTemplate)
	assert.Equal(t, "", req.ResponseVariable)
	assert.Equal(t, DefaultMethod, req.Endpoint.Method)
	assert.Nil(t, req.Endpoint.Arguments)
}

func TestSupportedEncodings(t *testing.T) {
	encodings := SupportedEncodings()
	assert.Equal(t, []ObjectEncoding{EncodingAMF3}, encodings)

	// Mutating the returned slice must not change the supported set
	encodings[0] = "AMF0"
	assert.Equal(t, []ObjectEncoding{EncodingAMF3}, SupportedEncodings())
	assert.False(t, ObjectEncoding("AMF0").IsSupported())
}

func TestParseObjectEncoding(t *testing.T) {
	tests := []struct {
		in      string
		want    ObjectEncoding
		wantErr bool
	}{
		{"AMF3", EncodingAMF3, false},
		{"AMF0", "", true},
		{"amf3", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseObjectEncoding(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrUnsupportedEncoding)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAMFRequest_Validate(t *testing.T) {
	valid := func() AMFRequest {
		req := NewAMFRequest()
		req.Endpoint.Host = "example.com"
		req.Endpoint.Path = "/gateway"
		return req
	}

	tests := []struct {
		name       string
		mutate     func(*AMFRequest)
		wantFields []string
	}{
		{name: "valid", mutate: func(*AMFRequest) {}},
		{name: "ip host and port", mutate: func(r *AMFRequest) {
			r.Endpoint.Host = "10.0.0.1"
			r.Endpoint.Port = "8080"
			r.Endpoint.Protocol = "https"
		}},
		{name: "variable references are not checked", mutate: func(r *AMFRequest) {
			r.Endpoint.Host = "${HOST}"
			r.Endpoint.Port = "${PORT}"
		}},
		{name: "unsupported encoding", mutate: func(r *AMFRequest) {
			r.ObjectEncoding = "AMF0"
		}, wantFields: []string{"objectEncodingVersion"}},
		{name: "empty encoding", mutate: func(r *AMFRequest) {
			r.ObjectEncoding = ""
		}, wantFields: []string{"objectEncodingVersion"}},
		{name: "missing host", mutate: func(r *AMFRequest) {
			r.Endpoint.Host = ""
		}, wantFields: []string{"host"}},
		{name: "bad host", mutate: func(r *AMFRequest) {
			r.Endpoint.Host = "not a host"
		}, wantFields: []string{"host"}},
		{name: "bad port", mutate: func(r *AMFRequest) {
			r.Endpoint.Port = "99999"
		}, wantFields: []string{"port"}},
		{name: "bad protocol", mutate: func(r *AMFRequest) {
			r.Endpoint.Protocol = "ftp"
		}, wantFields: []string{"protocol"}},
		{name: "bad method", mutate: func(r *AMFRequest) {
			r.Endpoint.Method = "FETCH"
		}, wantFields: []string{"method"}},
		{name: "unnamed argument", mutate: func(r *AMFRequest) {
			r.Endpoint.Arguments = []Argument{{Value: "x"}}
		}, wantFields: []string{"arguments[0]"}},
		{name: "bad response variable", mutate: func(r *AMFRequest) {
			r.ResponseVariable = "my var"
		}, wantFields: []string{"responseVariable"}},
		{name: "several problems", mutate: func(r *AMFRequest) {
			r.ObjectEncoding = "AMF0"
			r.Endpoint.Host = ""
			r.ResponseVariable = "1bad"
		}, wantFields: []string{"objectEncodingVersion", "host", "responseVariable"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(&req)

			err := req.Validate()
			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantFields, validationFields(err))
		})
	}
}

func validationFields(err error) []string {
	var fields []string
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return fields
	}
	for _, e := range joined.Unwrap() {
		var ve apperrors.ValidationError
		if errors.As(e, &ve) {
			fields = append(fields, ve.Field)
		}
	}
	return fields
}

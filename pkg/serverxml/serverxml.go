// Package serverxml reads and writes ApacheDS server.xml documents.
//
// Each schema version has its own IO. Versions 1.5.0 and 1.5.1 use the
// flat Spring bean dialect, 1.5.2 to 1.5.6 the xbean dialect, and 1.5.7
// the xbean dialect with transports. Versions 1.5.5 and 1.5.6 never had
// a dedicated format: they read 1.5.4 documents, accept any input in
// IsValid and cannot be written.
package serverxml

import (
	"github.com/gnames/dsconf/pkg/model"
	"github.com/gnames/dsconf/pkg/version"
)

// IO is a reader and writer of one server.xml schema version.
type IO interface {
	// Version is the schema version handled by the IO.
	Version() version.Version

	// IsValid is a quick structural check of a document. It never fails.
	IsValid(data []byte) bool

	// Parse converts a document into a configuration. Any missing
	// mandatory token or malformed value aborts parsing.
	Parse(data []byte) (*model.ServerConfiguration, error)

	// ToXML serializes a configuration. Versions without a writer return
	// an UnsupportedDirectionError.
	ToXML(cfg *model.ServerConfiguration) (string, error)
}

// Option changes settings of an IO.
type Option func(*settings)

type settings struct {
	indent int
}

// OptIndent sets the number of spaces used to pretty-print output.
// Zero writes every element on its own line without indentation.
func OptIndent(i int) Option {
	return func(s *settings) {
		if i >= 0 {
			s.indent = i
		}
	}
}

// New returns the IO for a schema version.
func New(v version.Version, opts ...Option) (IO, error) {
	s := settings{indent: 2}
	for _, opt := range opts {
		opt(&s)
	}

	switch v {
	case version.V150, version.V151:
		return &flatIO{v: v, settings: s}, nil
	case version.V152, version.V153, version.V154, version.V155, version.V156:
		return &xbeanIO{v: v, settings: s}, nil
	case version.V157:
		return &v157IO{settings: s}, nil
	}
	return nil, version.UnknownVersionError(v.String())
}

// Parse reads a document of a known version.
func Parse(v version.Version, data []byte) (*model.ServerConfiguration, error) {
	sio, err := New(v)
	if err != nil {
		return nil, err
	}
	return sio.Parse(data)
}

// CanWrite reports whether ToXML is implemented for a version.
func CanWrite(v version.Version) bool {
	return v.IsKnown() && v != version.V155 && v != version.V156
}

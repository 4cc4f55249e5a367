package serverxml

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/gnames/dsconf/pkg/errcode"
	"github.com/gnames/dsconf/pkg/version"
	"github.com/gnames/gn"
)

func XMLSyntaxError(err error) error {
	msg := "Document is not well-formed XML"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.XMLSyntaxError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: cannot read XML: %w", fn, err),
	}
}

// StructuralError reports a mandatory element, attribute or referenced
// bean that is missing. The name of the missing token is the first
// element of Vars.
func StructuralError(token, place string) error {
	msg := "Cannot find <em>%s</em> in <em>%s</em>"
	vars := []any{token, place}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.StructuralParseError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: missing %s in %s", fn, token, place),
	}
}

func NumberFormatError(token, value string, err error) error {
	msg := "Value of <em>%s</em> is not an integer: <em>%s</em>"
	vars := []any{token, value}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.NumberFormatError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: bad integer %q for %s: %w", fn, value, token, err),
	}
}

// BooleanFormatError is returned when a value is neither "true" nor
// "false".
func BooleanFormatError(token, value string) error {
	msg := "Value of <em>%s</em> must be 'true' or 'false', got <em>%q</em>"
	vars := []any{token, value}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.BooleanFormatError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: bad boolean %q for %s", fn, value, token),
	}
}

func UnsupportedDirectionError(v version.Version) error {
	msg := "Writing server.xml is not supported for <em>%s</em>"
	vars := []any{v.Label()}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.UnsupportedDirectionError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: no writer for %s", fn, v),
	}
}

func UndetectedVersionError() error {
	msg := "Cannot detect server.xml version, use <em>--from</em> to set it"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.UndetectedVersionError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: version is not detected", fn),
	}
}

// IsStructural reports whether err means the document lacks something
// mandatory or is not XML at all.
func IsStructural(err error) bool {
	return hasCode(err, errcode.StructuralParseError, errcode.XMLSyntaxError)
}

// IsNumberFormat reports whether err is a NumberFormatError.
func IsNumberFormat(err error) bool {
	return hasCode(err, errcode.NumberFormatError)
}

// IsBooleanFormat reports whether err is a BooleanFormatError.
func IsBooleanFormat(err error) bool {
	return hasCode(err, errcode.BooleanFormatError)
}

// IsUnsupported reports whether err is an UnsupportedDirectionError.
func IsUnsupported(err error) bool {
	return hasCode(err, errcode.UnsupportedDirectionError)
}

func hasCode(err error, codes ...gn.ErrorCode) bool {
	var gnErr *gn.Error
	if !errors.As(err, &gnErr) {
		return false
	}
	for _, c := range codes {
		if gnErr.Code == c {
			return true
		}
	}
	return false
}

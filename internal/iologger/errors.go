package iologger

import (
	"fmt"
	"runtime"

	"github.com/gnames/dsconf/pkg/errcode"
	"github.com/gnames/gn"
)

// CreateLogFileError is returned when the log file cannot be opened for
// writing.
func CreateLogFileError(path string, err error) error {
	msg := "Cannot open log file <em>%s</em>, " +
		"try 'stderr' as log destination"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CreateLogFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot open log file %s: %w", fn, path, err),
	}
}

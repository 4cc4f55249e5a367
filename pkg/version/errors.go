package version

import (
	"fmt"
	"runtime"

	"github.com/gnames/dsconf/pkg/errcode"
	"github.com/gnames/gn"
)

func UnknownVersionError(s string) error {
	msg := "Unknown server.xml version <em>%s</em>, supported are 1.5.0 to 1.5.7"
	vars := []any{s}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.UnknownVersionError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: unknown version %q", fn, s),
	}
}

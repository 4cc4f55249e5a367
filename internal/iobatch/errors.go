package iobatch

import (
	"fmt"
	"runtime"

	"github.com/gnames/dsconf/pkg/errcode"
	"github.com/gnames/gn"
)

func BatchError(total int, err error) error {
	msg := "Batch migration of <em>%d</em> documents was interrupted"
	vars := []any{total}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.BatchError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: batch interrupted: %w", fn, err),
	}
}

func BatchFailedError(failed, total int) error {
	msg := "Cannot migrate <em>%d</em> of <em>%d</em> documents"
	vars := []any{failed, total}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.BatchError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: %d of %d documents failed", fn, failed, total),
	}
}

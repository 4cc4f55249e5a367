package migrate

import (
	"fmt"
	"runtime"

	"github.com/gnames/dsconf/pkg/errcode"
	"github.com/gnames/dsconf/pkg/version"
	"github.com/gnames/gn"
)

func BackwardError(from, to version.Version) error {
	msg := "Cannot migrate from <em>%s</em> back to <em>%s</em>"
	vars := []any{from, to}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.MigrateBackwardError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: target %s precedes source %s", fn, to, from),
	}
}

// VariantError means a migration table has no entry for a variant. It
// points to a table that does not cover its source enum.
func VariantError(kind string, variant any, from version.Version) error {
	msg := "No migration rule for %s <em>%v</em> of <em>%s</em>"
	vars := []any{kind, variant, from}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.MigrateVariantError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: unmapped %s %v in %s", fn, kind, variant, from),
	}
}

func VersionError(want, got version.Version) error {
	msg := "Migration step expects <em>%s</em> configuration, got <em>%s</em>"
	vars := []any{want, got}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.MigrateVersionError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: step for %s got %s", fn, want, got),
	}
}

package serverxml

import (
	"log/slog"
	"slices"

	"github.com/gnames/dsconf/pkg/model"
)

// restrictVariants removes enum values that do not exist in the version
// of the configuration. Documents may carry tags or handler classes of
// other versions, they are skipped like unknown ones. Nil lists stay nil.
func restrictVariants(sc *model.ServerConfiguration) {
	v := sc.Version
	sc.Interceptors = keepKnown("interceptor", sc.Interceptors, model.Interceptors(v))
	sc.ExtendedOperations = keepKnown("extended operation",
		sc.ExtendedOperations, model.ExtendedOperations(v))
	sc.SaslQops = keepKnown("SASL QOP", sc.SaslQops, model.SaslQops(v))

	if sc.SupportedMechanisms == nil {
		return
	}
	known := model.Mechanisms(v)
	res := make([]model.SupportedMechanism, 0, len(sc.SupportedMechanisms))
	for _, sm := range sc.SupportedMechanisms {
		if !slices.Contains(known, sm.Mechanism) {
			slog.Debug("Skipping SASL mechanism unknown to version",
				"mechanism", sm.Mechanism, "version", v)
			continue
		}
		res = append(res, sm)
	}
	sc.SupportedMechanisms = res
}

func keepKnown[T interface {
	comparable
	String() string
}](kind string, vals, known []T) []T {
	if vals == nil {
		return nil
	}
	res := make([]T, 0, len(vals))
	for _, val := range vals {
		if !slices.Contains(known, val) {
			slog.Debug("Skipping "+kind+" unknown to version", "value", val.String())
			continue
		}
		res = append(res, val)
	}
	return res
}

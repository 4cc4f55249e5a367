package migrate

import (
	"github.com/gnames/dsconf/pkg/model"
	"github.com/gnames/dsconf/pkg/version"
)

// target is the outcome of migrating one enum variant.
type target[T comparable] struct {
	Variant T
	Dropped bool
}

// table maps every variant of a source version to its target.
type table[T comparable] map[T]target[T]

// identity creates a table keeping every variant unchanged.
func identity[T comparable](variants []T) table[T] {
	res := make(table[T], len(variants))
	for _, v := range variants {
		res[v] = target[T]{Variant: v}
	}
	return res
}

func (t table[T]) drop(variants ...T) {
	for _, v := range variants {
		t[v] = target[T]{Dropped: true}
	}
}

// remap converts src through the table keeping order. Nil stays nil,
// empty stays empty.
func remap[T comparable](
	kind string,
	from version.Version,
	t table[T],
	src []T,
) ([]T, error) {
	if src == nil {
		return nil, nil
	}
	res := make([]T, 0, len(src))
	for _, v := range src {
		tgt, ok := t[v]
		if !ok {
			return nil, VariantError(kind, v, from)
		}
		if tgt.Dropped {
			continue
		}
		res = append(res, tgt.Variant)
	}
	return res, nil
}

// rules are the enum tables of one migration step.
type rules struct {
	from               version.Version
	interceptors       table[model.Interceptor]
	extendedOperations table[model.ExtendedOperation]
	saslQops           table[model.SaslQop]
	mechanisms         table[model.Mechanism]
}

// newRules creates tables that keep every variant of 'from'. Steps then
// drop what their target version lacks.
func newRules(from version.Version) *rules {
	return &rules{
		from:               from,
		interceptors:       identity(model.Interceptors(from)),
		extendedOperations: identity(model.ExtendedOperations(from)),
		saslQops:           identity(model.SaslQops(from)),
		mechanisms:         identity(model.Mechanisms(from)),
	}
}

// apply copies cfg into the next version remapping enum fields.
func (r *rules) apply(cfg *model.ServerConfiguration) (*model.ServerConfiguration, error) {
	if cfg.Version != r.from {
		return nil, VersionError(r.from, cfg.Version)
	}
	next, _ := r.from.Next()
	res := cfg.Clone()
	res.Version = next

	var err error
	if res.Interceptors, err = remap("interceptor", r.from, r.interceptors, cfg.Interceptors); err != nil {
		return nil, err
	}
	res.ExtendedOperations, err = remap(
		"extended operation", r.from, r.extendedOperations, cfg.ExtendedOperations,
	)
	if err != nil {
		return nil, err
	}
	if res.SaslQops, err = remap("SASL QOP", r.from, r.saslQops, cfg.SaslQops); err != nil {
		return nil, err
	}
	if res.SupportedMechanisms, err = r.remapMechanisms(cfg.SupportedMechanisms); err != nil {
		return nil, err
	}
	return res, nil
}

func (r *rules) remapMechanisms(
	src []model.SupportedMechanism,
) ([]model.SupportedMechanism, error) {
	if src == nil {
		return nil, nil
	}
	res := make([]model.SupportedMechanism, 0, len(src))
	for _, sm := range src {
		tgt, ok := r.mechanisms[sm.Mechanism]
		if !ok {
			return nil, VariantError("SASL mechanism", sm.Mechanism, r.from)
		}
		if tgt.Dropped {
			continue
		}
		res = append(res, model.SupportedMechanism{
			Mechanism:        tgt.Variant,
			NtlmProviderFqcn: sm.NtlmProviderFqcn,
		})
	}
	return res, nil
}

// Package migrate converts configurations between adjacent schema
// versions.
//
// Every step is a pure function from one version to its successor.
// Enum-valued fields go through explicit tables where each source variant
// either maps to a target variant or is dropped. Reaching a distant
// version folds all intermediate steps, there are no shortcuts.
package migrate

import (
	"log/slog"

	"github.com/gnames/dsconf/pkg/model"
	"github.com/gnames/dsconf/pkg/version"
)

// StepFunc converts a configuration to the next schema version.
type StepFunc func(*model.ServerConfiguration) (*model.ServerConfiguration, error)

var steps = [...]StepFunc{
	version.V150: V150ToV151,
	version.V151: V151ToV152,
	version.V152: V152ToV153,
	version.V153: V153ToV154,
	version.V154: V154ToV155,
	version.V155: V155ToV156,
	version.V156: V156ToV157,
}

// Migrate converts cfg to version 'to' applying every step in between.
// The input is never modified. Migrating to the same version returns a
// copy.
func Migrate(
	cfg *model.ServerConfiguration,
	to version.Version,
) (*model.ServerConfiguration, error) {
	if !cfg.Version.IsKnown() {
		return nil, version.UnknownVersionError(cfg.Version.String())
	}
	if !to.IsKnown() {
		return nil, version.UnknownVersionError(to.String())
	}
	if to < cfg.Version {
		return nil, BackwardError(cfg.Version, to)
	}

	res := cfg.Clone()
	for res.Version < to {
		from := res.Version
		var err error
		res, err = steps[from](res)
		if err != nil {
			return nil, err
		}
		slog.Debug("Migrated configuration", "from", from, "to", res.Version)
	}
	return res, nil
}

func V150ToV151(cfg *model.ServerConfiguration) (*model.ServerConfiguration, error) {
	return newRules(version.V150).apply(cfg)
}

// V151ToV152 drops the JNDI environment, 1.5.2 has no place for it.
func V151ToV152(cfg *model.ServerConfiguration) (*model.ServerConfiguration, error) {
	res, err := newRules(version.V151).apply(cfg)
	if err != nil {
		return nil, err
	}
	res.Principal = ""
	res.Password = ""
	res.BinaryAttributes = nil
	return res, nil
}

func V152ToV153(cfg *model.ServerConfiguration) (*model.ServerConfiguration, error) {
	return newRules(version.V152).apply(cfg)
}

// V153ToV154 removes the referral interceptor and partition context
// entries.
func V153ToV154(cfg *model.ServerConfiguration) (*model.ServerConfiguration, error) {
	r := newRules(version.V153)
	r.interceptors.drop(model.Referral)
	res, err := r.apply(cfg)
	if err != nil {
		return nil, err
	}
	for _, p := range res.Partitions {
		p.ContextEntry = nil
	}
	return res, nil
}

func V154ToV155(cfg *model.ServerConfiguration) (*model.ServerConfiguration, error) {
	return newRules(version.V154).apply(cfg)
}

func V155ToV156(cfg *model.ServerConfiguration) (*model.ServerConfiguration, error) {
	return newRules(version.V155).apply(cfg)
}

// V156ToV157 drops SASL quality of protection and the thread pool size.
func V156ToV157(cfg *model.ServerConfiguration) (*model.ServerConfiguration, error) {
	r := newRules(version.V156)
	r.saslQops.drop(model.SaslQops(version.V156)...)
	res, err := r.apply(cfg)
	if err != nil {
		return nil, err
	}
	res.MaxThreads = 0
	return res, nil
}

package migrate_test

import (
	"testing"

	"github.com/gnames/dsconf/pkg/errcode"
	"github.com/gnames/dsconf/pkg/ldif"
	"github.com/gnames/dsconf/pkg/migrate"
	"github.com/gnames/dsconf/pkg/model"
	"github.com/gnames/dsconf/pkg/version"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var stepFuncs = map[version.Version]migrate.StepFunc{
	version.V150: migrate.V150ToV151,
	version.V151: migrate.V151ToV152,
	version.V152: migrate.V152ToV153,
	version.V153: migrate.V153ToV154,
	version.V154: migrate.V154ToV155,
	version.V155: migrate.V155ToV156,
	version.V156: migrate.V156ToV157,
}

// fullConfig creates a configuration that uses every enum variant known
// to the version.
func fullConfig(v version.Version) *model.ServerConfiguration {
	sc := model.New(v)
	sc.Principal = "uid=admin,ou=system"
	sc.Password = "secret"
	sc.BinaryAttributes = []string{"jpegPhoto"}
	sc.EnableLdap = true
	sc.LdapPort = 10389
	sc.MaxThreads = 8
	sc.SynchronizationPeriod = 15000
	sc.SaslHost = "ldap.example.com"
	sc.SaslRealms = []string{"example.com"}
	sc.Interceptors = model.Interceptors(v)
	sc.ExtendedOperations = model.ExtendedOperations(v)
	sc.SaslQops = model.SaslQops(v)
	for _, m := range model.Mechanisms(v) {
		sc.SupportedMechanisms = append(sc.SupportedMechanisms, model.SupportedMechanism{Mechanism: m})
	}

	ce := ldif.NewAttributes()
	ce.Add("dc", "example")
	sc.Partitions = []*model.Partition{
		{ID: "system", Suffix: "ou=system", SystemPartition: true, ContextEntry: ldif.NewAttributes()},
		{
			ID:                "example",
			Suffix:            "dc=example,dc=com",
			CacheSize:         100,
			IndexedAttributes: []model.IndexedAttribute{{AttributeID: "dc", CacheSize: 100}},
			ContextEntry:      ce,
		},
	}
	return sc
}

func errCode(t *testing.T, err error) gn.ErrorCode {
	t.Helper()
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")
	return gnErr.Code
}

// TestTotality verifies every variant of a source version migrates to a
// variant of the target version or is dropped.
func TestTotality(t *testing.T) {
	for from, step := range stepFuncs {
		to, ok := from.Next()
		require.True(t, ok)

		res, err := step(fullConfig(from))
		require.NoError(t, err, from.String())
		assert.Equal(t, to, res.Version)

		for _, it := range res.Interceptors {
			assert.Contains(t, model.Interceptors(to), it)
		}
		for _, op := range res.ExtendedOperations {
			assert.Contains(t, model.ExtendedOperations(to), op)
		}
		for _, q := range res.SaslQops {
			assert.Contains(t, model.SaslQops(to), q)
		}
		for _, sm := range res.SupportedMechanisms {
			assert.Contains(t, model.Mechanisms(to), sm.Mechanism)
		}
	}
}

// TestComposition verifies a long migration equals applying adjacent
// steps one after another.
func TestComposition(t *testing.T) {
	src := fullConfig(version.V153)

	direct, err := migrate.Migrate(src, version.V157)
	require.NoError(t, err)

	step := src
	for _, f := range []migrate.StepFunc{
		migrate.V153ToV154, migrate.V154ToV155,
		migrate.V155ToV156, migrate.V156ToV157,
	} {
		step, err = f(step)
		require.NoError(t, err)
	}
	assert.Equal(t, step, direct)
	assert.Equal(t, version.V157, direct.Version)
}

func TestMigrateChanges(t *testing.T) {
	src := fullConfig(version.V150)
	src.ExtendedOperations = []model.ExtendedOperation{model.GracefulShutdown}
	src.Interceptors = []model.Interceptor{
		model.Schema, model.Referral, model.Normalization,
	}
	src.SaslQops = nil

	res, err := migrate.Migrate(src, version.V152)
	require.NoError(t, err)
	assert.Empty(t, res.Principal)
	assert.Empty(t, res.Password)
	assert.Nil(t, res.BinaryAttributes)
	assert.Equal(t, 8, res.MaxThreads)

	res, err = migrate.Migrate(src, version.V154)
	require.NoError(t, err)
	// order is kept, referral is dropped
	assert.Equal(t,
		[]model.Interceptor{model.Schema, model.Normalization},
		res.Interceptors,
	)
	for _, p := range res.Partitions {
		assert.Nil(t, p.ContextEntry)
	}
	assert.Equal(t, []string{"example.com"}, res.SaslRealms)
	assert.Equal(t, []model.ExtendedOperation{model.GracefulShutdown}, res.ExtendedOperations)

	qops := fullConfig(version.V156)
	res, err = migrate.Migrate(qops, version.V157)
	require.NoError(t, err)
	assert.NotNil(t, res.SaslQops)
	assert.Empty(t, res.SaslQops)
	assert.Equal(t, 0, res.MaxThreads)
	assert.Equal(t, int64(15000), res.SynchronizationPeriod)
	assert.Equal(t, 10389, res.LdapPort)
}

// TestNilVersusEmpty verifies that nil and empty lists keep their state
// through every step.
func TestNilVersusEmpty(t *testing.T) {
	nilCfg := model.New(version.V150)
	res, err := migrate.Migrate(nilCfg, version.V157)
	require.NoError(t, err)
	assert.Nil(t, res.Interceptors)
	assert.Nil(t, res.ExtendedOperations)
	assert.Nil(t, res.SaslQops)
	assert.Nil(t, res.SupportedMechanisms)
	assert.Nil(t, res.SaslRealms)
	assert.Nil(t, res.Partitions)

	emptyCfg := model.New(version.V150)
	emptyCfg.Interceptors = []model.Interceptor{}
	emptyCfg.ExtendedOperations = []model.ExtendedOperation{}
	emptyCfg.SaslQops = []model.SaslQop{}
	emptyCfg.SupportedMechanisms = []model.SupportedMechanism{}
	res, err = migrate.Migrate(emptyCfg, version.V157)
	require.NoError(t, err)
	assert.NotNil(t, res.Interceptors)
	assert.Empty(t, res.Interceptors)
	assert.NotNil(t, res.ExtendedOperations)
	assert.NotNil(t, res.SaslQops)
	assert.NotNil(t, res.SupportedMechanisms)
}

func TestMigrateSameVersion(t *testing.T) {
	src := fullConfig(version.V154)
	res, err := migrate.Migrate(src, version.V154)
	require.NoError(t, err)
	assert.Equal(t, src, res)
	assert.NotSame(t, src, res)
}

// TestInputUnchanged verifies migration does not touch its input.
func TestInputUnchanged(t *testing.T) {
	src := fullConfig(version.V153)
	orig := src.Clone()
	_, err := migrate.Migrate(src, version.V157)
	require.NoError(t, err)
	assert.Equal(t, orig, src)
}

func TestMigrateErrors(t *testing.T) {
	_, err := migrate.Migrate(fullConfig(version.V157), version.V153)
	require.Error(t, err)
	assert.Equal(t, errcode.MigrateBackwardError, errCode(t, err))

	_, err = migrate.Migrate(fullConfig(version.V153), version.Unknown)
	require.Error(t, err)
	assert.Equal(t, errcode.UnknownVersionError, errCode(t, err))

	_, err = migrate.V153ToV154(fullConfig(version.V150))
	require.Error(t, err)
	assert.Equal(t, errcode.MigrateVersionError, errCode(t, err))

	// StartTls does not exist in 1.5.0
	bad := fullConfig(version.V150)
	bad.ExtendedOperations = []model.ExtendedOperation{model.StartTls}
	_, err = migrate.Migrate(bad, version.V151)
	require.Error(t, err)
	assert.Equal(t, errcode.MigrateVariantError, errCode(t, err))
}

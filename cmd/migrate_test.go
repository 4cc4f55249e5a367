package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/dsconf/pkg/serverxml"
	"github.com/gnames/dsconf/pkg/version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// TestGetMigrateCmd_Flags verifies the migrate command and its flags.
func TestGetMigrateCmd_Flags(t *testing.T) {
	cmd := getMigrateCmd()
	require.NotNil(t, cmd)
	assert.Equal(t, "migrate", cmd.Name())
	assert.NotNil(t, cmd.RunE)

	for _, name := range []string{"from", "to", "out-dir", "report", "jobs", "no-progress"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
}

func TestMigrate(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}
	setHome(t)
	outDir := t.TempDir()
	report := filepath.Join(outDir, "report.yaml")

	_, err := execute(t, "migrate",
		filepath.Join(testdata, "server-1.5.2.xml"),
		filepath.Join(testdata, "server-1.5.3.xml"),
		"--to", "1.5.4", "--out-dir", outDir,
		"--report", report, "--no-progress",
	)
	require.NoError(t, err)

	for _, name := range []string{"server-1.5.2-1.5.4.xml", "server-1.5.3-1.5.4.xml"} {
		data, err := os.ReadFile(filepath.Join(outDir, name))
		require.NoError(t, err)
		v, err := serverxml.Detect(data)
		require.NoError(t, err)
		assert.Equal(t, version.V154, v)
	}

	data, err := os.ReadFile(report)
	require.NoError(t, err)
	var rep struct {
		Total  int `yaml:"total"`
		Failed int `yaml:"failed"`
	}
	require.NoError(t, yaml.Unmarshal(data, &rep))
	assert.Equal(t, 2, rep.Total)
	assert.Zero(t, rep.Failed)
}

func TestMigrateErrors(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}
	setHome(t)
	outDir := t.TempDir()
	src := filepath.Join(testdata, "server-1.5.7.xml")

	_, err := execute(t, "migrate", src, "--to", "2.0.0", "--out-dir", outDir)
	require.Error(t, err, "unknown target fails")

	_, err = execute(t, "migrate", src, "--to", "1.5.6", "--out-dir", outDir)
	require.Error(t, err, "target without writer fails")
	assert.True(t, serverxml.IsUnsupported(err))

	_, err = execute(t, "migrate", src, "--to", "1.5.3", "--out-dir", outDir)
	require.Error(t, err, "backward migration fails")

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

// Package iofs handles file system operations of dsconf: application
// directories, the config file and server.xml documents.
package iofs

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/gnames/dsconf/pkg/config"
	"github.com/gnames/dsconf/pkg/version"
	"github.com/gnames/gnsys"
)

//go:embed config.yaml
var ConfigYAML string

func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

func touchDir(dir string) error {
	if err := gnsys.MakeDir(dir); err != nil {
		return CreateDirError(dir, err)
	}
	return nil
}

func EnsureConfigFile(homeDir string) error {
	configPath := config.ConfigFilePath(homeDir)

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := os.WriteFile(configPath, []byte(ConfigYAML), 0644); err != nil {
		return CopyFileError(configPath, err)
	}

	return nil
}

// ReadDocument returns the content of a server.xml document.
func ReadDocument(path string) ([]byte, error) {
	res, err := os.ReadFile(path)
	if err != nil {
		return nil, ReadFileError(path, err)
	}
	return res, nil
}

// WriteDocument saves a document, creating its directory if needed.
func WriteDocument(path, content string) error {
	if err := touchDir(filepath.Dir(path)); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return WriteFileError(path, err)
	}
	return nil
}

// OutputPath builds the path of a migrated document. The target version
// is added to the file name, so 'conf/server.xml' migrated to 1.5.7 becomes
// 'server-1.5.7.xml'. If outDir is empty, the source directory is used.
func OutputPath(src, outDir string, v version.Version) string {
	dir, file := filepath.Split(src)
	if outDir != "" {
		dir = outDir
	}
	ext := filepath.Ext(file)
	base := strings.TrimSuffix(file, ext)
	if ext == "" {
		ext = ".xml"
	}
	return filepath.Join(dir, base+"-"+v.String()+ext)
}

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConf(t *testing.T, dir, name, content string) string {
	path := filepath.Join(dir, name)
	err := ioutil.WriteFile(path, []byte(content), 0600)
	require.NoError(t, err)
	return path
}

func TestLoadConfigHcl(t *testing.T) {
	dir, err := ioutil.TempDir("", "c14put-test-")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	path := writeConf(t, dir, "c14put.conf", `
apiToken = "tok"
apiUrl = "https://api.example.org"
safeName = "backups"
platformId = "P1"
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "tok", cfg.APIToken)
	require.Equal(t, "https://api.example.org", cfg.APIURL)
	require.Equal(t, "backups", cfg.SafeName)
	require.Equal(t, "P1", cfg.PlatformID)
}

func TestLoadConfigYaml(t *testing.T) {
	dir, err := ioutil.TempDir("", "c14put-test-")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	path := writeConf(t, dir, "c14put.yml", `
apiToken: tok
apiUrl: https://api.example.org
safeName: backups
platformId: "P1"
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "tok", cfg.APIToken)
	require.Equal(t, "backups", cfg.SafeName)
}

func TestLoadConfigMissingKey(t *testing.T) {
	dir, err := ioutil.TempDir("", "c14put-test-")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	path := writeConf(t, dir, "c14put.conf", `
apiToken = "tok"
apiUrl = "https://api.example.org"
safeName = "backups"
`)
	_, err = LoadConfig(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "platformId")
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig("/nonexistent/c14put.conf")
	require.Error(t, err)
}

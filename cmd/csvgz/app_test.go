package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipFile(t *testing.T, dir, name string, text []byte) string {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(text)
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
	return path
}

func runApp(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := newApp(&stdout, &stderr).Run(append([]string{"csvgz"}, args...))
	return stdout.String(), stderr.String(), err
}

func TestRun_PrintsText(t *testing.T) {
	path := gzipFile(t, t.TempDir(), "meta.csv.gz", []byte("a,b,c\n1,2,3\n"))

	out, _, err := runApp(t, path)
	require.NoError(t, err)
	assert.Equal(t, "a,b,c\n1,2,3\n", out)
}

func TestRun_DefaultInput(t *testing.T) {
	dir := t.TempDir()
	gzipFile(t, dir, "meta.csv.gz", []byte("id\n1\n"))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd)

	out, _, err := runApp(t)
	require.NoError(t, err)
	assert.Equal(t, "id\n1\n", out)
}

func TestRun_MultipleInputsAndHead(t *testing.T) {
	dir := t.TempDir()
	meta := gzipFile(t, dir, "meta.csv.gz", []byte("m\n1\n2\n3\n"))
	data := gzipFile(t, dir, "data.csv.gz", []byte("d\n4\n5\n6\n"))

	out, _, err := runApp(t, "--head", "1", meta, data)
	require.NoError(t, err)
	assert.Equal(t, "m\n1\nd\n4\n", out)
}

func TestRun_Stats(t *testing.T) {
	path := gzipFile(t, t.TempDir(), "meta.csv.gz", []byte("a,b\n"))

	out, stderr, err := runApp(t, "--stats", "--checksum", "sha256", path)
	require.NoError(t, err)
	assert.Equal(t, "a,b\n", out)

	var report map[string]any
	require.NoError(t, json.Unmarshal([]byte(stderr), &report))
	assert.Equal(t, path, report["source"])
	assert.Equal(t, "gzip", report["algorithm"])
	assert.Equal(t, "sha256", report["checksum_algorithm"])
}

func TestRun_StatsWithDebugLogs(t *testing.T) {
	path := gzipFile(t, t.TempDir(), "meta.csv.gz", []byte("a,b\n"))

	_, stderr, err := runApp(t, "--stats", "--log-level", "debug", path)
	require.NoError(t, err)

	var reports, logs int
	for _, line := range strings.Split(strings.TrimSpace(stderr), "\n") {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry), line)

		if _, ok := entry["level"]; ok {
			logs++
			continue
		}
		reports++
		assert.Equal(t, path, entry["source"])
		assert.Equal(t, "gzip", entry["algorithm"])
	}

	assert.Equal(t, 1, reports)
	assert.NotZero(t, logs)
}

func TestRun_LogsLoadFailure(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.csv.gz")

	_, stderr, err := runApp(t, missing)
	require.Error(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(stderr)), &entry))
	assert.Equal(t, "load failed", entry["msg"])
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "storage", entry["category"])
	assert.Equal(t, missing, entry["source"])
}

func TestRun_ExitCodes(t *testing.T) {
	dir := t.TempDir()
	corrupt := filepath.Join(dir, "corrupt.csv.gz")
	require.NoError(t, os.WriteFile(corrupt, []byte{0x1f, 0x8b, 0x08}, 0644))
	invalid := gzipFile(t, dir, "invalid.csv.gz", []byte("caf\xe9\n"))

	tests := []struct {
		name string
		args []string
		code int
	}{
		{"missing file", []string{filepath.Join(dir, "nope.csv.gz")}, exitStorage},
		{"corrupt stream", []string{corrupt}, exitDecompression},
		{"invalid text", []string{invalid}, exitDecoding},
		{"bad encoding", []string{"--encoding", "klingon", invalid}, exitUsage},
		{"bad head", []string{"--head", "-2", invalid}, exitUsage},
		{"missing config", []string{"--config", filepath.Join(dir, "nope.yaml"), invalid}, exitUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := runApp(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.code, exitCode(err))
			assert.Empty(t, out)
		})
	}
}

func TestRun_ReplacePolicy(t *testing.T) {
	path := gzipFile(t, t.TempDir(), "invalid.csv.gz", []byte("caf\xe9\n"))

	out, _, err := runApp(t, "--invalid-text", "replace", path)
	require.NoError(t, err)
	assert.Equal(t, "caf\uFFFD\n", out)
}

func TestRun_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := gzipFile(t, dir, "latin.csv.gz", []byte("caf\xe9\n"))

	cfg := filepath.Join(dir, "csvgz.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("text:\n  encoding: latin1\ninputs:\n  - "+path+"\n"), 0644))

	out, _, err := runApp(t, "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, "café\n", out)
}

func TestExitCode_PlainError(t *testing.T) {
	assert.Equal(t, exitUsage, exitCode(errors.New("flag provided but not defined")))
}

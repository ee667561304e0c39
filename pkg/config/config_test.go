package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	interoperrors "github.com/go-drift/interop/pkg/errors"
	"github.com/go-drift/interop/pkg/props"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(body), 0o644))
	return dir
}

func TestLoadOptional_Missing(t *testing.T) {
	cfg, err := LoadOptional(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestLoadOptional_Empty(t *testing.T) {
	cfg, err := LoadOptional(writeConfig(t, ""))
	require.NoError(t, err)
	assert.False(t, cfg.Equivalence.TrustHomogeneousOrigin)
}

func TestLoadOptional_Parses(t *testing.T) {
	dir := writeConfig(t, `
equivalence:
  trust_homogeneous_origin: true
log:
  format: zap
  verbose: true
`)
	cfg, err := LoadOptional(dir)
	require.NoError(t, err)
	assert.True(t, cfg.Equivalence.TrustHomogeneousOrigin)
	assert.Equal(t, "zap", cfg.Log.Format)
	assert.True(t, cfg.Log.Verbose)
}

func TestLoadOptional_UnknownKey(t *testing.T) {
	_, err := LoadOptional(writeConfig(t, "equivalence:\n  trust: true\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse interop.yaml")
}

func TestResolve_Defaults(t *testing.T) {
	t.Setenv(TrustEnv, "")
	dir := t.TempDir()
	resolved, err := Resolve(dir)
	require.NoError(t, err)
	assert.Equal(t, &Resolved{Root: dir, LogFormat: FormatText}, resolved)
}

func TestResolve_EnvOverride(t *testing.T) {
	dir := writeConfig(t, "equivalence:\n  trust_homogeneous_origin: false\n")

	t.Setenv(TrustEnv, "true")
	resolved, err := Resolve(dir)
	require.NoError(t, err)
	assert.True(t, resolved.TrustHomogeneousOrigin)

	t.Setenv(TrustEnv, "sometimes")
	_, err = Resolve(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), TrustEnv)
}

func TestResolve_InvalidFormat(t *testing.T) {
	t.Setenv(TrustEnv, "")
	_, err := Resolve(writeConfig(t, "log:\n  format: json\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log.format")
}

func TestApply(t *testing.T) {
	oldTrust := props.TrustHomogeneousOrigin()
	oldHandler := interoperrors.DefaultHandler
	t.Cleanup(func() {
		props.SetTrustHomogeneousOrigin(oldTrust)
		interoperrors.SetHandler(oldHandler)
	})

	require.NoError(t, (&Resolved{TrustHomogeneousOrigin: true, LogFormat: FormatText, Verbose: true}).Apply())
	assert.True(t, props.TrustHomogeneousOrigin())
	handler, ok := interoperrors.DefaultHandler.(*interoperrors.LogHandler)
	require.True(t, ok, "expected LogHandler, got %T", interoperrors.DefaultHandler)
	assert.True(t, handler.Verbose)

	require.NoError(t, (&Resolved{LogFormat: FormatZap}).Apply())
	assert.False(t, props.TrustHomogeneousOrigin())
	assert.IsType(t, &interoperrors.ZapHandler{}, interoperrors.DefaultHandler)
}

func TestFindProjectRoot(t *testing.T) {
	root := writeConfig(t, "")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	t.Chdir(nested)

	got, err := FindProjectRoot()
	require.NoError(t, err)
	want, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)
	gotResolved, err := filepath.EvalSymlinks(got)
	require.NoError(t, err)
	assert.Equal(t, want, gotResolved)
}

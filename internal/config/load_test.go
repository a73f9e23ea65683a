package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRecord() *Record {
	return &Record{
		DeveloperMode:       true,
		PasswordStore:       "/opt/roboprov/creds",
		ContainerOS:         "precise",
		ContainerMiddleware: "groovy",
		HostMiddleware:      "groovy",
		Platform:            PlatformOther,
		ExternalInterface:   "eth0",
		InternalInterface:   "eth1",
		ContainerInterface:  "lxcbr0",
		RootFS:              "/opt/roboprov/container/rootfs",
		ConfDir:             "/opt/roboprov/container/config",
		DataDir:             "/opt/roboprov/container/data",
	}
}

func TestWriteAndLoadRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	want := validRecord()

	require.NoError(t, WriteFile(want, path))

	got, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadFileMissing(t *testing.T) {
	t.Parallel()

	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoValidConfiguration)
}

func TestLoadFileMalformed(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml: ["), 0o600))

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoValidConfiguration)
}

func TestLoadFileInvalidRecord(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("container_os: precise\n"), 0o600))

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoValidConfiguration)
}

func TestWriteFileRefusesInvalidRecord(t *testing.T) {
	t.Parallel()

	rec := validRecord()
	rec.ContainerMiddleware = "hydro"
	rec.ContainerOS = "lucid" // lucid only supports fuerte

	err := WriteFile(rec, filepath.Join(t.TempDir(), "config.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Record)
	}{
		{"incompatible middleware", func(r *Record) { r.ContainerMiddleware = "hydro"; r.ContainerOS = "lucid" }},
		{"unknown container OS", func(r *Record) { r.ContainerOS = "warty" }},
		{"unknown platform", func(r *Record) { r.Platform = "azure" }},
		{"missing password store", func(r *Record) { r.PasswordStore = "" }},
		{"missing rootfs", func(r *Record) { r.RootFS = "" }},
		{"missing interface", func(r *Record) { r.ContainerInterface = "" }},
		{"incomplete pair", func(r *Record) { r.HostMiddleware = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := validRecord()
			tt.mutate(rec)
			assert.Error(t, rec.Validate())
		})
	}

	assert.NoError(t, validRecord().Validate())
}

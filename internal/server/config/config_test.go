package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() *Config {
	c := &Config{}
	c.LoadDefaults()
	return c
}

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	c := defaults()

	assert.Equal(t, ":50051", c.EndpointAddrGRPC)
	assert.Equal(t, "", c.DatabaseDSN)
	assert.Equal(t, "secretKey", c.SecretKey)
	assert.Equal(t, time.Second, c.TickInterval)
	assert.Equal(t, 30*time.Second, c.SnapshotInterval)
	assert.Equal(t, 7*24*time.Hour, c.ReclaimTimeout)
	assert.Equal(t, uint64(100), c.FeeBasisPoints)
	assert.Equal(t, "", c.S3Bucket)
	assert.Equal(t, "info", c.LogLevel)
}

func TestLoadConfig_NoArgsGivesDefaults(t *testing.T) {
	c, err := LoadConfig(nil)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(defaults(), c))
}

func TestParseFlags(t *testing.T) {
	args := []string{
		"-a", "127.0.0.1:9090", "-d", "sqlite://ledger.db", "-s", "secret",
		"-i", "2", "-n", "60", "-w", "24", "-f", "250",
		"-u", "user", "-p", "password", "-b", "bucket", "-g", "us-west-1", "-e", "http://endpoint",
		"-l", "debug", "-unknown", "x",
	}

	c := defaults()
	require.NoError(t, parseFlags(c, args))

	want := &Config{
		EndpointAddrGRPC: "127.0.0.1:9090",
		DatabaseDSN:      "sqlite://ledger.db",
		SecretKey:        "secret",
		TickInterval:     2 * time.Second,
		SnapshotInterval: time.Minute,
		ReclaimTimeout:   24 * time.Hour,
		FeeBasisPoints:   250,
		S3RootUser:       "user",
		S3RootPassword:   "password",
		S3Bucket:         "bucket",
		S3Region:         "us-west-1",
		S3BaseEndpoint:   "http://endpoint",
		LogLevel:         "debug",
	}
	assert.Empty(t, cmp.Diff(want, c))
}

func TestParseFlags_BadValue(t *testing.T) {
	c := defaults()
	assert.Error(t, parseFlags(c, []string{"-i", "soon"}))
}

func TestParseJson_OverlaysOnlyPresentKeys(t *testing.T) {
	path := writeTempJSON(t, map[string]any{
		"endpoint_addr_grpc": "www.example:9000",
		"database_dsn":       "postgres://u:p@db:5432/satstream",
		"tick_interval":      "500ms",
		"reclaim_timeout":    "72h",
		"fee_basis_points":   50,
		"s3_bucket":          "statements",
	})

	c := defaults()
	require.NoError(t, parseJson(c, []string{"-config", path}))

	assert.Equal(t, "www.example:9000", c.EndpointAddrGRPC)
	assert.Equal(t, "postgres://u:p@db:5432/satstream", c.DatabaseDSN)
	assert.Equal(t, 500*time.Millisecond, c.TickInterval)
	assert.Equal(t, 72*time.Hour, c.ReclaimTimeout)
	assert.Equal(t, uint64(50), c.FeeBasisPoints)
	assert.Equal(t, "statements", c.S3Bucket)

	assert.Equal(t, "secretKey", c.SecretKey, "absent keys keep defaults")
	assert.Equal(t, 30*time.Second, c.SnapshotInterval)
}

func TestParseJson_Errors(t *testing.T) {
	c := defaults()
	assert.Error(t, parseJson(c, []string{"-c", filepath.Join(t.TempDir(), "missing.json")}))

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{ not json`), 0o600))
	assert.Error(t, parseJson(c, []string{"-c", bad}))

	_, err := LoadConfig([]string{"-c", bad})
	assert.Error(t, err)
}

func TestLoadConfig_FlagsOverrideJSON(t *testing.T) {
	path := writeTempJSON(t, map[string]any{
		"endpoint_addr_grpc": "json:1",
		"tick_interval":      "250ms",
	})

	c, err := LoadConfig([]string{"-c", path, "-a", "flag:2"})
	require.NoError(t, err)

	assert.Equal(t, "flag:2", c.EndpointAddrGRPC)
	assert.Equal(t, 250*time.Millisecond, c.TickInterval, "sub-second JSON interval survives when -i is absent")
}

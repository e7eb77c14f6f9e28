// Package config handles configuration for the server component,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the satstream server.
//
// Fields:
//   - EndpointAddrGRPC: bind address for the public gRPC endpoint.
//   - DatabaseDSN: snapshot store. "postgres://..." uses pgx, "sqlite://path"
//     or "file:..." uses SQLite, empty keeps state in memory only.
//   - SecretKey: HMAC secret shared with the identity provider (HS256).
//   - TickInterval: how often the accrual sweep runs.
//   - SnapshotInterval: how often state is written to the snapshot store.
//   - ReclaimTimeout: recipient inactivity after which a sender may reclaim.
//   - FeeBasisPoints: cancellation fee on unreleased value (100 = 1%).
//   - S3*: object storage used for statement export; empty bucket disables it.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	EndpointAddrGRPC string
	DatabaseDSN      string
	SecretKey        string
	TickInterval     time.Duration
	SnapshotInterval time.Duration
	ReclaimTimeout   time.Duration
	FeeBasisPoints   uint64
	S3RootUser       string
	S3RootPassword   string
	S3Bucket         string
	S3Region         string
	S3BaseEndpoint   string
	LogLevel         string
}

// LoadDefaults populates Config with development defaults.
// NOTE: SecretKey must be overridden in production.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":50051"
	c.DatabaseDSN = ""
	c.SecretKey = "secretKey"
	c.TickInterval = 1 * time.Second
	c.SnapshotInterval = 30 * time.Second
	c.ReclaimTimeout = 7 * 24 * time.Hour
	c.FeeBasisPoints = 100
	c.S3RootUser = "admin"
	c.S3RootPassword = "secretpassword"
	c.S3Bucket = ""
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = "http://127.0.0.1:9000/"
	c.LogLevel = "info"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/satstream/internal/flagx"
	"github.com/dmitrijs2005/satstream/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Intervals use
// timex.Duration so they may be written as "30s" or as nanoseconds.
// Absent keys leave the current value alone.
type JsonConfig struct {
	EndpointAddrGRPC *string         `json:"endpoint_addr_grpc"`
	DatabaseDSN      *string         `json:"database_dsn"`
	SecretKey        *string         `json:"secret_key"`
	TickInterval     *timex.Duration `json:"tick_interval"`
	SnapshotInterval *timex.Duration `json:"snapshot_interval"`
	ReclaimTimeout   *timex.Duration `json:"reclaim_timeout"`
	FeeBasisPoints   *uint64         `json:"fee_basis_points"`
	S3RootUser       *string         `json:"s3_root_user"`
	S3RootPassword   *string         `json:"s3_root_password"`
	S3Bucket         *string         `json:"s3_bucket"`
	S3Region         *string         `json:"s3_region"`
	S3BaseEndpoint   *string         `json:"s3_base_endpoint"`
	LogLevel         *string         `json:"log_level"`
}

// parseJson overlays config with the file named by -c / -config, if any.
func parseJson(config *Config, args []string) error {
	path := flagx.ConfigFile(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var c JsonConfig
	if err := json.Unmarshal(data, &c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	setDuration(&config.TickInterval, c.TickInterval)
	setDuration(&config.SnapshotInterval, c.SnapshotInterval)
	setDuration(&config.ReclaimTimeout, c.ReclaimTimeout)
	if c.FeeBasisPoints != nil {
		config.FeeBasisPoints = *c.FeeBasisPoints
	}
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	setString(&config.LogLevel, c.LogLevel)

	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setDuration(dst *time.Duration, v *timex.Duration) {
	if v != nil {
		*dst = v.Duration
	}
}

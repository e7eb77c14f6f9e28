package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/satstream/internal/flagx"
)

var serverFlags = []string{"-a", "-d", "-s", "-i", "-n", "-w", "-f", "-u", "-p", "-b", "-g", "-e", "-l"}

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-d string   snapshot store DSN (postgres://..., sqlite://path)
//	-s string   JWT HMAC secret key
//	-i int      accrual tick interval, seconds
//	-n int      snapshot interval, seconds
//	-w int      reclaim timeout, hours
//	-f uint     cancellation fee, basis points
//	-u string   S3 root user
//	-p string   S3 root password
//	-b string   S3 bucket name
//	-g string   S3 region
//	-e string   S3 base endpoint
//	-l string   log level
//
// Only these flags are looked at; -c/-config is handled by parseJson.
func parseFlags(config *Config, args []string) error {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "snapshot store DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	tick := fs.Int("i", int(config.TickInterval.Seconds()), "accrual tick interval (in seconds)")
	snapshot := fs.Int("n", int(config.SnapshotInterval.Seconds()), "snapshot interval (in seconds)")
	reclaim := fs.Int("w", int(config.ReclaimTimeout.Hours()), "reclaim timeout (in hours)")

	fs.Uint64Var(&config.FeeBasisPoints, "f", config.FeeBasisPoints, "cancellation fee (basis points)")
	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket for statements")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := fs.Parse(flagx.FilterArgs(args, serverFlags)); err != nil {
		return err
	}

	// Flags carry whole units; keep sub-unit values coming from JSON unless
	// the flag was actually given.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "i":
			config.TickInterval = time.Duration(*tick) * time.Second
		case "n":
			config.SnapshotInterval = time.Duration(*snapshot) * time.Second
		case "w":
			config.ReclaimTimeout = time.Duration(*reclaim) * time.Hour
		}
	})

	return nil
}

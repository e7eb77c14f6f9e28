package config

import (
	"flag"
	"io"
	"time"
)

// Config holds runtime settings for the satstream CLI.
type Config struct {
	ServerEndpointAddr string
	AccessToken        string
	RequestTimeout     time.Duration
	// SecretKey is used only by the token command to mint development tokens.
	SecretKey string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.AccessToken = ""
	c.RequestTimeout = 5 * time.Second
	c.SecretKey = "secretKey"
}

// LoadConfig parses the global flags at the head of args and returns the
// resulting Config together with the remaining arguments (the subcommand and
// its flags).
func LoadConfig(args []string) (*Config, []string, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	fs := flag.NewFlagSet("satstream-cli", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	addr := fs.String("a", "", "address and port to access server")
	token := fs.String("t", "", "access token")
	timeout := fs.Int("r", 0, "request timeout (in seconds)")
	secret := fs.String("s", "", "secret key for the token command")
	var configFile string
	fs.StringVar(&configFile, "c", "", "path to config file (short)")
	fs.StringVar(&configFile, "config", "", "path to config file")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	if configFile != "" {
		if err := parseJson(cfg, configFile); err != nil {
			return nil, nil, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "a":
			cfg.ServerEndpointAddr = *addr
		case "t":
			cfg.AccessToken = *token
		case "r":
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		case "s":
			cfg.SecretKey = *secret
		}
	})

	return cfg, fs.Args(), nil
}

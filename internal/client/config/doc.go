// Package config loads runtime configuration for the satstream CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Global flags come before the subcommand:
//
//	satstream-cli [-a addr] [-t token] [-r seconds] [-s secret] [-c file] <command> [command flags]
//
// # JSON schema
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "access_token": "eyJ...",
//	  "request_timeout": "5s",
//	  "secret_key": "secretKey"
//	}
package config

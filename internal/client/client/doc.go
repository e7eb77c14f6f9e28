// Package client is the gRPC client of satstream.v1.StreamService. It attaches
// the access token and a request id to every call and turns gRPC statuses
// back into the sentinel errors of package common.
package client

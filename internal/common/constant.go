// Package common contains shared constants and sentinel errors used across
// satstream components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// RequestIDHeaderName is the gRPC metadata key echoed back with the id the
// server assigned to a request.
const RequestIDHeaderName = "x-request-id"

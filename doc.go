// Package desktopapi provides typed Go bindings for the desktop host's
// request/response protocol. The message types, the Client.Send*Request
// methods, the Handler interface, and the request kind constants are
// generated from schema/desktop.proto; the rest of the package is the small
// runtime they share: envelope framing, request correlation, transports,
// errors, metrics, and tracing.
package desktopapi

//go:generate go run ./cmd/generate-requests -config schema/requestgen.toml

// Package api defines the request and response messages of the DealDesk
// Connect API (package dealdesk.v1).
//
// Messages are plain structs carried as JSON. Use JSONCodec on both sides of
// a connection; the apiconnect package wires it in for you.
package api

// ProtocolPackage prefixes every procedure path.
const ProtocolPackage = "dealdesk.v1"

// Package apiconnect wires the dealdesk.v1 services to Connect handlers and clients.
package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/dealdesk/pkg/api"
)

// handle registers one procedure on mux with the JSON codec in front of the caller's options.
func handle[Req, Res any](mux *http.ServeMux, procedure string, fn func(context.Context, *connect.Request[Req]) (*connect.Response[Res], error), opts []connect.HandlerOption) {
	all := make([]connect.HandlerOption, 0, len(opts)+1)
	all = append(all, connect.WithCodec(api.JSONCodec{}))
	all = append(all, opts...)
	mux.Handle(procedure, connect.NewUnaryHandler(procedure, fn, all...))
}

// newClient builds a unary client for one procedure using the JSON codec.
func newClient[Req, Res any](httpClient connect.HTTPClient, baseURL, procedure string, opts []connect.ClientOption) *connect.Client[Req, Res] {
	all := make([]connect.ClientOption, 0, len(opts)+1)
	all = append(all, connect.WithCodec(api.JSONCodec{}))
	all = append(all, opts...)
	return connect.NewClient[Req, Res](httpClient, strings.TrimRight(baseURL, "/")+procedure, all...)
}

func servicePath(service string) string {
	return "/" + api.ProtocolPackage + "." + service + "/"
}

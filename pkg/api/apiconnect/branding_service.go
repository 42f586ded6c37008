package apiconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/dealdesk/pkg/api"
)

// BrandingServiceName is the fully-qualified name of the BrandingService.
const BrandingServiceName = api.ProtocolPackage + ".BrandingService"

// Procedure paths of the BrandingService.
const (
	BrandingServiceGetBrandingProcedure    = "/" + BrandingServiceName + "/GetBranding"
	BrandingServiceUpdateBrandingProcedure = "/" + BrandingServiceName + "/UpdateBranding"
	BrandingServiceResetBrandingProcedure  = "/" + BrandingServiceName + "/ResetBranding"
)

// BrandingServiceHandler is implemented by the server side of the BrandingService.
type BrandingServiceHandler interface {
	GetBranding(context.Context, *connect.Request[api.GetBrandingRequest]) (*connect.Response[api.GetBrandingResponse], error)
	UpdateBranding(context.Context, *connect.Request[api.UpdateBrandingRequest]) (*connect.Response[api.UpdateBrandingResponse], error)
	ResetBranding(context.Context, *connect.Request[api.ResetBrandingRequest]) (*connect.Response[api.ResetBrandingResponse], error)
}

// NewBrandingServiceHandler builds an HTTP handler for svc and returns the path to mount it on.
func NewBrandingServiceHandler(svc BrandingServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	mux := http.NewServeMux()
	handle(mux, BrandingServiceGetBrandingProcedure, svc.GetBranding, opts)
	handle(mux, BrandingServiceUpdateBrandingProcedure, svc.UpdateBranding, opts)
	handle(mux, BrandingServiceResetBrandingProcedure, svc.ResetBranding, opts)
	return servicePath("BrandingService"), mux
}

// BrandingServiceClient is a client for the BrandingService.
type BrandingServiceClient interface {
	GetBranding(context.Context, *connect.Request[api.GetBrandingRequest]) (*connect.Response[api.GetBrandingResponse], error)
	UpdateBranding(context.Context, *connect.Request[api.UpdateBrandingRequest]) (*connect.Response[api.UpdateBrandingResponse], error)
	ResetBranding(context.Context, *connect.Request[api.ResetBrandingRequest]) (*connect.Response[api.ResetBrandingResponse], error)
}

type brandingServiceClient struct {
	getBranding    *connect.Client[api.GetBrandingRequest, api.GetBrandingResponse]
	updateBranding *connect.Client[api.UpdateBrandingRequest, api.UpdateBrandingResponse]
	resetBranding  *connect.Client[api.ResetBrandingRequest, api.ResetBrandingResponse]
}

// NewBrandingServiceClient creates a client for the BrandingService served at baseURL.
func NewBrandingServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) BrandingServiceClient {
	return &brandingServiceClient{
		getBranding:    newClient[api.GetBrandingRequest, api.GetBrandingResponse](httpClient, baseURL, BrandingServiceGetBrandingProcedure, opts),
		updateBranding: newClient[api.UpdateBrandingRequest, api.UpdateBrandingResponse](httpClient, baseURL, BrandingServiceUpdateBrandingProcedure, opts),
		resetBranding:  newClient[api.ResetBrandingRequest, api.ResetBrandingResponse](httpClient, baseURL, BrandingServiceResetBrandingProcedure, opts),
	}
}

func (c *brandingServiceClient) GetBranding(ctx context.Context, req *connect.Request[api.GetBrandingRequest]) (*connect.Response[api.GetBrandingResponse], error) {
	return c.getBranding.CallUnary(ctx, req)
}

func (c *brandingServiceClient) UpdateBranding(ctx context.Context, req *connect.Request[api.UpdateBrandingRequest]) (*connect.Response[api.UpdateBrandingResponse], error) {
	return c.updateBranding.CallUnary(ctx, req)
}

func (c *brandingServiceClient) ResetBranding(ctx context.Context, req *connect.Request[api.ResetBrandingRequest]) (*connect.Response[api.ResetBrandingResponse], error) {
	return c.resetBranding.CallUnary(ctx, req)
}

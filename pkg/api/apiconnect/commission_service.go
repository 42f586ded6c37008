package apiconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/dealdesk/pkg/api"
)

// CommissionServiceName is the fully-qualified name of the CommissionService.
const CommissionServiceName = api.ProtocolPackage + ".CommissionService"

// Procedure paths of the CommissionService.
const (
	CommissionServiceGetSplitProcedure     = "/" + CommissionServiceName + "/GetSplit"
	CommissionServiceSetTotalProcedure     = "/" + CommissionServiceName + "/SetTotal"
	CommissionServiceUpdateRowProcedure    = "/" + CommissionServiceName + "/UpdateRow"
	CommissionServiceDeleteRowProcedure    = "/" + CommissionServiceName + "/DeleteRow"
	CommissionServiceSaveSplitProcedure    = "/" + CommissionServiceName + "/SaveSplit"
	CommissionServicePreviewSplitProcedure = "/" + CommissionServiceName + "/PreviewSplit"
)

// CommissionServiceHandler is implemented by the server side of the CommissionService.
type CommissionServiceHandler interface {
	GetSplit(context.Context, *connect.Request[api.GetSplitRequest]) (*connect.Response[api.SplitResponse], error)
	SetTotal(context.Context, *connect.Request[api.SetTotalRequest]) (*connect.Response[api.SplitResponse], error)
	UpdateRow(context.Context, *connect.Request[api.UpdateRowRequest]) (*connect.Response[api.SplitResponse], error)
	DeleteRow(context.Context, *connect.Request[api.DeleteRowRequest]) (*connect.Response[api.SplitResponse], error)
	SaveSplit(context.Context, *connect.Request[api.SaveSplitRequest]) (*connect.Response[api.SplitResponse], error)
	PreviewSplit(context.Context, *connect.Request[api.PreviewSplitRequest]) (*connect.Response[api.PreviewSplitResponse], error)
}

// NewCommissionServiceHandler builds an HTTP handler for svc and returns the path to mount it on.
func NewCommissionServiceHandler(svc CommissionServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	mux := http.NewServeMux()
	handle(mux, CommissionServiceGetSplitProcedure, svc.GetSplit, opts)
	handle(mux, CommissionServiceSetTotalProcedure, svc.SetTotal, opts)
	handle(mux, CommissionServiceUpdateRowProcedure, svc.UpdateRow, opts)
	handle(mux, CommissionServiceDeleteRowProcedure, svc.DeleteRow, opts)
	handle(mux, CommissionServiceSaveSplitProcedure, svc.SaveSplit, opts)
	handle(mux, CommissionServicePreviewSplitProcedure, svc.PreviewSplit, opts)
	return servicePath("CommissionService"), mux
}

// CommissionServiceClient is a client for the CommissionService.
type CommissionServiceClient interface {
	GetSplit(context.Context, *connect.Request[api.GetSplitRequest]) (*connect.Response[api.SplitResponse], error)
	SetTotal(context.Context, *connect.Request[api.SetTotalRequest]) (*connect.Response[api.SplitResponse], error)
	UpdateRow(context.Context, *connect.Request[api.UpdateRowRequest]) (*connect.Response[api.SplitResponse], error)
	DeleteRow(context.Context, *connect.Request[api.DeleteRowRequest]) (*connect.Response[api.SplitResponse], error)
	SaveSplit(context.Context, *connect.Request[api.SaveSplitRequest]) (*connect.Response[api.SplitResponse], error)
	PreviewSplit(context.Context, *connect.Request[api.PreviewSplitRequest]) (*connect.Response[api.PreviewSplitResponse], error)
}

type commissionServiceClient struct {
	getSplit     *connect.Client[api.GetSplitRequest, api.SplitResponse]
	setTotal     *connect.Client[api.SetTotalRequest, api.SplitResponse]
	updateRow    *connect.Client[api.UpdateRowRequest, api.SplitResponse]
	deleteRow    *connect.Client[api.DeleteRowRequest, api.SplitResponse]
	saveSplit    *connect.Client[api.SaveSplitRequest, api.SplitResponse]
	previewSplit *connect.Client[api.PreviewSplitRequest, api.PreviewSplitResponse]
}

// NewCommissionServiceClient creates a client for the CommissionService served at baseURL.
func NewCommissionServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) CommissionServiceClient {
	return &commissionServiceClient{
		getSplit:     newClient[api.GetSplitRequest, api.SplitResponse](httpClient, baseURL, CommissionServiceGetSplitProcedure, opts),
		setTotal:     newClient[api.SetTotalRequest, api.SplitResponse](httpClient, baseURL, CommissionServiceSetTotalProcedure, opts),
		updateRow:    newClient[api.UpdateRowRequest, api.SplitResponse](httpClient, baseURL, CommissionServiceUpdateRowProcedure, opts),
		deleteRow:    newClient[api.DeleteRowRequest, api.SplitResponse](httpClient, baseURL, CommissionServiceDeleteRowProcedure, opts),
		saveSplit:    newClient[api.SaveSplitRequest, api.SplitResponse](httpClient, baseURL, CommissionServiceSaveSplitProcedure, opts),
		previewSplit: newClient[api.PreviewSplitRequest, api.PreviewSplitResponse](httpClient, baseURL, CommissionServicePreviewSplitProcedure, opts),
	}
}

func (c *commissionServiceClient) GetSplit(ctx context.Context, req *connect.Request[api.GetSplitRequest]) (*connect.Response[api.SplitResponse], error) {
	return c.getSplit.CallUnary(ctx, req)
}

func (c *commissionServiceClient) SetTotal(ctx context.Context, req *connect.Request[api.SetTotalRequest]) (*connect.Response[api.SplitResponse], error) {
	return c.setTotal.CallUnary(ctx, req)
}

func (c *commissionServiceClient) UpdateRow(ctx context.Context, req *connect.Request[api.UpdateRowRequest]) (*connect.Response[api.SplitResponse], error) {
	return c.updateRow.CallUnary(ctx, req)
}

func (c *commissionServiceClient) DeleteRow(ctx context.Context, req *connect.Request[api.DeleteRowRequest]) (*connect.Response[api.SplitResponse], error) {
	return c.deleteRow.CallUnary(ctx, req)
}

func (c *commissionServiceClient) SaveSplit(ctx context.Context, req *connect.Request[api.SaveSplitRequest]) (*connect.Response[api.SplitResponse], error) {
	return c.saveSplit.CallUnary(ctx, req)
}

func (c *commissionServiceClient) PreviewSplit(ctx context.Context, req *connect.Request[api.PreviewSplitRequest]) (*connect.Response[api.PreviewSplitResponse], error) {
	return c.previewSplit.CallUnary(ctx, req)
}

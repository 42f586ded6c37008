package apiconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/dealdesk/pkg/api"
)

// ChecklistServiceName is the fully-qualified name of the ChecklistService.
const ChecklistServiceName = api.ProtocolPackage + ".ChecklistService"

// Procedure paths of the ChecklistService.
const (
	ChecklistServiceListChecklistProcedure       = "/" + ChecklistServiceName + "/ListChecklist"
	ChecklistServiceAddChecklistItemProcedure    = "/" + ChecklistServiceName + "/AddChecklistItem"
	ChecklistServiceSetItemCompletedProcedure    = "/" + ChecklistServiceName + "/SetItemCompleted"
	ChecklistServiceDeleteChecklistItemProcedure = "/" + ChecklistServiceName + "/DeleteChecklistItem"
)

// ChecklistServiceHandler is implemented by the server side of the ChecklistService.
type ChecklistServiceHandler interface {
	ListChecklist(context.Context, *connect.Request[api.ListChecklistRequest]) (*connect.Response[api.ListChecklistResponse], error)
	AddChecklistItem(context.Context, *connect.Request[api.AddChecklistItemRequest]) (*connect.Response[api.AddChecklistItemResponse], error)
	SetItemCompleted(context.Context, *connect.Request[api.SetItemCompletedRequest]) (*connect.Response[api.SetItemCompletedResponse], error)
	DeleteChecklistItem(context.Context, *connect.Request[api.DeleteChecklistItemRequest]) (*connect.Response[api.DeleteChecklistItemResponse], error)
}

// NewChecklistServiceHandler builds an HTTP handler for svc and returns the path to mount it on.
func NewChecklistServiceHandler(svc ChecklistServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	mux := http.NewServeMux()
	handle(mux, ChecklistServiceListChecklistProcedure, svc.ListChecklist, opts)
	handle(mux, ChecklistServiceAddChecklistItemProcedure, svc.AddChecklistItem, opts)
	handle(mux, ChecklistServiceSetItemCompletedProcedure, svc.SetItemCompleted, opts)
	handle(mux, ChecklistServiceDeleteChecklistItemProcedure, svc.DeleteChecklistItem, opts)
	return servicePath("ChecklistService"), mux
}

// ChecklistServiceClient is a client for the ChecklistService.
type ChecklistServiceClient interface {
	ListChecklist(context.Context, *connect.Request[api.ListChecklistRequest]) (*connect.Response[api.ListChecklistResponse], error)
	AddChecklistItem(context.Context, *connect.Request[api.AddChecklistItemRequest]) (*connect.Response[api.AddChecklistItemResponse], error)
	SetItemCompleted(context.Context, *connect.Request[api.SetItemCompletedRequest]) (*connect.Response[api.SetItemCompletedResponse], error)
	DeleteChecklistItem(context.Context, *connect.Request[api.DeleteChecklistItemRequest]) (*connect.Response[api.DeleteChecklistItemResponse], error)
}

type checklistServiceClient struct {
	listChecklist       *connect.Client[api.ListChecklistRequest, api.ListChecklistResponse]
	addChecklistItem    *connect.Client[api.AddChecklistItemRequest, api.AddChecklistItemResponse]
	setItemCompleted    *connect.Client[api.SetItemCompletedRequest, api.SetItemCompletedResponse]
	deleteChecklistItem *connect.Client[api.DeleteChecklistItemRequest, api.DeleteChecklistItemResponse]
}

// NewChecklistServiceClient creates a client for the ChecklistService served at baseURL.
func NewChecklistServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) ChecklistServiceClient {
	return &checklistServiceClient{
		listChecklist:       newClient[api.ListChecklistRequest, api.ListChecklistResponse](httpClient, baseURL, ChecklistServiceListChecklistProcedure, opts),
		addChecklistItem:    newClient[api.AddChecklistItemRequest, api.AddChecklistItemResponse](httpClient, baseURL, ChecklistServiceAddChecklistItemProcedure, opts),
		setItemCompleted:    newClient[api.SetItemCompletedRequest, api.SetItemCompletedResponse](httpClient, baseURL, ChecklistServiceSetItemCompletedProcedure, opts),
		deleteChecklistItem: newClient[api.DeleteChecklistItemRequest, api.DeleteChecklistItemResponse](httpClient, baseURL, ChecklistServiceDeleteChecklistItemProcedure, opts),
	}
}

func (c *checklistServiceClient) ListChecklist(ctx context.Context, req *connect.Request[api.ListChecklistRequest]) (*connect.Response[api.ListChecklistResponse], error) {
	return c.listChecklist.CallUnary(ctx, req)
}

func (c *checklistServiceClient) AddChecklistItem(ctx context.Context, req *connect.Request[api.AddChecklistItemRequest]) (*connect.Response[api.AddChecklistItemResponse], error) {
	return c.addChecklistItem.CallUnary(ctx, req)
}

func (c *checklistServiceClient) SetItemCompleted(ctx context.Context, req *connect.Request[api.SetItemCompletedRequest]) (*connect.Response[api.SetItemCompletedResponse], error) {
	return c.setItemCompleted.CallUnary(ctx, req)
}

func (c *checklistServiceClient) DeleteChecklistItem(ctx context.Context, req *connect.Request[api.DeleteChecklistItemRequest]) (*connect.Response[api.DeleteChecklistItemResponse], error) {
	return c.deleteChecklistItem.CallUnary(ctx, req)
}

package apiconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/dealdesk/pkg/api"
)

// TransactionServiceName is the fully-qualified name of the TransactionService.
const TransactionServiceName = api.ProtocolPackage + ".TransactionService"

// Procedure paths of the TransactionService.
const (
	TransactionServiceCreateTransactionProcedure = "/" + TransactionServiceName + "/CreateTransaction"
	TransactionServiceGetTransactionProcedure    = "/" + TransactionServiceName + "/GetTransaction"
	TransactionServiceListTransactionsProcedure  = "/" + TransactionServiceName + "/ListTransactions"
	TransactionServiceUpdateTransactionProcedure = "/" + TransactionServiceName + "/UpdateTransaction"
	TransactionServiceAssignAgentProcedure       = "/" + TransactionServiceName + "/AssignAgent"
	TransactionServiceListAgentsProcedure        = "/" + TransactionServiceName + "/ListAgents"
)

// TransactionServiceHandler is implemented by the server side of the TransactionService.
type TransactionServiceHandler interface {
	CreateTransaction(context.Context, *connect.Request[api.CreateTransactionRequest]) (*connect.Response[api.CreateTransactionResponse], error)
	GetTransaction(context.Context, *connect.Request[api.GetTransactionRequest]) (*connect.Response[api.GetTransactionResponse], error)
	ListTransactions(context.Context, *connect.Request[api.ListTransactionsRequest]) (*connect.Response[api.ListTransactionsResponse], error)
	UpdateTransaction(context.Context, *connect.Request[api.UpdateTransactionRequest]) (*connect.Response[api.UpdateTransactionResponse], error)
	AssignAgent(context.Context, *connect.Request[api.AssignAgentRequest]) (*connect.Response[api.AssignAgentResponse], error)
	ListAgents(context.Context, *connect.Request[api.ListAgentsRequest]) (*connect.Response[api.ListAgentsResponse], error)
}

// NewTransactionServiceHandler builds an HTTP handler for svc and returns the path to mount it on.
func NewTransactionServiceHandler(svc TransactionServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	mux := http.NewServeMux()
	handle(mux, TransactionServiceCreateTransactionProcedure, svc.CreateTransaction, opts)
	handle(mux, TransactionServiceGetTransactionProcedure, svc.GetTransaction, opts)
	handle(mux, TransactionServiceListTransactionsProcedure, svc.ListTransactions, opts)
	handle(mux, TransactionServiceUpdateTransactionProcedure, svc.UpdateTransaction, opts)
	handle(mux, TransactionServiceAssignAgentProcedure, svc.AssignAgent, opts)
	handle(mux, TransactionServiceListAgentsProcedure, svc.ListAgents, opts)
	return servicePath("TransactionService"), mux
}

// TransactionServiceClient is a client for the TransactionService.
type TransactionServiceClient interface {
	CreateTransaction(context.Context, *connect.Request[api.CreateTransactionRequest]) (*connect.Response[api.CreateTransactionResponse], error)
	GetTransaction(context.Context, *connect.Request[api.GetTransactionRequest]) (*connect.Response[api.GetTransactionResponse], error)
	ListTransactions(context.Context, *connect.Request[api.ListTransactionsRequest]) (*connect.Response[api.ListTransactionsResponse], error)
	UpdateTransaction(context.Context, *connect.Request[api.UpdateTransactionRequest]) (*connect.Response[api.UpdateTransactionResponse], error)
	AssignAgent(context.Context, *connect.Request[api.AssignAgentRequest]) (*connect.Response[api.AssignAgentResponse], error)
	ListAgents(context.Context, *connect.Request[api.ListAgentsRequest]) (*connect.Response[api.ListAgentsResponse], error)
}

type transactionServiceClient struct {
	createTransaction *connect.Client[api.CreateTransactionRequest, api.CreateTransactionResponse]
	getTransaction    *connect.Client[api.GetTransactionRequest, api.GetTransactionResponse]
	listTransactions  *connect.Client[api.ListTransactionsRequest, api.ListTransactionsResponse]
	updateTransaction *connect.Client[api.UpdateTransactionRequest, api.UpdateTransactionResponse]
	assignAgent       *connect.Client[api.AssignAgentRequest, api.AssignAgentResponse]
	listAgents        *connect.Client[api.ListAgentsRequest, api.ListAgentsResponse]
}

// NewTransactionServiceClient creates a client for the TransactionService served at baseURL.
func NewTransactionServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) TransactionServiceClient {
	return &transactionServiceClient{
		createTransaction: newClient[api.CreateTransactionRequest, api.CreateTransactionResponse](httpClient, baseURL, TransactionServiceCreateTransactionProcedure, opts),
		getTransaction:    newClient[api.GetTransactionRequest, api.GetTransactionResponse](httpClient, baseURL, TransactionServiceGetTransactionProcedure, opts),
		listTransactions:  newClient[api.ListTransactionsRequest, api.ListTransactionsResponse](httpClient, baseURL, TransactionServiceListTransactionsProcedure, opts),
		updateTransaction: newClient[api.UpdateTransactionRequest, api.UpdateTransactionResponse](httpClient, baseURL, TransactionServiceUpdateTransactionProcedure, opts),
		assignAgent:       newClient[api.AssignAgentRequest, api.AssignAgentResponse](httpClient, baseURL, TransactionServiceAssignAgentProcedure, opts),
		listAgents:        newClient[api.ListAgentsRequest, api.ListAgentsResponse](httpClient, baseURL, TransactionServiceListAgentsProcedure, opts),
	}
}

func (c *transactionServiceClient) CreateTransaction(ctx context.Context, req *connect.Request[api.CreateTransactionRequest]) (*connect.Response[api.CreateTransactionResponse], error) {
	return c.createTransaction.CallUnary(ctx, req)
}

func (c *transactionServiceClient) GetTransaction(ctx context.Context, req *connect.Request[api.GetTransactionRequest]) (*connect.Response[api.GetTransactionResponse], error) {
	return c.getTransaction.CallUnary(ctx, req)
}

func (c *transactionServiceClient) ListTransactions(ctx context.Context, req *connect.Request[api.ListTransactionsRequest]) (*connect.Response[api.ListTransactionsResponse], error) {
	return c.listTransactions.CallUnary(ctx, req)
}

func (c *transactionServiceClient) UpdateTransaction(ctx context.Context, req *connect.Request[api.UpdateTransactionRequest]) (*connect.Response[api.UpdateTransactionResponse], error) {
	return c.updateTransaction.CallUnary(ctx, req)
}

func (c *transactionServiceClient) AssignAgent(ctx context.Context, req *connect.Request[api.AssignAgentRequest]) (*connect.Response[api.AssignAgentResponse], error) {
	return c.assignAgent.CallUnary(ctx, req)
}

func (c *transactionServiceClient) ListAgents(ctx context.Context, req *connect.Request[api.ListAgentsRequest]) (*connect.Response[api.ListAgentsResponse], error) {
	return c.listAgents.CallUnary(ctx, req)
}

package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"connectrpc.com/connect"
	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/dealdesk/internal/allocation"
	"github.com/mmynk/dealdesk/internal/auth"
	"github.com/mmynk/dealdesk/internal/branding"
	"github.com/mmynk/dealdesk/internal/middleware"
	"github.com/mmynk/dealdesk/internal/models"
	"github.com/mmynk/dealdesk/internal/storage"
	"github.com/mmynk/dealdesk/internal/storage/sqlite"
	"github.com/mmynk/dealdesk/pkg/api"
	"github.com/mmynk/dealdesk/pkg/api/apiconnect"
	"github.com/mmynk/dealdesk/pkg/logging"
)

// testServer is a full set of services behind the real auth interceptors.
type testServer struct {
	url     string
	store   *sqlite.SQLiteStore
	metrics *middleware.Metrics

	admin      *models.User
	agent      *models.User
	adminToken string
	agentToken string
}

// setupTestServer starts an httptest server over a temp SQLite database with
// one admin and one agent already registered.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	logger := logging.Discard()
	metrics := middleware.NewMetrics()
	jwtManager := auth.NewJWTManager("test-secret-key-0123456789", time.Hour)
	authenticator := auth.NewPasswordAuthenticator(store).WithCost(bcrypt.MinCost)

	protected := connect.WithInterceptors(
		metrics.Interceptor(),
		middleware.RequireAuth(jwtManager),
		middleware.LoggingInterceptor(logger),
	)
	public := connect.WithInterceptors(
		metrics.Interceptor(),
		middleware.OptionalAuth(jwtManager),
		middleware.LoggingInterceptor(logger),
	)

	mux := http.NewServeMux()
	mux.Handle(apiconnect.NewCommissionServiceHandler(NewCommissionService(store, metrics), protected))
	mux.Handle(apiconnect.NewTransactionServiceHandler(NewTransactionService(store), protected))
	mux.Handle(apiconnect.NewChecklistServiceHandler(NewChecklistService(store), protected))
	mux.Handle(apiconnect.NewBrandingServiceHandler(
		NewBrandingService(branding.NewManager(store, models.DefaultBranding(), logger)), protected))
	mux.Handle(apiconnect.NewAuthServiceHandler(NewAuthService(authenticator, jwtManager, store, logger), public))

	server := httptest.NewServer(mux)
	t.Cleanup(func() {
		server.Close()
		store.Close()
	})

	ts := &testServer{url: server.URL, store: store, metrics: metrics}

	ctx := context.Background()
	ts.admin, err = authenticator.Register(ctx, "admin@example.com", "Avery Admin", models.RoleAdmin, "admin-password")
	if err != nil {
		t.Fatalf("failed to register admin: %v", err)
	}
	ts.agent, err = authenticator.Register(ctx, "agent@example.com", "Jordan Agent", models.RoleAgent, "agent-password")
	if err != nil {
		t.Fatalf("failed to register agent: %v", err)
	}
	if ts.adminToken, err = jwtManager.Generate(ts.admin); err != nil {
		t.Fatalf("failed to sign admin token: %v", err)
	}
	if ts.agentToken, err = jwtManager.Generate(ts.agent); err != nil {
		t.Fatalf("failed to sign agent token: %v", err)
	}
	return ts
}

// bearer returns a client option that sends token on every call.
func bearer(token string) connect.ClientOption {
	return connect.WithInterceptors(connect.UnaryInterceptorFunc(func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if token != "" {
				req.Header().Set("Authorization", "Bearer "+token)
			}
			return next(ctx, req)
		}
	}))
}

func (ts *testServer) commissions(token string) apiconnect.CommissionServiceClient {
	return apiconnect.NewCommissionServiceClient(http.DefaultClient, ts.url, bearer(token))
}

func (ts *testServer) transactions(token string) apiconnect.TransactionServiceClient {
	return apiconnect.NewTransactionServiceClient(http.DefaultClient, ts.url, bearer(token))
}

func (ts *testServer) checklists(token string) apiconnect.ChecklistServiceClient {
	return apiconnect.NewChecklistServiceClient(http.DefaultClient, ts.url, bearer(token))
}

func (ts *testServer) branding(token string) apiconnect.BrandingServiceClient {
	return apiconnect.NewBrandingServiceClient(http.DefaultClient, ts.url, bearer(token))
}

func (ts *testServer) auth(token string) apiconnect.AuthServiceClient {
	return apiconnect.NewAuthServiceClient(http.DefaultClient, ts.url, bearer(token))
}

// createTransaction creates a sale at address through the API.
func (ts *testServer) createTransaction(t *testing.T, address string) *api.Transaction {
	t.Helper()
	resp, err := ts.transactions(ts.agentToken).CreateTransaction(context.Background(), connect.NewRequest(&api.CreateTransactionRequest{
		TransactionFields: api.TransactionFields{
			Address: address,
			Price:   500000,
			Type:    "sale",
		},
	}))
	if err != nil {
		t.Fatalf("CreateTransaction failed: %v", err)
	}
	return resp.Msg.Transaction
}

func assertCode(t *testing.T, err error, want connect.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", want)
	}
	if got := connect.CodeOf(err); got != want {
		t.Fatalf("expected code %v, got %v (%v)", want, got, err)
	}
}

func TestRequiresToken(t *testing.T) {
	ts := setupTestServer(t)

	_, err := ts.transactions("").ListTransactions(context.Background(), connect.NewRequest(&api.ListTransactionsRequest{}))
	assertCode(t, err, connect.CodeUnauthenticated)

	_, err = ts.transactions("not-a-jwt").ListTransactions(context.Background(), connect.NewRequest(&api.ListTransactionsRequest{}))
	assertCode(t, err, connect.CodeUnauthenticated)
}

func TestConnectError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want connect.Code
	}{
		{"missing record", fmt.Errorf("transaction %w: x", storage.ErrNotFound), connect.CodeNotFound},
		{"duplicate key", fmt.Errorf("user %w: a@b.c", storage.ErrAlreadyExists), connect.CodeAlreadyExists},
		{"unknown row", allocation.ErrRowNotFound, connect.CodeNotFound},
		{"unbalanced", allocation.ErrUnbalanced, connect.CodeFailedPrecondition},
		{"deadline", context.DeadlineExceeded, connect.CodeDeadlineExceeded},
		{"anything else", errors.New("disk on fire"), connect.CodeInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := connect.CodeOf(connectError(tt.err)); got != tt.want {
				t.Errorf("connectError(%v) code = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/dealdesk/pkg/api"
)

func TestRegisterAndLogin(t *testing.T) {
	ts := setupTestServer(t)
	client := ts.auth("")
	ctx := context.Background()

	reg, err := client.Register(ctx, connect.NewRequest(&api.RegisterRequest{
		Email:       "new@example.com",
		DisplayName: "Taylor",
		Password:    "long-enough",
	}))
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if reg.Msg.User.Role != "agent" {
		t.Errorf("expected default role agent, got %q", reg.Msg.User.Role)
	}
	if reg.Msg.Token == "" {
		t.Error("expected a token")
	}

	login, err := client.Login(ctx, connect.NewRequest(&api.LoginRequest{Email: "NEW@example.com", Password: "long-enough"}))
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	me, err := ts.auth(login.Msg.Token).GetCurrentUser(ctx, connect.NewRequest(&api.GetCurrentUserRequest{}))
	if err != nil {
		t.Fatalf("GetCurrentUser failed: %v", err)
	}
	if me.Msg.User.DisplayName != "Taylor" {
		t.Errorf("expected display name Taylor, got %q", me.Msg.User.DisplayName)
	}
}

func TestRegister_Errors(t *testing.T) {
	ts := setupTestServer(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		token string
		req   *api.RegisterRequest
		want  connect.Code
	}{
		{
			name: "weak password",
			req:  &api.RegisterRequest{Email: "a@example.com", DisplayName: "A", Password: "short"},
			want: connect.CodeInvalidArgument,
		},
		{
			name: "bad email",
			req:  &api.RegisterRequest{Email: "nope", DisplayName: "A", Password: "long-enough"},
			want: connect.CodeInvalidArgument,
		},
		{
			name: "duplicate email",
			req:  &api.RegisterRequest{Email: "agent@example.com", DisplayName: "A", Password: "long-enough"},
			want: connect.CodeAlreadyExists,
		},
		{
			name: "anonymous admin",
			req:  &api.RegisterRequest{Email: "b@example.com", DisplayName: "B", Password: "long-enough", Role: "admin"},
			want: connect.CodeUnauthenticated,
		},
		{
			name:  "agent creating admin",
			token: ts.agentToken,
			req:   &api.RegisterRequest{Email: "c@example.com", DisplayName: "C", Password: "long-enough", Role: "admin"},
			want:  connect.CodePermissionDenied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ts.auth(tt.token).Register(ctx, connect.NewRequest(tt.req))
			assertCode(t, err, tt.want)
		})
	}

	t.Run("admin creating admin", func(t *testing.T) {
		resp, err := ts.auth(ts.adminToken).Register(ctx, connect.NewRequest(&api.RegisterRequest{
			Email: "d@example.com", DisplayName: "D", Password: "long-enough", Role: "admin",
		}))
		if err != nil {
			t.Fatalf("Register failed: %v", err)
		}
		if resp.Msg.User.Role != "admin" {
			t.Errorf("expected admin role, got %q", resp.Msg.User.Role)
		}
	})
}

func TestLogin_WrongPassword(t *testing.T) {
	ts := setupTestServer(t)

	_, err := ts.auth("").Login(context.Background(), connect.NewRequest(&api.LoginRequest{
		Email: "agent@example.com", Password: "wrong-password",
	}))
	assertCode(t, err, connect.CodeUnauthenticated)
}

func TestGetCurrentUser_Anonymous(t *testing.T) {
	ts := setupTestServer(t)

	_, err := ts.auth("").GetCurrentUser(context.Background(), connect.NewRequest(&api.GetCurrentUserRequest{}))
	assertCode(t, err, connect.CodeUnauthenticated)
}

package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/dealdesk/internal/models"
	"github.com/mmynk/dealdesk/pkg/api"
)

func TestBranding(t *testing.T) {
	ts := setupTestServer(t)
	ctx := context.Background()
	defaults := models.DefaultBranding()

	get, err := ts.branding(ts.agentToken).GetBranding(ctx, connect.NewRequest(&api.GetBrandingRequest{}))
	if err != nil {
		t.Fatalf("GetBranding failed: %v", err)
	}
	if get.Msg.Branding.PrimaryColor != defaults.PrimaryColor {
		t.Errorf("expected default primary color, got %q", get.Msg.Branding.PrimaryColor)
	}

	custom := api.Branding{
		PrimaryColor:   "#112233",
		SecondaryColor: "#abcdef",
		CompanyLogo:    "/acme.svg",
		LoadingIcon:    "/spin.svg",
	}

	_, err = ts.branding(ts.agentToken).UpdateBranding(ctx, connect.NewRequest(&api.UpdateBrandingRequest{Branding: custom}))
	assertCode(t, err, connect.CodePermissionDenied)

	admin := ts.branding(ts.adminToken)

	bad := custom
	bad.PrimaryColor = "blue"
	_, err = admin.UpdateBranding(ctx, connect.NewRequest(&api.UpdateBrandingRequest{Branding: bad}))
	assertCode(t, err, connect.CodeInvalidArgument)

	if _, err := admin.UpdateBranding(ctx, connect.NewRequest(&api.UpdateBrandingRequest{Branding: custom})); err != nil {
		t.Fatalf("UpdateBranding failed: %v", err)
	}
	get, err = ts.branding(ts.agentToken).GetBranding(ctx, connect.NewRequest(&api.GetBrandingRequest{}))
	if err != nil {
		t.Fatalf("GetBranding failed: %v", err)
	}
	if get.Msg.Branding != custom {
		t.Errorf("expected saved branding %+v, got %+v", custom, get.Msg.Branding)
	}

	reset, err := admin.ResetBranding(ctx, connect.NewRequest(&api.ResetBrandingRequest{}))
	if err != nil {
		t.Fatalf("ResetBranding failed: %v", err)
	}
	if reset.Msg.Branding.CompanyLogo != defaults.CompanyLogo {
		t.Errorf("expected default logo after reset, got %q", reset.Msg.Branding.CompanyLogo)
	}
}

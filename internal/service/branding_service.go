package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/dealdesk/internal/branding"
	"github.com/mmynk/dealdesk/pkg/api"
	"github.com/mmynk/dealdesk/pkg/api/apiconnect"
)

var _ apiconnect.BrandingServiceHandler = (*BrandingService)(nil)

// BrandingService implements the Connect BrandingService.
type BrandingService struct {
	manager *branding.Manager
}

// NewBrandingService creates a BrandingService backed by manager.
func NewBrandingService(manager *branding.Manager) *BrandingService {
	return &BrandingService{manager: manager}
}

// GetBranding returns the saved branding, or the defaults.
func (s *BrandingService) GetBranding(ctx context.Context, req *connect.Request[api.GetBrandingRequest]) (*connect.Response[api.GetBrandingResponse], error) {
	return connect.NewResponse(&api.GetBrandingResponse{
		Branding: toAPIBranding(s.manager.Load(ctx)),
	}), nil
}

// UpdateBranding validates and saves new branding. Admins only.
func (s *BrandingService) UpdateBranding(ctx context.Context, req *connect.Request[api.UpdateBrandingRequest]) (*connect.Response[api.UpdateBrandingResponse], error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	cfg := fromAPIBranding(req.Msg.Branding)
	if err := s.manager.Save(ctx, cfg); err != nil {
		if errors.Is(err, branding.ErrInvalid) {
			return nil, connect.NewError(connect.CodeInvalidArgument, err)
		}
		return nil, connectError(err)
	}

	return connect.NewResponse(&api.UpdateBrandingResponse{Branding: toAPIBranding(cfg)}), nil
}

// ResetBranding discards saved branding. Admins only.
func (s *BrandingService) ResetBranding(ctx context.Context, req *connect.Request[api.ResetBrandingRequest]) (*connect.Response[api.ResetBrandingResponse], error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	cfg, err := s.manager.Reset(ctx)
	if err != nil {
		return nil, connectError(err)
	}

	slog.Info("Branding reset to defaults")
	return connect.NewResponse(&api.ResetBrandingResponse{Branding: toAPIBranding(cfg)}), nil
}

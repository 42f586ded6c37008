// Package service implements the dealdesk.v1 Connect services.
package service

import (
	"context"
	"errors"
	"fmt"

	"connectrpc.com/connect"
	"github.com/go-playground/validator/v10"

	"github.com/mmynk/dealdesk/internal/allocation"
	"github.com/mmynk/dealdesk/internal/middleware"
	"github.com/mmynk/dealdesk/internal/models"
	"github.com/mmynk/dealdesk/internal/storage"
)

var validate = validator.New()

var errAdminRequired = errors.New("admin role required")

// validateRequest checks a request message's validate tags.
func validateRequest(msg any) error {
	if err := validate.Struct(msg); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return connect.NewError(connect.CodeInvalidArgument,
				fmt.Errorf("%s: failed %q validation", fe.Namespace(), fe.Tag()))
		}
		return connect.NewError(connect.CodeInvalidArgument, err)
	}
	return nil
}

// connectError maps domain and storage errors onto Connect codes.
func connectError(err error) error {
	var connectErr *connect.Error
	switch {
	case errors.As(err, &connectErr):
		return err
	case errors.Is(err, storage.ErrNotFound), errors.Is(err, allocation.ErrRowNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, storage.ErrAlreadyExists):
		return connect.NewError(connect.CodeAlreadyExists, err)
	case errors.Is(err, allocation.ErrUnknownField):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, allocation.ErrUnbalanced):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

// requireAdmin rejects callers whose token does not carry the admin role.
func requireAdmin(ctx context.Context) error {
	if middleware.GetUserID(ctx) == "" {
		return connect.NewError(connect.CodeUnauthenticated, fmt.Errorf("authentication required"))
	}
	if middleware.GetRole(ctx) != models.RoleAdmin {
		return connect.NewError(connect.CodePermissionDenied, errAdminRequired)
	}
	return nil
}

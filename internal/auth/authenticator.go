package auth

import (
	"context"

	"github.com/mmynk/dealdesk/internal/models"
)

// Authenticator defines the interface for authentication implementations.
// Swapping passwords for SSO or passkeys should not touch the service layer.
type Authenticator interface {
	// Register creates a new account with the given email, display name,
	// role and credential.
	Register(ctx context.Context, email, displayName string, role models.Role, credential string) (*models.User, error)

	// Authenticate verifies the credentials and returns the user if they match.
	Authenticate(ctx context.Context, email, credential string) (*models.User, error)

	// ValidateCredential checks the credential meets the implementation's requirements.
	ValidateCredential(credential string) error
}

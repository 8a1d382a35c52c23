package auth

import (
	"context"

	"github.com/mmynk/tutorbooks/internal/models"
)

// Authenticator verifies staff credentials. Implementations decide what a
// credential is; PasswordAuthenticator uses bcrypt-hashed passwords.
type Authenticator interface {
	// Register creates a staff account with the given role.
	Register(ctx context.Context, email, displayName, credential, role string) (*models.Staff, error)

	// Authenticate returns the account matching email if credential is valid.
	Authenticate(ctx context.Context, email, credential string) (*models.Staff, error)

	// ValidateCredential checks that credential meets the implementation's requirements.
	ValidateCredential(credential string) error
}

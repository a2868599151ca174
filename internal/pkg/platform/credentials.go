package platform

import (
	"context"
	"fmt"

	"golang.org/x/oauth2/google"
)

// CodeAuthentication is the machine-readable category carried by
// AuthenticationError.
const CodeAuthentication = "AUTH_ERROR"

const cloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"

// AuthenticationError reports a failure to resolve ambient Google Cloud
// credentials.
type AuthenticationError struct {
	Message string
	Err     error
}

func (e *AuthenticationError) Error() string { return e.Message }

func (e *AuthenticationError) Unwrap() error { return e.Err }

// Code returns the machine-readable category of the error.
func (e *AuthenticationError) Code() string { return CodeAuthentication }

// ResolveCredentials looks up Application Default Credentials and returns
// the project identifier they are bound to. Failures are wrapped as
// *AuthenticationError.
func ResolveCredentials(ctx context.Context) (string, error) {
	credentials, err := google.FindDefaultCredentials(ctx, cloudPlatformScope)
	if err != nil {
		return "", &AuthenticationError{
			Message: fmt.Sprintf("resolve default credentials: %v", err),
			Err:     err,
		}
	}
	return credentials.ProjectID, nil
}

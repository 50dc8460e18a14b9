package home

import (
	"context"
	"net/url"

	"github.com/hoshichaam/ojol_app_go/internal/models"
)

// AuthService is the remote authentication backend.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, identifier, password string) (models.AuthResponse, error)
	SaveFcmToken(ctx context.Context, userID, token string) error
	ForgotPassword(ctx context.Context, email string) error
}

type Navigator interface {
	Navigate(path string, query url.Values)
}

// Alerter shows a blocking message to the user.
type Alerter interface {
	Alert(message string)
}

// Platform reports whether the app runs inside a native device shell.
type Platform interface {
	IsNative() bool
}

// PushTokenProvider returns the device push token. An empty token with a nil
// error means the device has none yet.
type PushTokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// Deps groups the collaborators of a Screen.
type Deps struct {
	Auth      AuthService
	Navigator Navigator
	Alerter   Alerter
	Platform  Platform
	Push      PushTokenProvider
}

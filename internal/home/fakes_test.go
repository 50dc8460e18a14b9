package home

import (
	"context"
	"sync"

	"github.com/hoshichaam/ojol_app_go/internal/models"
)

type fakeAuth struct {
	mu sync.Mutex

	registerErr error
	loginRes    models.AuthResponse
	loginErr    error
	saveErr     error
	forgotErr   error

	registered []models.RegisterRequest
	logins     []models.LoginRequest
	saved      []models.SaveFcmTokenRequest
	forgot     []string

	// onCall runs inside every call, while the flow is in flight.
	onCall func()
}

func (f *fakeAuth) hook() {
	if f.onCall != nil {
		f.onCall()
	}
}

func (f *fakeAuth) Register(_ context.Context, req models.RegisterRequest) (models.User, error) {
	f.mu.Lock()
	f.registered = append(f.registered, req)
	f.mu.Unlock()
	f.hook()
	if f.registerErr != nil {
		return models.User{}, f.registerErr
	}
	return models.User{ID: "u-1", Email: req.Email, Role: req.Role}, nil
}

func (f *fakeAuth) Login(_ context.Context, identifier, password string) (models.AuthResponse, error) {
	f.mu.Lock()
	f.logins = append(f.logins, models.LoginRequest{Identifier: identifier, Password: password})
	f.mu.Unlock()
	f.hook()
	return f.loginRes, f.loginErr
}

func (f *fakeAuth) SaveFcmToken(_ context.Context, userID, token string) error {
	f.mu.Lock()
	f.saved = append(f.saved, models.SaveFcmTokenRequest{UserID: userID, FcmToken: token})
	f.mu.Unlock()
	f.hook()
	return f.saveErr
}

func (f *fakeAuth) ForgotPassword(_ context.Context, email string) error {
	f.mu.Lock()
	f.forgot = append(f.forgot, email)
	f.mu.Unlock()
	f.hook()
	return f.forgotErr
}

func (f *fakeAuth) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.registered) + len(f.logins) + len(f.saved) + len(f.forgot)
}

type fakePush struct {
	token string
	err   error
	asked int
}

func (p *fakePush) Token(context.Context) (string, error) {
	p.asked++
	return p.token, p.err
}

type nativeShell bool

func (n nativeShell) IsNative() bool { return bool(n) }

// apiErr mimics the HTTP client's error type.
type apiErr struct{ msg string }

func (e apiErr) Error() string       { return "api: " + e.msg }
func (e apiErr) UserMessage() string { return e.msg }

type harness struct {
	screen *Screen
	auth   *fakeAuth
	rec    *Recorder
	push   *fakePush
}

func newHarness(native bool) *harness {
	h := &harness{auth: &fakeAuth{}, rec: &Recorder{}, push: &fakePush{}}
	h.screen = New(Deps{
		Auth:      h.auth,
		Navigator: h.rec,
		Alerter:   h.rec,
		Platform:  nativeShell(native),
		Push:      h.push,
	})
	return h
}

func riderDraft() models.RegistrationDraft {
	return models.RegistrationDraft{
		Username: "budi",
		Name:     "Budi Santoso",
		Email:    "budi@example.com",
		Phone:    "081234567890",
		Role:     models.RoleRider,
		Password: "rahasia123",
	}
}

func driverDraft() models.RegistrationDraft {
	d := riderDraft()
	d.Role = models.RoleDriver
	d.Vehicle = models.Vehicle{Type: "motor", Brand: "honda", Color: "hitam", Plate: "b 1234 xyz"}
	return d
}

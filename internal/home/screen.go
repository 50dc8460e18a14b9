// Package home is the login / register / forgot-password screen of the ojol
// app, without any rendering. A Screen owns its form state and talks to the
// outside world only through the collaborators in Deps.
//
// A Screen is not safe for concurrent use.
package home

import (
	"net/url"

	"github.com/hoshichaam/ojol_app_go/internal/models"
)

// State is everything the screen shows.
type State struct {
	Registration models.RegistrationDraft
	Login        models.LoginDraft
	Forgot       models.ForgotPasswordDraft

	LoadingRegister bool
	LoadingLogin    bool
	LoadingForgot   bool

	PasswordVisible       bool
	ForgotPasswordVisible bool
}

type Screen struct {
	state State

	auth      AuthService
	navigator Navigator
	alerter   Alerter
	platform  Platform
	push      PushTokenProvider
}

func New(d Deps) *Screen {
	return &Screen{
		auth:      d.Auth,
		navigator: d.Navigator,
		alerter:   d.Alerter,
		platform:  d.Platform,
		push:      d.Push,
	}
}

// State returns a copy of the current state.
func (s *Screen) State() State {
	return s.state
}

// busy sets flag and returns the func that clears it.
func (s *Screen) busy(flag *bool) func() {
	*flag = true
	return func() { *flag = false }
}

func (s *Screen) alert(msg string) {
	if s.alerter != nil {
		s.alerter.Alert(msg)
	}
}

func (s *Screen) navigate(path string, query url.Values) {
	if s.navigator != nil {
		s.navigator.Navigate(path, query)
	}
}

func (s *Screen) isNative() bool {
	return s.platform != nil && s.platform.IsNative()
}

// ChangeRole sets the role; leaving the driver role clears the vehicle fields.
func (s *Screen) ChangeRole(role models.Role) {
	s.state.Registration.Role = role
	if !role.IsDriver() {
		s.state.Registration.Vehicle = models.Vehicle{}
	}
}

// SetRegistration replaces the registration draft.
func (s *Screen) SetRegistration(d models.RegistrationDraft) {
	s.state.Registration = d
	s.ChangeRole(d.Role)
}

func (s *Screen) SetLogin(d models.LoginDraft) {
	s.state.Login = d
}

func (s *Screen) SetForgotEmail(email string) {
	s.state.Forgot.Email = email
}

func (s *Screen) TogglePasswordVisibility() {
	s.state.PasswordVisible = !s.state.PasswordVisible
}

func (s *Screen) ToggleForgotPassword() {
	s.state.ForgotPasswordVisible = !s.state.ForgotPasswordVisible
}

// ResetRegisterForm kosongkan form daftar, termasuk data kendaraan.
func (s *Screen) ResetRegisterForm() {
	s.state.Registration = models.RegistrationDraft{}
}

func (s *Screen) ResetLoginForm() {
	s.state.Login = models.LoginDraft{}
}

// HandleQueryParams resets both forms when the screen is opened with a
// non-empty reset parameter.
func (s *Screen) HandleQueryParams(params url.Values) {
	if params.Get("reset") != "" {
		s.ResetRegisterForm()
		s.ResetLoginForm()
	}
}

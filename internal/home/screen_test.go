package home

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hoshichaam/ojol_app_go/internal/models"
)

func TestScreen_Toggles(t *testing.T) {
	s := New(Deps{})

	s.TogglePasswordVisibility()
	assert.True(t, s.State().PasswordVisible)
	s.TogglePasswordVisibility()
	assert.False(t, s.State().PasswordVisible)

	s.ToggleForgotPassword()
	assert.True(t, s.State().ForgotPasswordVisible)
	s.ToggleForgotPassword()
	assert.False(t, s.State().ForgotPasswordVisible)
}

func TestScreen_ChangeRoleClearsVehicle(t *testing.T) {
	s := New(Deps{})
	s.SetRegistration(driverDraft())
	assert.Equal(t, "motor", s.State().Registration.Vehicle.Type)

	s.ChangeRole(models.RoleRider)

	st := s.State()
	assert.Equal(t, models.RoleRider, st.Registration.Role)
	assert.Equal(t, models.Vehicle{}, st.Registration.Vehicle)
	assert.Equal(t, "budi", st.Registration.Username)
}

func TestScreen_SetRegistrationDropsVehicleForRider(t *testing.T) {
	s := New(Deps{})
	d := riderDraft()
	d.Vehicle.Plate = "B 1"

	s.SetRegistration(d)

	assert.Empty(t, s.State().Registration.Vehicle.Plate)
}

func TestScreen_HandleQueryParams(t *testing.T) {
	s := New(Deps{})
	s.SetRegistration(driverDraft())
	s.SetLogin(models.LoginDraft{Identifier: "budi", Password: "x"})

	s.HandleQueryParams(url.Values{"foo": {"1"}})
	assert.Equal(t, "budi", s.State().Login.Identifier)

	s.HandleQueryParams(url.Values{"reset": {""}})
	assert.Equal(t, "budi", s.State().Login.Identifier)

	s.HandleQueryParams(url.Values{"reset": {"true"}})
	st := s.State()
	assert.Equal(t, models.RegistrationDraft{}, st.Registration)
	assert.Equal(t, models.LoginDraft{}, st.Login)
}

func TestScreen_StateIsACopy(t *testing.T) {
	s := New(Deps{})
	st := s.State()
	st.LoadingLogin = true
	assert.False(t, s.State().LoadingLogin)
}

func TestRecorder_Drain(t *testing.T) {
	r := &Recorder{}
	r.Alert("a")
	r.Navigate("/x", nil)
	r.Navigate(RouteRiderHome, nil)

	out := r.Drain()
	assert.Equal(t, []string{"a"}, out.Alerts)
	assert.Equal(t, RouteRiderHome, out.Navigation.Path)

	empty := r.Drain()
	assert.NotNil(t, empty.Alerts)
	assert.Empty(t, empty.Alerts)
	assert.Nil(t, empty.Navigation)
}

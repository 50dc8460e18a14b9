package home

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoshichaam/ojol_app_go/internal/models"
)

func TestSignUp_MissingAccountField(t *testing.T) {
	blank := map[string]func(*models.RegistrationDraft){
		"username": func(d *models.RegistrationDraft) { d.Username = "" },
		"name":     func(d *models.RegistrationDraft) { d.Name = "" },
		"email":    func(d *models.RegistrationDraft) { d.Email = "" },
		"phone":    func(d *models.RegistrationDraft) { d.Phone = "" },
		"role":     func(d *models.RegistrationDraft) { d.Role = "" },
		"password": func(d *models.RegistrationDraft) { d.Password = "" },
	}
	for name, clear := range blank {
		t.Run(name, func(t *testing.T) {
			h := newHarness(false)
			d := driverDraft()
			clear(&d)
			h.screen.SetRegistration(d)

			h.screen.SignUp(context.Background())

			out := h.rec.Drain()
			assert.Equal(t, []string{msgAccountIncomplete}, out.Alerts)
			assert.Nil(t, out.Navigation)
			assert.Zero(t, h.auth.calls())
			assert.False(t, h.screen.State().LoadingRegister)
		})
	}
}

func TestSignUp_DriverMissingVehicleField(t *testing.T) {
	blank := map[string]func(*models.Vehicle){
		"type":  func(v *models.Vehicle) { v.Type = "" },
		"brand": func(v *models.Vehicle) { v.Brand = "" },
		"color": func(v *models.Vehicle) { v.Color = "" },
		"plate": func(v *models.Vehicle) { v.Plate = "" },
	}
	for name, clear := range blank {
		t.Run(name, func(t *testing.T) {
			h := newHarness(false)
			d := driverDraft()
			clear(&d.Vehicle)
			h.screen.SetRegistration(d)

			h.screen.SignUp(context.Background())

			out := h.rec.Drain()
			assert.Equal(t, []string{msgVehicleIncomplete}, out.Alerts)
			assert.Zero(t, h.auth.calls())
			assert.False(t, h.screen.State().LoadingRegister)
		})
	}
}

func TestSignUp_RiderIgnoresVehicle(t *testing.T) {
	h := newHarness(false)
	h.screen.SetRegistration(riderDraft())

	h.screen.SignUp(context.Background())

	require.Len(t, h.auth.registered, 1)
	assert.Nil(t, h.auth.registered[0].Vehicle)
	out := h.rec.Drain()
	assert.Empty(t, out.Alerts)
	require.NotNil(t, out.Navigation)
}

func TestSignUp_DriverSuccess(t *testing.T) {
	h := newHarness(false)
	h.screen.SetRegistration(driverDraft())

	var loadingDuringCall bool
	h.auth.onCall = func() { loadingDuringCall = h.screen.State().LoadingRegister }

	h.screen.SignUp(context.Background())

	assert.True(t, loadingDuringCall)
	assert.False(t, h.screen.State().LoadingRegister)

	require.Len(t, h.auth.registered, 1)
	req := h.auth.registered[0]
	assert.Equal(t, "BUDI SANTOSO", req.Name)
	assert.Equal(t, "budi", req.Username, "username is sent as typed")
	assert.Equal(t, "budi@example.com", req.Email)
	require.NotNil(t, req.Vehicle)
	assert.Equal(t, models.Vehicle{Type: "MOTOR", Brand: "HONDA", Color: "HITAM", Plate: "B 1234 XYZ"}, *req.Vehicle)

	// draft keeps the normalized values
	st := h.screen.State()
	assert.Equal(t, "BUDI SANTOSO", st.Registration.Name)
	assert.Equal(t, "B 1234 XYZ", st.Registration.Vehicle.Plate)

	out := h.rec.Drain()
	assert.Empty(t, out.Alerts)
	require.NotNil(t, out.Navigation)
	assert.Equal(t, 1, out.Navigations)
	assert.Equal(t, RouteVerifyCode, out.Navigation.Path)
	assert.Equal(t, url.Values{"email": {"budi@example.com"}}, out.Navigation.Query)
}

func TestSignUp_BackendMessage(t *testing.T) {
	h := newHarness(false)
	h.auth.registerErr = apiErr{msg: "Email sudah terdaftar"}
	h.screen.SetRegistration(riderDraft())

	h.screen.SignUp(context.Background())

	out := h.rec.Drain()
	assert.Equal(t, []string{"Email sudah terdaftar"}, out.Alerts)
	assert.Nil(t, out.Navigation)
	assert.False(t, h.screen.State().LoadingRegister)
}

func TestSignUp_GenericFailure(t *testing.T) {
	h := newHarness(false)
	h.auth.registerErr = errors.New("connection refused")
	h.screen.SetRegistration(riderDraft())

	h.screen.SignUp(context.Background())

	out := h.rec.Drain()
	assert.Equal(t, []string{msgRegisterFailed}, out.Alerts)
	assert.Nil(t, out.Navigation)
	assert.False(t, h.screen.State().LoadingRegister)
}

func TestSignUp_EmptyBackendMessageFallsBack(t *testing.T) {
	h := newHarness(false)
	h.auth.registerErr = apiErr{}
	h.screen.SetRegistration(riderDraft())

	h.screen.SignUp(context.Background())

	assert.Equal(t, []string{msgRegisterFailed}, h.rec.Drain().Alerts)
}

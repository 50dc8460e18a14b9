package handlers

import (
	"github.com/hoshichaam/ojol_app_go/internal/home"
	"github.com/hoshichaam/ojol_app_go/internal/models"
)

// registrationView sama dengan RegistrationDraft tanpa password.
type registrationView struct {
	Username string         `json:"username"`
	Name     string         `json:"nama"`
	Email    string         `json:"email"`
	Phone    string         `json:"phone"`
	Role     models.Role    `json:"role"`
	Vehicle  models.Vehicle `json:"vehicle"`
}

type stateView struct {
	Registration registrationView `json:"registration"`
	LoginInput   string           `json:"loginInput"`
	ForgotEmail  string           `json:"forgotEmail"`

	LoadingRegister bool `json:"loadingRegister"`
	LoadingLogin    bool `json:"loadingLogin"`
	LoadingForgot   bool `json:"loadingForgot"`

	PasswordVisible       bool `json:"isPasswordVisible"`
	ForgotPasswordVisible bool `json:"showForgotPasswordForm"`
}

type screenView struct {
	State stateView `json:"state"`
	home.Outcome
}

func newScreenView(st home.State, out home.Outcome) screenView {
	r := st.Registration
	return screenView{
		State: stateView{
			Registration: registrationView{
				Username: r.Username,
				Name:     r.Name,
				Email:    r.Email,
				Phone:    r.Phone,
				Role:     r.Role,
				Vehicle:  r.Vehicle,
			},
			LoginInput:            st.Login.Identifier,
			ForgotEmail:           st.Forgot.Email,
			LoadingRegister:       st.LoadingRegister,
			LoadingLogin:          st.LoadingLogin,
			LoadingForgot:         st.LoadingForgot,
			PasswordVisible:       st.PasswordVisible,
			ForgotPasswordVisible: st.ForgotPasswordVisible,
		},
		Outcome: out,
	}
}

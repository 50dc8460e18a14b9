package home

import (
	"context"

	"github.com/gofiber/fiber/v2/log"

	"github.com/hoshichaam/ojol_app_go/pkg/authutil"
)

// SendForgotPasswordEmail requests a reset link for the forgot-password email.
func (s *Screen) SendForgotPasswordEmail(ctx context.Context) {
	done := s.busy(&s.state.LoadingForgot)
	defer done()

	d := s.state.Forgot
	if err := d.Validate(); err != nil {
		s.alert(msgForgotNoEmail)
		return
	}

	if err := s.auth.ForgotPassword(ctx, d.Email); err != nil {
		log.Warnw("home: forgot password failed", "email", authutil.MaskEmail(d.Email), "err", err)
		s.alert(msgForgotFailed)
		return
	}

	s.alert(msgForgotSent)
	s.state.ForgotPasswordVisible = false
	s.state.Forgot.Email = ""
}

package home

import (
	"context"
	"errors"
	"net/url"

	"github.com/gofiber/fiber/v2/log"

	"github.com/hoshichaam/ojol_app_go/internal/models"
	"github.com/hoshichaam/ojol_app_go/pkg/authutil"
)

// SignUp validates the registration draft, submits it and moves on to the
// verification screen.
func (s *Screen) SignUp(ctx context.Context) {
	done := s.busy(&s.state.LoadingRegister)
	defer done()

	// nama & data kendaraan disimpan uppercase
	draft := s.state.Registration.Normalized()
	applicant, err := draft.Applicant()
	if err != nil {
		log.Debugw("home: register rejected", "err", err)
		if errors.Is(err, models.ErrIncompleteVehicle) {
			s.alert(msgVehicleIncomplete)
		} else {
			s.alert(msgAccountIncomplete)
		}
		return
	}
	s.state.Registration = draft

	email := s.state.Registration.Email
	req := models.NewRegisterRequest(applicant)
	if _, err := s.auth.Register(ctx, req); err != nil {
		log.Warnw("home: register failed", "email", authutil.MaskEmail(email), "err", err)
		s.alert(userMessage(err, msgRegisterFailed))
		return
	}

	log.Infow("home: registered", "email", authutil.MaskEmail(email), "role", req.Role)
	s.navigate(RouteVerifyCode, url.Values{"email": {email}})
}

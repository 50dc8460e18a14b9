package home

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2/log"

	"github.com/hoshichaam/ojol_app_go/internal/models"
	"github.com/hoshichaam/ojol_app_go/pkg/authutil"
)

// Login signs the user in, forwards the push token on native shells and
// routes by role.
func (s *Screen) Login(ctx context.Context) {
	done := s.busy(&s.state.LoadingLogin)
	defer done()

	d := s.state.Login
	if err := d.Validate(); err != nil {
		s.alert(msgLoginIncomplete)
		return
	}

	res, err := s.auth.Login(ctx, d.Identifier, d.Password)
	if err != nil {
		log.Warnw("home: login failed", "login", authutil.MaskEmail(d.Identifier), "err", err)
		s.alert(userMessage(err, msgLoginFailed))
		return
	}
	log.Infow("home: login ok", "userId", res.User.ID, "role", res.User.Role)

	if s.isNative() {
		if err := s.forwardPushToken(ctx, res.User.ID); err != nil {
			log.Errorw("home: push token", "userId", res.User.ID, "err", err)
			s.alert(userMessage(err, msgLoginFailed))
			return
		}
	} else {
		log.Debug("home: not a device shell, skipping push token")
	}

	if res.User.Role == models.RoleDriver {
		s.navigate(RouteDriverMenu, nil)
		return
	}
	s.navigate(RouteRiderHome, nil)
}

func (s *Screen) forwardPushToken(ctx context.Context, userID string) error {
	if s.push == nil {
		log.Warn("home: native shell without push token provider")
		return nil
	}
	token, err := s.push.Token(ctx)
	if err != nil {
		return fmt.Errorf("get push token: %w", err)
	}
	if token == "" {
		log.Warnw("home: push token is empty", "userId", userID)
		return nil
	}
	if err := s.auth.SaveFcmToken(ctx, userID, token); err != nil {
		return fmt.Errorf("save push token: %w", err)
	}
	log.Debugw("home: push token saved", "userId", userID, "token", authutil.ShortToken(token))
	return nil
}

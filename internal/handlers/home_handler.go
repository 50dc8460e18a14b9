// internal/handlers/home_handler.go
package handlers

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/hoshichaam/ojol_app_go/internal/home"
	"github.com/hoshichaam/ojol_app_go/internal/middleware"
	"github.com/hoshichaam/ojol_app_go/internal/models"
	"github.com/hoshichaam/ojol_app_go/internal/repositories"
	response "github.com/hoshichaam/ojol_app_go/pkg/response"
)

const (
	HeaderPlatform = "X-Platform"
	HeaderFCMToken = "X-FCM-Token"
)

type HomeHandler struct {
	repo   repositories.ScreenRepo
	auth   home.AuthService
	native map[string]bool
	now    func() time.Time
}

func NewHomeHandler(repo repositories.ScreenRepo, auth home.AuthService, nativePlatforms []string) *HomeHandler {
	native := make(map[string]bool, len(nativePlatforms))
	for _, p := range nativePlatforms {
		if p = strings.ToLower(strings.TrimSpace(p)); p != "" {
			native[p] = true
		}
	}
	return &HomeHandler{repo: repo, auth: auth, native: native, now: time.Now}
}

// ------------------ helpers ------------------

// withScreen menjalankan fn pada layar milik sesi ini, satu request per sesi
// dalam satu waktu, lalu mengirim state + alert + navigasi sebagai respons.
func (h *HomeHandler) withScreen(c *fiber.Ctx, fn func(ctx context.Context, s *home.Screen)) error {
	id := middleware.ScreenID(c)
	if id == "" {
		return response.Error(c, fiber.StatusInternalServerError, "screen session missing")
	}

	sess := h.repo.GetOrCreate(id, h.now(), func(id string) *repositories.ScreenSession {
		log.Debugw("HOME: new screen session", "id", id)
		return repositories.NewScreenSession(id, h.auth, h.now())
	})

	sess.Lock()
	defer sess.Unlock()

	platform := strings.ToLower(strings.TrimSpace(c.Get(HeaderPlatform)))
	sess.Device.Native = h.native[platform]
	sess.Device.PushToken = utils.CopyString(strings.TrimSpace(c.Get(HeaderFCMToken)))

	// sisa outcome dari request sebelumnya dibuang
	sess.Recorder.Drain()

	fn(c.UserContext(), sess.Screen)

	out := sess.Recorder.Drain()
	return response.OK(c, newScreenView(sess.Screen.State(), out))
}

// parseOptional parses the body into v only when one was sent.
func parseOptional(c *fiber.Ctx, v any) (bool, error) {
	if len(c.Body()) == 0 {
		return false, nil
	}
	if err := c.BodyParser(v); err != nil {
		return false, err
	}
	return true, nil
}

func badBody(c *fiber.Ctx, err error) error {
	log.Debugw("HOME: invalid body", "path", c.Path(), "err", err)
	return response.Error(c, fiber.StatusBadRequest, "invalid request body")
}

// ------------------ handlers ------------------

// GET /home
func (h *HomeHandler) Show(c *fiber.Ctx) error {
	params, err := url.ParseQuery(string(c.Request().URI().QueryString()))
	if err != nil {
		return response.Error(c, fiber.StatusBadRequest, "invalid query")
	}
	return h.withScreen(c, func(_ context.Context, s *home.Screen) {
		s.HandleQueryParams(params)
	})
}

// PUT /home/forms/register
func (h *HomeHandler) UpdateRegistration(c *fiber.Ctx) error {
	var d models.RegistrationDraft
	if err := c.BodyParser(&d); err != nil {
		return badBody(c, err)
	}
	return h.withScreen(c, func(_ context.Context, s *home.Screen) {
		s.SetRegistration(d)
	})
}

// PUT /home/forms/login
func (h *HomeHandler) UpdateLogin(c *fiber.Ctx) error {
	var d models.LoginDraft
	if err := c.BodyParser(&d); err != nil {
		return badBody(c, err)
	}
	return h.withScreen(c, func(_ context.Context, s *home.Screen) {
		s.SetLogin(d)
	})
}

// PUT /home/forms/forgot-password
func (h *HomeHandler) UpdateForgotPassword(c *fiber.Ctx) error {
	var d models.ForgotPasswordDraft
	if err := c.BodyParser(&d); err != nil {
		return badBody(c, err)
	}
	return h.withScreen(c, func(_ context.Context, s *home.Screen) {
		s.SetForgotEmail(d.Email)
	})
}

// POST /home/register
func (h *HomeHandler) SignUp(c *fiber.Ctx) error {
	var d models.RegistrationDraft
	sent, err := parseOptional(c, &d)
	if err != nil {
		return badBody(c, err)
	}
	return h.withScreen(c, func(ctx context.Context, s *home.Screen) {
		if sent {
			s.SetRegistration(d)
		}
		s.SignUp(ctx)
	})
}

// POST /home/login
func (h *HomeHandler) Login(c *fiber.Ctx) error {
	var d models.LoginDraft
	sent, err := parseOptional(c, &d)
	if err != nil {
		return badBody(c, err)
	}
	return h.withScreen(c, func(ctx context.Context, s *home.Screen) {
		if sent {
			s.SetLogin(d)
		}
		s.Login(ctx)
	})
}

// POST /home/forgot-password
func (h *HomeHandler) ForgotPassword(c *fiber.Ctx) error {
	var d models.ForgotPasswordDraft
	sent, err := parseOptional(c, &d)
	if err != nil {
		return badBody(c, err)
	}
	return h.withScreen(c, func(ctx context.Context, s *home.Screen) {
		if sent {
			s.SetForgotEmail(d.Email)
		}
		s.SendForgotPasswordEmail(ctx)
	})
}

// POST /home/password-visibility
func (h *HomeHandler) TogglePasswordVisibility(c *fiber.Ctx) error {
	return h.withScreen(c, func(_ context.Context, s *home.Screen) {
		s.TogglePasswordVisibility()
	})
}

// POST /home/forgot-password/panel
func (h *HomeHandler) ToggleForgotPassword(c *fiber.Ctx) error {
	return h.withScreen(c, func(_ context.Context, s *home.Screen) {
		s.ToggleForgotPassword()
	})
}

// DELETE /home
func (h *HomeHandler) End(c *fiber.Ctx) error {
	id := middleware.ScreenID(c)
	sess, ok := h.repo.Get(id)
	if !ok {
		return response.Error(c, fiber.StatusNotFound, "screen session not found")
	}

	// tunggu aksi yang sedang jalan selesai dulu
	sess.Lock()
	h.repo.Delete(id)
	sess.Unlock()

	log.Debugw("HOME: screen session ended", "id", id)
	return c.SendStatus(fiber.StatusNoContent)
}

// Routes memasang semua endpoint layar home di router.
func (h *HomeHandler) Routes(r fiber.Router) {
	r.Get("/", h.Show)
	r.Delete("/", h.End)
	r.Put("/forms/register", h.UpdateRegistration)
	r.Put("/forms/login", h.UpdateLogin)
	r.Put("/forms/forgot-password", h.UpdateForgotPassword)
	r.Post("/register", h.SignUp)
	r.Post("/login", h.Login)
	r.Post("/forgot-password", h.ForgotPassword)
	r.Post("/forgot-password/panel", h.ToggleForgotPassword)
	r.Post("/password-visibility", h.TogglePasswordVisibility)
}

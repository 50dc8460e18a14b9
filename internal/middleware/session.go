package middleware

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"
)

const (
	HeaderScreenSession = "X-Screen-Session"
	LocalScreenID       = "screenId"
)

// ScreenSession memastikan setiap request punya id sesi layar (uuid).
// Id dibaca dari header X-Screen-Session atau cookie; kalau tidak ada atau
// bukan uuid, dibuat id baru dan dikirim balik lewat cookie + header.
func ScreenSession(cookieName string, ttl time.Duration, secure bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := strings.TrimSpace(c.Get(HeaderScreenSession))
		if id == "" {
			id = strings.TrimSpace(c.Cookies(cookieName))
		}

		// nilai header/cookie milik buffer fasthttp, disalin karena id dipakai
		// sebagai key repo setelah request selesai
		id = utils.CopyString(id)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
			c.Cookie(&fiber.Cookie{
				Name:     cookieName,
				Value:    id,
				HTTPOnly: true,
				SameSite: "Lax",
				Secure:   secure,
				Expires:  time.Now().Add(ttl),
				Path:     "/",
			})
		}

		c.Set(HeaderScreenSession, id)
		c.Locals(LocalScreenID, id)
		return c.Next()
	}
}

// ScreenID returns the id stored by ScreenSession.
func ScreenID(c *fiber.Ctx) string {
	id, _ := c.Locals(LocalScreenID).(string)
	return id
}

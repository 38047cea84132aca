package signalling

import (
	"github.com/carelink/callrelay/internal/api"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
)

func (s *Server) setupAdminApi() {
	s.app.Route("/api/admin", func(router fiber.Router) {
		router.Use(basicauth.New(basicauth.Config{
			Realm: "Forbidden",
			Authorizer: func(user, pass string) bool {
				credential := s.config.Security.AdminCredential
				return credential == nil || user == "admin" && pass == *credential
			},
		}))

		router.Get("/presence", func(c *fiber.Ctx) error {
			return c.JSON(api.ToApiIdentities(s.presence.ListAll()))
		})

		router.Get("/calls", func(c *fiber.Ctx) error {
			return c.JSON(api.ToApiCalls(s.calls.ActiveCalls()))
		})

		router.Post("/calls/:callId/end", func(c *fiber.Ctx) error {
			callID := c.Params("callId")
			if !s.calls.End(callID, "admin") {
				return c.Status(fiber.StatusNotFound).SendString("Call not found")
			}
			return c.Status(fiber.StatusOK).SendString("Ok")
		})
	})
}

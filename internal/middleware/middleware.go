package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"recipehub/domain"
	"recipehub/internal/api/presenters"
	"recipehub/pkg/auth"
)

type (
	Middleware interface {
		CORSMiddleware(origins string) fiber.Handler
		AuthMiddleware() fiber.Handler
		OptionalAuthMiddleware() fiber.Handler
	}

	middleware struct {
		authenticator *auth.Authenticator
	}
)

func NewMiddleware(authenticator *auth.Authenticator) Middleware {
	return &middleware{authenticator: authenticator}
}

func (m *middleware) CORSMiddleware(origins string) fiber.Handler {
	if origins == "" {
		origins = "*"
	}
	return cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	})
}

// AuthMiddleware answers 401 unless a strategy accepts the Authorization
// header. Lookup failures keep their 5xx status.
func (m *middleware) AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, err := m.authenticator.Authenticate(c.UserContext(), c.Get(fiber.HeaderAuthorization))
		if err != nil {
			status := presenters.StatusCode(err)
			if status < fiber.StatusInternalServerError {
				status = fiber.StatusUnauthorized
			}
			return presenters.ErrorResponse(c, status, presenters.Message(err, domain.MessageUnauthorized), err)
		}
		setPrincipal(c, principal)
		return c.Next()
	}
}

func (m *middleware) OptionalAuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if principal, ok := m.authenticator.OptionalAuthenticate(c.UserContext(), c.Get(fiber.HeaderAuthorization)); ok {
			setPrincipal(c, principal)
		}
		return c.Next()
	}
}

func setPrincipal(c *fiber.Ctx, principal domain.Principal) {
	c.Locals(domain.LocalsUserID, principal.ID.String())
	c.Locals(domain.LocalsPrincipal, principal)
}

// Package webapi is the thin HTTP plumbing over the ledger engine: request
// parsing and validation, domain error to status mapping, and routing.
package webapi

import (
	"github.com/amirasaad/balance/config"
	accountsvc "github.com/amirasaad/balance/pkg/service/account"
	ledgersvc "github.com/amirasaad/balance/pkg/service/ledger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// New builds the services and returns the Fiber app with all routes and
// middleware registered.
func New(deps config.Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "balance",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			status := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
			return ErrorResponseJSON(c, status, "Internal Server Error", err.Error())
		},
	})

	app.Use(requestid.New())
	app.Use(recover.New())
	app.Use(limiter.New(limiter.Config{
		Max:        deps.Config.RateLimit.MaxRequests,
		Expiration: deps.Config.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return ErrorResponseJSON(c, fiber.StatusTooManyRequests, "Too Many Requests", "Rate limit exceeded")
		},
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Balance service is up")
	})

	accountService := accountsvc.NewService(deps.Uow, deps.Logger)
	ledgerService := ledgersvc.NewService(deps.Uow, deps.Logger)

	AccountRoutes(app, accountService)
	TransactionRoutes(app, ledgerService)

	return app
}

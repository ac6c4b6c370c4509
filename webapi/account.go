package webapi

import (
	accountsvc "github.com/amirasaad/balance/pkg/service/account"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

// AccountRoutes registers HTTP routes for account operations.
//
//   - POST /v1/account                   : create (or return) an account by name.
//   - GET  /v1/account/:id               : account view; ?date= replays the ledger up to that time.
//   - GET  /v1/account/:id/transactions  : list the account's ledger entries.
func AccountRoutes(app *fiber.App, svc *accountsvc.Service) {
	app.Post("/v1/account", CreateAccount(svc))
	app.Get("/v1/account/:id", GetAccount(svc))
	app.Get("/v1/account/:id/transactions", GetTransactions(svc))
}

// CreateAccount returns a handler that creates an account with a zero
// balance, or returns the existing account when the name is already taken.
func CreateAccount(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := BindAndValidate[CreateAccountRequest](c)
		if input == nil {
			return err
		}
		a, err := svc.CreateAccount(c.Context(), input.Name)
		if err != nil {
			log.Errorf("Failed to create account: %v", err)
			return ProblemJSON(c, "Failed to create account", err)
		}
		return SuccessResponseJSON(c, fiber.StatusCreated, "Account created", ToAccountResponse(a))
	}
}

// GetAccount returns a handler for reading an account. Without a date query
// it returns the cached running balance; with one it reconstructs the
// balance from the transaction log up to that cutoff.
func GetAccount(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid account ID", "Account ID must be a valid UUID")
		}
		a, err := svc.GetAccount(c.Context(), id)
		if err != nil {
			return ProblemJSON(c, "Failed to get account", err)
		}
		resp := ToAccountResponse(a)
		if date := c.Query("date"); date != "" {
			cutoff, err := parseTimestamp(date)
			if err != nil {
				return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid date", "date must be RFC 3339 or YYYY-MM-DD")
			}
			balance, err := svc.BalanceAsOf(c.Context(), id, cutoff)
			if err != nil {
				return ProblemJSON(c, "Failed to compute balance", err)
			}
			resp.Balance = balance.String()
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Account retrieved", resp)
	}
}

// GetTransactions returns a handler listing the account's ledger entries,
// newest first.
func GetTransactions(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid account ID", "Account ID must be a valid UUID")
		}
		txs, err := svc.ListTransactions(c.Context(), id)
		if err != nil {
			return ProblemJSON(c, "Failed to list transactions", err)
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Transactions retrieved", ToTransactionResponses(txs))
	}
}

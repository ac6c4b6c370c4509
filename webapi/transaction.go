package webapi

import (
	"time"

	"github.com/amirasaad/balance/pkg/domain"
	"github.com/amirasaad/balance/pkg/money"
	ledgersvc "github.com/amirasaad/balance/pkg/service/ledger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

// TransactionRoutes registers HTTP routes for ledger entries.
//
//   - POST /v1/transaction      : apply a transaction (idempotent by uid).
//   - GET  /v1/transaction/:uid : fetch a transaction by its idempotency key.
func TransactionRoutes(app *fiber.App, svc *ledgersvc.Service) {
	app.Post("/v1/transaction", ApplyTransaction(svc))
	app.Get("/v1/transaction/:uid", GetTransaction(svc))
}

// ApplyTransaction returns a handler that records a deposit or withdrawal.
// Resubmitting a uid returns the originally applied transaction with no
// further balance effect.
func ApplyTransaction(svc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := BindAndValidate[CreateTransactionRequest](c)
		if input == nil {
			return err
		}
		accountID, err := uuid.Parse(input.AccountID)
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid account ID", "account_id must be a valid UUID")
		}
		kind, err := domain.ParseKind(input.Kind)
		if err != nil {
			return ProblemJSON(c, "Invalid transaction kind", err)
		}
		amount, err := money.Parse(input.Amount)
		if err != nil {
			return ProblemJSON(c, "Invalid amount", err)
		}
		var timestamp time.Time
		if input.Timestamp != "" {
			timestamp, err = parseTimestamp(input.Timestamp)
			if err != nil {
				return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid timestamp", "timestamp must be RFC 3339 or YYYY-MM-DD")
			}
		}
		tx, err := svc.Apply(c.Context(), input.UID, accountID, kind, amount, timestamp)
		if err != nil {
			log.Errorf("Failed to apply transaction %s: %v", input.UID, err)
			return ProblemJSON(c, "Failed to apply transaction", err)
		}
		return SuccessResponseJSON(c, fiber.StatusCreated, "Transaction applied", ToTransactionResponse(tx))
	}
}

// GetTransaction returns a handler that resolves a ledger entry by uid.
func GetTransaction(svc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tx, err := svc.GetTransaction(c.Context(), c.Params("uid"))
		if err != nil {
			return ProblemJSON(c, "Failed to get transaction", err)
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Transaction retrieved", ToTransactionResponse(tx))
	}
}

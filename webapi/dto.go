package webapi

import (
	"time"

	"github.com/amirasaad/balance/pkg/domain"
)

// CreateAccountRequest is the request body for creating an account.
type CreateAccountRequest struct {
	Name string `json:"name" validate:"required,min=1,max=255"`
}

// CreateTransactionRequest is the request body for applying a transaction.
// Amount is a decimal string ("100.00"); float money never crosses the API.
type CreateTransactionRequest struct {
	UID       string `json:"uid" validate:"required,min=1,max=128"`
	AccountID string `json:"account_id" validate:"required,uuid"`
	Kind      string `json:"kind" validate:"required,oneof=DEPOSIT WITHDRAW"`
	Amount    string `json:"amount" validate:"required"`
	Timestamp string `json:"timestamp" validate:"omitempty"`
}

// AccountResponse is the API representation of an account. Balance carries
// exactly two decimal places.
type AccountResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Balance string `json:"balance"`
}

// TransactionResponse is the API representation of a ledger entry.
type TransactionResponse struct {
	UID       string `json:"uid"`
	AccountID string `json:"account_id"`
	Kind      string `json:"kind"`
	Amount    string `json:"amount"`
	Timestamp string `json:"timestamp"`
}

// ToAccountResponse maps a domain account to its API representation.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		ID:      a.ID.String(),
		Name:    a.Name,
		Balance: a.Balance.String(),
	}
}

// ToTransactionResponse maps a domain transaction to its API representation.
func ToTransactionResponse(tx *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		UID:       tx.UID,
		AccountID: tx.AccountID.String(),
		Kind:      string(tx.Kind),
		Amount:    tx.Amount.String(),
		Timestamp: tx.Timestamp.UTC().Format(time.RFC3339),
	}
}

// ToTransactionResponses maps a slice of domain transactions.
func ToTransactionResponses(txs []*domain.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, ToTransactionResponse(tx))
	}
	return out
}

// parseTimestamp accepts RFC 3339, a zone-less timestamp (taken as UTC), or a
// bare date.
func parseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02T15:04:05", s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

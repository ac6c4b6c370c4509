package webapi_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirasaad/balance/config"
	"github.com/amirasaad/balance/internal/fixtures/mocks"
	"github.com/amirasaad/balance/pkg/domain"
	"github.com/amirasaad/balance/pkg/money"
	"github.com/amirasaad/balance/webapi"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestApp(uow *mocks.UnitOfWork) *fiber.App {
	cfg := &config.App{
		Env:       "test",
		RateLimit: config.RateLimit{MaxRequests: 1000, Window: time.Minute},
	}
	return webapi.New(config.Deps{Uow: uow, Logger: slog.Default(), Config: cfg})
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)

	var payload map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &payload))
	return resp, payload
}

func dataField(t *testing.T, payload map[string]any, key string) any {
	t.Helper()
	data, ok := payload["data"].(map[string]any)
	require.True(t, ok, "response has no data object: %v", payload)
	return data[key]
}

func TestCreateAccount_Created(t *testing.T) {
	uow := mocks.NewUnitOfWork()
	uow.Accounts.On("GetByName", "alice").Return(nil, domain.ErrAccountNotFound).Once()
	uow.Accounts.On("Create", mock.Anything).Return(nil).Once()

	resp, payload := doJSON(t, newTestApp(uow), fiber.MethodPost, "/v1/account",
		map[string]string{"name": "alice"})

	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "alice", dataField(t, payload, "name"))
	assert.Equal(t, "0.00", dataField(t, payload, "balance"))
}

func TestCreateAccount_MissingName(t *testing.T) {
	uow := mocks.NewUnitOfWork()
	resp, _ := doJSON(t, newTestApp(uow), fiber.MethodPost, "/v1/account",
		map[string]string{})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetAccount_CachedBalance(t *testing.T) {
	a, err := domain.NewAccount("alice")
	require.NoError(t, err)
	seed := domain.NewTransactionFromData("seed", a.ID, domain.KindDeposit,
		money.MustParse("100.00"), time.Now().UTC(), time.Now().UTC())
	require.NoError(t, a.Apply(seed))

	uow := mocks.NewUnitOfWork()
	uow.Accounts.On("Get", a.ID).Return(a, nil).Once()

	resp, payload := doJSON(t, newTestApp(uow), fiber.MethodGet, "/v1/account/"+a.ID.String(), nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "100.00", dataField(t, payload, "balance"))
}

func TestGetAccount_BalanceAsOfDate(t *testing.T) {
	a, err := domain.NewAccount("alice")
	require.NoError(t, err)
	jan := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	t4 := domain.NewTransactionFromData("t4", a.ID, domain.KindDeposit, money.MustParse("20.00"), jan, jan)

	uow := mocks.NewUnitOfWork()
	uow.Accounts.On("Get", a.ID).Return(a, nil)
	uow.Transactions.On("ListByAccountUpTo", a.ID, mock.Anything).Return([]*domain.Transaction{t4}, nil).Once()

	resp, payload := doJSON(t, newTestApp(uow), fiber.MethodGet,
		"/v1/account/"+a.ID.String()+"?date=2024-02-01", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "20.00", dataField(t, payload, "balance"))
}

func TestGetAccount_BalanceAsOfZonelessTimestamp(t *testing.T) {
	a, err := domain.NewAccount("alice")
	require.NoError(t, err)
	jan := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	t4 := domain.NewTransactionFromData("t4", a.ID, domain.KindDeposit, money.MustParse("20.00"), jan, jan)

	uow := mocks.NewUnitOfWork()
	uow.Accounts.On("Get", a.ID).Return(a, nil)
	uow.Transactions.On("ListByAccountUpTo", a.ID, mock.Anything).Return([]*domain.Transaction{t4}, nil).Once()

	resp, payload := doJSON(t, newTestApp(uow), fiber.MethodGet,
		"/v1/account/"+a.ID.String()+"?date=2024-02-01T12:00:00", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "20.00", dataField(t, payload, "balance"))
}

func TestGetAccount_InvalidID(t *testing.T) {
	uow := mocks.NewUnitOfWork()
	resp, _ := doJSON(t, newTestApp(uow), fiber.MethodGet, "/v1/account/not-a-uuid", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetAccount_NotFound(t *testing.T) {
	uow := mocks.NewUnitOfWork()
	uow.Accounts.On("Get", mock.Anything).Return(nil, domain.ErrAccountNotFound).Once()

	a, err := domain.NewAccount("ghost")
	require.NoError(t, err)
	resp, _ := doJSON(t, newTestApp(uow), fiber.MethodGet, "/v1/account/"+a.ID.String(), nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestApplyTransaction_Deposit(t *testing.T) {
	a, err := domain.NewAccount("alice")
	require.NoError(t, err)

	uow := mocks.NewUnitOfWork()
	uow.Transactions.On("GetByUID", "t1").Return(nil, domain.ErrTransactionNotFound).Once()
	uow.Accounts.On("GetForUpdate", a.ID).Return(a, nil).Once()
	uow.Transactions.On("Create", mock.Anything).Return(nil).Once()
	uow.Accounts.On("Update", a).Return(nil).Once()

	resp, payload := doJSON(t, newTestApp(uow), fiber.MethodPost, "/v1/transaction", map[string]string{
		"uid":        "t1",
		"account_id": a.ID.String(),
		"kind":       "DEPOSIT",
		"amount":     "100.00",
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "t1", dataField(t, payload, "uid"))
	assert.Equal(t, "100.00", dataField(t, payload, "amount"))
}

func TestApplyTransaction_InvalidKind(t *testing.T) {
	uow := mocks.NewUnitOfWork()
	resp, _ := doJSON(t, newTestApp(uow), fiber.MethodPost, "/v1/transaction", map[string]string{
		"uid":        "t1",
		"account_id": "b2c7f0a4-47cd-44f5-a8d7-0ad746ab07b8",
		"kind":       "TRANSFER",
		"amount":     "10.00",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, 0, uow.DoCalls)
}

func TestApplyTransaction_SubCentAmount(t *testing.T) {
	uow := mocks.NewUnitOfWork()
	resp, _ := doJSON(t, newTestApp(uow), fiber.MethodPost, "/v1/transaction", map[string]string{
		"uid":        "t1",
		"account_id": "b2c7f0a4-47cd-44f5-a8d7-0ad746ab07b8",
		"kind":       "DEPOSIT",
		"amount":     "10.123",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestApplyTransaction_InsufficientFunds(t *testing.T) {
	a, err := domain.NewAccount("alice")
	require.NoError(t, err)

	uow := mocks.NewUnitOfWork()
	uow.Transactions.On("GetByUID", "t3").Return(nil, domain.ErrTransactionNotFound).Once()
	uow.Accounts.On("GetForUpdate", a.ID).Return(a, nil).Once()

	resp, _ := doJSON(t, newTestApp(uow), fiber.MethodPost, "/v1/transaction", map[string]string{
		"uid":        "t3",
		"account_id": a.ID.String(),
		"kind":       "WITHDRAW",
		"amount":     "999.00",
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestApplyTransaction_AccountNotFound(t *testing.T) {
	uow := mocks.NewUnitOfWork()
	uow.Transactions.On("GetByUID", "t1").Return(nil, domain.ErrTransactionNotFound).Once()
	uow.Accounts.On("GetForUpdate", mock.Anything).Return(nil, domain.ErrAccountNotFound).Once()

	resp, _ := doJSON(t, newTestApp(uow), fiber.MethodPost, "/v1/transaction", map[string]string{
		"uid":        "t1",
		"account_id": "b2c7f0a4-47cd-44f5-a8d7-0ad746ab07b8",
		"kind":       "DEPOSIT",
		"amount":     "10.00",
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestApplyTransaction_StoreUnavailable(t *testing.T) {
	a, err := domain.NewAccount("alice")
	require.NoError(t, err)

	uow := mocks.NewUnitOfWork()
	uow.Transactions.On("GetByUID", "t1").Return(nil, domain.ErrTransactionNotFound)
	uow.Accounts.On("GetForUpdate", a.ID).Return(a, nil)
	uow.Transactions.On("Create", mock.Anything).Return(domain.ErrStoreConflict)

	resp, _ := doJSON(t, newTestApp(uow), fiber.MethodPost, "/v1/transaction", map[string]string{
		"uid":        "t1",
		"account_id": a.ID.String(),
		"kind":       "DEPOSIT",
		"amount":     "10.00",
	})
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}

func TestGetTransaction(t *testing.T) {
	accountID := uuid.New()
	applied := domain.NewTransactionFromData("t1", accountID, domain.KindDeposit,
		money.MustParse("100.00"), time.Now().UTC(), time.Now().UTC())

	uow := mocks.NewUnitOfWork()
	uow.Transactions.On("GetByUID", "t1").Return(applied, nil).Once()
	uow.Transactions.On("GetByUID", "missing").Return(nil, domain.ErrTransactionNotFound).Once()

	app := newTestApp(uow)
	resp, payload := doJSON(t, app, fiber.MethodGet, "/v1/transaction/t1", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "DEPOSIT", dataField(t, payload, "kind"))

	resp, _ = doJSON(t, app, fiber.MethodGet, "/v1/transaction/missing", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"money-transfers/internal/domain"
	"money-transfers/internal/errors"
	"money-transfers/internal/service"
)

type AccountHandler struct {
	accountService *service.AccountService
}

func NewAccountHandler(accountService *service.AccountService) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
	}
}

type CreateAccountRequest struct {
	AccountID string `json:"account_id" validate:"required"`
	Currency  string `json:"currency" validate:"required,len=3"`
	Amount    string `json:"amount" validate:"required"`
}

type AccountResponse struct {
	AccountID string `json:"account_id"`
	Currency  string `json:"currency"`
	Balance   string `json:"balance"`
}

func toAccountResponse(account domain.Account) AccountResponse {
	return AccountResponse{
		AccountID: account.ID.String(),
		Currency:  account.Currency().String(),
		Balance:   account.Balance.Amount().StringFixed(account.Currency().FractionDigits()),
	}
}

func (h *AccountHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req CreateAccountRequest
	if appErr := decodeAndValidate(r, &req); appErr != nil {
		writeError(w, appErr)
		return
	}

	currency, err := domain.ParseCurrency(req.Currency)
	if err != nil {
		writeError(w, errors.NewAppError(errors.InvalidInput, "unsupported currency").WithDetails(err.Error()))
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		writeError(w, errors.NewAppError(errors.InvalidInput, "invalid amount format").WithDetails(err.Error()))
		return
	}

	account := domain.NewAccount(domain.AccountID(req.AccountID), domain.NewMoney(amount, currency))
	if err := h.accountService.Create(account); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAccountResponse(account))
}

func (h *AccountHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	accountID := domain.AccountID(vars["account_id"])

	account, err := h.accountService.Get(accountID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toAccountResponse(account))
}

func (h *AccountHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts := h.accountService.List()

	response := make([]AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		response = append(response, toAccountResponse(account))
	}

	writeJSON(w, http.StatusOK, response)
}

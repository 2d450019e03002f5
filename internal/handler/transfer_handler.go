package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"money-transfers/internal/domain"
	"money-transfers/internal/errors"
	"money-transfers/internal/service"
	"money-transfers/internal/validator"
)

type TransferHandler struct {
	transferService *service.TransferService
	amountValidator validator.TransferAmount
	idGenerator     service.IDGenerator
}

func NewTransferHandler(
	transferService *service.TransferService,
	amountValidator validator.TransferAmount,
	idGenerator service.IDGenerator,
) *TransferHandler {
	return &TransferHandler{
		transferService: transferService,
		amountValidator: amountValidator,
		idGenerator:     idGenerator,
	}
}

type TransferRequest struct {
	SourceAccountID string `json:"source_account_id" validate:"required"`
	TargetAccountID string `json:"target_account_id" validate:"required"`
	Currency        string `json:"currency" validate:"required,len=3"`
	Amount          string `json:"amount" validate:"required"`
}

type TransferResponse struct {
	TransferID      string `json:"transfer_id"`
	SourceAccountID string `json:"source_account_id"`
	TargetAccountID string `json:"target_account_id"`
	Currency        string `json:"currency"`
	Amount          string `json:"amount"`
	Status          string `json:"status"`
}

func toTransferResponse(transfer domain.Transfer) TransferResponse {
	currency := transfer.Amount.Currency()
	return TransferResponse{
		TransferID:      transfer.ID.String(),
		SourceAccountID: transfer.SourceAccount.String(),
		TargetAccountID: transfer.TargetAccount.String(),
		Currency:        currency.String(),
		Amount:          transfer.Amount.Amount().StringFixed(currency.FractionDigits()),
		Status:          transfer.Status.String(),
	}
}

// SubmitTransfer validates the request, assigns a fresh transfer id and
// hands the transfer to the service. The response only acknowledges
// acceptance; execution is asynchronous and its outcome is read back via the
// transfer status.
func (h *TransferHandler) SubmitTransfer(w http.ResponseWriter, r *http.Request) {
	var req TransferRequest
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

	if !h.amountValidator.IsValid(amount, currency) {
		writeError(w, errors.ErrInvalidAmount)
		return
	}

	transfer := domain.NewTransfer(
		h.idGenerator.NewTransferID(),
		domain.AccountID(req.SourceAccountID),
		domain.AccountID(req.TargetAccountID),
		domain.NewMoney(amount, currency),
	)

	if err := h.transferService.Submit(transfer); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusAccepted, toTransferResponse(transfer))
}

func (h *TransferHandler) GetTransfer(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	transferID, err := domain.ParseTransferID(vars["transfer_id"])
	if err != nil {
		writeError(w, errors.NewAppError(errors.InvalidInput, "invalid transfer id").WithDetails(err.Error()))
		return
	}

	transfer, err := h.transferService.Get(transferID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toTransferResponse(transfer))
}

func (h *TransferHandler) ListTransfers(w http.ResponseWriter, r *http.Request) {
	transfers := h.transferService.List()

	response := make([]TransferResponse, 0, len(transfers))
	for _, transfer := range transfers {
		response = append(response, toTransferResponse(transfer))
	}

	writeJSON(w, http.StatusOK, response)
}

package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"txquery/internal/core"
	"txquery/internal/http/handler/middleware"
	"txquery/internal/http/payload"

	"go.uber.org/zap"
)

var (
	ListTransactions         = "GET /api/transactions"
	SearchTransactions       = "POST /api/transactions/search"
	GetTransaction           = "GET /api/transactions/{id}"
	GetTransactionOfType     = "GET /api/transactions/types/{type}/{id}"
	GetTransactionsRLP       = "GET /api/transactions/batch/{rlp}"
	GetBlockTransactions     = "GET /api/blocks/{blockId}/transactions"
	GetTypeTransactions      = "GET /api/types/{type}/transactions"
	GetSenderTransactions    = "GET /api/senders/{publicKey}/transactions"
	GetRecipientTransactions = "GET /api/recipients/{address}/transactions"
	GetWalletTransactions    = "GET /api/wallets/{address}/transactions"
	GetVotes                 = "GET /api/votes/{publicKey}"
)

type ExplorerHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	explorer         TransactionService
}

func NewExplorerHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, transactionService TransactionService) *ExplorerHandler {
	return &ExplorerHandler{
		logs:             logger,
		requestValidator: requestValidator,
		explorer:         transactionService,
	}
}

// Register binds every route to mux.
func (h *ExplorerHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc(ListTransactions, h.HandleListTransactions)
	mux.HandleFunc(SearchTransactions, h.HandleSearchTransactions)
	mux.HandleFunc(GetTransaction, h.HandleGetTransaction)
	mux.HandleFunc(GetTransactionOfType, h.HandleGetTransactionOfType)
	mux.HandleFunc(GetTransactionsRLP, h.HandleGetTransactionsRLP)
	mux.HandleFunc(GetBlockTransactions, h.HandleGetBlockTransactions)
	mux.HandleFunc(GetTypeTransactions, h.HandleGetTypeTransactions)
	mux.HandleFunc(GetSenderTransactions, h.HandleGetSenderTransactions)
	mux.HandleFunc(GetRecipientTransactions, h.HandleGetRecipientTransactions)
	mux.HandleFunc(GetWalletTransactions, h.HandleGetWalletTransactions)
	mux.HandleFunc(GetVotes, h.HandleGetVotes)
}

func (h *ExplorerHandler) HandleListTransactions(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	values := r.URL.Query()
	page, err := payload.ParsePage(values)
	if err != nil {
		h.badRequest(w, err, ListTransactions, requestId)
		return
	}

	criteria, err := payload.CriteriaFromQuery(values)
	if err != nil {
		h.badRequest(w, err, ListTransactions, requestId)
		return
	}

	h.logs.Infow("transactions request received",
		"criteria", criteria,
		"handler", ListTransactions,
		"request_id", requestId)

	result, err := h.explorer.Search(r.Context(), criteria, page.ToPagination())
	h.respondPage(w, result, err, ListTransactions, requestId)
}

func (h *ExplorerHandler) HandleSearchTransactions(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	var search payload.SearchRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &search); err != nil {
		h.badRequest(w, err, SearchTransactions, requestId)
		return
	}

	h.logs.Infow("search request received",
		"criteria", search.Criteria,
		"handler", SearchTransactions,
		"request_id", requestId)

	result, err := h.explorer.Search(r.Context(), search.Criteria, search.ToPagination())
	h.respondPage(w, result, err, SearchTransactions, requestId)
}

func (h *ExplorerHandler) HandleGetTransaction(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	txRequest := payload.TransactionRequest{ID: r.PathValue("id")}
	if err := txRequest.Validate(); err != nil {
		h.badRequest(w, err, GetTransaction, requestId)
		return
	}

	record, err := h.explorer.Transaction(r.Context(), txRequest.ID)
	if err != nil {
		h.fail(w, err, "Could not retrieve transaction", GetTransaction, requestId)
		return
	}

	h.respond(w, map[string]core.TransactionRecord{"transaction": record}, http.StatusOK, requestId)
}

func (h *ExplorerHandler) HandleGetTransactionOfType(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	txType, err := payload.ParseType(r.PathValue("type"))
	if err != nil {
		h.badRequest(w, err, GetTransactionOfType, requestId)
		return
	}

	txRequest := payload.TransactionRequest{ID: r.PathValue("id")}
	if err := txRequest.Validate(); err != nil {
		h.badRequest(w, err, GetTransactionOfType, requestId)
		return
	}

	record, err := h.explorer.TransactionOfType(r.Context(), txType, txRequest.ID)
	if err != nil {
		h.fail(w, err, "Could not retrieve transaction", GetTransactionOfType, requestId)
		return
	}

	h.respond(w, map[string]core.TransactionRecord{"transaction": record}, http.StatusOK, requestId)
}

func (h *ExplorerHandler) HandleGetTransactionsRLP(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	rlpRequest := payload.RLPRequest{RLP: r.PathValue("rlp")}
	if err := rlpRequest.Validate(); err != nil {
		h.badRequest(w, err, GetTransactionsRLP, requestId)
		return
	}

	transactions, err := h.explorer.TransactionsRLP(r.Context(), rlpRequest.RLP)
	if err != nil {
		h.fail(w, err, "Could not retrieve transactions", GetTransactionsRLP, requestId)
		return
	}

	h.logs.Infow("transactions retrieved",
		"count", len(transactions),
		"handler", GetTransactionsRLP,
		"request_id", requestId)

	h.respond(w, map[string][]core.TransactionRecord{"transactions": transactions}, http.StatusOK, requestId)
}

func (h *ExplorerHandler) HandleGetBlockTransactions(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	page, err := payload.ParsePage(r.URL.Query())
	if err != nil {
		h.badRequest(w, err, GetBlockTransactions, requestId)
		return
	}

	result, err := h.explorer.BlockTransactions(r.Context(), r.PathValue("blockId"), page.ToPagination())
	h.respondPage(w, result, err, GetBlockTransactions, requestId)
}

func (h *ExplorerHandler) HandleGetTypeTransactions(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	txType, err := payload.ParseType(r.PathValue("type"))
	if err != nil {
		h.badRequest(w, err, GetTypeTransactions, requestId)
		return
	}

	page, err := payload.ParsePage(r.URL.Query())
	if err != nil {
		h.badRequest(w, err, GetTypeTransactions, requestId)
		return
	}

	result, err := h.explorer.TypeTransactions(r.Context(), txType, page.ToPagination())
	h.respondPage(w, result, err, GetTypeTransactions, requestId)
}

func (h *ExplorerHandler) HandleGetSenderTransactions(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	page, err := payload.ParsePage(r.URL.Query())
	if err != nil {
		h.badRequest(w, err, GetSenderTransactions, requestId)
		return
	}

	result, err := h.explorer.SenderTransactions(r.Context(), r.PathValue("publicKey"), page.ToPagination())
	h.respondPage(w, result, err, GetSenderTransactions, requestId)
}

func (h *ExplorerHandler) HandleGetRecipientTransactions(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	page, err := payload.ParsePage(r.URL.Query())
	if err != nil {
		h.badRequest(w, err, GetRecipientTransactions, requestId)
		return
	}

	result, err := h.explorer.RecipientTransactions(r.Context(), r.PathValue("address"), page.ToPagination())
	h.respondPage(w, result, err, GetRecipientTransactions, requestId)
}

func (h *ExplorerHandler) HandleGetWalletTransactions(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	values := r.URL.Query()
	page, err := payload.ParsePage(values)
	if err != nil {
		h.badRequest(w, err, GetWalletTransactions, requestId)
		return
	}

	wallet := core.Wallet{
		Address:   r.PathValue("address"),
		PublicKey: values.Get("publicKey"),
	}

	result, err := h.explorer.WalletTransactions(r.Context(), wallet, page.ToPagination())
	h.respondPage(w, result, err, GetWalletTransactions, requestId)
}

func (h *ExplorerHandler) HandleGetVotes(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	page, err := payload.ParsePage(r.URL.Query())
	if err != nil {
		h.badRequest(w, err, GetVotes, requestId)
		return
	}

	result, err := h.explorer.Votes(r.Context(), r.PathValue("publicKey"), page.ToPagination())
	h.respondPage(w, result, err, GetVotes, requestId)
}

func (h *ExplorerHandler) respondPage(w http.ResponseWriter, result core.Page, err error, handler, requestId string) {
	if err != nil {
		h.fail(w, err, "Could not retrieve transactions", handler, requestId)
		return
	}

	h.logs.Infow("transactions retrieved",
		"count", result.Count,
		"returned", len(result.Transactions),
		"handler", handler,
		"request_id", requestId)

	h.respond(w, result, http.StatusOK, requestId)
}

func (h *ExplorerHandler) badRequest(w http.ResponseWriter, err error, handler, requestId string) {
	h.respond(w, Response{
		Message: "Request failed",
		Error:   fmt.Errorf("invalid request: %w", err).Error(),
	}, http.StatusBadRequest,
		requestId)
	h.logs.Errorw("failed to validate request",
		"error", err,
		"handler", handler,
		"request_id", requestId)
}

func (h *ExplorerHandler) fail(w http.ResponseWriter, err error, message, handler, requestId string) {
	resp := Response{
		Message: message,
	}
	httpCode := http.StatusInternalServerError
	if errors.Is(err, core.ErrTransactionNotFound) {
		httpCode = http.StatusNotFound
		resp.Error = err.Error()
	} else if errors.Is(err, core.ErrInvalidRequest) {
		httpCode = http.StatusBadRequest
		resp.Error = err.Error()
	} else {
		resp.Error = "unexpected error occurred"
	}

	h.respond(w, resp, httpCode, requestId)
	h.logs.Errorw(message,
		"error", err,
		"handler", handler,
		"request_id", requestId)
}

func (h *ExplorerHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

package handler

import (
	"context"
	"net/http"

	"txquery/internal/core"
	"txquery/internal/query"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name TransactionService . TransactionService
type TransactionService interface {
	Transaction(ctx context.Context, id string) (core.TransactionRecord, error)
	TransactionOfType(ctx context.Context, txType int64, id string) (core.TransactionRecord, error)
	TransactionsRLP(ctx context.Context, rlphex string) ([]core.TransactionRecord, error)
	Search(ctx context.Context, criteria query.Criteria, page query.Pagination) (core.Page, error)
	WalletTransactions(ctx context.Context, wallet core.Wallet, page query.Pagination) (core.Page, error)
	SenderTransactions(ctx context.Context, senderPublicKey string, page query.Pagination) (core.Page, error)
	RecipientTransactions(ctx context.Context, recipientID string, page query.Pagination) (core.Page, error)
	Votes(ctx context.Context, senderPublicKey string, page query.Pagination) (core.Page, error)
	BlockTransactions(ctx context.Context, blockID string, page query.Pagination) (core.Page, error)
	TypeTransactions(ctx context.Context, txType int64, page query.Pagination) (core.Page, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}

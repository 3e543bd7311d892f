package core

import (
	"context"

	"txquery/internal/query"
	"txquery/internal/repository"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	FindAll(ctx context.Context, page query.Pagination) (repository.Envelope, error)
	FindAllByWallet(ctx context.Context, wallet repository.Wallet, page query.Pagination) (repository.Envelope, error)
	FindAllBySender(ctx context.Context, senderPublicKey string, page query.Pagination) (repository.Envelope, error)
	FindAllByRecipient(ctx context.Context, recipientID string, page query.Pagination) (repository.Envelope, error)
	AllVotesBySender(ctx context.Context, senderPublicKey string, page query.Pagination) (repository.Envelope, error)
	FindAllByBlock(ctx context.Context, blockID string, page query.Pagination) (repository.Envelope, error)
	FindAllByType(ctx context.Context, txType repository.TransactionType, page query.Pagination) (repository.Envelope, error)
	FindByID(ctx context.Context, id string) (*repository.Transaction, error)
	FindByTypeAndID(ctx context.Context, txType repository.TransactionType, id string) (*repository.Transaction, error)
	Search(ctx context.Context, criteria query.Criteria, page query.Pagination) (repository.Envelope, error)
}

package repository

import (
	"context"
	"fmt"

	"txquery/internal/query"
	"txquery/pkg/address"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// TransactionRepository answers read queries over persisted transactions.
// It is safe for concurrent use.
type TransactionRepository struct {
	logs           *zap.SugaredLogger
	store          Store
	cache          Cache
	addressVersion byte
	queryDuration  prometheus.ObserverVec
}

// NewTransactionRepository builds a repository over store. A nil cache
// disables memoization of single transaction lookups.
func NewTransactionRepository(logger *zap.SugaredLogger, store Store, cache Cache, addressVersion byte) *TransactionRepository {
	return &TransactionRepository{
		logs:           logger,
		store:          store,
		cache:          cache,
		addressVersion: addressVersion,
	}
}

func (r *TransactionRepository) RegisterMetrics(queryDuration prometheus.ObserverVec) {
	r.queryDuration = queryDuration
}

func (r *TransactionRepository) FindAll(ctx context.Context, page query.Pagination) (Envelope, error) {
	return r.findMany(ctx, "find_all", query.Filter{}, page)
}

// FindAllByWallet returns transactions sent or received by wallet. The
// address is derived from the public key when it is not given.
func (r *TransactionRepository) FindAllByWallet(ctx context.Context, wallet Wallet, page query.Pagination) (Envelope, error) {
	if err := wallet.Validate(); err != nil {
		return Envelope{}, fmt.Errorf("find by wallet: %w: %w", ErrInvalidArgument, err)
	}

	recipient := wallet.Address
	if recipient == "" {
		derived, err := address.FromPublicKey(wallet.PublicKey, r.addressVersion)
		if err != nil {
			return Envelope{}, fmt.Errorf("find by wallet: %w: %w", ErrInvalidArgument, err)
		}
		recipient = derived
	}

	var filter query.Filter
	if wallet.PublicKey != "" {
		filter.Any = append(filter.Any, eq("sender_public_key", wallet.PublicKey))
	}
	filter.Any = append(filter.Any, eq("recipient_id", recipient))

	return r.findMany(ctx, "find_all_by_wallet", filter, page)
}

func (r *TransactionRepository) FindAllBySender(ctx context.Context, senderPublicKey string, page query.Pagination) (Envelope, error) {
	filter := query.Filter{}.And(eq("sender_public_key", senderPublicKey))
	return r.findMany(ctx, "find_all_by_sender", filter, page)
}

func (r *TransactionRepository) FindAllByRecipient(ctx context.Context, recipientID string, page query.Pagination) (Envelope, error) {
	filter := query.Filter{}.And(eq("recipient_id", recipientID))
	return r.findMany(ctx, "find_all_by_recipient", filter, page)
}

func (r *TransactionRepository) AllVotesBySender(ctx context.Context, senderPublicKey string, page query.Pagination) (Envelope, error) {
	filter := query.Filter{}.And(
		eq("sender_public_key", senderPublicKey),
		eq("type", int64(Vote)),
	)
	return r.findMany(ctx, "all_votes_by_sender", filter, page)
}

func (r *TransactionRepository) FindAllByBlock(ctx context.Context, blockID string, page query.Pagination) (Envelope, error) {
	filter := query.Filter{}.And(eq("block_id", blockID))
	return r.findMany(ctx, "find_all_by_block", filter, page)
}

func (r *TransactionRepository) FindAllByType(ctx context.Context, txType TransactionType, page query.Pagination) (Envelope, error) {
	filter := query.Filter{}.And(eq("type", int64(txType)))
	return r.findMany(ctx, "find_all_by_type", filter, page)
}

// FindByID returns nil when no transaction has the given id.
func (r *TransactionRepository) FindByID(ctx context.Context, id string) (*Transaction, error) {
	filter := query.Filter{}.And(eq("id", id))
	return r.cachedOne(ctx, "find_by_id", fmt.Sprintf("id:%s", id), filter)
}

// FindByTypeAndID returns nil when id is absent or is of another type.
func (r *TransactionRepository) FindByTypeAndID(ctx context.Context, txType TransactionType, id string) (*Transaction, error) {
	filter := query.Filter{}.And(
		eq("id", id),
		eq("type", int64(txType)),
	)
	return r.cachedOne(ctx, "find_by_type_and_id", fmt.Sprintf("type:%d:%s", txType, id), filter)
}

// Search matches every whitelisted field of criteria. Unknown fields are
// ignored and an empty criteria set matches every transaction.
func (r *TransactionRepository) Search(ctx context.Context, criteria query.Criteria, page query.Pagination) (Envelope, error) {
	filter, err := TransactionSchema.Build(criteria)
	if err != nil {
		return Envelope{}, fmt.Errorf("search: %w: %w", ErrInvalidArgument, err)
	}
	return r.findMany(ctx, "search", filter, page)
}

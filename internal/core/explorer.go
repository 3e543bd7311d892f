package core

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"math"

	"txquery/internal/query"
	"txquery/internal/repository"

	"github.com/ethereum/go-ethereum/rlp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var ErrTransactionNotFound error = errors.New("transaction not found")
var ErrInvalidRequest error = errors.New("invalid request")

type Explorer struct {
	logs *zap.SugaredLogger
	repo Repository
}

func NewExplorer(logger *zap.SugaredLogger, repo Repository) *Explorer {
	return &Explorer{
		logs: logger,
		repo: repo,
	}
}

// Transaction returns the transaction with the given id.
func (e *Explorer) Transaction(ctx context.Context, id string) (TransactionRecord, error) {
	tx, err := e.repo.FindByID(ctx, id)
	if err != nil {
		return TransactionRecord{}, fmt.Errorf("find transaction %q: %w", id, err)
	}
	if tx == nil {
		return TransactionRecord{}, fmt.Errorf("%w: %s", ErrTransactionNotFound, id)
	}

	return toRecord(*tx), nil
}

// TransactionOfType returns the transaction with the given id when it is of
// txType. A type no transaction can carry is reported as not found.
func (e *Explorer) TransactionOfType(ctx context.Context, txType int64, id string) (TransactionRecord, error) {
	if !storableType(txType) {
		return TransactionRecord{}, fmt.Errorf("%w: %s of type %d", ErrTransactionNotFound, id, txType)
	}

	tx, err := e.repo.FindByTypeAndID(ctx, repository.TransactionType(txType), id)
	if err != nil {
		return TransactionRecord{}, fmt.Errorf("find transaction %q of type %d: %w", id, txType, err)
	}
	if tx == nil {
		return TransactionRecord{}, fmt.Errorf("%w: %s of type %d", ErrTransactionNotFound, id, txType)
	}

	return toRecord(*tx), nil
}

// batchConcurrency bounds the store lookups in flight for one batch.
const batchConcurrency = 16

// Transactions looks ids up concurrently. Records come back in the order of
// ids and unknown ids are skipped. At most query.MaxLimit ids are accepted.
func (e *Explorer) Transactions(ctx context.Context, ids []string) ([]TransactionRecord, error) {
	if len(ids) > query.MaxLimit {
		return nil, fmt.Errorf("%w: %d ids requested, at most %d allowed", ErrInvalidRequest, len(ids), query.MaxLimit)
	}

	found := make([]*TransactionRecord, len(ids))
	errs := make([]error, len(ids))

	var group errgroup.Group
	group.SetLimit(batchConcurrency)
	for i, id := range ids {
		group.Go(func() error {
			tx, err := e.repo.FindByID(ctx, id)
			switch {
			case err != nil:
				errs[i] = fmt.Errorf("fetching transaction %q: %w", id, err)
			case tx != nil:
				record := toRecord(*tx)
				found[i] = &record
			}
			return nil
		})
	}
	_ = group.Wait()

	if aggrErr := errors.Join(errs...); aggrErr != nil {
		return nil, aggrErr
	}

	records := make([]TransactionRecord, 0, len(ids))
	for _, record := range found {
		if record != nil {
			records = append(records, *record)
		}
	}

	e.logs.Infow("transactions fetched", "requested", len(ids), "found", len(records))
	return records, nil
}

// TransactionsRLP looks up the ids packed in a hex encoded RLP list.
func (e *Explorer) TransactionsRLP(ctx context.Context, rlphex string) ([]TransactionRecord, error) {
	ids, err := e.ParseRLP(rlphex)
	if err != nil {
		return nil, fmt.Errorf("%w: parse rlp: %w", ErrInvalidRequest, err)
	}

	return e.Transactions(ctx, ids)
}

const transactionIDSize = 32

// ParseRLP decodes a hex encoded RLP list of 32 byte transaction ids.
func (e *Explorer) ParseRLP(rlphex string) ([]string, error) {
	data, err := hex.DecodeString(rlphex)
	if err != nil {
		return nil, fmt.Errorf("decode hex string: %w", err)
	}

	var idBytes [][]byte
	if err := rlp.DecodeBytes(data, &idBytes); err != nil {
		return nil, fmt.Errorf("decode rlp bytes: %w", err)
	}

	if len(idBytes) > query.MaxLimit {
		return nil, fmt.Errorf("rlp list holds %d ids, at most %d allowed", len(idBytes), query.MaxLimit)
	}

	ids := make([]string, len(idBytes))
	for i, b := range idBytes {
		if len(b) != transactionIDSize {
			return nil, fmt.Errorf("id at index %d is %d bytes, want %d", i, len(b), transactionIDSize)
		}
		ids[i] = hex.EncodeToString(b)
	}
	return ids, nil
}

// Search returns the transactions matching criteria. Empty criteria list
// the whole ledger.
func (e *Explorer) Search(ctx context.Context, criteria query.Criteria, page query.Pagination) (Page, error) {
	if len(criteria) == 0 {
		return e.page(e.repo.FindAll(ctx, page))
	}
	return e.page(e.repo.Search(ctx, criteria, page))
}

func (e *Explorer) WalletTransactions(ctx context.Context, wallet Wallet, page query.Pagination) (Page, error) {
	return e.page(e.repo.FindAllByWallet(ctx, repository.Wallet{
		Address:   wallet.Address,
		PublicKey: wallet.PublicKey,
	}, page))
}

func (e *Explorer) SenderTransactions(ctx context.Context, senderPublicKey string, page query.Pagination) (Page, error) {
	return e.page(e.repo.FindAllBySender(ctx, senderPublicKey, page))
}

func (e *Explorer) RecipientTransactions(ctx context.Context, recipientID string, page query.Pagination) (Page, error) {
	return e.page(e.repo.FindAllByRecipient(ctx, recipientID, page))
}

func (e *Explorer) Votes(ctx context.Context, senderPublicKey string, page query.Pagination) (Page, error) {
	return e.page(e.repo.AllVotesBySender(ctx, senderPublicKey, page))
}

func (e *Explorer) BlockTransactions(ctx context.Context, blockID string, page query.Pagination) (Page, error) {
	return e.page(e.repo.FindAllByBlock(ctx, blockID, page))
}

// TypeTransactions lists transactions of txType. A type no transaction can
// carry yields an empty page.
func (e *Explorer) TypeTransactions(ctx context.Context, txType int64, page query.Pagination) (Page, error) {
	if !storableType(txType) {
		if err := page.Validate(); err != nil {
			return Page{}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
		}
		return Page{Transactions: []TransactionRecord{}}, nil
	}
	return e.page(e.repo.FindAllByType(ctx, repository.TransactionType(txType), page))
}

func (e *Explorer) page(envelope repository.Envelope, err error) (Page, error) {
	if err != nil {
		if errors.Is(err, repository.ErrInvalidArgument) {
			return Page{}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
		}
		return Page{}, fmt.Errorf("query transactions: %w", err)
	}

	return toPage(envelope), nil
}

func storableType(txType int64) bool {
	return txType >= 0 && txType <= math.MaxUint8
}

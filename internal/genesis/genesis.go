package genesis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"txquery/internal/repository"

	"github.com/jellydator/validation"
)

type Seeder interface {
	Seed(ctx context.Context, records ...any) error
}

// Ledger is the genesis block with its transactions in block order.
type Ledger struct {
	Block        repository.Block         `json:"block"`
	Transactions []repository.Transaction `json:"transactions"`
}

func LoadFile(path string) (Ledger, error) {
	f, err := os.Open(path)
	if err != nil {
		return Ledger{}, fmt.Errorf("open genesis file: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode reads a genesis ledger and stamps every transaction with the
// block it belongs to and its position in it.
func Decode(r io.Reader) (Ledger, error) {
	var ledger Ledger
	if err := json.NewDecoder(r).Decode(&ledger); err != nil {
		return Ledger{}, fmt.Errorf("decode genesis: %w", err)
	}

	ledger.Block.NumberOfTransactions = len(ledger.Transactions)
	for i := range ledger.Transactions {
		tx := &ledger.Transactions[i]
		tx.BlockID = ledger.Block.ID
		tx.BlockHeight = ledger.Block.Height
		tx.Sequence = i
		if tx.Version == 0 {
			tx.Version = 1
		}
	}

	if err := ledger.Validate(); err != nil {
		return Ledger{}, fmt.Errorf("validate genesis: %w", err)
	}

	return ledger, nil
}

func (l Ledger) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Block),
		validation.Field(&l.Transactions, validation.Required, validation.By(uniqueIDs)),
	)
}

func uniqueIDs(value interface{}) error {
	transactions, _ := value.([]repository.Transaction)
	seen := make(map[string]struct{}, len(transactions))
	for _, tx := range transactions {
		if _, ok := seen[tx.ID]; ok {
			return fmt.Errorf("duplicate transaction id %s", tx.ID)
		}
		seen[tx.ID] = struct{}{}
	}
	return nil
}

// Seed stores the ledger unless the store already holds a block.
func (l Ledger) Seed(ctx context.Context, seeder Seeder) error {
	if len(l.Transactions) == 0 {
		return errors.New("empty genesis ledger")
	}

	blocks := []repository.Block{l.Block}
	transactions := append([]repository.Transaction(nil), l.Transactions...)
	if err := seeder.Seed(ctx, &blocks, &transactions); err != nil {
		return fmt.Errorf("seed genesis block: %w", err)
	}

	return nil
}

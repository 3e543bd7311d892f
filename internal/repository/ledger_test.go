package repository_test

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"txquery/internal/repository"
	"txquery/pkg/address"

	"github.com/ethereum/go-ethereum/crypto"
	. "github.com/onsi/gomega"
)

const (
	holderAmount   int64 = 245_098_000_000_000
	reserveAmount  int64 = 125_000_000_000_000
	delegateFee    int64 = 2_500_000_000
	voteFee        int64 = 100_000_000
	genesisBlockID       = "13114381566690093367"
	delegatesCount       = 51
)

// newKey returns a deterministic compressed public key in hex.
func newKey(seed int) string {
	secret := sha256.Sum256([]byte(fmt.Sprintf("key-%d", seed)))
	key, err := crypto.ToECDSA(secret[:])
	Expect(err).NotTo(HaveOccurred())
	return hex.EncodeToString(crypto.CompressPubkey(&key.PublicKey))
}

func addressOf(publicKey string) string {
	addr, err := address.FromPublicKey(publicKey, address.MainnetVersion)
	Expect(err).NotTo(HaveOccurred())
	return addr
}

func txID(sequence int) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("tx-%d", sequence)))
	return hex.EncodeToString(sum[:])
}

type genesisLedger struct {
	block        repository.Block
	transactions []repository.Transaction
	genesisKey   string
	holders      []string
	delegates    []string
	vendorField  string
}

// newGenesisLedger mirrors a network genesis block: the genesis wallet pays
// 51 holders, then 51 delegates register and vote for themselves.
func newGenesisLedger() genesisLedger {
	ledger := genesisLedger{
		block: repository.Block{
			ID:                   genesisBlockID,
			Height:               1,
			Timestamp:            0,
			NumberOfTransactions: 3 * delegatesCount,
		},
		genesisKey:  newKey(0),
		vendorField: "67656e65736973",
	}

	for i := 0; i < delegatesCount; i++ {
		ledger.holders = append(ledger.holders, addressOf(newKey(1000+i)))
		ledger.delegates = append(ledger.delegates, newKey(1+i))
	}

	add := func(tx repository.Transaction) {
		tx.Sequence = len(ledger.transactions)
		tx.ID = txID(tx.Sequence)
		tx.Version = 1
		tx.BlockID = ledger.block.ID
		tx.BlockHeight = ledger.block.Height
		tx.Signature = "3045"
		ledger.transactions = append(ledger.transactions, tx)
	}

	for i, holder := range ledger.holders {
		recipient := holder
		tx := repository.Transaction{
			Type:            repository.Transfer,
			Amount:          holderAmount,
			SenderPublicKey: ledger.genesisKey,
			RecipientID:     &recipient,
		}
		if i == len(ledger.holders)-1 {
			tx.Amount = reserveAmount
			vendorField := ledger.vendorField
			tx.VendorFieldHex = &vendorField
		}
		add(tx)
	}

	for _, delegate := range ledger.delegates {
		add(repository.Transaction{
			Type:            repository.DelegateRegistration,
			Fee:             delegateFee,
			SenderPublicKey: delegate,
		})
	}

	for _, delegate := range ledger.delegates {
		recipient := addressOf(delegate)
		add(repository.Transaction{
			Type:            repository.Vote,
			Fee:             voteFee,
			SenderPublicKey: delegate,
			RecipientID:     &recipient,
		})
	}

	return ledger
}

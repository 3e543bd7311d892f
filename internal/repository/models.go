package repository

import (
	"github.com/jellydator/validation"
)

type TransactionType uint8

const (
	Transfer TransactionType = iota
	SecondSignature
	DelegateRegistration
	Vote
	MultiSignature
	Ipfs
	TimelockTransfer
	MultiPayment
	DelegateResignation
)

var transactionTypeNames = map[TransactionType]string{
	Transfer:             "transfer",
	SecondSignature:      "second-signature",
	DelegateRegistration: "delegate-registration",
	Vote:                 "vote",
	MultiSignature:       "multi-signature",
	Ipfs:                 "ipfs",
	TimelockTransfer:     "timelock-transfer",
	MultiPayment:         "multi-payment",
	DelegateResignation:  "delegate-resignation",
}

func (t TransactionType) String() string {
	if name, ok := transactionTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// Transaction is a persisted ledger transaction. Rows are never updated.
type Transaction struct {
	ID              string          `gorm:"primaryKey;size:64" json:"id"`
	Version         int             `gorm:"not null;default:1" json:"version"`
	BlockID         string          `gorm:"size:64;not null;index;uniqueIndex:idx_block_sequence,priority:1" json:"blockId"`
	BlockHeight     int64           `gorm:"not null;index:idx_chain_order,priority:1" json:"blockHeight"`
	Sequence        int             `gorm:"not null;uniqueIndex:idx_block_sequence,priority:2;index:idx_chain_order,priority:2" json:"sequence"`
	Timestamp       int64           `gorm:"not null;index" json:"timestamp"`
	Type            TransactionType `gorm:"not null;index" json:"type"`
	Amount          int64           `gorm:"not null" json:"amount"`
	Fee             int64           `gorm:"not null" json:"fee"`
	SenderPublicKey string          `gorm:"size:66;not null;index" json:"senderPublicKey"`
	RecipientID     *string         `gorm:"size:64;index" json:"recipientId,omitempty"`
	VendorFieldHex  *string         `gorm:"type:text" json:"vendorFieldHex,omitempty"`
	Signature       string          `gorm:"type:text;not null" json:"signature"`
}

func (t Transaction) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.ID, validation.Required, validation.Length(64, 64)),
		validation.Field(&t.BlockID, validation.Required),
		validation.Field(&t.SenderPublicKey, validation.Required),
		validation.Field(&t.Timestamp, validation.Min(int64(0))),
		validation.Field(&t.Amount, validation.Min(int64(0))),
		validation.Field(&t.Fee, validation.Min(int64(0))),
	)
}

func (t Transaction) clone() *Transaction {
	c := t
	if t.RecipientID != nil {
		recipient := *t.RecipientID
		c.RecipientID = &recipient
	}
	if t.VendorFieldHex != nil {
		vendorField := *t.VendorFieldHex
		c.VendorFieldHex = &vendorField
	}
	return &c
}

type Block struct {
	ID                   string `gorm:"primaryKey;size:64" json:"id"`
	Height               int64  `gorm:"not null;uniqueIndex" json:"height"`
	Timestamp            int64  `gorm:"not null" json:"timestamp"`
	NumberOfTransactions int    `gorm:"not null" json:"numberOfTransactions"`
}

func (b Block) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.ID, validation.Required),
		validation.Field(&b.Height, validation.Min(int64(1))),
		validation.Field(&b.Timestamp, validation.Min(int64(0))),
	)
}

// Wallet identifies an account by address, public key or both.
type Wallet struct {
	Address   string
	PublicKey string
}

func (w Wallet) Validate() error {
	return validation.ValidateStruct(&w,
		validation.Field(&w.Address, validation.Required.When(w.PublicKey == "").Error("address or public key is required")),
		validation.Field(&w.PublicKey, validation.Required.When(w.Address == "").Error("address or public key is required")),
	)
}

// Envelope holds one page of rows and the size of the whole match set.
type Envelope struct {
	Count int64         `json:"count"`
	Rows  []Transaction `json:"rows"`
}

// Models lists every table the repository reads.
var Models = []any{&Block{}, &Transaction{}}

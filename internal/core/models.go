package core

import "txquery/internal/repository"

type TransactionRecord struct {
	ID              string  `json:"id"`
	Version         int     `json:"version"`
	BlockID         string  `json:"blockId"`
	BlockHeight     int64   `json:"blockHeight"`
	Sequence        int     `json:"sequence"`
	Timestamp       int64   `json:"timestamp"`
	Type            uint8   `json:"type"`
	TypeName        string  `json:"typeName"`
	Amount          int64   `json:"amount"`
	Fee             int64   `json:"fee"`
	SenderPublicKey string  `json:"senderPublicKey"`
	RecipientID     *string `json:"recipientId,omitempty"`
	VendorFieldHex  *string `json:"vendorFieldHex,omitempty"`
	Signature       string  `json:"signature"`
}

// Page is one window of a result set. Count covers the whole set.
type Page struct {
	Count        int64               `json:"count"`
	Transactions []TransactionRecord `json:"transactions"`
}

type Wallet struct {
	Address   string
	PublicKey string
}

func toRecord(tx repository.Transaction) TransactionRecord {
	return TransactionRecord{
		ID:              tx.ID,
		Version:         tx.Version,
		BlockID:         tx.BlockID,
		BlockHeight:     tx.BlockHeight,
		Sequence:        tx.Sequence,
		Timestamp:       tx.Timestamp,
		Type:            uint8(tx.Type),
		TypeName:        tx.Type.String(),
		Amount:          tx.Amount,
		Fee:             tx.Fee,
		SenderPublicKey: tx.SenderPublicKey,
		RecipientID:     tx.RecipientID,
		VendorFieldHex:  tx.VendorFieldHex,
		Signature:       tx.Signature,
	}
}

func toPage(envelope repository.Envelope) Page {
	records := make([]TransactionRecord, len(envelope.Rows))
	for i, tx := range envelope.Rows {
		records[i] = toRecord(tx)
	}
	return Page{
		Count:        envelope.Count,
		Transactions: records,
	}
}

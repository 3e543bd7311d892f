package repository

import "txquery/internal/query"

// TransactionSchema lists the fields accepted by Search.
var TransactionSchema = query.Schema{
	"id":              {Column: "id", Kind: query.Text},
	"blockId":         {Column: "block_id", Kind: query.Text},
	"type":            {Column: "type", Kind: query.Integer},
	"version":         {Column: "version", Kind: query.Integer},
	"senderPublicKey": {Column: "sender_public_key", Kind: query.Text},
	"recipientId":     {Column: "recipient_id", Kind: query.Text},
	"vendorFieldHex":  {Column: "vendor_field_hex", Kind: query.Text},
	"timestamp":       {Column: "timestamp", Kind: query.Integer, Ranged: true},
	"amount":          {Column: "amount", Kind: query.Integer, Ranged: true},
	"fee":             {Column: "fee", Kind: query.Integer, Ranged: true},
}

var chainOrder = []string{"block_height ASC", "sequence ASC"}

func eq(column string, value any) query.Predicate {
	return query.Predicate{Column: column, Operator: query.Eq, Value: value}
}

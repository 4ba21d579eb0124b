// Package events holds the ledger stream messages a client receives.
package events

import "encoding/json"

// Stream message types.
const (
	TypeTransaction  = "transaction"
	TypeLedgerClosed = "ledgerClosed"
	TypeResponse     = "response"
)

// TransactionEvent is a message of the transactions stream.
type TransactionEvent struct {
	Type                string         `json:"type"`                   // Always "transaction"
	EngineResult        string         `json:"engine_result"`          // Engine result code (e.g., "tesSUCCESS")
	EngineResultCode    int            `json:"engine_result_code"`     // Numeric result code
	EngineResultMessage string         `json:"engine_result_message"`  // Human-readable result message
	LedgerHash          string         `json:"ledger_hash,omitempty"`  // Hash of the ledger containing the tx
	LedgerIndex         uint32         `json:"ledger_index,omitempty"` // Sequence of the ledger containing the tx
	Meta                *Meta          `json:"meta,omitempty"`         // Transaction metadata
	Transaction         map[string]any `json:"transaction"`            // The transaction object
	Validated           bool           `json:"validated"`              // Whether tx is in a validated ledger
	Status              string         `json:"status,omitempty"`       // Status for proposed transactions
}

// Account returns the account that sent the transaction.
func (e *TransactionEvent) Account() string {
	s, _ := e.Transaction["Account"].(string)
	return s
}

// Meta is transaction metadata.
type Meta struct {
	AffectedNodes     []AffectedNode `json:"AffectedNodes"`
	TransactionIndex  uint32         `json:"TransactionIndex"`
	TransactionResult string         `json:"TransactionResult"`
}

// AffectedNode wraps exactly one of a created, modified or deleted entry.
type AffectedNode struct {
	CreatedNode  *Node `json:"CreatedNode,omitempty"`
	ModifiedNode *Node `json:"ModifiedNode,omitempty"`
	DeletedNode  *Node `json:"DeletedNode,omitempty"`
}

// Node change kinds.
const (
	Created  = "CreatedNode"
	Modified = "ModifiedNode"
	Deleted  = "DeletedNode"
)

// Node returns the wrapped entry and its change kind.
func (a AffectedNode) Node() (*Node, string) {
	switch {
	case a.CreatedNode != nil:
		return a.CreatedNode, Created
	case a.ModifiedNode != nil:
		return a.ModifiedNode, Modified
	case a.DeletedNode != nil:
		return a.DeletedNode, Deleted
	}
	return nil, ""
}

// Node is a ledger entry touched by a transaction.
type Node struct {
	LedgerEntryType string         `json:"LedgerEntryType"`
	LedgerIndex     string         `json:"LedgerIndex"`
	FinalFields     map[string]any `json:"FinalFields,omitempty"`
	PreviousFields  map[string]any `json:"PreviousFields,omitempty"`
	NewFields       map[string]any `json:"NewFields,omitempty"`
}

// Fields returns the entry's state after the transaction.
func (n *Node) Fields() map[string]any {
	if n.FinalFields != nil {
		return n.FinalFields
	}
	return n.NewFields
}

// Message is the envelope of every websocket message: a response to a
// request when ID is set, a stream message otherwise.
type Message struct {
	ID           *uint64         `json:"id,omitempty"`
	Type         string          `json:"type"`
	Status       string          `json:"status,omitempty"`
	Result       json.RawMessage `json:"result,omitempty"`
	Error        string          `json:"error,omitempty"`
	ErrorCode    int             `json:"error_code,omitempty"`
	ErrorMessage string          `json:"error_message,omitempty"`
}

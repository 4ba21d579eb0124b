// Package tx builds, validates, signs and submits transactions.
//
// Builders and mutators never fail loudly: a problem is recorded against a
// field slot and surfaces from Sign or Submit.
package tx

import (
	"errors"

	"github.com/LeJamon/goswtc/internal/amount"
)

var (
	ErrNoSecret      = errors.New("missing secret")
	ErrNoBlob        = errors.New("please local sign before this submit")
	ErrPathNotFound  = errors.New("key not found")
	ErrInvalidPath   = errors.New("invalid path key")
	ErrInvalidSecret = errors.New("invalid secret")
)

// Transaction types.
const (
	TypePayment        = "Payment"
	TypeOfferCreate    = "OfferCreate"
	TypeOfferCancel    = "OfferCancel"
	TypeTrustSet       = "TrustSet"
	TypeRelationSet    = "RelationSet"
	TypeRelationDel    = "RelationDel"
	TypeAccountSet     = "AccountSet"
	TypeSetRegularKey  = "SetRegularKey"
	TypeConfigContract = "ConfigContract"
	TypeBrokerage      = "Brokerage"
	TypeSigner         = "Signer"
)

// Transaction is a draft transaction. It is created by a builder, adjusted
// with mutators and finished by Sign or Submit. It is not safe for
// concurrent use.
type Transaction struct {
	remote   Remote
	token    string
	fields   *Fields
	errs     []FieldError
	// slots maps every field or error slot name to the order of its first write
	slots    map[string]int
	secret   string
	sequence SequenceSource
	keys     KeyFactory

	localSigned bool
	// memos before this index hold text rather than hex
	memosDecoded int
}

func newTransaction(remote Remote) *Transaction {
	if remote == nil {
		remote = placeholder{}
	}
	token := remote.Token()
	if token == "" {
		token = amount.DefaultToken
	}

	fee := DefaultFee
	if fs, ok := remote.(FeeSource); ok && fs.Fee() > 0 {
		fee = fs.Fee()
	}

	t := &Transaction{
		remote:   remote,
		token:    token,
		fields:   newFields(),
		slots:    make(map[string]int),
		sequence: selectSequenceSource(remote),
		keys:     defaultKeys,
	}
	t.set("Flags", uint32(0))
	t.set("Fee", fee)
	return t
}

func (t *Transaction) slot(name string) int {
	pos, ok := t.slots[name]
	if !ok {
		pos = len(t.slots)
		t.slots[name] = pos
	}
	return pos
}

// fail records err against slot. A field of the same name loses its value.
// Errors are kept in slot order: a slot first written as a field, such as
// Fee, sorts where that field was written, and a later failure on the same
// slot replaces the message without moving it.
func (t *Transaction) fail(slot string, err error) {
	pos := t.slot(slot)
	t.fields.Delete(slot)
	i := 0
	for ; i < len(t.errs); i++ {
		if t.errs[i].Field == slot {
			t.errs[i].Err = err
			return
		}
		if t.slots[t.errs[i].Field] > pos {
			break
		}
	}
	t.errs = append(t.errs, FieldError{})
	copy(t.errs[i+1:], t.errs[i:])
	t.errs[i] = FieldError{Field: slot, Err: err}
}

// set writes a field and clears an error recorded on the same slot.
func (t *Transaction) set(name string, value any) {
	t.slot(name)
	t.clear(name)
	t.fields.Set(name, value)
}

func (t *Transaction) clear(slot string) {
	for i := range t.errs {
		if t.errs[i].Field == slot {
			t.errs = append(t.errs[:i], t.errs[i+1:]...)
			return
		}
	}
}

// firstError returns the error of the earliest slot.
func (t *Transaction) firstError() error {
	if len(t.errs) == 0 {
		return nil
	}
	return t.errs[0]
}

// Errors returns the recorded field errors in slot order.
func (t *Transaction) Errors() []FieldError {
	return append([]FieldError(nil), t.errs...)
}

// Fields returns the field map.
func (t *Transaction) Fields() *Fields {
	return t.fields
}

// TransactionType returns the type set by the builder, or "" when the
// builder stopped before setting it.
func (t *Transaction) TransactionType() string {
	return t.fields.String("TransactionType")
}

// Account returns the source account.
func (t *Transaction) Account() string {
	return t.fields.String("Account")
}

// Token returns the base currency symbol the transaction was built with.
func (t *Transaction) Token() string {
	return t.token
}

// Secret returns the secret set with SetSecret.
func (t *Transaction) Secret() string {
	return t.secret
}

// LocalSigned reports whether Sign produced a blob.
func (t *Transaction) LocalSigned() bool {
	return t.localSigned
}

// Blob returns the signed blob, if any.
func (t *Transaction) Blob() string {
	return t.fields.String("blob")
}

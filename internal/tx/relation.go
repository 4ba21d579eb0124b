package tx

import (
	"errors"

	"github.com/LeJamon/goswtc/internal/amount"
)

// Relation types.
const (
	RelationTrust     = "trust"
	RelationAuthorize = "authorize"
	RelationFreeze    = "freeze"
	RelationUnfreeze  = "unfreeze"
)

var (
	errInvalidRelationType = errors.New("invalid relation type")
	errInvalidTarget       = errors.New("invalid target address")
)

// RelationOptions describes a trust line or a relation between two accounts.
// Target is required for every type except trust; QualityIn and QualityOut
// apply to trust only.
type RelationOptions struct {
	Type       string
	Source     string
	Target     string
	Limit      amount.Input
	QualityIn  uint32
	QualityOut uint32
}

// BuildRelationTx builds a TrustSet for trust, a RelationDel for unfreeze
// and a RelationSet for authorize and freeze.
func BuildRelationTx(opts RelationOptions, remote Remote) *Transaction {
	t := newTransaction(remote)
	switch opts.Type {
	case RelationTrust:
		buildTrustSet(t, opts)
	case RelationAuthorize, RelationFreeze, RelationUnfreeze:
		buildRelationSet(t, opts)
	default:
		t.fail("type", errInvalidRelationType)
	}
	return t
}

func buildTrustSet(t *Transaction, opts RelationOptions) {
	if !IsValidAddress(opts.Source) {
		t.fail("src", errInvalidSource)
		return
	}
	limit, ok := relationLimit(t, opts.Limit)
	if !ok {
		return
	}

	t.set("TransactionType", TypeTrustSet)
	t.set("Account", opts.Source)
	t.set("LimitAmount", limit)
	if opts.QualityIn != 0 {
		t.set("QualityIn", opts.QualityIn)
	}
	if opts.QualityOut != 0 {
		t.set("QualityOut", opts.QualityOut)
	}
}

func buildRelationSet(t *Transaction, opts RelationOptions) {
	if !IsValidAddress(opts.Source) {
		t.fail("src", errInvalidSource)
		return
	}
	if !IsValidAddress(opts.Target) {
		t.fail("des", errInvalidTarget)
		return
	}
	limit, ok := relationLimit(t, opts.Limit)
	if !ok {
		return
	}

	txType := TypeRelationSet
	if opts.Type == RelationUnfreeze {
		txType = TypeRelationDel
	}
	relationType := uint32(3)
	if opts.Type == RelationAuthorize {
		relationType = 1
	}

	t.set("TransactionType", txType)
	t.set("Account", opts.Source)
	t.set("Target", opts.Target)
	t.set("RelationType", relationType)
	t.set("LimitAmount", limit)
}

// relationLimit keeps issued amounts as given and converts base currency
// amounts to minor units.
func relationLimit(t *Transaction, in amount.Input) (any, bool) {
	if !isValidAmount(in, t.token) {
		t.fail("limit", errInvalidAmount)
		return nil, false
	}
	limit, err := amount.ToAmount(in, t.token)
	if err != nil {
		t.fail("limit", err)
		return nil, false
	}
	return limit, true
}

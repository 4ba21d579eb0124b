package tx

import "errors"

// Account set types.
const (
	AccountSetProperty = "property"
	AccountSetDelegate = "delegate"
	AccountSetSigner   = "signer"
)

var (
	errInvalidAccountSetType = errors.New("invalid account set type")
	errInvalidRegularKey     = errors.New("invalid regular key address")
)

// AccountSetOptions describes an account settings change. SetFlag and
// ClearFlag name account flags (RequireDest, asfRequireDest or a number)
// and apply to property; DelegateKey applies to delegate.
type AccountSetOptions struct {
	Type        string
	Source      string
	SetFlag     string
	ClearFlag   string
	DelegateKey string
}

// BuildAccountSetTx builds an AccountSet for property and a SetRegularKey
// for delegate. Signer lists are not supported and return nil.
func BuildAccountSetTx(opts AccountSetOptions, remote Remote) *Transaction {
	t := newTransaction(remote)
	switch opts.Type {
	case AccountSetProperty:
		buildAccountSet(t, opts)
	case AccountSetDelegate:
		buildDelegateKeySet(t, opts)
	case AccountSetSigner:
		return nil
	default:
		t.fail("type", errInvalidAccountSetType)
	}
	return t
}

func buildAccountSet(t *Transaction, opts AccountSetOptions) {
	if !IsValidAddress(opts.Source) {
		t.fail("src", errInvalidSource)
		return
	}

	t.set("TransactionType", TypeAccountSet)
	t.set("Account", opts.Source)
	if flag := AccountSetFlag(opts.SetFlag); flag != 0 {
		t.set("SetFlag", flag)
	}
	if flag := AccountSetFlag(opts.ClearFlag); flag != 0 {
		t.set("ClearFlag", flag)
	}
}

func buildDelegateKeySet(t *Transaction, opts AccountSetOptions) {
	if !IsValidAddress(opts.Source) {
		t.fail("src", errInvalidSource)
		return
	}
	if !IsValidAddress(opts.DelegateKey) {
		t.fail("delegate_key", errInvalidRegularKey)
		return
	}

	t.set("TransactionType", TypeSetRegularKey)
	t.set("Account", opts.Source)
	t.set("RegularKey", opts.DelegateKey)
}

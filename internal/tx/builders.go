package tx

import (
	"errors"

	"github.com/LeJamon/goswtc/internal/amount"
)

var (
	errInvalidSource      = errors.New("invalid source address")
	errInvalidDestination = errors.New("invalid destination address")
	errInvalidAmount      = errors.New("invalid amount")
	errInvalidOfferType   = errors.New("invalid offer type")
	errInvalidApp         = errors.New("invalid app, it is a positive integer.")
	errInvalidOfferSeq    = errors.New("invalid sequence param")
	errInvalidMol         = errors.New("invalid mol, it is a positive integer or zero.")
	errInvalidDenApp      = errors.New("invalid den/app, it is a positive integer.")
	errMolExceedsDen      = errors.New("invalid mol/den, molecule can not exceed denominator.")
	errInvalidAddress     = errors.New("invalid address")
)

// Offer types.
const (
	OfferSell = "Sell"
	OfferBuy  = "Buy"
)

// PaymentOptions describes a payment.
type PaymentOptions struct {
	Source      string
	Destination string
	Amount      amount.Input
}

// BuildPaymentTx builds a Payment.
func BuildPaymentTx(opts PaymentOptions, remote Remote) *Transaction {
	t := newTransaction(remote)
	if !IsValidAddress(opts.Source) {
		t.fail("src", errInvalidSource)
		return t
	}
	if !IsValidAddress(opts.Destination) {
		t.fail("dst", errInvalidDestination)
		return t
	}
	if !isValidAmount(opts.Amount, t.token) {
		t.fail("amount", errInvalidAmount)
		return t
	}
	amt, err := amount.ToAmount(opts.Amount, t.token)
	if err != nil {
		t.fail("amount", err)
		return t
	}

	t.set("TransactionType", TypePayment)
	t.set("Account", opts.Source)
	t.set("Amount", amt)
	t.set("Destination", opts.Destination)
	return t
}

// OfferCreateOptions describes an offer. TakerGets is what the maker pays,
// TakerPays what the maker gets.
type OfferCreateOptions struct {
	Type      string
	Source    string
	TakerGets amount.Input
	TakerPays amount.Input
	// App is an optional positive application id.
	App string
}

// BuildOfferCreateTx builds an OfferCreate. Sell offers carry the Sell flag.
func BuildOfferCreateTx(opts OfferCreateOptions, remote Remote) *Transaction {
	t := newTransaction(remote)
	if !IsValidAddress(opts.Source) {
		t.fail("src", errInvalidSource)
		return t
	}
	if opts.Type != OfferSell && opts.Type != OfferBuy {
		t.fail("offer_type", errInvalidOfferType)
		return t
	}
	if err := checkOfferAmount(opts.TakerGets, t.token, "invalid to pays amount"); err != nil {
		t.fail("taker_gets2", err)
		return t
	}
	if err := checkOfferAmount(opts.TakerPays, t.token, "invalid to gets amount"); err != nil {
		t.fail("taker_pays2", err)
		return t
	}
	var app uint32
	if opts.App != "" {
		n, ok := parseUint32(opts.App)
		if !IsPositiveInteger(opts.App) || !ok {
			t.fail("app", errInvalidApp)
			return t
		}
		app = n
	}
	pays, err := amount.ToAmount(opts.TakerPays, t.token)
	if err != nil {
		t.fail("taker_pays2", err)
		return t
	}
	gets, err := amount.ToAmount(opts.TakerGets, t.token)
	if err != nil {
		t.fail("taker_gets2", err)
		return t
	}

	t.set("TransactionType", TypeOfferCreate)
	if opts.Type == OfferSell {
		t.SetFlags(OfferSell)
	}
	if app != 0 {
		t.set("AppType", app)
	}
	t.set("Account", opts.Source)
	t.set("TakerPays", pays)
	t.set("TakerGets", gets)
	return t
}

func checkOfferAmount(in amount.Input, token, msg string) error {
	switch v := in.(type) {
	case amount.Scalar:
		if !amount.IsValidScalar(v) {
			return errors.New(msg)
		}
		return nil
	case amount.Amount, *amount.Amount:
		if !amount.IsValid(v, token) {
			return errors.New(msg + " object")
		}
		return nil
	default:
		return errors.New(msg)
	}
}

// OfferCancelOptions names the offer to cancel by its sequence.
type OfferCancelOptions struct {
	Source   string
	Sequence string
}

// BuildOfferCancelTx builds an OfferCancel.
func BuildOfferCancelTx(opts OfferCancelOptions, remote Remote) *Transaction {
	t := newTransaction(remote)
	if !IsValidAddress(opts.Source) {
		t.fail("src", errInvalidSource)
		return t
	}
	seq, ok := parseUint32(opts.Sequence)
	if !IsPositiveInteger(opts.Sequence) || !ok {
		t.fail("sequence", errInvalidOfferSeq)
		return t
	}

	t.set("TransactionType", TypeOfferCancel)
	t.set("Account", opts.Source)
	t.set("OfferSequence", seq)
	return t
}

// BrokerageOptions sets the offer fee rate mol/den charged for an app.
type BrokerageOptions struct {
	Account string
	Mol     string
	Den     string
	App     string
	// Amount names the fee currency; its value is ignored by the network.
	Amount amount.Input
}

// BuildBrokerageTx builds a Brokerage transaction.
func BuildBrokerageTx(opts BrokerageOptions, remote Remote) *Transaction {
	t := newTransaction(remote)
	if !IsValidAddress(opts.Account) {
		t.fail("src", errInvalidAddress)
		return t
	}
	mol, ok := parseUint64(opts.Mol)
	if !isNaturalInteger(opts.Mol) || !ok {
		t.fail("mol", errInvalidMol)
		return t
	}
	den, denOK := parseUint64(opts.Den)
	app, appOK := parseUint32(opts.App)
	if !IsPositiveInteger(opts.Den) || !IsPositiveInteger(opts.App) || !denOK || !appOK {
		t.fail("den", errInvalidDenApp)
		return t
	}
	if mol > den {
		t.fail("app", errMolExceedsDen)
		return t
	}
	if !isValidAmount(opts.Amount, t.token) {
		t.fail("amount", errInvalidAmount)
		return t
	}
	amt, err := amount.ToAmount(opts.Amount, t.token)
	if err != nil {
		t.fail("amount", err)
		return t
	}

	t.set("TransactionType", TypeBrokerage)
	t.set("Account", opts.Account)
	t.set("OfferFeeRateNum", mol)
	t.set("OfferFeeRateDen", den)
	t.set("AppType", app)
	t.set("Amount", amt)
	return t
}

// BuildSignTx wraps an already signed blob so Submit forwards it untouched.
func BuildSignTx(blob string, remote Remote) *Transaction {
	t := newTransaction(remote)
	t.set("TransactionType", TypeSigner)
	t.set("blob", blob)
	return t
}

package tx

import (
	"errors"

	"github.com/LeJamon/goswtc/internal/amount"
	"github.com/shopspring/decimal"
)

// Contract methods.
const (
	contractDeploy uint32 = 0
	contractCall   uint32 = 1
)

var (
	errInvalidContractDes = errors.New("invalid destination")
	errParamNotString     = errors.New("params must be string")
)

// DeployContractOptions describes a contract deployment. Amount is in
// display units.
type DeployContractOptions struct {
	Account string
	Amount  string
	Payload string
	Params  []any
}

// DeployContractTx builds a ConfigContract that deploys Payload.
func DeployContractTx(opts DeployContractOptions, remote Remote) *Transaction {
	t := newTransaction(remote)
	if !IsValidAddress(opts.Account) {
		t.fail("account", errInvalidAddress)
		return t
	}
	value, err := decimal.NewFromString(opts.Amount)
	if err != nil {
		t.fail("amount", errInvalidAmount)
		return t
	}
	args, ok := contractArgs(t, opts.Params)
	if !ok {
		return t
	}

	t.set("TransactionType", TypeConfigContract)
	t.set("Account", opts.Account)
	t.set("Amount", amount.Drops(value.Mul(decimal.NewFromInt(amount.MinorUnitsPerDisplay)).Floor().IntPart()))
	t.set("Method", contractDeploy)
	t.set("Payload", opts.Payload)
	t.set("Args", args)
	return t
}

// CallContractOptions describes a call of function Foo on the contract at
// Destination.
type CallContractOptions struct {
	Account     string
	Destination string
	Foo         string
	Params      []any
}

// CallContractTx builds a ConfigContract that calls a contract function.
func CallContractTx(opts CallContractOptions, remote Remote) *Transaction {
	t := newTransaction(remote)
	if !IsValidAddress(opts.Account) {
		t.fail("account", errInvalidAddress)
		return t
	}
	if !IsValidAddress(opts.Destination) {
		t.fail("des", errInvalidContractDes)
		return t
	}
	args, ok := contractArgs(t, opts.Params)
	if !ok {
		return t
	}

	t.set("TransactionType", TypeConfigContract)
	t.set("Account", opts.Account)
	t.set("Method", contractCall)
	t.set("ContractMethod", stringToHex(opts.Foo))
	t.set("Destination", opts.Destination)
	t.set("Args", args)
	return t
}

func contractArgs(t *Transaction, params []any) ([]ArgWrapper, bool) {
	args := make([]ArgWrapper, 0, len(params))
	for _, p := range params {
		s, ok := p.(string)
		if !ok {
			t.fail("params", errParamNotString)
			return nil, false
		}
		args = append(args, ArgWrapper{Arg: Arg{Parameter: stringToHex(s)}})
	}
	return args, true
}

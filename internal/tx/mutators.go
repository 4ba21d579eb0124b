package tx

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf16"

	"github.com/LeJamon/goswtc/internal/amount"
	"github.com/shopspring/decimal"
)

// MaxMemoLength is the longest memo AddMemo accepts, in UTF-16 code units.
const MaxMemoLength = 2048

var (
	errMemoTooLong         = errors.New("memo is too long")
	errInvalidFee          = errors.New("invalid fee")
	errFeeTooLow           = errors.New("fee is too low")
	errInvalidSequence     = errors.New("invalid sequence")
	ErrInvalidSendMax      = errors.New("invalid send max amount")
	ErrInvalidTransferRate = errors.New("invalid transfer rate")

	transferRateScale = decimal.NewFromInt(1_000_000_000)
)

// AddMemo appends a memo holding text.
func (t *Transaction) AddMemo(text string) {
	if len(utf16.Encode([]rune(text))) > MaxMemoLength {
		t.fail("memo_len", errMemoTooLong)
		return
	}
	memos, _ := t.fields.values["Memos"].([]MemoWrapper)
	memos = append(memos, MemoWrapper{Memo: Memo{MemoData: stringToHex(text)}})
	t.set("Memos", memos)
}

// Memos returns the memo texts in order.
func (t *Transaction) Memos() []string {
	memos, _ := t.fields.values["Memos"].([]MemoWrapper)
	out := make([]string, len(memos))
	for i, m := range memos {
		if i < t.memosDecoded {
			out[i] = m.Memo.MemoData
			continue
		}
		out[i], _ = hexToString(m.Memo.MemoData)
	}
	return out
}

// SetFee sets the fee in minor units.
func (t *Transaction) SetFee(fee string) {
	n, err := strconv.ParseInt(strings.TrimSpace(fee), 10, 64)
	if err != nil {
		t.fail("Fee", errInvalidFee)
		return
	}
	if n < MinFee {
		t.fail("Fee", errFeeTooLow)
		return
	}
	t.set("Fee", amount.Drops(n))
}

// SetSendMax limits what a payment may spend.
func (t *Transaction) SetSendMax(in amount.Input) error {
	if !isValidAmount(in, t.token) {
		t.fail("send_max", ErrInvalidSendMax)
		return ErrInvalidSendMax
	}
	v, err := amount.ToAmount(in, t.token)
	if err != nil {
		t.fail("send_max", ErrInvalidSendMax)
		return ErrInvalidSendMax
	}
	t.set("SendMax", v)
	return nil
}

// SetPath applies a path previously found by path finding, identified by
// its 40 character key. A path with no steps leaves the transaction as is.
func (t *Transaction) SetPath(key string) error {
	if len(key) != 40 {
		t.fail("path", ErrInvalidPath)
		return ErrInvalidPath
	}
	table, ok := t.remote.(PathTable)
	if !ok {
		t.fail("path", ErrPathNotFound)
		return ErrPathNotFound
	}
	choice, ok := table.Path(key)
	if !ok {
		t.fail("path", ErrPathNotFound)
		return ErrPathNotFound
	}
	if len(choice.Paths) == 0 {
		return nil
	}
	max, err := amount.WithSlippage(choice.Choice)
	if err != nil {
		t.fail("path", err)
		return err
	}
	sendMax, err := amount.ToAmount(max, t.token)
	if err != nil {
		t.fail("path", err)
		return err
	}
	t.set("Paths", choice.Paths)
	t.set("SendMax", sendMax)
	return nil
}

// SetTransferRate sets the fee charged on transfers of the account's
// issued currencies, as a fraction between 0 and 1.
func (t *Transaction) SetTransferRate(rate float64) error {
	if rate < 0 || rate > 1 {
		t.fail("transfer_rate", ErrInvalidTransferRate)
		return ErrInvalidTransferRate
	}
	v := decimal.NewFromFloat(rate).Add(decimal.NewFromInt(1)).Mul(transferRateScale)
	t.set("TransferRate", uint32(v.IntPart()))
	return nil
}

// SetFlags sets the named flags of the transaction type on top of the
// current flags. Unknown names are ignored.
func (t *Transaction) SetFlags(names ...string) {
	flags := t.Flags()
	txType := t.TransactionType()
	for _, name := range names {
		if bit, ok := LookupFlag(txType, name); ok {
			flags |= bit
		}
	}
	t.set("Flags", flags)
}

// SetFlagBits replaces the flags.
func (t *Transaction) SetFlagBits(bits uint32) {
	t.set("Flags", bits)
}

// Flags returns the current flags.
func (t *Transaction) Flags() uint32 {
	flags, _ := t.fields.values["Flags"].(uint32)
	return flags
}

// SetSequence sets the account sequence, skipping resolution at sign time.
func (t *Transaction) SetSequence(seq string) {
	if !sequenceRe.MatchString(seq) {
		t.fail("Sequence", errInvalidSequence)
		return
	}
	n, ok := parseUint32(strings.TrimPrefix(seq, "+"))
	if !ok {
		t.fail("Sequence", errInvalidSequence)
		return
	}
	t.set("Sequence", n)
}

// Sequence returns the account sequence and whether it is set.
func (t *Transaction) Sequence() (uint32, bool) {
	seq, ok := t.fields.values["Sequence"].(uint32)
	return seq, ok
}

// SetSecret sets the secret used to sign. An invalid secret leaves an error
// that a later valid one does not clear.
func (t *Transaction) SetSecret(secret string) {
	if !t.keys.IsValidSecret(secret) {
		t.fail("_secret", ErrInvalidSecret)
		return
	}
	t.secret = secret
}

package addresscodec

import (
	"bytes"
	"crypto/sha256"
)

// Alphabet is the base58 dictionary used for every encoded identifier on the network.
const Alphabet = "jpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65rkm8oFqi1tuvAxyz"

var alphabetIndex = func() [256]int8 {
	var idx [256]int8
	for i := range idx {
		idx[i] = -1
	}
	for i := 0; i < len(Alphabet); i++ {
		idx[Alphabet[i]] = int8(i)
	}
	return idx
}()

// EncodeBase58 encodes bytes with the network alphabet. Leading zero bytes
// become leading 'j' characters.
func EncodeBase58(input []byte) string {
	zeros := 0
	for zeros < len(input) && input[zeros] == 0 {
		zeros++
	}

	// log(256)/log(58), rounded up
	size := (len(input)-zeros)*138/100 + 1
	buf := make([]byte, size)
	high := size - 1
	for _, b := range input[zeros:] {
		carry := int(b)
		j := size - 1
		for ; j > high || carry != 0; j-- {
			carry += 256 * int(buf[j])
			buf[j] = byte(carry % 58)
			carry /= 58
		}
		high = j
	}

	start := 0
	for start < size && buf[start] == 0 {
		start++
	}

	out := make([]byte, zeros+size-start)
	for i := 0; i < zeros; i++ {
		out[i] = Alphabet[0]
	}
	for i, d := range buf[start:] {
		out[zeros+i] = Alphabet[d]
	}
	return string(out)
}

// DecodeBase58 reverses EncodeBase58.
func DecodeBase58(input string) ([]byte, error) {
	if input == "" {
		return nil, ErrInvalidEncoding
	}

	result := make([]byte, 0, len(input))
	for i := 0; i < len(input); i++ {
		digit := alphabetIndex[input[i]]
		if digit < 0 {
			return nil, ErrInvalidEncoding
		}

		carry := int(digit)
		for j := len(result) - 1; j >= 0; j-- {
			carry += int(result[j]) * 58
			result[j] = byte(carry & 0xff)
			carry >>= 8
		}
		for carry > 0 {
			result = append([]byte{byte(carry & 0xff)}, result...)
			carry >>= 8
		}
	}

	zeros := 0
	for zeros < len(input) && input[zeros] == Alphabet[0] {
		zeros++
	}
	return append(make([]byte, zeros), result...), nil
}

func checksum(data []byte) []byte {
	first := sha256.Sum256(data)
	second := sha256.Sum256(first[:])
	return second[:4]
}

// EncodeCheck prepends version, appends a double sha256 checksum and
// base58 encodes the result.
func EncodeCheck(version byte, payload []byte) string {
	data := make([]byte, 0, 1+len(payload)+4)
	data = append(data, version)
	data = append(data, payload...)
	data = append(data, checksum(data)...)
	return EncodeBase58(data)
}

// DecodeCheck decodes a checksummed string, verifies that it carries the
// expected version and returns the payload.
func DecodeCheck(input string, version byte) ([]byte, error) {
	decoded, err := DecodeBase58(input)
	if err != nil {
		return nil, err
	}
	if len(decoded) < 5 {
		return nil, ErrInvalidEncoding
	}

	body, sum := decoded[:len(decoded)-4], decoded[len(decoded)-4:]
	if !bytes.Equal(checksum(body), sum) {
		return nil, ErrChecksum
	}
	if body[0] != version {
		return nil, ErrInvalidVersion
	}
	return body[1:], nil
}

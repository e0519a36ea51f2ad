package varint

import (
	"fmt"
	"math/big"
)

// Append encodes v as a varint and appends it to dst.
// Returns an error if v is negative.
func Append(dst []byte, v *big.Int) ([]byte, error) {
	if v.Sign() < 0 {
		return dst, fmt.Errorf("cannot encode negative value %s", v)
	}

	rest := new(big.Int).Set(v)
	group := new(big.Int)
	mask := big.NewInt(payloadMask)

	for {
		b := byte(group.And(rest, mask).Uint64())
		rest.Rsh(rest, payloadBits)
		if rest.Sign() == 0 {
			return append(dst, b), nil
		}
		dst = append(dst, b|continuationBit)
	}
}

// AppendUint64 is Append for values that fit in a uint64.
func AppendUint64(dst []byte, v uint64) []byte {
	for v >= continuationBit {
		dst = append(dst, byte(v)|continuationBit)
		v >>= payloadBits
	}
	return append(dst, byte(v))
}

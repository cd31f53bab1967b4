package primitives

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

// maxUint256Digits is the number of base-10 digits of 2^256 - 1.
const maxUint256Digits = 78

// Uint256 is an unsigned 256-bit integer. PostgreSQL has no such column type, so it
// is stored as numeric and exchanged with the database as a decimal.Decimal.
type Uint256 struct {
	v uint256.Int
}

func NewUint256(x uint64) Uint256 {
	var u Uint256
	u.v.SetUint64(x)
	return u
}

// MaxUint256 returns 2^256 - 1.
func MaxUint256() Uint256 {
	var u Uint256
	u.v.SetAllOne()
	return u
}

// Uint256FromBig converts b, which must be non-nil and fit in 256 bits.
func Uint256FromBig(b *big.Int) (Uint256, error) {
	if b == nil {
		return Uint256{}, ErrNilValue
	}
	if b.Sign() < 0 {
		return Uint256{}, ErrNegative
	}

	v, overflow := uint256.FromBig(b)
	if overflow {
		return Uint256{}, fmt.Errorf("%w: %d bits", ErrOverflow, b.BitLen())
	}
	return Uint256{v: *v}, nil
}

// Uint256FromDecimal decodes the storage form of a 256-bit integer. The decimal must
// be a non-negative integer no greater than 2^256 - 1. Magnitude is checked from the
// coefficient and exponent before the value is expanded.
func Uint256FromDecimal(d decimal.Decimal) (Uint256, error) {
	if d.Sign() < 0 {
		return Uint256{}, ErrNegative
	}
	if d.IsZero() {
		return Uint256{}, nil
	}

	digits := int64(d.NumDigits())
	exp := int64(d.Exponent())

	// a non-zero coefficient has fewer trailing zeros than digits
	if exp < 0 && -exp >= digits {
		return Uint256{}, ErrFractionalValue
	}
	if !d.IsInteger() {
		return Uint256{}, ErrFractionalValue
	}
	if digits+exp > maxUint256Digits {
		return Uint256{}, fmt.Errorf("%w: %d digits", ErrOverflow, digits+exp)
	}
	return Uint256FromBig(d.BigInt())
}

// ParseUint256 parses plain base-10 text, reporting the same errors as
// Uint256FromDecimal. Exponent notation is rejected.
func ParseUint256(s string) (Uint256, error) {
	if strings.ContainsAny(s, "eE") {
		return Uint256{}, fmt.Errorf("%w: exponent notation", ErrInvalidDecimal)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return Uint256{}, ErrInvalidDecimal
	}
	return Uint256FromDecimal(d)
}

// Decimal returns the storage form: an exact integer decimal with exponent 0.
func (u Uint256) Decimal() decimal.Decimal {
	return decimal.NewFromBigInt(u.v.ToBig(), 0)
}

func (u Uint256) Big() *big.Int {
	return u.v.ToBig()
}

func (u Uint256) Uint64() (uint64, bool) {
	return u.v.Uint64(), u.v.IsUint64()
}

func (u Uint256) IsZero() bool {
	return u.v.IsZero()
}

func (u Uint256) Cmp(other Uint256) int {
	return u.v.Cmp(&other.v)
}

// Add returns u + other, or ErrOverflow instead of wrapping around.
func (u Uint256) Add(other Uint256) (Uint256, error) {
	var sum Uint256
	if _, overflow := sum.v.AddOverflow(&u.v, &other.v); overflow {
		return Uint256{}, fmt.Errorf("%w: %s + %s", ErrOverflow, u, other)
	}
	return sum, nil
}

// Sub returns u - other, or ErrNegative when other is greater than u.
func (u Uint256) Sub(other Uint256) (Uint256, error) {
	var diff Uint256
	if _, underflow := diff.v.SubOverflow(&u.v, &other.v); underflow {
		return Uint256{}, fmt.Errorf("%w: %s - %s", ErrNegative, u, other)
	}
	return diff, nil
}

// String renders u in base 10.
func (u Uint256) String() string {
	return u.v.Dec()
}

func (u Uint256) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *Uint256) UnmarshalText(input []byte) error {
	parsed, err := ParseUint256(string(input))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

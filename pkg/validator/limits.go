package validator

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Unlimited marks an unset length or decimal digit limit.
const Unlimited = -1

// Bound is an optional numeric limit. The zero value is unset.
type Bound struct {
	value float64
	set   bool
}

// NoBound returns an unset bound.
func NoBound() Bound {
	return Bound{}
}

// NewBound returns a bound at v. NaN yields an unset bound, so a NaN
// sentinel read from configuration means "no limit".
func NewBound(v float64) Bound {
	if math.IsNaN(v) {
		return Bound{}
	}
	return Bound{value: v, set: true}
}

// IsSet reports whether the bound limits anything.
func (b Bound) IsSet() bool {
	return b.set
}

// Value returns the limit and whether it is set.
func (b Bound) Value() (float64, bool) {
	return b.value, b.set
}

// Float returns the limit, or NaN when unset.
func (b Bound) Float() float64 {
	if !b.set {
		return math.NaN()
	}
	return b.value
}

func (b Bound) String() string {
	if !b.set {
		return "unset"
	}
	return strconv.FormatFloat(b.value, 'g', -1, 64)
}

// NumberRange bounds the value of numeric texts.
type NumberRange struct {
	Min Bound
	Max Bound
}

// Validate rejects a range whose set maximum is below its set minimum.
func (r NumberRange) Validate() error {
	if r.Min.set && r.Max.set && r.Max.value < r.Min.value {
		return errors.Join(ErrInvalidRange, fmt.Errorf("max %s is below min %s", r.Max, r.Min))
	}
	return nil
}

// Contains applies whichever bounds are set. An unset range contains every value.
func (r NumberRange) Contains(v float64) bool {
	if r.Min.set && v < r.Min.value {
		return false
	}
	if r.Max.set && v > r.Max.value {
		return false
	}
	return true
}

// LengthRange bounds the character count of String texts. Unlimited (-1)
// leaves a side unbounded.
type LengthRange struct {
	Min int
	Max int
}

// NoLengthLimit returns a range with both sides unset.
func NoLengthLimit() LengthRange {
	return LengthRange{Min: Unlimited, Max: Unlimited}
}

// Validate rejects negative lengths other than Unlimited and a set maximum
// below a set minimum.
func (r LengthRange) Validate() error {
	if r.Min < Unlimited || r.Max < Unlimited {
		return errors.Join(ErrInvalidLength, fmt.Errorf("min %d, max %d", r.Min, r.Max))
	}
	if r.Min != Unlimited && r.Max != Unlimited && r.Max < r.Min {
		return errors.Join(ErrInvalidLength, fmt.Errorf("max %d is below min %d", r.Max, r.Min))
	}
	return nil
}

// Contains applies whichever bounds are set.
func (r LengthRange) Contains(n int) bool {
	if r.Min != Unlimited && n < r.Min {
		return false
	}
	if r.Max != Unlimited && n > r.Max {
		return false
	}
	return true
}

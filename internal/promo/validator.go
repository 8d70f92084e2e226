package promo

import (
	"context"
	"strings"
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
)

const (
	minCodeLength = 8
	maxCodeLength = 10

	// falsePositiveRate sizes the bloom prefilter.
	falsePositiveRate = 0.01
)

// Validator answers whether a promotional code can be redeemed at checkout.
// Lookups go through a bloom prefilter first, so codes that were never
// issued are rejected without touching the code set.
type Validator struct {
	mu     sync.RWMutex
	codes  map[string]struct{}
	filter *bloom.BloomFilter
}

// NewValidator creates a validator over the given code list.
func NewValidator(codes []string) *Validator {
	v := &Validator{}
	v.Load(codes)
	return v
}

// Load replaces the active code set wholesale.
func (v *Validator) Load(codes []string) {
	set := make(map[string]struct{}, len(codes))
	n := uint(len(codes))
	if n == 0 {
		n = 1
	}
	filter := bloom.NewWithEstimates(n, falsePositiveRate)

	for _, code := range codes {
		code = normalize(code)
		if code == "" {
			continue
		}
		set[code] = struct{}{}
		filter.AddString(code)
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.codes = set
	v.filter = filter
}

// IsValid checks if a promo code is redeemable. A code is valid if:
// 1. It has 8-10 characters
// 2. It is present in the active code set
func (v *Validator) IsValid(ctx context.Context, code string) bool {
	code = normalize(code)
	if len(code) < minCodeLength || len(code) > maxCodeLength {
		return false
	}

	v.mu.RLock()
	defer v.mu.RUnlock()

	if !v.filter.TestString(code) {
		return false
	}
	_, ok := v.codes[code]
	return ok
}

// GetStats returns statistics about the loaded code set.
func (v *Validator) GetStats() map[string]interface{} {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return map[string]interface{}{
		"total_codes":         len(v.codes),
		"false_positive_rate": falsePositiveRate,
	}
}

func normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// DefaultCodes is the placeholder code list matching the catalog's
// seeded offer labels.
func DefaultCodes() []string {
	return []string{
		"WELCOME10",
		"COMBODEAL",
		"FREEDRINK",
		"FREESHIP24",
	}
}

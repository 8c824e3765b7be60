package tracking

import (
	"context"
	"fmt"
	"math/rand/v2"
)

// Tracking code format: fixed prefix plus decimal digits.
const (
	codePrefix = "EI"
	codeDigits = 10
)

// CodeStore answers whether a tracking code is already assigned.
type CodeStore interface {
	CodeExists(ctx context.Context, code string) (bool, error)
}

// Issuer generates globally unique tracking codes.
type Issuer struct {
	store   CodeStore
	randInt func(n int) int
}

// NewIssuer creates an Issuer backed by the given store.
func NewIssuer(store CodeStore) *Issuer {
	return &Issuer{store: store, randInt: rand.IntN}
}

// NewIssuerWithRand creates an Issuer with an injected random source.
func NewIssuerWithRand(store CodeStore, randInt func(n int) int) *Issuer {
	if randInt == nil {
		randInt = rand.IntN
	}
	return &Issuer{store: store, randInt: randInt}
}

// Issue returns a fresh tracking code that is absent from the store.
// It re-rolls until an unused candidate is found; with a 10-digit code
// space collisions are vanishingly rare, so no retry cap is applied.
func (i *Issuer) Issue(ctx context.Context) (string, error) {
	for {
		candidate := i.generate()
		exists, err := i.store.CodeExists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("issue tracking code: %w", err)
		}
		if !exists {
			return candidate, nil
		}
	}
}

func (i *Issuer) generate() string {
	buf := make([]byte, 0, len(codePrefix)+codeDigits)
	buf = append(buf, codePrefix...)
	for range codeDigits {
		buf = append(buf, byte('0'+i.randInt(10)))
	}
	return string(buf)
}

package ledger

import (
	"context"
	"fmt"
	"math/rand/v2"
)

const (
	referenceLength   = 8
	referenceAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// newReference draws 8-character codes until one is free in the
// store. The check runs against the live store, not a cached view, so
// a second ledger sharing the database cannot be handed a duplicate.
// With at most 480 active records against 36^8 combinations the loop
// retries essentially never.
func (l *Ledger) newReference(ctx context.Context) (string, error) {
	for {
		buf := make([]byte, referenceLength)
		for i := range buf {
			buf[i] = referenceAlphabet[rand.IntN(len(referenceAlphabet))]
		}
		reference := string(buf)

		exists, err := l.repo.ReferenceExists(ctx, reference)
		if err != nil {
			return "", fmt.Errorf("failed to verify reference uniqueness: %w", err)
		}
		if !exists {
			return reference, nil
		}
	}
}

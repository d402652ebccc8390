package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/semaphore"
)

// hashWorkers bounds how many bcrypt computations may run at once, so a
// burst of registrations cannot starve concurrent session lookups.
const hashWorkers = 4

// Hasher computes and verifies bcrypt password hashes. A single bcrypt call
// blocks for tens of milliseconds at DefaultCost, so Hash dispatches the work
// to a bounded set of worker goroutines instead of the caller's.
type Hasher struct {
	sem  *semaphore.Weighted
	cost int
}

func NewHasher() *Hasher {
	return &Hasher{
		sem:  semaphore.NewWeighted(hashWorkers),
		cost: bcrypt.DefaultCost,
	}
}

type hashResult struct {
	hash string
	err  error
}

// bcrypt only considers the first 72 bytes of input. Go's implementation
// rejects longer input outright, so cap it here to keep the validator's full
// 8–128 char password range usable.
func bcryptInput(password string) []byte {
	b := []byte(password)
	if len(b) > 72 {
		b = b[:72]
	}
	return b
}

// Hash computes the salted bcrypt hash of password on a worker goroutine.
// It blocks until a worker slot is free or ctx is done. The plaintext is
// never logged.
func (h *Hasher) Hash(ctx context.Context, password string) (string, error) {
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return "", err
	}

	ch := make(chan hashResult, 1)
	go func() {
		defer h.sem.Release(1)
		b, err := bcrypt.GenerateFromPassword(bcryptInput(password), h.cost)
		if err != nil {
			ch <- hashResult{err: fmt.Errorf("hashing password: %w", err)}
			return
		}
		ch <- hashResult{hash: string(b)}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		return res.hash, res.err
	}
}

// Verify reports whether password matches storedHash. A mismatch is
// (false, nil); an error is returned only for malformed stored hashes.
func (h *Hasher) Verify(password, storedHash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(storedHash), bcryptInput(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, fmt.Errorf("verifying password: %w", err)
}

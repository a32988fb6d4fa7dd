package auth

import (
	"time"

	"in.co.kisanmitra/internal/model"
)

// IsLocked reports whether the lockout window is still open. Pure; callers
// supply the clock.
func IsLocked(account *model.Account, now time.Time) bool {
	return account.LockedUntil != nil && account.LockedUntil.After(now)
}

// NextAttemptState computes the counter and lock transition for one failed
// attempt. An elapsed lock starts a fresh window at one attempt; crossing
// maxAttempts opens a new lock; an already-open lock is preserved. The store
// applies the same transition as a single conditional UPDATE, this form
// exists for the gate and for tests.
func NextAttemptState(account *model.Account, now time.Time, maxAttempts int, lockDuration time.Duration) (int, *time.Time) {
	if account.LockedUntil != nil {
		if account.LockedUntil.After(now) {
			return account.LoginAttempts + 1, account.LockedUntil
		}
		return 1, nil
	}
	attempts := account.LoginAttempts + 1
	if attempts >= maxAttempts {
		until := now.Add(lockDuration)
		return attempts, &until
	}
	return attempts, nil
}

func validMobile(mobile string) bool {
	return digitsOfLength(mobile, 10)
}

func validAadhaar(aadhaar string) bool {
	return digitsOfLength(aadhaar, 12)
}

func validPIN(pin string) bool {
	return digitsOfLength(pin, 4)
}

func digitsOfLength(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for _, ch := range s {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return true
}

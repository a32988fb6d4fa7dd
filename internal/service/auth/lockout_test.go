package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"in.co.kisanmitra/internal/model"
)

const (
	testMaxAttempts  = 5
	testLockDuration = 2 * time.Hour
)

func TestIsLocked(t *testing.T) {
	assert := assert.New(t)
	now := time.Now().UTC()

	t.Run("no lock", func(t *testing.T) {
		assert.False(IsLocked(&model.Account{}, now))
	})

	t.Run("open window", func(t *testing.T) {
		until := now.Add(time.Hour)
		assert.True(IsLocked(&model.Account{LockedUntil: &until}, now))
	})

	t.Run("elapsed window", func(t *testing.T) {
		until := now.Add(-time.Minute)
		assert.False(IsLocked(&model.Account{LockedUntil: &until}, now))
	})

	t.Run("window boundary", func(t *testing.T) {
		until := now
		assert.False(IsLocked(&model.Account{LockedUntil: &until}, now))
	})
}

func TestNextAttemptState(t *testing.T) {
	assert := assert.New(t)
	now := time.Now().UTC()

	t.Run("counts up below the threshold", func(t *testing.T) {
		account := &model.Account{}
		for i := 1; i < testMaxAttempts; i++ {
			attempts, until := NextAttemptState(account, now, testMaxAttempts, testLockDuration)
			assert.Equal(i, attempts)
			assert.Nil(until)
			account.LoginAttempts = attempts
			account.LockedUntil = until
		}
	})

	t.Run("locks on the fifth attempt", func(t *testing.T) {
		account := &model.Account{LoginAttempts: testMaxAttempts - 1}
		attempts, until := NextAttemptState(account, now, testMaxAttempts, testLockDuration)
		assert.Equal(testMaxAttempts, attempts)
		assert.NotNil(until)
		assert.Equal(now.Add(testLockDuration), *until)
	})

	t.Run("preserves an open lock", func(t *testing.T) {
		until := now.Add(time.Hour)
		account := &model.Account{LoginAttempts: testMaxAttempts, LockedUntil: &until}
		attempts, next := NextAttemptState(account, now, testMaxAttempts, testLockDuration)
		assert.Equal(testMaxAttempts+1, attempts)
		assert.Equal(&until, next)
	})

	t.Run("elapsed lock starts a fresh window", func(t *testing.T) {
		until := now.Add(-time.Minute)
		account := &model.Account{LoginAttempts: testMaxAttempts, LockedUntil: &until}
		attempts, next := NextAttemptState(account, now, testMaxAttempts, testLockDuration)
		assert.Equal(1, attempts)
		assert.Nil(next)
	})
}

func TestValidators(t *testing.T) {
	assert := assert.New(t)

	t.Run("mobile", func(t *testing.T) {
		assert.True(validMobile("9876543210"))
		assert.False(validMobile("987654321"))
		assert.False(validMobile("98765432101"))
		assert.False(validMobile("987654321a"))
		assert.False(validMobile(""))
	})

	t.Run("aadhaar", func(t *testing.T) {
		assert.True(validAadhaar("123456789012"))
		assert.False(validAadhaar("12345678901"))
		assert.False(validAadhaar("12345678901x"))
	})

	t.Run("pin", func(t *testing.T) {
		assert.True(validPIN("1234"))
		assert.False(validPIN("123"))
		assert.False(validPIN("12345"))
		assert.False(validPIN("12a4"))
	})
}

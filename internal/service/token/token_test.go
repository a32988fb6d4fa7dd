package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"in.co.kisanmitra/internal/boot"
	"in.co.kisanmitra/internal/model"
)

func testConfig() *boot.Config {
	return &boot.Config{
		TokenSecret:     "test-secret",
		AccessTokenTTL:  7 * 24 * time.Hour,
		RefreshTokenTTL: 30 * 24 * time.Hour,
	}
}

func testAccount() *model.Account {
	return &model.Account{
		ID:     model.AccountID("acc-123"),
		Mobile: "9876543210",
	}
}

func TestIssueAndVerify(t *testing.T) {
	assert := assert.New(t)

	issuer := New(testConfig())
	pair, err := issuer.Issue(testAccount())
	assert.Nil(err)
	assert.NotEmpty(pair.AccessToken)
	assert.NotEmpty(pair.RefreshToken)

	t.Run("access token round trip", func(t *testing.T) {
		claims, err := issuer.Verify(pair.AccessToken, TypeAccess)
		assert.Nil(err)
		assert.Equal(model.AccountID("acc-123"), claims.AccountID())
		assert.Equal("9876543210", claims.Mobile)
	})

	t.Run("refresh token round trip", func(t *testing.T) {
		claims, err := issuer.Verify(pair.RefreshToken, TypeRefresh)
		assert.Nil(err)
		assert.Equal(model.AccountID("acc-123"), claims.AccountID())
	})

	t.Run("refresh token rejected as access token", func(t *testing.T) {
		_, err := issuer.Verify(pair.RefreshToken, TypeAccess)
		assert.ErrorIs(err, model.ErrTokenInvalid)
	})

	t.Run("access token rejected as refresh token", func(t *testing.T) {
		_, err := issuer.Verify(pair.AccessToken, TypeRefresh)
		assert.ErrorIs(err, model.ErrTokenInvalid)
	})
}

func TestVerifyFailures(t *testing.T) {
	assert := assert.New(t)

	issuer := New(testConfig())
	pair, err := issuer.Issue(testAccount())
	assert.Nil(err)

	t.Run("malformed token", func(t *testing.T) {
		_, err := issuer.Verify("not.a.token", TypeAccess)
		assert.ErrorIs(err, model.ErrTokenInvalid)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := New(&boot.Config{
			TokenSecret:     "different-secret",
			AccessTokenTTL:  time.Hour,
			RefreshTokenTTL: time.Hour,
		})
		_, err := other.Verify(pair.AccessToken, TypeAccess)
		assert.ErrorIs(err, model.ErrTokenInvalid)
	})

	t.Run("expired token", func(t *testing.T) {
		config := testConfig()
		config.AccessTokenTTL = -time.Minute
		expired := New(config)
		pair, err := expired.Issue(testAccount())
		assert.Nil(err)
		_, err = expired.Verify(pair.AccessToken, TypeAccess)
		assert.ErrorIs(err, model.ErrTokenExpired)
	})
}

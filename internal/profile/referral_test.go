package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReferralCode(t *testing.T) {
	t.Run("matches the SHARP format", func(t *testing.T) {
		assert.Regexp(t, `^SHARP[0-9A-Z]{6}$`, ReferralCode("u1"))
		assert.Regexp(t, `^SHARP[0-9A-Z]{6}$`, ReferralCode(""))
	})

	t.Run("is deterministic per uid", func(t *testing.T) {
		assert.Equal(t, ReferralCode("u1"), ReferralCode("u1"))
	})

	t.Run("differs across uids", func(t *testing.T) {
		assert.NotEqual(t, ReferralCode("u1"), ReferralCode("u2"))
	})
}

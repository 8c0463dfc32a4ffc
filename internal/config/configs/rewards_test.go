package configs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRewardsVariant(t *testing.T) {
	assert.Equal(t, PolicyClickLifetime, Rewards{}.Variant())
	assert.Equal(t, PolicyClickLifetime, Rewards{Policy: "bogus"}.Variant())
	assert.Equal(t, PolicyClickLifetime, Rewards{Policy: "CLICK_LIFETIME"}.Variant())
	assert.Equal(t, PolicyPerKind, Rewards{Policy: "per_kind"}.Variant())
	assert.Equal(t, PolicyPerKind, Rewards{Policy: "Per_Kind"}.Variant())
}

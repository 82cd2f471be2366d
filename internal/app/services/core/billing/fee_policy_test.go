package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateFee(t *testing.T) {
	storedFee := func(v float64) *float64 { return &v }

	t.Run("matching plans are covered with zero fee", func(t *testing.T) {
		policy := EvaluateFee("Unimed", "Unimed", storedFee(150))
		assert.False(t, policy.Editable)
		assert.Equal(t, 0.0, policy.Amount)
	})

	t.Run("match is case-insensitive and trimmed", func(t *testing.T) {
		policy := EvaluateFee("Unimed", "unimed ", storedFee(150))
		assert.False(t, policy.Editable)
		assert.Equal(t, 0.0, policy.Amount)
	})

	t.Run("both plans empty counts as covered", func(t *testing.T) {
		policy := EvaluateFee("", "", storedFee(80))
		assert.False(t, policy.Editable)
		assert.Equal(t, 0.0, policy.Amount)
	})

	t.Run("distinct plans preserve the stored fee", func(t *testing.T) {
		policy := EvaluateFee("Unimed", "Amil", storedFee(200))
		assert.True(t, policy.Editable)
		assert.Equal(t, 200.0, policy.Amount)
	})

	t.Run("distinct plans without a stored fee default to zero", func(t *testing.T) {
		policy := EvaluateFee("Unimed", "Amil", nil)
		assert.True(t, policy.Editable)
		assert.Equal(t, 0.0, policy.Amount)
	})

	t.Run("one empty plan against a set plan is uncovered", func(t *testing.T) {
		policy := EvaluateFee("Unimed", "", nil)
		assert.True(t, policy.Editable)
	})
}

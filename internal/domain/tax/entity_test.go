package tax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLiabilityStatusTransitions(t *testing.T) {
	assert.True(t, StatusPending.CanTransitionTo(StatusFiled))
	assert.True(t, StatusPending.CanTransitionTo(StatusPaid))
	assert.True(t, StatusFiled.CanTransitionTo(StatusPaid))

	assert.False(t, StatusFiled.CanTransitionTo(StatusPending))
	assert.False(t, StatusPaid.CanTransitionTo(StatusPending))
	assert.False(t, StatusPaid.CanTransitionTo(StatusFiled))
	assert.False(t, StatusPending.CanTransitionTo(StatusPending))
}

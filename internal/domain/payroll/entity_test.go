package payroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusTransitions(t *testing.T) {
	assert.True(t, StatusDraft.CanTransitionTo(StatusApproved))
	assert.True(t, StatusApproved.CanTransitionTo(StatusPaid))

	assert.False(t, StatusDraft.CanTransitionTo(StatusPaid), "draft cannot skip approval")
	assert.False(t, StatusApproved.CanTransitionTo(StatusDraft), "no moving backwards")
	assert.False(t, StatusPaid.CanTransitionTo(StatusApproved))
	assert.False(t, StatusPaid.CanTransitionTo(StatusDraft))
	assert.False(t, StatusDraft.CanTransitionTo(StatusDraft))
}

package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jaruri/internal/domains/booking/model"
)

func TestStatus_Valid(t *testing.T) {
	for _, status := range model.Statuses() {
		assert.True(t, status.Valid(), status.String())
	}

	assert.False(t, model.Status("done").Valid())
	assert.False(t, model.Status("").Valid())
	assert.False(t, model.Status("PENDING").Valid())
}

func TestStatus_CanTransition(t *testing.T) {
	assert.True(t, model.StatusPending.CanTransition(model.StatusAssigned))
	assert.True(t, model.StatusAssigned.CanTransition(model.StatusConfirmed))
	assert.True(t, model.StatusConfirmed.CanTransition(model.StatusInProgress))
	assert.True(t, model.StatusInProgress.CanTransition(model.StatusCompleted))
	assert.True(t, model.StatusCompleted.CanTransition(model.StatusRefunded))
	assert.True(t, model.StatusPending.CanTransition(model.StatusCancelled))

	assert.False(t, model.StatusPending.CanTransition(model.StatusCompleted))
	assert.False(t, model.StatusCancelled.CanTransition(model.StatusPending))
	assert.False(t, model.StatusRefunded.CanTransition(model.StatusCompleted))
}

func TestStatus_Terminal(t *testing.T) {
	assert.True(t, model.StatusCompleted.Terminal())
	assert.True(t, model.StatusCancelled.Terminal())
	assert.True(t, model.StatusRefunded.Terminal())

	assert.False(t, model.StatusPending.Terminal())
	assert.False(t, model.StatusAssigned.Terminal())
	assert.False(t, model.StatusConfirmed.Terminal())
	assert.False(t, model.StatusInProgress.Terminal())
}

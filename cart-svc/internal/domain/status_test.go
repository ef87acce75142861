package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{name: "pending to confirmed", from: StatusPending, to: StatusConfirmed, want: true},
		{name: "confirmed to preparing", from: StatusConfirmed, to: StatusPreparing, want: true},
		{name: "preparing to ready", from: StatusPreparing, to: StatusReady, want: true},
		{name: "ready to delivered", from: StatusReady, to: StatusDelivered, want: true},
		{name: "pending to cancelled", from: StatusPending, to: StatusCancelled, want: true},
		{name: "confirmed to cancelled", from: StatusConfirmed, to: StatusCancelled, want: true},
		{name: "preparing cannot cancel", from: StatusPreparing, to: StatusCancelled, want: false},
		{name: "no skipping", from: StatusPending, to: StatusReady, want: false},
		{name: "no going back", from: StatusReady, to: StatusPreparing, want: false},
		{name: "delivered is terminal", from: StatusDelivered, to: StatusPending, want: false},
		{name: "cancelled is terminal", from: StatusCancelled, to: StatusConfirmed, want: false},
		{name: "unknown status", from: OrderStatus("lost"), to: StatusConfirmed, want: false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, CanTransition(testCase.from, testCase.to))
		})
	}
}

func TestReachable(t *testing.T) {
	assert.True(t, Reachable(StatusPending, StatusDelivered))
	assert.True(t, Reachable(StatusConfirmed, StatusReady))
	assert.True(t, Reachable(StatusPending, StatusCancelled))
	assert.False(t, Reachable(StatusPreparing, StatusCancelled))
	assert.False(t, Reachable(StatusDelivered, StatusReady))
	assert.False(t, Reachable(StatusPending, StatusPending))
}

func TestOrderStatus_Terminal(t *testing.T) {
	assert.True(t, StatusDelivered.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.False(t, StatusReady.IsTerminal())
	assert.True(t, StatusReady.Valid())
	assert.False(t, OrderStatus("shipped").Valid())
}

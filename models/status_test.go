package models

import "testing"

func TestCanTransitionToAllowedEdges(t *testing.T) {
	allowed := []struct {
		from, to Status
	}{
		{StatusPending, StatusAccepted},
		{StatusPending, StatusRejected},
		{StatusAccepted, StatusInProgress},
		{StatusInProgress, StatusCompleted},
		{StatusCompleted, StatusPaymentCompleted},
	}

	for _, tc := range allowed {
		if !tc.from.CanTransitionTo(tc.to) {
			t.Errorf("expected %s -> %s to be allowed", tc.from, tc.to)
		}
	}

	// Sweep every remaining pair: self-loops, backward edges and skips must
	// all be rejected because they are absent from the table.
	isAllowed := func(from, to Status) bool {
		for _, tc := range allowed {
			if tc.from == from && tc.to == to {
				return true
			}
		}
		return false
	}
	for _, from := range AllStatuses() {
		for _, to := range AllStatuses() {
			if isAllowed(from, to) {
				continue
			}
			if from.CanTransitionTo(to) {
				t.Errorf("expected %s -> %s to be rejected", from, to)
			}
		}
	}
}

func TestCanTransitionToUnknownStatus(t *testing.T) {
	if Status("archived").CanTransitionTo(StatusAccepted) {
		t.Error("unknown source status must have no outgoing transitions")
	}
	if StatusPending.CanTransitionTo(Status("archived")) {
		t.Error("unknown target status must not be reachable")
	}
}

func TestProviderSettable(t *testing.T) {
	settable := map[Status]bool{
		StatusPending:          false,
		StatusAccepted:         true,
		StatusRejected:         true,
		StatusInProgress:       true,
		StatusCompleted:        true,
		StatusPaymentCompleted: false,
	}
	for status, want := range settable {
		if got := status.ProviderSettable(); got != want {
			t.Errorf("ProviderSettable(%s) = %v, want %v", status, got, want)
		}
	}
}

func TestTerminalStatuses(t *testing.T) {
	for _, status := range AllStatuses() {
		want := status == StatusRejected || status == StatusPaymentCompleted
		if got := status.IsTerminal(); got != want {
			t.Errorf("IsTerminal(%s) = %v, want %v", status, got, want)
		}
	}
}

func TestIsValid(t *testing.T) {
	for _, status := range AllStatuses() {
		if !status.IsValid() {
			t.Errorf("expected %s to be a valid status", status)
		}
	}
	if Status("paymentcompleted").IsValid() {
		t.Error("status strings are case sensitive; lowercase variant must be invalid")
	}
}

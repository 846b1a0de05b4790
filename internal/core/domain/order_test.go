package domain

import (
	"errors"
	"testing"
)

func TestOrderStatus_Next_Progression(t *testing.T) {
	cases := []struct {
		from OrderStatus
		want OrderStatus
	}{
		{StatusPending, StatusConfirmed},
		{StatusConfirmed, StatusPreparing},
		{StatusPreparing, StatusReady},
		{StatusReady, StatusReceived},
	}
	for _, tc := range cases {
		got, err := tc.from.Next()
		if err != nil {
			t.Errorf("Next(%s): unexpected error %v", tc.from, err)
		}
		if got != tc.want {
			t.Errorf("Next(%s): want %s, got %s", tc.from, tc.want, got)
		}
	}
}

func TestOrderStatus_Next_TerminalHasNoSuccessor(t *testing.T) {
	for _, s := range []OrderStatus{StatusReceived, StatusCancelled} {
		if _, err := s.Next(); !errors.Is(err, ErrTerminalStatus) {
			t.Errorf("Next(%s): expected ErrTerminalStatus, got %v", s, err)
		}
	}
}

func TestOrderStatus_Next_UnknownStatus(t *testing.T) {
	if _, err := OrderStatus("Bogus").Next(); !errors.Is(err, ErrUnknownStatus) {
		t.Errorf("expected ErrUnknownStatus, got %v", err)
	}
}

func TestOrderStatus_CancelReachableFromNonTerminal(t *testing.T) {
	for _, s := range []OrderStatus{StatusPending, StatusConfirmed, StatusPreparing, StatusReady} {
		if !s.CanTransitionTo(StatusCancelled) {
			t.Errorf("%s must allow cancellation", s)
		}
	}
	for _, s := range []OrderStatus{StatusReceived, StatusCancelled} {
		if s.CanTransitionTo(StatusCancelled) {
			t.Errorf("%s is terminal and must not allow cancellation", s)
		}
	}
}

func TestOrderStatus_NoSkippingForward(t *testing.T) {
	if StatusPending.CanTransitionTo(StatusPreparing) {
		t.Error("Pending must not jump straight to Preparing")
	}
	if StatusConfirmed.CanTransitionTo(StatusReceived) {
		t.Error("Confirmed must not jump straight to Received")
	}
}

func TestOrderStatus_RequiresConfirmation(t *testing.T) {
	for _, s := range []OrderStatus{StatusReceived, StatusCancelled} {
		if !s.RequiresConfirmation() {
			t.Errorf("%s must require confirmation", s)
		}
	}
	for _, s := range []OrderStatus{StatusPending, StatusConfirmed, StatusPreparing, StatusReady} {
		if s.RequiresConfirmation() {
			t.Errorf("%s must not require confirmation", s)
		}
	}
}

func TestRoles_HasAdmin(t *testing.T) {
	if (Roles{RoleCustomer}).HasAdmin() {
		t.Error("customer-only role set must not grant admin")
	}
	if !(Roles{RoleCustomer, RoleAdmin}).HasAdmin() {
		t.Error("role set with Admin must grant admin")
	}
	if ParseRoles([]string{"Admin", "Bogus", "Customer"}).HasAdmin() != true {
		t.Error("parsing must keep Admin and drop unknown roles")
	}
	if got := len(ParseRoles([]string{"Bogus"})); got != 0 {
		t.Errorf("unknown roles must be dropped, got %d entries", got)
	}
}

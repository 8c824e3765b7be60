package domain

import "testing"

func TestDeliveryStatus_Valid(t *testing.T) {
	t.Parallel()

	cases := []struct {
		status DeliveryStatus
		want   bool
	}{
		{StatusPending, true},
		{StatusCollected, true},
		{StatusInTransit, true},
		{StatusDelivered, true},
		{StatusReturned, true},
		{StatusCancelled, true},
		{DeliveryStatus(""), false},
		{DeliveryStatus("extraviada"), false},
		{DeliveryStatus("ENTREGUE"), false},
	}
	for _, tc := range cases {
		if got := tc.status.Valid(); got != tc.want {
			t.Errorf("Valid(%q) = %v, want %v", tc.status, got, tc.want)
		}
	}
}

func TestDeliveryStatus_Updatable(t *testing.T) {
	t.Parallel()

	// devolvida is stored-valid but must not be settable via updates
	if StatusReturned.Updatable() {
		t.Error("devolvida must not be updatable")
	}
	for _, s := range UpdatableStatuses() {
		if !s.Updatable() {
			t.Errorf("%q should be updatable", s)
		}
		if !s.Valid() {
			t.Errorf("%q should be valid", s)
		}
	}
	if got := len(UpdatableStatuses()); got != 5 {
		t.Errorf("expected 5 updatable statuses, got %d", got)
	}
}

func TestValidateTrackingCode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		code string
		want bool
	}{
		{"EI1234567890", true},
		{"EI0000000000", true},
		{"EI123456789", false},
		{"EI12345678901", false},
		{"XX1234567890", false},
		{"ei1234567890", false},
		{"EI12345678AB", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := ValidateTrackingCode(tc.code); got != tc.want {
			t.Errorf("ValidateTrackingCode(%q) = %v, want %v", tc.code, got, tc.want)
		}
	}
}

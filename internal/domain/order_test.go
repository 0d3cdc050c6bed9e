package domain_test

import (
	"testing"

	"github.com/nikolayk812/apnadairy/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePaymentMethod(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      domain.PaymentMethod
		wantError error
	}{
		{name: "cash on delivery", input: "cod", want: domain.PaymentCashOnDelivery},
		{name: "upi", input: "upi", want: domain.PaymentUPI},
		{name: "qr", input: "qr", want: domain.PaymentQR},
		{name: "empty", input: "", wantError: domain.ErrPaymentMethodRequired},
		{name: "unknown", input: "card", wantError: domain.ErrPaymentMethodInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParsePaymentMethod(tt.input)
			if tt.wantError != nil {
				require.ErrorIs(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestShippingDetailsValidate(t *testing.T) {
	valid := domain.ShippingDetails{
		FullName: "Asha Patel",
		Phone:    "9876543210",
		Street:   "12 MG Road",
		City:     "Pune",
		State:    "Maharashtra",
		Pincode:  "411001",
	}

	require.NoError(t, valid.Validate())

	fields := []func(s *domain.ShippingDetails){
		func(s *domain.ShippingDetails) { s.FullName = "" },
		func(s *domain.ShippingDetails) { s.Phone = "" },
		func(s *domain.ShippingDetails) { s.Street = "" },
		func(s *domain.ShippingDetails) { s.City = "" },
		func(s *domain.ShippingDetails) { s.State = "" },
		func(s *domain.ShippingDetails) { s.Pincode = "" },
	}

	for _, clear := range fields {
		details := valid
		clear(&details)
		assert.ErrorIs(t, details.Validate(), domain.ErrShippingIncomplete)
	}
}

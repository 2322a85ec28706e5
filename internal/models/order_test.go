package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validOrder() Order {
	return Order{
		Items: []OrderItem{
			{ProductID: "65f000000000000000000001", Title: "Pixel 8 Pro", Price: 999, Qty: 1},
			{ProductID: "65f000000000000000000002", Title: "Sony WH-1000XM5", Price: 349, Qty: 2},
		},
		Shipping: 49,
		Address: Address{
			Name:  "Asha Rao",
			Phone: "9876543210",
			Line1: "12 MG Road",
			City:  "Bengaluru",
			State: "KA",
			Zip:   "560001",
		},
		Payment: Payment{Method: "cod", Status: PaymentStatusPending},
	}
}

func TestComputeTotals(t *testing.T) {
	order := validOrder()

	subtotal, total := ComputeTotals(order.Items, order.Shipping)

	assert.Equal(t, 999.0+349.0*2, subtotal)
	assert.Equal(t, subtotal+49, total)
}

func TestComputeTotalsNoItems(t *testing.T) {
	subtotal, total := ComputeTotals(nil, 49)

	assert.Equal(t, 0.0, subtotal)
	assert.Equal(t, 49.0, total)
}

func TestValidateAcceptsValidOrder(t *testing.T) {
	require.Nil(t, validOrder().Validate())
}

func TestValidateRejectsEmptyItems(t *testing.T) {
	order := validOrder()
	order.Items = nil

	errs := order.Validate()

	require.NotEmpty(t, errs)
	assert.Equal(t, "items", errs[0].Field)
}

func TestValidateRejectsZeroQty(t *testing.T) {
	order := validOrder()
	order.Items[0].Qty = 0

	errs := order.Validate()

	require.Len(t, errs, 1)
	assert.Equal(t, "items[0].qty", errs[0].Field)
}

func TestValidateRejectsNegativePrice(t *testing.T) {
	order := validOrder()
	order.Items[1].Price = -1

	errs := order.Validate()

	require.Len(t, errs, 1)
	assert.Equal(t, "items[1].price", errs[0].Field)
}

func TestValidateRejectsNegativeShipping(t *testing.T) {
	order := validOrder()
	order.Shipping = -0.01

	errs := order.Validate()

	require.Len(t, errs, 1)
	assert.Equal(t, "shipping", errs[0].Field)
}

func TestValidateRejectsIncompleteAddress(t *testing.T) {
	order := validOrder()
	order.Address.City = ""
	order.Address.Zip = "  "

	errs := order.Validate()

	fields := make([]string, 0, len(errs))
	for _, fe := range errs {
		fields = append(fields, fe.Field)
	}
	assert.ElementsMatch(t, []string{"address.city", "address.zip"}, fields)
}

func TestValidateAllowsMissingAddressLine2(t *testing.T) {
	order := validOrder()
	order.Address.Line2 = ""

	require.Nil(t, order.Validate())
}

func TestValidateRejectsMissingPaymentMethod(t *testing.T) {
	order := validOrder()
	order.Payment.Method = ""

	errs := order.Validate()

	require.Len(t, errs, 1)
	assert.Equal(t, "payment.method", errs[0].Field)
}

func TestValidateCollectsAllErrors(t *testing.T) {
	order := Order{}

	errs := order.Validate()

	assert.Greater(t, len(errs), 3)
	assert.Contains(t, errs.Error(), "items")
	assert.Contains(t, errs.Error(), "payment.method")
}

package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yzxsolutions/soofi-mandi-sub000/internal/model"
)

func TestValidator_Struct_Valid(t *testing.T) {
	v := New()

	customer := model.CustomerInfo{
		Name:  "Ayesha Khan",
		Phone: "+919876543210",
		Email: "ayesha@example.com",
	}
	assert.Nil(t, v.Struct(customer))
}

func TestValidator_Struct_CollectsAllFailures(t *testing.T) {
	v := New()

	customer := model.CustomerInfo{
		Name:  "A",
		Phone: "abc",
		Email: "not-an-email",
	}
	verrs := v.Struct(customer)
	require.NotNil(t, verrs)
	assert.Len(t, verrs.Errors, 3)
}

func TestValidator_Struct_UsesJSONFieldNames(t *testing.T) {
	v := New()

	verrs := v.Struct(model.DeliveryInfo{City: "Hyderabad", PostalCode: "500001"})
	require.NotNil(t, verrs)
	require.Len(t, verrs.Errors, 1)
	assert.Equal(t, "address", verrs.Errors[0].Field)
	assert.Equal(t, "REQUIRED", verrs.Errors[0].Code)
	assert.Equal(t, "is required", verrs.Errors[0].Message)
}

func TestValidator_Struct_NestedFieldPath(t *testing.T) {
	v := New()

	payload := struct {
		Customer model.CustomerInfo `json:"customer"`
	}{}
	verrs := v.Struct(payload)
	require.NotNil(t, verrs)

	fields := make([]string, 0, len(verrs.Errors))
	for _, fe := range verrs.Errors {
		fields = append(fields, fe.Field)
	}
	assert.Contains(t, fields, "customer.name")
	assert.Contains(t, fields, "customer.email")
}

func TestValidator_Struct_PaymentMethod(t *testing.T) {
	v := New()

	assert.Nil(t, v.Struct(model.PaymentInfo{Method: "cash"}))
	assert.Nil(t, v.Struct(model.PaymentInfo{Method: "upi"}))

	verrs := v.Struct(model.PaymentInfo{Method: "crypto"})
	require.NotNil(t, verrs)
	assert.Equal(t, "must be one of: cash card upi", verrs.Errors[0].Message)
}

func TestValidator_Struct_CheckoutRequestSkipsNestedSections(t *testing.T) {
	v := New()

	// Only the cart id is checked at the request boundary; the nested
	// sections are validated during order assembly.
	req := model.CheckoutRequest{CartID: "not-a-uuid"}
	verrs := v.Struct(req)
	require.NotNil(t, verrs)
	require.Len(t, verrs.Errors, 1)
	assert.Equal(t, "cartId", verrs.Errors[0].Field)
}

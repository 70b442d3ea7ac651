package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuoteForRazorpay(t *testing.T) {
	q := QuoteFor(1000, MethodRazorpay)
	assert.Equal(t, 1000.0, q.Amount)
	assert.Equal(t, 20.0, q.Fee)
	assert.Equal(t, 1020.0, q.Total)
}

func TestQuoteForRazorpayRoundsToPaise(t *testing.T) {
	q := QuoteFor(1234, MethodRazorpay)
	assert.Equal(t, 24.68, q.Fee)
	assert.Equal(t, 1258.68, q.Total)

	// 555 * 0.02 = 11.1, no spurious precision.
	q = QuoteFor(555, MethodRazorpay)
	assert.Equal(t, 11.1, q.Fee)
	assert.Equal(t, 566.1, q.Total)
}

func TestQuoteForMswipeIsFeeFree(t *testing.T) {
	q := QuoteFor(1000, MethodMswipe)
	assert.Equal(t, 1000.0, q.Amount)
	assert.Equal(t, 0.0, q.Fee)
	assert.Equal(t, 1000.0, q.Total)
}

func TestParseMethod(t *testing.T) {
	m, err := ParseMethod("razorpay")
	assert.NoError(t, err)
	assert.Equal(t, MethodRazorpay, m)

	m, err = ParseMethod("mswipe")
	assert.NoError(t, err)
	assert.Equal(t, MethodMswipe, m)

	_, err = ParseMethod("paypal")
	assert.Error(t, err)
}

func TestRegistryGet(t *testing.T) {
	reg := Registry{MethodMswipe: NewMswipe()}

	gw, err := reg.Get(MethodMswipe)
	assert.NoError(t, err)
	assert.Equal(t, MethodMswipe, gw.Method())

	_, err = reg.Get(MethodRazorpay)
	assert.Error(t, err)
}

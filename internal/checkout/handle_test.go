package checkout

import (
	"context"
	"testing"
	"time"

	"github.com/TTJ-s/qr-annujoom/internal/payment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleDeliverOnce(t *testing.T) {
	h := NewHandle()

	assert.True(t, h.Deliver(payment.Result{Kind: payment.ResultSuccess, OrderID: "order_1"}))
	assert.False(t, h.Deliver(payment.Result{Kind: payment.ResultFailed}))

	got, ok := h.Wait(context.Background())
	require.True(t, ok)
	assert.Equal(t, "order_1", got.OrderID)
	assert.Equal(t, payment.ResultSuccess, got.Kind)
}

func TestHandleCancelDropsLateDeliver(t *testing.T) {
	h := NewHandle()
	h.Cancel()

	assert.False(t, h.Deliver(payment.Result{Kind: payment.ResultSuccess}))

	_, ok := h.Wait(context.Background())
	assert.False(t, ok)
}

func TestHandleCancelIdempotent(t *testing.T) {
	h := NewHandle()
	h.Cancel()
	h.Cancel()

	_, ok := h.Wait(context.Background())
	assert.False(t, ok)
}

func TestHandleCancelAfterDeliverKeepsResult(t *testing.T) {
	h := NewHandle()
	require.True(t, h.Deliver(payment.Result{Kind: payment.ResultSuccess, OrderID: "order_1"}))
	h.Cancel()

	got, ok := h.Wait(context.Background())
	require.True(t, ok)
	assert.Equal(t, "order_1", got.OrderID)
}

func TestHandleWaitUnblocksOnDeliver(t *testing.T) {
	h := NewHandle()

	go func() {
		time.Sleep(10 * time.Millisecond)
		h.Deliver(payment.Result{Kind: payment.ResultSuccess, PaymentID: "pay_9"})
	}()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	got, ok := h.Wait(ctx)
	require.True(t, ok)
	assert.Equal(t, "pay_9", got.PaymentID)
}

func TestHandleWaitContextExpiry(t *testing.T) {
	h := NewHandle()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, ok := h.Wait(ctx)
	assert.False(t, ok)
}

package memory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/DanielPopoola/checkout-payment-gateway/internal/domain"
	"github.com/DanielPopoola/checkout-payment-gateway/internal/infrastructure/persistence/memory"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPayment() *domain.Payment {
	return domain.NewPayment(domain.PaymentRequest{
		CardNumber:  "2222405343248877",
		ExpiryMonth: 4,
		ExpiryYear:  2027,
		Currency:    "GBP",
		Amount:      100,
		CVV:         "123",
	}, domain.StatusAuthorized)
}

func TestPaymentStore_AddAndGet(t *testing.T) {
	ctx := context.Background()
	store := memory.NewPaymentStore()
	payment := newPayment()

	require.NoError(t, store.Add(ctx, payment))

	found, err := store.Get(ctx, payment.ID)
	require.NoError(t, err)
	assert.Equal(t, payment, found)
}

func TestPaymentStore_GetUnknown(t *testing.T) {
	store := memory.NewPaymentStore()

	found, err := store.Get(context.Background(), uuid.New())

	assert.Nil(t, found)
	assert.True(t, domain.IsNotFound(err))
}

func TestPaymentStore_AddOverwrites(t *testing.T) {
	ctx := context.Background()
	store := memory.NewPaymentStore()
	payment := newPayment()
	require.NoError(t, store.Add(ctx, payment))

	replacement := payment.Clone()
	replacement.Status = domain.StatusDeclined
	require.NoError(t, store.Add(ctx, replacement))

	found, err := store.Get(ctx, payment.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDeclined, found.Status)
	assert.Equal(t, 1, store.Len())
}

func TestPaymentStore_IsolatesCallers(t *testing.T) {
	ctx := context.Background()
	store := memory.NewPaymentStore()
	payment := newPayment()
	require.NoError(t, store.Add(ctx, payment))

	payment.Amount = 1
	found, err := store.Get(ctx, payment.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(100), found.Amount, "mutating the input must not reach the store")

	found.Amount = 2
	*found.CardNumberLastFour = 0
	again, err := store.Get(ctx, payment.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(100), again.Amount, "mutating a result must not reach the store")
	assert.Equal(t, 8877, *again.CardNumberLastFour)
}

func TestPaymentStore_RejectsNil(t *testing.T) {
	err := memory.NewPaymentStore().Add(context.Background(), nil)
	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeInvalidPayment))
}

func TestPaymentStore_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	store := memory.NewPaymentStore()

	const workers = 50
	ids := make([]uuid.UUID, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p := newPayment()
			ids[i] = p.ID
			assert.NoError(t, store.Add(ctx, p))
			_, err := store.Get(ctx, p.ID)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, workers, store.Len())
	for _, id := range ids {
		_, err := store.Get(ctx, id)
		assert.NoError(t, err)
	}
}

package domain

import (
	"testing"
	"time"

	"github.com/dwikikusuma/shoping-checkout/pkg/apperror"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func fixedClock(day string) func() time.Time {
	t, err := time.Parse(time.RFC3339, day+"T12:00:00Z")
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	v, err := ParseDate(s)
	require.NoError(t, err)
	return v
}

func TestNewProductValidation(t *testing.T) {
	future := time.Now().AddDate(0, 0, 30)

	testCases := []struct {
		name  string
		build func() error
	}{
		{"empty name", func() error { _, err := NewElectronics("", d(999.99), 5, d(15)); return err }},
		{"blank name", func() error { _, err := NewDigital("   ", d(10), 1); return err }},
		{"negative price", func() error { _, err := NewElectronics("Laptop", d(-100), 5, d(15)); return err }},
		{"negative quantity", func() error { _, err := NewElectronics("Laptop", d(100), -5, d(15)); return err }},
		{"negative weight", func() error { _, err := NewElectronics("Laptop", d(100), 5, d(-15)); return err }},
		{"zero weight", func() error { _, err := NewGrocery("Cheese", d(5.99), 20, decimal.Zero, future); return err }},
		{"missing expiration", func() error { _, err := NewGrocery("Cheese", d(5.99), 20, d(0.5), time.Time{}); return err }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.build(), apperror.ErrInvalidArgument)
		})
	}

	t.Run("valid variants", func(t *testing.T) {
		tv, err := NewElectronics("Smart TV", d(999.99), 5, d(15))
		require.NoError(t, err)
		assert.Equal(t, KindElectronics, tv.Kind())
		assert.True(t, d(15).Equal(tv.Weight()))

		cheese, err := NewGrocery("Cheddar Cheese", d(5.99), 20, d(0.5), future)
		require.NoError(t, err)
		assert.Equal(t, KindGrocery, cheese.Kind())

		card, err := NewDigital("Mobile Scratch Card", d(10), 100)
		require.NoError(t, err)
		assert.Equal(t, KindDigital, card.Kind())
		assert.NotEmpty(t, card.ID())

		free, err := NewDigital("Free Sample", decimal.Zero, 0)
		require.NoError(t, err)
		assert.Equal(t, 0, free.Quantity())
	})
}

func TestCapabilities(t *testing.T) {
	tv, _ := NewElectronics("Smart TV", d(1200), 5, d(15))
	cheese, _ := NewGrocery("Cheese", d(100), 10, d(0.4), time.Now().AddDate(0, 0, 30))
	card, _ := NewDigital("Scratch Card", d(50), 100)

	products := []Product{tv, cheese, card}
	var shippable, expirable int
	for _, p := range products {
		if _, ok := p.(Shippable); ok {
			shippable++
		}
		if _, ok := p.(Expirable); ok {
			expirable++
		}
	}
	assert.Equal(t, 2, shippable)
	assert.Equal(t, 1, expirable)
}

func TestBusinessKeyAndIdentity(t *testing.T) {
	a, _ := NewElectronics("Smart TV", d(999.99), 5, d(15))
	b, _ := NewElectronics("Smart TV", d(999.99), 5, d(15))
	c, _ := NewElectronics("Smart TV", d(899.99), 5, d(15))
	digital, _ := NewDigital("Smart TV", d(999.99), 1)

	t.Run("same business key, different identity", func(t *testing.T) {
		assert.True(t, a.HasSameBusinessKey(b))
		assert.True(t, b.HasSameBusinessKey(a))
		assert.False(t, a.SameIdentity(b))
		assert.NotEqual(t, a.ID(), b.ID())
	})

	t.Run("reflexive", func(t *testing.T) {
		assert.True(t, a.HasSameBusinessKey(a))
		assert.True(t, a.SameIdentity(a))
	})

	t.Run("price differs", func(t *testing.T) {
		assert.False(t, a.HasSameBusinessKey(c))
	})

	t.Run("variant is not part of the key", func(t *testing.T) {
		assert.True(t, a.HasSameBusinessKey(digital))
	})

	t.Run("decimal scale does not matter", func(t *testing.T) {
		x, _ := NewDigital("Card", decimal.RequireFromString("10"), 1)
		y, _ := NewDigital("Card", decimal.RequireFromString("10.00"), 1)
		assert.True(t, x.HasSameBusinessKey(y))
	})

	t.Run("nil is never equal", func(t *testing.T) {
		var typedNil *Digital
		assert.False(t, a.HasSameBusinessKey(nil))
		assert.False(t, a.HasSameBusinessKey(typedNil))
		assert.False(t, a.SameIdentity(nil))
	})

	t.Run("renaming keeps identity", func(t *testing.T) {
		p, _ := NewDigital("Card", d(10), 1)
		id := p.ID()
		require.NoError(t, p.SetName("Gift Card"))
		assert.Equal(t, id, p.ID())
		assert.Equal(t, "Gift Card", p.Name())
	})
}

func TestQuantityMutation(t *testing.T) {
	p, err := NewDigital("Card", d(10), 5)
	require.NoError(t, err)

	require.NoError(t, p.ReduceQuantity(2))
	assert.Equal(t, 3, p.Quantity())

	require.NoError(t, p.IncreaseQuantity(4))
	assert.Equal(t, 7, p.Quantity())

	require.NoError(t, p.ReduceQuantity(0))
	assert.Equal(t, 7, p.Quantity())

	assert.ErrorIs(t, p.ReduceQuantity(-1), apperror.ErrInvalidArgument)
	assert.ErrorIs(t, p.IncreaseQuantity(-1), apperror.ErrInvalidArgument)
	assert.Equal(t, 7, p.Quantity(), "failed calls leave stock untouched")

	require.NoError(t, p.SetQuantity(1))
	assert.Equal(t, 1, p.Quantity())
	assert.ErrorIs(t, p.SetQuantity(-3), apperror.ErrInvalidArgument)
}

func TestSetters(t *testing.T) {
	p, _ := NewDigital("Card", d(10), 5)

	assert.ErrorIs(t, p.SetName(" "), apperror.ErrInvalidArgument)
	assert.Equal(t, "Card", p.Name())

	assert.ErrorIs(t, p.SetPrice(d(-1)), apperror.ErrInvalidArgument)
	assert.True(t, d(10).Equal(p.Price()))

	require.NoError(t, p.SetPrice(d(12.5)))
	assert.True(t, d(12.5).Equal(p.Price()))
}

func TestGroceryExpiry(t *testing.T) {
	build := func(expires string, today string) *Grocery {
		g, err := NewGrocery("Milk", d(2), 3, d(1), mustDate(t, expires), WithClock(fixedClock(today)))
		require.NoError(t, err)
		return g
	}

	assert.False(t, build("2025-06-10", "2025-06-09").IsExpired())
	assert.False(t, build("2025-06-10", "2025-06-10").IsExpired(), "expiring today is not expired")
	assert.True(t, build("2025-06-10", "2025-06-11").IsExpired())

	g := build("2025-12-31", "2025-01-01")
	assert.Equal(t, "2025-12-31", g.ExpirationDateString())
	assert.True(t, mustDate(t, "2025-12-31").Equal(g.ExpirationDate()))
}

func TestGroceryExpiryRecomputedEachCall(t *testing.T) {
	now := fixedClock("2025-06-10")()
	clock := func() time.Time { return now }

	g, err := NewGrocery("Milk", d(2), 3, d(1), mustDate(t, "2025-06-10"), WithClock(clock))
	require.NoError(t, err)
	assert.False(t, g.IsExpired())

	now = now.AddDate(0, 0, 1)
	assert.True(t, g.IsExpired())
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind(" Grocery ")
	require.NoError(t, err)
	assert.Equal(t, KindGrocery, k)
	assert.Equal(t, "grocery", k.String())

	_, err = ParseKind("furniture")
	assert.ErrorIs(t, err, apperror.ErrInvalidArgument)
}

func TestParseDate(t *testing.T) {
	_, err := ParseDate("31/12/2025")
	assert.ErrorIs(t, err, apperror.ErrInvalidArgument)
}

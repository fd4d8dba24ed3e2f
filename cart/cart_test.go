package cart_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/felizhandmade/feliz-store/cart"
)

func TestAddMergesSameIdentity(t *testing.T) {
	c := cart.New(nil)
	c.Add(cart.Item{ID: "p-1", Name: "Ice Knot Bracelet", Price: 12000})
	c.Add(cart.Item{ID: "p-1", Name: "Ice Knot Bracelet", Price: 12000})

	items := c.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 2, c.ItemCount())
	assert.Equal(t, int64(24000), c.Subtotal())
}

func TestAddOpensDrawerAndNotifies(t *testing.T) {
	var messages []string
	c := cart.New(cart.NotifierFunc(func(m string) { messages = append(messages, m) }))

	assert.False(t, c.IsOpen())
	c.Add(cart.Item{ID: "p-1", Name: "Bracelet", Price: 10000})
	assert.True(t, c.IsOpen())
	assert.Equal(t, []string{"Added to cart"}, messages)
}

func TestAddDefaultsQuantityToOne(t *testing.T) {
	c := cart.New(nil)
	c.Add(cart.Item{ID: "p-1", Price: 10000, Quantity: 0})
	assert.Equal(t, 1, c.Items()[0].Quantity)
}

func TestSetQuantityClampsToOne(t *testing.T) {
	c := cart.New(nil)
	c.Add(cart.Item{ID: "p-1", Price: 10000})

	c.SetQuantity("p-1", 0)
	assert.Equal(t, 1, c.Items()[0].Quantity)

	c.SetQuantity("p-1", -3)
	assert.Equal(t, 1, c.Items()[0].Quantity)

	c.SetQuantity("p-1", 5)
	assert.Equal(t, 5, c.Items()[0].Quantity)
}

func TestRemoveAndClear(t *testing.T) {
	var messages []string
	c := cart.New(cart.NotifierFunc(func(m string) { messages = append(messages, m) }))
	c.Add(cart.Item{ID: "p-1", Price: 10000})
	c.Add(cart.Item{ID: "p-2", Price: 15000})

	c.Remove("p-1")
	assert.Len(t, c.Items(), 1)
	assert.Contains(t, messages, "Removed from cart")

	c.Clear()
	assert.Empty(t, c.Items())
	assert.Equal(t, int64(0), c.Subtotal())
	assert.Equal(t, 0, c.ItemCount())
}

func TestStoreIsolatesCarts(t *testing.T) {
	s := cart.NewStore(nil)
	a := s.Create()
	b := s.Create()
	assert.NotEqual(t, a, b)

	s.Get(a).Add(cart.Item{ID: "p-1", Price: 10000})
	assert.Equal(t, 1, s.Get(a).ItemCount())
	assert.Equal(t, 0, s.Get(b).ItemCount())

	assert.Nil(t, s.Get("unknown-token"))

	s.Drop(a)
	assert.Nil(t, s.Get(a))
}

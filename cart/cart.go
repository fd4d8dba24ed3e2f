package cart

import (
	"sync"
)

// Item is one cart line. Price is a minor-unit-free MMK amount; Meta carries
// the customization summary for composite pieces.
type Item struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
	Meta     string `json:"meta,omitempty"`
}

// Notifier receives the user-visible confirmations the cart emits. The HTTP
// layer forwards these to the client; tests plug in a recorder.
type Notifier interface {
	Notify(message string)
}

// NotifierFunc adapts a plain function to the Notifier interface.
type NotifierFunc func(message string)

func (f NotifierFunc) Notify(message string) { f(message) }

type noopNotifier struct{}

func (noopNotifier) Notify(string) {}

// Cart holds the line items and the drawer visibility flag for one shopper.
// Subtotal and ItemCount are always derived from the items, never stored.
type Cart struct {
	mu       sync.Mutex
	items    []Item
	open     bool
	notifier Notifier
}

func New(n Notifier) *Cart {
	if n == nil {
		n = noopNotifier{}
	}
	return &Cart{notifier: n}
}

// Add merges by item id: an existing line gains the incoming quantity
// (default 1), a new line is appended. Adding always opens the drawer.
func (c *Cart) Add(item Item) {
	c.mu.Lock()
	defer c.mu.Unlock()

	qty := item.Quantity
	if qty < 1 {
		qty = 1
	}

	merged := false
	for i := range c.items {
		if c.items[i].ID == item.ID {
			c.items[i].Quantity += qty
			merged = true
			break
		}
	}
	if !merged {
		item.Quantity = qty
		c.items = append(c.items, item)
	}

	c.open = true
	c.notifier.Notify("Added to cart")
}

// Remove deletes the line with the given id. Removing an unknown id is a
// no-op apart from the notification.
func (c *Cart) Remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.items[:0]
	for _, it := range c.items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	c.items = kept
	c.notifier.Notify("Removed from cart")
}

// SetQuantity clamps to a minimum of 1; zero is not reachable through this
// operation, lines disappear only via Remove or Clear.
func (c *Cart) SetQuantity(id string, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if quantity < 1 {
		quantity = 1
	}
	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].Quantity = quantity
			return
		}
	}
}

// Clear empties the cart after a successful checkout.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

func (c *Cart) Open() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.open = true
}

func (c *Cart) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.open = false
}

func (c *Cart) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.open
}

// Items returns a copy so callers cannot mutate the cart behind its lock.
func (c *Cart) Items() []Item {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Subtotal() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	var sum int64
	for _, it := range c.items {
		sum += it.Price * int64(it.Quantity)
	}
	return sum
}

func (c *Cart) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	count := 0
	for _, it := range c.items {
		count += it.Quantity
	}
	return count
}

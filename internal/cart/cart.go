package cart

import (
	"sort"

	"github.com/orderdesk-dev/orderdesk/internal/models"
)

// Line is one selected service in the cart.
type Line struct {
	ServiceID uint    `json:"service_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Cart is the pre-order selection of services. It lives in the session store
// and is never persisted; mutations are read-modify-write against a snapshot.
type Cart struct {
	lines map[uint]Line
}

func New() *Cart {
	return &Cart{lines: make(map[uint]Line)}
}

// AddItem increments the quantity for the service, creating the line with
// quantity 1 if it is not in the cart yet.
func (c *Cart) AddItem(service models.Service) {
	line, ok := c.lines[service.ID]

	if !ok {
		line = Line{
			ServiceID: service.ID,
			Name:      service.Name,
			Price:     service.Price,
		}
	}

	line.Quantity++
	c.lines[service.ID] = line
}

// IncreaseItem increments an existing line by one. No upper bound.
func (c *Cart) IncreaseItem(serviceID uint) bool {
	line, ok := c.lines[serviceID]

	if !ok {
		return false
	}

	line.Quantity++
	c.lines[serviceID] = line
	return true
}

// ReduceItem decrements a line by one, removing it when the quantity
// reaches zero.
func (c *Cart) ReduceItem(serviceID uint) bool {
	line, ok := c.lines[serviceID]

	if !ok {
		return false
	}

	line.Quantity--

	if line.Quantity <= 0 {
		delete(c.lines, serviceID)
		return true
	}

	c.lines[serviceID] = line
	return true
}

// DeleteItem removes the line entirely regardless of quantity.
func (c *Cart) DeleteItem(serviceID uint) bool {
	if _, ok := c.lines[serviceID]; !ok {
		return false
	}

	delete(c.lines, serviceID)
	return true
}

// Items returns the lines in stable service-id order.
func (c *Cart) Items() []Line {
	items := make([]Line, 0, len(c.lines))

	for _, line := range c.lines {
		items = append(items, line)
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].ServiceID < items[j].ServiceID
	})

	return items
}

func (c *Cart) TotalQty() int {
	total := 0
	for _, line := range c.lines {
		total += line.Quantity
	}
	return total
}

func (c *Cart) TotalPrice() float64 {
	total := 0.0
	for _, line := range c.lines {
		total += line.Price * float64(line.Quantity)
	}
	return total
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Clone returns an independent copy, so session reads hand out snapshots.
func (c *Cart) Clone() *Cart {
	clone := New()
	for id, line := range c.lines {
		clone.lines[id] = line
	}
	return clone
}

// Info is the display-ready cart shape.
type Info struct {
	Items      []Line  `json:"items"`
	TotalQty   int     `json:"total_qty"`
	TotalPrice float64 `json:"total_price"`
}

func (c *Cart) Info() Info {
	return Info{
		Items:      c.Items(),
		TotalQty:   c.TotalQty(),
		TotalPrice: c.TotalPrice(),
	}
}

package domain

type CartItem struct {
	DishID    int     `json:"dish_id"`
	DishName  string  `json:"dish_name"`
	DishImage string  `json:"dish_image,omitempty"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Notes     string  `json:"notes"`
}

type CartMetadata struct {
	RestaurantID   int       `json:"restaurant_id"`
	RestaurantName string    `json:"restaurant_name"`
	TableNumber    string    `json:"table_number"`
	OrderType      OrderType `json:"order_type"`
}

// Cart holds a customer's in-progress selection before an order exists.
// It is pure state: every mutation happens in memory and persistence is the
// caller's concern.
type Cart struct {
	Items    []CartItem   `json:"items"`
	Metadata CartMetadata `json:"metadata"`
}

func NewCart() *Cart {
	return &Cart{Items: []CartItem{}}
}

// SetMetadata merges the supplied fields into the cart metadata. Switching to
// a different restaurant clears the items in the same transition, so a cart
// can never mix dishes from two restaurants.
func (c *Cart) SetMetadata(meta CartMetadata) {
	if meta.RestaurantID != 0 && c.Metadata.RestaurantID != 0 && meta.RestaurantID != c.Metadata.RestaurantID {
		c.Items = []CartItem{}
	}
	if meta.RestaurantID != 0 {
		c.Metadata.RestaurantID = meta.RestaurantID
	}
	if meta.RestaurantName != "" {
		c.Metadata.RestaurantName = meta.RestaurantName
	}
	if meta.TableNumber != "" {
		c.Metadata.TableNumber = meta.TableNumber
	}
	if meta.OrderType != "" {
		c.Metadata.OrderType = meta.OrderType
	}
}

// AddItem appends a new line with quantity 1, or increments the quantity when
// the dish is already in the cart. The original price/name snapshot wins on
// re-add.
func (c *Cart) AddItem(item CartItem) {
	for i := range c.Items {
		if c.Items[i].DishID == item.DishID {
			c.Items[i].Quantity++
			return
		}
	}
	item.Quantity = 1
	item.Notes = ""
	c.Items = append(c.Items, item)
}

// UpdateQuantity overwrites the quantity for a dish; zero or negative removes
// the line.
func (c *Cart) UpdateQuantity(dishID, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(dishID)
		return
	}
	for i := range c.Items {
		if c.Items[i].DishID == dishID {
			c.Items[i].Quantity = quantity
			return
		}
	}
}

// UpdateNotes replaces the notes for a dish; no-op when the dish is absent.
func (c *Cart) UpdateNotes(dishID int, notes string) {
	for i := range c.Items {
		if c.Items[i].DishID == dishID {
			c.Items[i].Notes = notes
			return
		}
	}
}

func (c *Cart) RemoveItem(dishID int) {
	for i := range c.Items {
		if c.Items[i].DishID == dishID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// Clear empties the items and resets the metadata. This is the only
// operation that resets metadata.
func (c *Cart) Clear() {
	c.Items = []CartItem{}
	c.Metadata = CartMetadata{}
}

func (c *Cart) ItemCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

func (c *Cart) Subtotal() float64 {
	subtotal := 0.0
	for _, item := range c.Items {
		subtotal += item.Price * float64(item.Quantity)
	}
	return subtotal
}

func (c *Cart) Tax() float64 {
	return c.Subtotal() * TaxRate
}

func (c *Cart) Total() float64 {
	return c.Subtotal() + c.Tax()
}

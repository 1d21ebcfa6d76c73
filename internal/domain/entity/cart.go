package entity

// CartItem pairs a product with a positive quantity.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// LineTotal returns price × quantity.
func (i CartItem) LineTotal() int64 {
	return i.Product.Price * int64(i.Quantity)
}

// CartItems is the ordered content of a cart, in insertion order.
type CartItems []CartItem

// TotalItems sums the quantities.
func (items CartItems) TotalItems() int {
	total := 0
	for _, item := range items {
		total += item.Quantity
	}

	return total
}

// TotalPrice sums price × quantity over all items.
func (items CartItems) TotalPrice() int64 {
	var total int64
	for _, item := range items {
		total += item.LineTotal()
	}

	return total
}

// IndexOf returns the position of productID or -1.
func (items CartItems) IndexOf(productID string) int {
	for i, item := range items {
		if item.Product.ID == productID {
			return i
		}
	}

	return -1
}

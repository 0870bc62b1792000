package cart

// LineItem is one shade in the cart. The JSON keys are the ones stored on
// the device.
type LineItem struct {
	Category  string `json:"category"`
	ColorID   string `json:"colorId"`
	ColorHex  string `json:"colorHex"`
	ColorName string `json:"colorName"`
	Quantity  int    `json:"quantity"`
}

// Key identifies a line item. Two items with the same Key are the same item.
type Key struct {
	Category string
	ColorHex string
}

func (i LineItem) Key() Key {
	return Key{Category: i.Category, ColorHex: i.ColorHex}
}

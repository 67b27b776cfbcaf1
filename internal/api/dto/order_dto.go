package dto

type PlaceOrderDTO struct {
	AddressID            *uint  `json:"address_id,omitempty"`
	ShippingFullName     string `json:"shipping_full_name"`
	ShippingAddressLine1 string `json:"shipping_address_line1"`
	ShippingAddressLine2 string `json:"shipping_address_line2"`
	ShippingCity         string `json:"shipping_city"`
	ShippingState        string `json:"shipping_state"`
	ShippingPostalCode   string `json:"shipping_postal_code"`
	ShippingCountry      string `json:"shipping_country"`
	ShippingPhone        string `json:"shipping_phone"`
	PaymentMethod        string `json:"payment_method"`
}

type UpdateOrderStatusDTO struct {
	Status string `json:"status"`
}

package structs

// CheckoutRequest carries the shipping form submitted at checkout. The items
// themselves come from the customer's persisted cart, never from the request.
type CheckoutRequest struct {
	ShippingName       string `json:"shipping_name" validate:"required,min=2,max=200"`
	ShippingPhone      string `json:"shipping_phone" validate:"required,min=8,max=20"`
	ShippingAddress    string `json:"shipping_address" validate:"required,max=500"`
	ShippingCity       string `json:"shipping_city" validate:"required,max=100"`
	ShippingProvince   string `json:"shipping_province" validate:"required,max=100"`
	ShippingPostalCode string `json:"shipping_postal_code" validate:"required,max=10"`
	CourierCode        string `json:"courier_code" validate:"required,max=50"`
	CourierService     string `json:"courier_service" validate:"required,max=100"`
}

type ProfileUpdateRequest struct {
	FirstName  string `json:"first_name" validate:"omitempty,max=100"`
	LastName   string `json:"last_name" validate:"omitempty,max=100"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"omitempty,max=20"`
	Address    string `json:"address" validate:"omitempty,max=500"`
	City       string `json:"city" validate:"omitempty,max=100"`
	Province   string `json:"province" validate:"omitempty,max=100"`
	PostalCode string `json:"postal_code" validate:"omitempty,max=10"`
}

// FulfillmentUpdateRequest is the staff order-update form. Status values
// outside the declared enum lists are ignored rather than rejected; the
// tracking number is applied as-is.
type FulfillmentUpdateRequest struct {
	Status         string `json:"status" validate:"omitempty,max=20"`
	ShippingStatus string `json:"shipping_status" validate:"omitempty,max=20"`
	TrackingNumber string `json:"tracking_number" validate:"omitempty,max=100"`
}

type CategoryRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description" validate:"omitempty,max=1000"`
	Slug        string `json:"slug" validate:"omitempty,max=100"`
}

type ProductRequest struct {
	CategoryId  string `json:"category_id" validate:"required,uuid4"`
	Name        string `json:"name" validate:"required,min=2,max=200"`
	Slug        string `json:"slug" validate:"omitempty,max=200"`
	Description string `json:"description" validate:"required"`
	Price       uint64 `json:"price" validate:"required,gt=0"`
	Stock       int64  `json:"stock" validate:"gte=0"`
	ImageURL    string `json:"image_url" validate:"omitempty,url"`
	IsActive    *bool  `json:"is_active"`
}

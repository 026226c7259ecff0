package models

type RegisterRequest struct {
	Name            string `json:"name" binding:"required,min=2"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" binding:"required,eqfield=Password"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AddToCartRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

type PaymentDetails struct {
	CardNumber     string `json:"card_number" binding:"required,len=16,digits"`
	CardholderName string `json:"cardholder_name" binding:"required,min=3"`
	ExpiryDate     string `json:"expiry_date" binding:"required,mmyy"`
	CVV            string `json:"cvv" binding:"required,min=3,max=4,digits"`
}

// CheckoutRequest carries the checkout form. Card details are only
// required for credit payments; crypto is a label with no payload.
// SaveInformation defaults to true when omitted.
type CheckoutRequest struct {
	Email           string          `json:"email" binding:"omitempty,email"`
	Address         Address         `json:"address" binding:"required"`
	PaymentMethod   string          `json:"payment_method" binding:"required,oneof=credit crypto"`
	Payment         *PaymentDetails `json:"payment" binding:"required_if=PaymentMethod credit"`
	SaveInformation *bool           `json:"save_information"`
}

// SavesInformation reports whether the shipping address should be kept in
// the address book of a signed-in shopper.
func (r CheckoutRequest) SavesInformation() bool {
	return r.SaveInformation == nil || *r.SaveInformation
}

package domain

import "time"

// Order status lifecycle: pending -> processing -> shipped -> delivered,
// or pending -> cancelled. Only the pending -> cancelled transition is
// driven locally; the rest belong to the fulfilment side.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// Payment methods accepted at checkout.
const (
	PaymentMethodCredit       = "credit"
	PaymentMethodUPI          = "upi"
	PaymentMethodBankTransfer = "bankTransfer"
	PaymentMethodCOD          = "cashOnDelivery"
)

// Delivery methods offered at checkout.
const (
	DeliveryStandard = "standard"
	DeliveryExpress  = "express"
	DeliveryPriority = "priority"
)

type CustomerInfo struct {
	FirstName string `json:"firstName" bson:"firstName"`
	LastName  string `json:"lastName" bson:"lastName"`
	Email     string `json:"email" bson:"email"`
	Phone     string `json:"phone" bson:"phone"`
}

type ShippingAddress struct {
	Address string `json:"address" bson:"address"`
	City    string `json:"city" bson:"city"`
	State   string `json:"state" bson:"state"`
	ZipCode string `json:"zipCode" bson:"zipCode"`
	Country string `json:"country" bson:"country"`
}

// PaymentSelection is a tagged variant over the payment methods. Only the
// fields of the selected method are populated; card details are reduced to
// a last-4 snapshot before the order is persisted.
type PaymentSelection struct {
	Method             string `json:"method" bson:"method"`
	CardNumber         string `json:"cardNumber,omitempty" bson:"-"`
	CardExpiry         string `json:"cardExpiry,omitempty" bson:"cardExpiry,omitempty"`
	CardCVV            string `json:"cardCVV,omitempty" bson:"-"`
	CardName           string `json:"cardName,omitempty" bson:"cardName,omitempty"`
	CardLast4          string `json:"cardLast4,omitempty" bson:"cardLast4,omitempty"`
	UPIID              string `json:"upiId,omitempty" bson:"upiId,omitempty"`
	AccountNumber      string `json:"accountNumber,omitempty" bson:"accountNumber,omitempty"`
	IFSCCode           string `json:"ifscCode,omitempty" bson:"ifscCode,omitempty"`
	BankName           string `json:"bankName,omitempty" bson:"bankName,omitempty"`
	ProcessingFeeCents int64  `json:"processingFeeCents" bson:"processingFeeCents"`
}

type DeliverySelection struct {
	Method            string    `json:"method" bson:"method"`
	FeeCents          int64     `json:"feeCents" bson:"feeCents"`
	EstimatedDelivery time.Time `json:"estimatedDelivery" bson:"estimatedDelivery"`
}

// Order is the immutable record produced by a successful checkout. Totals
// are computed once at submission and never recomputed from the catalog.
type Order struct {
	OrderID       string            `json:"orderId" bson:"orderId"`
	CreatedAt     time.Time         `json:"createdAt" bson:"createdAt"`
	Lines         []CartLine        `json:"lines" bson:"lines"`
	Customer      CustomerInfo      `json:"customer" bson:"customer"`
	Shipping      ShippingAddress   `json:"shipping" bson:"shipping"`
	Payment       PaymentSelection  `json:"payment" bson:"payment"`
	Delivery      DeliverySelection `json:"delivery" bson:"delivery"`
	Status        string            `json:"status" bson:"status"`
	SubtotalCents int64             `json:"subtotalCents" bson:"subtotalCents"`
	TaxCents      int64             `json:"taxCents" bson:"taxCents"`
	DiscountCents int64             `json:"discountCents" bson:"discountCents"`
	TotalCents    int64             `json:"totalCents" bson:"totalCents"`
	Notes         string            `json:"notes,omitempty" bson:"notes,omitempty"`
}

package checkout

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"tulynx-storefront/internal/cart"
	"tulynx-storefront/internal/domain"
)

// State identifies a step of the checkout wizard.
type State string

const (
	StateCollectingCustomerInfo State = "collectingCustomerInfo"
	StateCollectingShippingInfo State = "collectingShippingInfo"
	StateCollectingPaymentInfo  State = "collectingPaymentInfo"
	StateSubmitting             State = "submitting"
	StateSucceeded              State = "succeeded"
	StateFailed                 State = "failed"
)

// allowedTransitions is the full transition table: linear forward
// progression, single-step back from the two later collecting states, and
// a retry edge from failed back into submitting.
var allowedTransitions = map[State][]State{
	StateCollectingCustomerInfo: {StateCollectingShippingInfo},
	StateCollectingShippingInfo: {StateCollectingPaymentInfo, StateCollectingCustomerInfo},
	StateCollectingPaymentInfo:  {StateSubmitting, StateCollectingShippingInfo},
	StateSubmitting:             {StateSucceeded, StateFailed},
	StateFailed:                 {StateSubmitting},
	StateSucceeded:              {},
}

func canTransition(from, to State) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

var (
	// ErrInvalidTransition is returned when an operation does not apply to
	// the wizard's current state.
	ErrInvalidTransition = errors.New("invalid checkout transition")
	// ErrEmptyCart is returned when checkout is started on an empty cart.
	ErrEmptyCart = errors.New("cart is empty")
)

// ValidationError is a recoverable input error: the wizard stays on the
// same step and nothing collected so far is lost.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

// PaymentInput carries the step-3 form: the payment variant with its
// method-specific fields, the delivery method, promo code and order notes.
type PaymentInput struct {
	Method        string `json:"method"`
	CardNumber    string `json:"cardNumber"`
	CardExpiry    string `json:"cardExpiry"`
	CardCVV       string `json:"cardCVV"`
	CardName      string `json:"cardName"`
	UPIID         string `json:"upiId"`
	AccountNumber string `json:"accountNumber"`
	IFSCCode      string `json:"ifscCode"`
	BankName      string `json:"bankName"`
	Delivery      string `json:"delivery"`
	PromoCode     string `json:"promoCode"`
	Notes         string `json:"notes"`
}

// Wizard is one checkout session. It is mutated only by the Service while
// holding the service lock.
type Wizard struct {
	ID            string
	CartID        string
	State         State
	Customer      domain.CustomerInfo
	Shipping      domain.ShippingAddress
	Payment       PaymentInput
	DiscountCents int64
	OrderID       string
	LastError     string
	CreatedAt     time.Time
}

// Totals is the priced breakdown of a wizard session against its cart.
type Totals struct {
	SubtotalCents   int64 `json:"subtotalCents"`
	TaxCents        int64 `json:"taxCents"`
	DiscountCents   int64 `json:"discountCents"`
	DeliveryCents   int64 `json:"deliveryCents"`
	ProcessingCents int64 `json:"processingCents"`
	TotalCents      int64 `json:"totalCents"`
}

// OrderRepo is the order-submission boundary.
type OrderRepo interface {
	Insert(ctx context.Context, order domain.Order) error
}

// Notifier receives the confirmation for a successfully placed order.
type Notifier interface {
	OrderPlaced(ctx context.Context, order domain.Order)
}

// Service owns the checkout wizard sessions and drives them through the
// state machine against the cart store and the order repository.
type Service struct {
	carts     *cart.Store
	orders    OrderRepo
	fees      FeeSchedule
	discounts DiscountRules
	notifier  Notifier
	logger    *log.Logger
	now       func() time.Time

	mu      sync.Mutex
	wizards map[string]*Wizard
}

func NewService(carts *cart.Store, orders OrderRepo, fees FeeSchedule, discounts DiscountRules, notifier Notifier, logger *log.Logger) *Service {
	return &Service{
		carts:     carts,
		orders:    orders,
		fees:      fees,
		discounts: discounts,
		notifier:  notifier,
		logger:    logger,
		now:       time.Now,
		wizards:   make(map[string]*Wizard),
	}
}

// Start opens a wizard session over a non-empty cart.
func (s *Service) Start(cartID string) (*Wizard, error) {
	snap, err := s.carts.Snapshot(cartID)
	if err != nil {
		return nil, err
	}
	if len(snap.Lines) == 0 {
		return nil, ErrEmptyCart
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	w := &Wizard{
		ID:        uuid.NewString(),
		CartID:    cartID,
		State:     StateCollectingCustomerInfo,
		CreatedAt: s.now().UTC(),
	}
	s.wizards[w.ID] = w
	return w, nil
}

// Get returns a copy of one wizard session.
func (s *Service) Get(id string) (*Wizard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.wizards[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *w
	return &cp, nil
}

// SubmitCustomer validates step 1 and advances to shipping collection.
func (s *Service) SubmitCustomer(id string, in domain.CustomerInfo) (*Wizard, error) {
	return s.update(id, StateCollectingCustomerInfo, StateCollectingShippingInfo, func(w *Wizard) error {
		if err := requireFields(map[string]string{
			"firstName": in.FirstName,
			"lastName":  in.LastName,
			"email":     in.Email,
			"phone":     in.Phone,
		}); err != nil {
			return err
		}
		w.Customer = in
		return nil
	})
}

// SubmitShipping validates step 2 and advances to payment collection.
func (s *Service) SubmitShipping(id string, in domain.ShippingAddress) (*Wizard, error) {
	return s.update(id, StateCollectingShippingInfo, StateCollectingPaymentInfo, func(w *Wizard) error {
		if err := requireFields(map[string]string{
			"address": in.Address,
			"city":    in.City,
			"state":   in.State,
			"zipCode": in.ZipCode,
			"country": in.Country,
		}); err != nil {
			return err
		}
		w.Shipping = in
		return nil
	})
}

// SetPayment stores the step-3 form. The wizard stays on the payment step;
// the guard into submission is re-checked by Submit. An unknown promo code
// leaves the discount at zero without surfacing an error.
func (s *Service) SetPayment(id string, in PaymentInput) (*Wizard, error) {
	return s.update(id, StateCollectingPaymentInfo, StateCollectingPaymentInfo, func(w *Wizard) error {
		if err := s.validatePayment(in); err != nil {
			return err
		}
		if in.Delivery == "" {
			in.Delivery = domain.DeliveryStandard
		}
		if _, ok := s.fees.Delivery[in.Delivery]; !ok {
			return &ValidationError{Field: "delivery", Msg: "unknown delivery method"}
		}
		w.Payment = in
		w.DiscountCents = 0
		if rule, ok := s.discounts.Lookup(in.PromoCode); ok {
			snap, err := s.carts.Snapshot(w.CartID)
			if err != nil {
				return err
			}
			w.DiscountCents = rule(snap.SubtotalCents)
		}
		return nil
	})
}

// Back steps the wizard one collecting state backwards. Collected data is
// kept so returning forward needs no re-entry.
func (s *Service) Back(id string) (*Wizard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.wizards[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	var prev State
	switch w.State {
	case StateCollectingShippingInfo:
		prev = StateCollectingCustomerInfo
	case StateCollectingPaymentInfo:
		prev = StateCollectingShippingInfo
	default:
		return nil, ErrInvalidTransition
	}
	w.State = prev
	cp := *w
	return &cp, nil
}

// Totals prices the wizard session against the current cart snapshot.
func (s *Service) Totals(id string) (Totals, error) {
	s.mu.Lock()
	w, ok := s.wizards[id]
	if !ok {
		s.mu.Unlock()
		return Totals{}, domain.ErrNotFound
	}
	payment := w.Payment
	discount := w.DiscountCents
	cartID := w.CartID
	s.mu.Unlock()

	snap, err := s.carts.Snapshot(cartID)
	if err != nil {
		return Totals{}, err
	}
	return s.price(snap, payment, discount), nil
}

// Submit drives CollectingPaymentInfo (or Failed, on retry) through
// Submitting into a terminal state. On success the order is persisted, the
// cart is cleared and the wizard ends in Succeeded. On a boundary failure
// every collected field and the cart survive for a retry.
func (s *Service) Submit(ctx context.Context, id string) (*Wizard, error) {
	s.mu.Lock()
	w, ok := s.wizards[id]
	if !ok {
		s.mu.Unlock()
		return nil, domain.ErrNotFound
	}
	if !canTransition(w.State, StateSubmitting) {
		s.mu.Unlock()
		return nil, ErrInvalidTransition
	}
	if err := s.validatePayment(w.Payment); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	w.State = StateSubmitting
	payment := w.Payment
	discount := w.DiscountCents
	customer := w.Customer
	shipping := w.Shipping
	cartID := w.CartID
	s.mu.Unlock()

	order, err := s.buildOrder(cartID, customer, shipping, payment, discount)
	if err == nil {
		err = s.orders.Insert(ctx, *order)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		w.State = StateFailed
		w.LastError = err.Error()
		s.logger.Printf("checkout %s submission failed: %v", id, err)
		cp := *w
		return &cp, nil
	}

	if _, cerr := s.carts.Apply(cartID, func(c *cart.Cart) { c.Clear() }); cerr != nil {
		s.logger.Printf("checkout %s: clear cart %s: %v", id, cartID, cerr)
	}
	w.State = StateSucceeded
	w.LastError = ""
	w.OrderID = order.OrderID
	if s.notifier != nil {
		s.notifier.OrderPlaced(ctx, *order)
	}
	cp := *w
	return &cp, nil
}

func (s *Service) buildOrder(cartID string, customer domain.CustomerInfo, shipping domain.ShippingAddress, payment PaymentInput, discount int64) (*domain.Order, error) {
	snap, err := s.carts.Snapshot(cartID)
	if err != nil {
		return nil, err
	}
	if len(snap.Lines) == 0 {
		return nil, ErrEmptyCart
	}

	totals := s.price(snap, payment, discount)
	now := s.now().UTC()
	opt := s.fees.Delivery[payment.Delivery]

	sel := domain.PaymentSelection{
		Method:             payment.Method,
		ProcessingFeeCents: totals.ProcessingCents,
	}
	switch payment.Method {
	case domain.PaymentMethodCredit:
		digits := strings.NewReplacer(" ", "", "-", "").Replace(payment.CardNumber)
		sel.CardLast4 = digits[len(digits)-4:]
		sel.CardExpiry = payment.CardExpiry
		sel.CardName = payment.CardName
	case domain.PaymentMethodUPI:
		sel.UPIID = payment.UPIID
	case domain.PaymentMethodBankTransfer:
		sel.AccountNumber = payment.AccountNumber
		sel.IFSCCode = payment.IFSCCode
		sel.BankName = payment.BankName
	}

	lines := make([]domain.CartLine, len(snap.Lines))
	copy(lines, snap.Lines)

	return &domain.Order{
		OrderID:   uuid.NewString(),
		CreatedAt: now,
		Lines:     lines,
		Customer:  customer,
		Shipping:  shipping,
		Payment:   sel,
		Delivery: domain.DeliverySelection{
			Method:            payment.Delivery,
			FeeCents:          opt.FeeCents,
			EstimatedDelivery: now.AddDate(0, 0, opt.Days),
		},
		Status:        domain.OrderStatusPending,
		SubtotalCents: totals.SubtotalCents,
		TaxCents:      totals.TaxCents,
		DiscountCents: totals.DiscountCents,
		TotalCents:    totals.TotalCents,
		Notes:         strings.TrimSpace(payment.Notes),
	}, nil
}

func (s *Service) price(snap domain.CartSnapshot, payment PaymentInput, discount int64) Totals {
	delivery := payment.Delivery
	if delivery == "" {
		delivery = domain.DeliveryStandard
	}
	subtotal := snap.SubtotalCents
	tax := s.fees.TaxCents(subtotal)
	processing := s.fees.ProcessingFeeCents(payment.Method, subtotal+tax-discount)
	deliveryFee := s.fees.Delivery[delivery].FeeCents
	return Totals{
		SubtotalCents:   subtotal,
		TaxCents:        tax,
		DiscountCents:   discount,
		DeliveryCents:   deliveryFee,
		ProcessingCents: processing,
		TotalCents:      subtotal + tax + deliveryFee + processing - discount,
	}
}

func (s *Service) validatePayment(in PaymentInput) error {
	switch in.Method {
	case domain.PaymentMethodCredit:
		if !ValidCardNumber(in.CardNumber) {
			return &ValidationError{Field: "cardNumber", Msg: "must be 16 digits"}
		}
		if !ValidExpiry(in.CardExpiry, s.now()) {
			return &ValidationError{Field: "cardExpiry", Msg: "must be MM/YY and not in the past"}
		}
		if !ValidCVV(in.CardCVV) {
			return &ValidationError{Field: "cardCVV", Msg: "must be 3 or 4 digits"}
		}
		if strings.TrimSpace(in.CardName) == "" {
			return &ValidationError{Field: "cardName", Msg: "required"}
		}
	case domain.PaymentMethodUPI:
		if strings.TrimSpace(in.UPIID) == "" {
			return &ValidationError{Field: "upiId", Msg: "required"}
		}
	case domain.PaymentMethodBankTransfer:
		if err := requireFields(map[string]string{
			"accountNumber": in.AccountNumber,
			"ifscCode":      in.IFSCCode,
			"bankName":      in.BankName,
		}); err != nil {
			return err
		}
	case domain.PaymentMethodCOD:
	default:
		return &ValidationError{Field: "method", Msg: "unknown payment method"}
	}
	return nil
}

// update runs a guarded mutation that moves a wizard from one state to
// another (or keeps it in place when from == to).
func (s *Service) update(id string, from, to State, apply func(*Wizard) error) (*Wizard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.wizards[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if w.State != from {
		return nil, ErrInvalidTransition
	}
	if from != to && !canTransition(from, to) {
		return nil, ErrInvalidTransition
	}
	if err := apply(w); err != nil {
		return nil, err
	}
	w.State = to
	cp := *w
	return &cp, nil
}

func requireFields(fields map[string]string) error {
	for name, v := range fields {
		if strings.TrimSpace(v) == "" {
			return &ValidationError{Field: name, Msg: "required"}
		}
	}
	return nil
}

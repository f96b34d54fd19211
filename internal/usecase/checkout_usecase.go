package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"

	"nfarinati_checkout/internal/domain/entities"
	"nfarinati_checkout/internal/usecase/interfaces"
)

var (
	ErrGatewayNotConfigured = errors.New("payment gateway not configured")
	ErrEmptyOrderPayload    = errors.New("request body is empty")
	ErrInvalidOrderID       = errors.New("invalid orderId")
	ErrInvalidTotalAmount   = errors.New("invalid totalAmount")
)

// Client-facing messages. The storefront renders them as-is.
const (
	msgConfiguration      = "Chiave API del provider di pagamento non configurata"
	msgMissingOrderID     = "orderId mancante"
	msgInvalidTotalAmount = "totalAmount mancante o non valido"
	msgAuthentication     = "Autenticazione con il provider di pagamento fallita"
	msgMerchantResolution = "Impossibile determinare il merchant_code dell'account"
	msgCheckoutCreation   = "Impossibile generare la pagina di cassa"
)

// CheckoutError is a classified checkout failure.
type CheckoutError struct {
	Kind    entities.ErrorKind
	Message string
	Err     error
}

func (e *CheckoutError) Error() string {
	return e.Message
}

func (e *CheckoutError) Unwrap() error {
	return e.Err
}

// ICheckoutUseCase turns an order into a hosted checkout session.
type ICheckoutUseCase interface {
	CreateCheckout(ctx context.Context, orderPayload json.RawMessage) (entities.CheckoutSession, error)
}

// CheckoutOptions are the per-deployment checkout settings.
//
// When ResolveMerchant is set the account-info call runs before checkout
// creation and its merchant code is attached to the checkout. MerchantCode,
// when non-empty, is attached as-is.
type CheckoutOptions struct {
	ResolveMerchant bool
	MerchantCode    string
	Currency        string
	Description     string
	ReturnURL       string
}

type CheckoutUseCase struct {
	gateway interfaces.IPaymentGateway
	opts    CheckoutOptions
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(gateway interfaces.IPaymentGateway, opts CheckoutOptions) *CheckoutUseCase {
	if opts.Currency == "" {
		opts.Currency = "EUR"
	}
	return &CheckoutUseCase{gateway: gateway, opts: opts}
}

type orderPayload struct {
	OrderID     string   `json:"orderId"`
	TotalAmount *float64 `json:"totalAmount"`
}

func (u *CheckoutUseCase) CreateCheckout(ctx context.Context, payload json.RawMessage) (entities.CheckoutSession, error) {
	log.Printf("[checkout][usecase] create start payload_len=%d resolve_merchant=%t", len(payload), u.opts.ResolveMerchant)

	// The credential check comes first so that a misconfigured deployment
	// reports the same error whatever the client sends.
	if u.gateway == nil {
		log.Printf("[checkout][usecase] gateway not configured")
		return entities.CheckoutSession{}, &CheckoutError{Kind: entities.ErrorKindConfiguration, Message: msgConfiguration, Err: ErrGatewayNotConfigured}
	}

	order, err := decodeOrder(payload)
	if err != nil {
		log.Printf("[checkout][usecase] order decode failed err=%v", err)
		var ce *CheckoutError
		if errors.As(err, &ce) {
			return entities.CheckoutSession{}, ce
		}
		return entities.CheckoutSession{}, &CheckoutError{Kind: entities.ErrorKindInternal, Message: err.Error(), Err: err}
	}
	log.Printf("[checkout][usecase] order decoded order_id=%s total_amount=%.2f", order.Reference(), order.RoundedAmount())

	merchantCode := u.opts.MerchantCode
	if u.opts.ResolveMerchant {
		profile, err := u.gateway.ResolveMerchant(ctx)
		if err != nil {
			log.Printf("[checkout][usecase] merchant resolution failed order_id=%s err=%v", order.Reference(), err)
			return entities.CheckoutSession{}, classifyMerchantError(err)
		}
		merchantCode = strings.TrimSpace(profile.MerchantCode)
		if merchantCode == "" {
			log.Printf("[checkout][usecase] merchant code empty order_id=%s", order.Reference())
			return entities.CheckoutSession{}, &CheckoutError{Kind: entities.ErrorKindMerchantResolution, Message: msgMerchantResolution, Err: interfaces.ErrMerchantCodeMissing}
		}
		log.Printf("[checkout][usecase] merchant resolved order_id=%s merchant_code=%s", order.Reference(), merchantCode)
	}

	req := entities.CheckoutCreateRequest{
		Reference:    order.Reference(),
		Amount:       order.RoundedAmount(),
		Currency:     u.opts.Currency,
		MerchantCode: merchantCode,
		Description:  u.opts.Description,
		ReturnURL:    u.opts.ReturnURL,
	}

	session, err := u.gateway.CreateCheckout(ctx, req)
	if err != nil {
		log.Printf("[checkout][usecase] checkout creation failed order_id=%s err=%v", order.Reference(), err)
		return entities.CheckoutSession{}, classifyCheckoutError(err)
	}
	if strings.TrimSpace(session.ID) == "" || strings.TrimSpace(session.RedirectURL) == "" {
		log.Printf("[checkout][usecase] checkout created without id order_id=%s", order.Reference())
		return entities.CheckoutSession{}, &CheckoutError{Kind: entities.ErrorKindCheckoutCreation, Message: msgCheckoutCreation, Err: interfaces.ErrCheckoutIDMissing}
	}

	log.Printf("[checkout][usecase] create success order_id=%s checkout_id=%s", order.Reference(), session.ID)
	return session, nil
}

func decodeOrder(payload json.RawMessage) (entities.OrderRequest, error) {
	if len(strings.TrimSpace(string(payload))) == 0 {
		return entities.OrderRequest{}, ErrEmptyOrderPayload
	}

	var p orderPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return entities.OrderRequest{}, err
	}

	order := entities.OrderRequest{OrderID: p.OrderID}
	if order.Reference() == "" {
		return entities.OrderRequest{}, &CheckoutError{Kind: entities.ErrorKindInvalidOrder, Message: msgMissingOrderID, Err: ErrInvalidOrderID}
	}
	if p.TotalAmount == nil {
		return entities.OrderRequest{}, &CheckoutError{Kind: entities.ErrorKindInvalidOrder, Message: msgInvalidTotalAmount, Err: ErrInvalidTotalAmount}
	}
	order.TotalAmount = *p.TotalAmount
	if !order.ValidAmount() {
		return entities.OrderRequest{}, &CheckoutError{Kind: entities.ErrorKindInvalidOrder, Message: msgInvalidTotalAmount, Err: ErrInvalidTotalAmount}
	}
	return order, nil
}

func classifyMerchantError(err error) *CheckoutError {
	var pe *interfaces.ProviderError
	switch {
	case errors.As(err, &pe):
		return &CheckoutError{Kind: entities.ErrorKindAuthentication, Message: withDetail(msgAuthentication, pe.Message), Err: err}
	case errors.Is(err, interfaces.ErrMerchantCodeMissing):
		return &CheckoutError{Kind: entities.ErrorKindMerchantResolution, Message: msgMerchantResolution, Err: err}
	case errors.Is(err, context.DeadlineExceeded):
		return &CheckoutError{Kind: entities.ErrorKindAuthentication, Message: withDetail(msgAuthentication, "timeout"), Err: err}
	default:
		return &CheckoutError{Kind: entities.ErrorKindInternal, Message: err.Error(), Err: err}
	}
}

func classifyCheckoutError(err error) *CheckoutError {
	var pe *interfaces.ProviderError
	switch {
	case errors.As(err, &pe):
		return &CheckoutError{Kind: entities.ErrorKindCheckoutCreation, Message: withDetail(msgCheckoutCreation, pe.Message), Err: err}
	case errors.Is(err, interfaces.ErrCheckoutIDMissing):
		return &CheckoutError{Kind: entities.ErrorKindCheckoutCreation, Message: msgCheckoutCreation, Err: err}
	case errors.Is(err, context.DeadlineExceeded):
		return &CheckoutError{Kind: entities.ErrorKindCheckoutCreation, Message: withDetail(msgCheckoutCreation, "timeout"), Err: err}
	default:
		return &CheckoutError{Kind: entities.ErrorKindInternal, Message: err.Error(), Err: err}
	}
}

func withDetail(msg, detail string) string {
	detail = strings.TrimSpace(detail)
	if detail == "" {
		return msg
	}
	return msg + ": " + detail
}

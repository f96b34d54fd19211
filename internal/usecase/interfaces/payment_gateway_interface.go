package interfaces

import (
	"context"
	"errors"
	"fmt"

	"nfarinati_checkout/internal/domain/entities"
)

//go:generate mockgen -source=payment_gateway_interface.go -destination=mocks/payment_gateway_interface_mock.go -package=mock_interfaces

var (
	ErrMerchantCodeMissing = errors.New("merchant code missing from account info")
	ErrCheckoutIDMissing   = errors.New("checkout id missing from provider response")
)

// IPaymentGateway abstracts the hosted-checkout provider (SumUp by default).
//
// ResolveMerchant reads the account behind the configured credential;
// CreateCheckout opens a pending payment and returns its hosted page URL.
// Both return *ProviderError when the provider answers with a non-2xx status.
type IPaymentGateway interface {
	ResolveMerchant(ctx context.Context) (entities.MerchantProfile, error)
	CreateCheckout(ctx context.Context, req entities.CheckoutCreateRequest) (entities.CheckoutSession, error)
}

// ProviderError is a non-2xx answer from the payment provider.
type ProviderError struct {
	Operation  string
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s failed status=%d: %s", e.Operation, e.StatusCode, e.Message)
}

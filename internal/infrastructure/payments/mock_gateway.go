package payments

import (
	"context"
	"log"
	"strings"

	"nfarinati_checkout/internal/domain/entities"
	"nfarinati_checkout/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const mockMerchantCode = "MOCKMERCHANT"

// MockGateway answers without network access. Enabled with PAYMENT_GATEWAY_MOCK.
type MockGateway struct {
	checkoutPageURL string
}

var _ interfaces.IPaymentGateway = (*MockGateway)(nil)

func NewMockGateway(checkoutPageURL string) *MockGateway {
	log.Printf("[checkout][gateway] mock mode enabled")
	return &MockGateway{checkoutPageURL: strings.TrimRight(FirstNonEmpty(checkoutPageURL, "https://pay.sumup.com/checkout"), "/")}
}

func (g *MockGateway) ResolveMerchant(_ context.Context) (entities.MerchantProfile, error) {
	return entities.MerchantProfile{MerchantCode: mockMerchantCode}, nil
}

func (g *MockGateway) CreateCheckout(_ context.Context, req entities.CheckoutCreateRequest) (entities.CheckoutSession, error) {
	id := uuid.NewString()
	log.Printf("[checkout][gateway] mock create success reference=%s checkout_id=%s", req.Reference, id)
	return entities.CheckoutSession{ID: id, RedirectURL: g.checkoutPageURL + "/" + id}, nil
}

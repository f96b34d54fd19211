package payments

import (
	"context"
	"errors"
	"log"
	"strings"

	"nfarinati_checkout/internal/domain/entities"
	"nfarinati_checkout/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

var (
	ErrMissingMercadoPagoAccessToken   = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
	ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
	ErrMercadoPagoMerchantNotSupported = errors.New("mercado pago does not expose merchant resolution")
)

// MercadoPagoGateway opens Checkout Pro preferences; the hosted page is the
// preference init_point.
type MercadoPagoGateway struct {
	client preference.Client
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if strings.TrimSpace(accessToken) == "" {
		log.Printf("[checkout][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[checkout][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[checkout][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: preference.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) ResolveMerchant(_ context.Context) (entities.MerchantProfile, error) {
	return entities.MerchantProfile{}, ErrMercadoPagoMerchantNotSupported
}

func (g *MercadoPagoGateway) CreateCheckout(ctx context.Context, req entities.CheckoutCreateRequest) (entities.CheckoutSession, error) {
	if g == nil || g.client == nil {
		log.Printf("[checkout][gateway] gateway not configured")
		return entities.CheckoutSession{}, ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[checkout][gateway] preference create start reference=%s amount=%.2f", req.Reference, req.Amount)

	resp, err := g.client.Create(ctx, toPreferenceRequest(req))
	if err != nil {
		log.Printf("[checkout][gateway] sdk create failed reference=%s err=%v", req.Reference, err)
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return entities.CheckoutSession{}, err
		}
		return entities.CheckoutSession{}, &interfaces.ProviderError{Operation: "POST /checkout/preferences", Message: providerMessage([]byte(err.Error()))}
	}
	if resp == nil || strings.TrimSpace(resp.ID) == "" || strings.TrimSpace(resp.InitPoint) == "" {
		log.Printf("[checkout][gateway] preference without id reference=%s", req.Reference)
		return entities.CheckoutSession{}, interfaces.ErrCheckoutIDMissing
	}

	log.Printf("[checkout][gateway] preference create success reference=%s preference_id=%s", req.Reference, resp.ID)
	return entities.CheckoutSession{ID: resp.ID, RedirectURL: resp.InitPoint}, nil
}

func toPreferenceRequest(req entities.CheckoutCreateRequest) preference.Request {
	out := preference.Request{
		ExternalReference: req.Reference,
		Items: []preference.ItemRequest{
			{
				ID:         req.Reference,
				Title:      FirstNonEmpty(req.Description, "Ordine "+req.Reference),
				Quantity:   1,
				UnitPrice:  entities.RoundToCents(req.Amount),
				CurrencyID: req.Currency,
			},
		},
	}
	if req.ReturnURL != "" {
		out.BackURLs = &preference.BackURLsRequest{Success: req.ReturnURL}
		out.AutoReturn = "approved"
	}
	return out
}

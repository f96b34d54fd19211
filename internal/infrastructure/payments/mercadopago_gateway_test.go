package payments

import (
	"context"
	"errors"
	"testing"

	"nfarinati_checkout/internal/domain/entities"
)

func TestNewMercadoPagoGateway_MissingToken(t *testing.T) {
	g, err := NewMercadoPagoGateway(" ")
	if !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
		t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
	}
	if g != nil {
		t.Fatalf("expected nil gateway")
	}
}

func TestMercadoPagoGateway_NotConfigured(t *testing.T) {
	var g *MercadoPagoGateway
	_, err := g.CreateCheckout(context.Background(), entities.CheckoutCreateRequest{Reference: "A100"})
	if !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
		t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
	}
}

func TestMercadoPagoGateway_ResolveMerchantUnsupported(t *testing.T) {
	g := &MercadoPagoGateway{}
	_, err := g.ResolveMerchant(context.Background())
	if !errors.Is(err, ErrMercadoPagoMerchantNotSupported) {
		t.Fatalf("expected ErrMercadoPagoMerchantNotSupported, got %v", err)
	}
}

func TestToPreferenceRequest(t *testing.T) {
	req := toPreferenceRequest(entities.CheckoutCreateRequest{
		Reference:   "A100",
		Amount:      10.505,
		Currency:    "EUR",
		Description: "Ordine N'Farinati Delivery",
		ReturnURL:   "https://nfarinati.pages.dev/successo.html",
	})

	if req.ExternalReference != "A100" {
		t.Fatalf("unexpected external reference %q", req.ExternalReference)
	}
	if len(req.Items) != 1 {
		t.Fatalf("expected one item, got %d", len(req.Items))
	}
	item := req.Items[0]
	if item.UnitPrice != 10.51 || item.Quantity != 1 || item.CurrencyID != "EUR" {
		t.Fatalf("unexpected item: %+v", item)
	}
	if item.Title != "Ordine N'Farinati Delivery" {
		t.Fatalf("unexpected title %q", item.Title)
	}
	if req.BackURLs == nil || req.BackURLs.Success != "https://nfarinati.pages.dev/successo.html" {
		t.Fatalf("unexpected back urls: %+v", req.BackURLs)
	}
	if req.AutoReturn != "approved" {
		t.Fatalf("unexpected auto return %q", req.AutoReturn)
	}

	noReturn := toPreferenceRequest(entities.CheckoutCreateRequest{Reference: "B7", Amount: 3})
	if noReturn.BackURLs != nil {
		t.Fatalf("expected no back urls")
	}
	if noReturn.Items[0].Title != "Ordine B7" {
		t.Fatalf("unexpected fallback title %q", noReturn.Items[0].Title)
	}
}

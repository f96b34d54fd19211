package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"nfarinati_checkout/internal/domain/entities"
	"nfarinati_checkout/internal/usecase/interfaces"
)

var ErrMissingSumUpAPIKey = errors.New("missing SUMUP_API_KEY")

const (
	sumupMePath        = "/v0.1/me"
	sumupCheckoutsPath = "/v0.1/checkouts"

	defaultSumUpTimeout = 10 * time.Second
)

// SumUpOptions configures endpoints and the per-call timeout.
type SumUpOptions struct {
	BaseURL         string
	CheckoutPageURL string
	Timeout         time.Duration
	HTTPClient      *http.Client
}

// SumUpGateway talks to the SumUp REST API with a bearer API key.
type SumUpGateway struct {
	apiKey          string
	baseURL         string
	checkoutPageURL string
	timeout         time.Duration
	client          *http.Client
}

var _ interfaces.IPaymentGateway = (*SumUpGateway)(nil)

func NewSumUpGateway(apiKey string, opts SumUpOptions) (*SumUpGateway, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		log.Printf("[checkout][gateway] missing SUMUP_API_KEY")
		return nil, ErrMissingSumUpAPIKey
	}

	g := &SumUpGateway{
		apiKey:          apiKey,
		baseURL:         strings.TrimRight(FirstNonEmpty(opts.BaseURL, "https://api.sumup.com"), "/"),
		checkoutPageURL: strings.TrimRight(FirstNonEmpty(opts.CheckoutPageURL, "https://pay.sumup.com/checkout"), "/"),
		timeout:         opts.Timeout,
		client:          opts.HTTPClient,
	}
	if g.timeout <= 0 {
		g.timeout = defaultSumUpTimeout
	}
	if g.client == nil {
		g.client = &http.Client{}
	}
	log.Printf("[checkout][gateway] SumUp client initialized base_url=%s timeout=%s", g.baseURL, g.timeout)
	return g, nil
}

type sumupMeResponse struct {
	MerchantProfile *struct {
		MerchantCode string `json:"merchant_code"`
	} `json:"merchant_profile"`
}

func (g *SumUpGateway) ResolveMerchant(ctx context.Context) (entities.MerchantProfile, error) {
	log.Printf("[checkout][gateway] account info start")

	status, raw, err := g.do(ctx, http.MethodGet, sumupMePath, nil)
	if err != nil {
		log.Printf("[checkout][gateway] account info request failed err=%v", err)
		return entities.MerchantProfile{}, err
	}
	if !isSuccess(status) {
		msg := providerMessage(raw)
		log.Printf("[checkout][gateway] account info rejected status=%d message=%q", status, msg)
		return entities.MerchantProfile{}, &interfaces.ProviderError{Operation: "GET " + sumupMePath, StatusCode: status, Message: msg}
	}

	var resp sumupMeResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		log.Printf("[checkout][gateway] account info decode failed err=%v", err)
		return entities.MerchantProfile{}, fmt.Errorf("decode sumup account info: %w", err)
	}
	if resp.MerchantProfile == nil || strings.TrimSpace(resp.MerchantProfile.MerchantCode) == "" {
		log.Printf("[checkout][gateway] account info without merchant code")
		return entities.MerchantProfile{}, interfaces.ErrMerchantCodeMissing
	}

	log.Printf("[checkout][gateway] account info success merchant_code=%s", resp.MerchantProfile.MerchantCode)
	return entities.MerchantProfile{MerchantCode: strings.TrimSpace(resp.MerchantProfile.MerchantCode)}, nil
}

type sumupCheckoutRequest struct {
	CheckoutReference string  `json:"checkout_reference"`
	Amount            float64 `json:"amount"`
	Currency          string  `json:"currency"`
	MerchantCode      string  `json:"merchant_code,omitempty"`
	Description       string  `json:"description,omitempty"`
	ReturnURL         string  `json:"return_url,omitempty"`
}

type sumupCheckoutResponse struct {
	ID string `json:"id"`
}

func (g *SumUpGateway) CreateCheckout(ctx context.Context, req entities.CheckoutCreateRequest) (entities.CheckoutSession, error) {
	log.Printf("[checkout][gateway] create start reference=%s amount=%.2f currency=%s", req.Reference, req.Amount, req.Currency)

	payload := sumupCheckoutRequest{
		CheckoutReference: req.Reference,
		Amount:            entities.RoundToCents(req.Amount),
		Currency:          req.Currency,
		MerchantCode:      req.MerchantCode,
		Description:       req.Description,
		ReturnURL:         req.ReturnURL,
	}

	status, raw, err := g.do(ctx, http.MethodPost, sumupCheckoutsPath, payload)
	if err != nil {
		log.Printf("[checkout][gateway] create request failed reference=%s err=%v", req.Reference, err)
		return entities.CheckoutSession{}, err
	}
	if !isSuccess(status) {
		msg := providerMessage(raw)
		log.Printf("[checkout][gateway] create rejected reference=%s status=%d message=%q", req.Reference, status, msg)
		return entities.CheckoutSession{}, &interfaces.ProviderError{Operation: "POST " + sumupCheckoutsPath, StatusCode: status, Message: msg}
	}

	var resp sumupCheckoutResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		log.Printf("[checkout][gateway] create decode failed reference=%s err=%v", req.Reference, err)
		return entities.CheckoutSession{}, fmt.Errorf("decode sumup checkout: %w", err)
	}
	if strings.TrimSpace(resp.ID) == "" {
		log.Printf("[checkout][gateway] create without id reference=%s", req.Reference)
		return entities.CheckoutSession{}, interfaces.ErrCheckoutIDMissing
	}

	log.Printf("[checkout][gateway] create success reference=%s checkout_id=%s", req.Reference, resp.ID)
	return entities.CheckoutSession{ID: resp.ID, RedirectURL: g.checkoutPageURL + "/" + resp.ID}, nil
}

// do runs one request under its own timeout and returns status and body.
func (g *SumUpGateway) do(ctx context.Context, method, path string, body any) (int, []byte, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return 0, nil, err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reader)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, raw, nil
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

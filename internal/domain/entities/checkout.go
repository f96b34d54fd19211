package entities

// MerchantProfile is the subset of the provider account info we rely on.
type MerchantProfile struct {
	MerchantCode string `json:"merchant_code"`
}

// CheckoutCreateRequest is what the use case hands to a payment gateway.
//
// Amount is already rounded to cents. MerchantCode is empty when merchant
// resolution is disabled.
type CheckoutCreateRequest struct {
	Reference    string
	Amount       float64
	Currency     string
	MerchantCode string
	Description  string
	ReturnURL    string
}

// CheckoutSession is the provider-side pending payment.
type CheckoutSession struct {
	ID          string `json:"id"`
	RedirectURL string `json:"redirect_url"`
}

// CheckoutResult is the outcome of one checkout request.
//
// Exactly one of RedirectURL/Error is set, matching Success.
type CheckoutResult struct {
	Success     bool
	RedirectURL string
	Error       string
	ErrorKind   ErrorKind
}

// ErrorKind is the machine-readable failure category exposed to clients.
type ErrorKind string

const (
	ErrorKindMethodNotAllowed   ErrorKind = "METHOD_NOT_ALLOWED"
	ErrorKindConfiguration      ErrorKind = "CONFIGURATION_ERROR"
	ErrorKindInvalidOrder       ErrorKind = "INVALID_ORDER"
	ErrorKindAuthentication     ErrorKind = "AUTHENTICATION_ERROR"
	ErrorKindMerchantResolution ErrorKind = "MERCHANT_RESOLUTION_ERROR"
	ErrorKindCheckoutCreation   ErrorKind = "CHECKOUT_CREATION_ERROR"
	ErrorKindInternal           ErrorKind = "INTERNAL_ERROR"
)

func SucceededCheckout(redirectURL string) CheckoutResult {
	return CheckoutResult{Success: true, RedirectURL: redirectURL}
}

func FailedCheckout(kind ErrorKind, message string) CheckoutResult {
	return CheckoutResult{Success: false, Error: message, ErrorKind: kind}
}

package response

import "nfarinati_checkout/internal/domain/entities"

// CheckoutResponse is the body returned by POST /paga.
//
// Exactly one of RedirectURL/Error is set; ErrorKind accompanies Error.
type CheckoutResponse struct {
	Success     bool   `json:"success"`
	RedirectURL string `json:"redirectUrl,omitempty"`
	Error       string `json:"error,omitempty"`
	ErrorKind   string `json:"errorKind,omitempty"`
}

func FromCheckoutResult(r entities.CheckoutResult) CheckoutResponse {
	if r.Success {
		return CheckoutResponse{Success: true, RedirectURL: r.RedirectURL}
	}

	kind := r.ErrorKind
	if kind == "" {
		kind = entities.ErrorKindInternal
	}
	msg := r.Error
	if msg == "" {
		msg = string(kind)
	}
	return CheckoutResponse{Success: false, Error: msg, ErrorKind: string(kind)}
}

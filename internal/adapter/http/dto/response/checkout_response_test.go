package response

import (
	"encoding/json"
	"testing"

	"nfarinati_checkout/internal/domain/entities"
)

func TestFromCheckoutResult(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		res := FromCheckoutResult(entities.SucceededCheckout("https://pay.sumup.com/checkout/abc123"))
		b, _ := json.Marshal(res)
		if string(b) != `{"success":true,"redirectUrl":"https://pay.sumup.com/checkout/abc123"}` {
			t.Fatalf("unexpected body: %s", b)
		}
	})

	t.Run("failure", func(t *testing.T) {
		res := FromCheckoutResult(entities.FailedCheckout(entities.ErrorKindCheckoutCreation, "Impossibile generare la pagina di cassa: Invalid amount"))
		b, _ := json.Marshal(res)
		want := `{"success":false,"error":"Impossibile generare la pagina di cassa: Invalid amount","errorKind":"CHECKOUT_CREATION_ERROR"}`
		if string(b) != want {
			t.Fatalf("unexpected body: %s", b)
		}
	})

	t.Run("failure never drops the error field", func(t *testing.T) {
		res := FromCheckoutResult(entities.CheckoutResult{Success: false})
		if res.Error != "INTERNAL_ERROR" || res.ErrorKind != "INTERNAL_ERROR" || res.RedirectURL != "" {
			t.Fatalf("unexpected response: %+v", res)
		}
	})
}

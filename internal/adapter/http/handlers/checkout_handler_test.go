package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"nfarinati_checkout/internal/adapter/http/handlers/mocks"
	"nfarinati_checkout/internal/domain/entities"
	"nfarinati_checkout/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type failingReadCloser struct{}

func (failingReadCloser) Read(_ []byte) (int, error) { return 0, errors.New("read error") }
func (failingReadCloser) Close() error               { return nil }

type countingObserver struct {
	outcomes []string
}

func (o *countingObserver) ObserveCheckout(outcome string) {
	o.outcomes = append(o.outcomes, outcome)
}

func newCheckoutRouter(h *CheckoutHandler) *gin.Engine {
	r := gin.New()
	r.Any("/paga", h.Paga)
	return r
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("body is not json: %s", w.Body.String())
	}
	return body
}

func TestCheckoutHandler_Paga_Methods(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("options preflight", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newCheckoutRouter(NewCheckoutHandler(uc, nil))

		req := httptest.NewRequest(http.MethodOptions, "/paga", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.Len() != 0 {
			t.Fatalf("expected empty body, got %q", w.Body.String())
		}
	})

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete, http.MethodPatch} {
		t.Run("rejects "+method, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockICheckoutUseCase(ctrl)
			r := newCheckoutRouter(NewCheckoutHandler(uc, nil))

			req := httptest.NewRequest(method, "/paga", bytes.NewBufferString(`{"orderId":"A100","totalAmount":12.5}`))
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Fatalf("expected 405, got %d", w.Code)
			}
			if w.Body.String() != methodNotAllowedBody {
				t.Fatalf("unexpected body %q", w.Body.String())
			}
		})
	}
}

func TestCheckoutHandler_Paga_Post(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		obs := &countingObserver{}
		r := newCheckoutRouter(NewCheckoutHandler(uc, obs))

		uc.EXPECT().CreateCheckout(gomock.Any(), json.RawMessage(`{"orderId":"A100","totalAmount":12.5}`)).
			Return(entities.CheckoutSession{ID: "abc123", RedirectURL: "https://pay.sumup.com/checkout/abc123"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/paga", bytes.NewBufferString(`{"orderId":"A100","totalAmount":12.5}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["success"] != true || body["redirectUrl"] != "https://pay.sumup.com/checkout/abc123" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if _, ok := body["error"]; ok {
			t.Fatalf("success body must not carry error: %s", w.Body.String())
		}
		if len(obs.outcomes) != 1 || obs.outcomes[0] != "success" {
			t.Fatalf("unexpected outcomes: %v", obs.outcomes)
		}
	})

	businessFailures := []entities.ErrorKind{
		entities.ErrorKindConfiguration,
		entities.ErrorKindInvalidOrder,
		entities.ErrorKindAuthentication,
		entities.ErrorKindMerchantResolution,
		entities.ErrorKindCheckoutCreation,
	}
	for _, kind := range businessFailures {
		t.Run(string(kind), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockICheckoutUseCase(ctrl)
			obs := &countingObserver{}
			r := newCheckoutRouter(NewCheckoutHandler(uc, obs))

			uc.EXPECT().CreateCheckout(gomock.Any(), gomock.Any()).
				Return(entities.CheckoutSession{}, &usecase.CheckoutError{Kind: kind, Message: "failure detail"})

			req := httptest.NewRequest(http.MethodPost, "/paga", bytes.NewBufferString(`{"orderId":"A100","totalAmount":12.5}`))
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", w.Code)
			}
			body := decodeBody(t, w)
			if body["success"] != false || body["error"] != "failure detail" || body["errorKind"] != string(kind) {
				t.Fatalf("unexpected body: %s", w.Body.String())
			}
			if _, ok := body["redirectUrl"]; ok {
				t.Fatalf("failure body must not carry redirectUrl: %s", w.Body.String())
			}
			if len(obs.outcomes) != 1 || obs.outcomes[0] != string(kind) {
				t.Fatalf("unexpected outcomes: %v", obs.outcomes)
			}
		})
	}

	t.Run("internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newCheckoutRouter(NewCheckoutHandler(uc, nil))

		uc.EXPECT().CreateCheckout(gomock.Any(), gomock.Any()).
			Return(entities.CheckoutSession{}, &usecase.CheckoutError{Kind: entities.ErrorKindInternal, Message: "unexpected end of JSON input"})

		req := httptest.NewRequest(http.MethodPost, "/paga", bytes.NewBufferString(`{`))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["success"] != false || body["error"] != "unexpected end of JSON input" || body["errorKind"] != "INTERNAL_ERROR" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("unclassified error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newCheckoutRouter(NewCheckoutHandler(uc, nil))

		uc.EXPECT().CreateCheckout(gomock.Any(), gomock.Any()).Return(entities.CheckoutSession{}, errors.New("boom"))

		req := httptest.NewRequest(http.MethodPost, "/paga", bytes.NewBufferString(`{}`))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["error"] != "boom" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("body read error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newCheckoutRouter(NewCheckoutHandler(uc, nil))

		req := httptest.NewRequest(http.MethodPost, "/paga", nil)
		req.Body = failingReadCloser{}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestCheckoutHandler_Paga_RecordsServerErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name       string
		err        error
		wantErrors int
	}{
		{name: "internal fault", err: errors.New("boom"), wantErrors: 1},
		{name: "business failure", err: &usecase.CheckoutError{Kind: entities.ErrorKindAuthentication, Message: "denied"}, wantErrors: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockICheckoutUseCase(ctrl)
			uc.EXPECT().CreateCheckout(gomock.Any(), gomock.Any()).Return(entities.CheckoutSession{}, tc.err)

			recorded := -1
			r := gin.New()
			r.Use(func(c *gin.Context) {
				c.Next()
				recorded = len(c.Errors)
			})
			r.Any("/paga", NewCheckoutHandler(uc, nil).Paga)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/paga", bytes.NewBufferString(`{}`)))

			if recorded != tc.wantErrors {
				t.Fatalf("expected %d context errors, got %d", tc.wantErrors, recorded)
			}
		})
	}
}

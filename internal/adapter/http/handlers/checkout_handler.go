package handlers

import (
	"errors"
	"log"
	"net/http"

	response "nfarinati_checkout/internal/adapter/http/dto/response"
	"nfarinati_checkout/internal/adapter/http/middleware"
	"nfarinati_checkout/internal/domain/entities"
	"nfarinati_checkout/internal/usecase"
	"nfarinati_checkout/pkg"

	"github.com/gin-gonic/gin"
)

const methodNotAllowedBody = "Metodo non consentito"

// CheckoutObserver receives one outcome per POST ("success" or an error kind).
type CheckoutObserver interface {
	ObserveCheckout(outcome string)
}

// CheckoutHandler serves the storefront payment endpoint.
type CheckoutHandler struct {
	usecase  usecase.ICheckoutUseCase
	observer CheckoutObserver
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase, observer CheckoutObserver) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc, observer: observer}
}

// Paga creates a hosted checkout for the posted order.
//
// @Summary      Create a hosted checkout
// @Description  Turns {orderId, totalAmount} into a provider checkout page URL. Business failures answer 200 with success=false; 500 is reserved for internal faults.
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        order  body      OrderRequestDoc  true  "Order"
// @Success      200    {object}  response.CheckoutResponse
// @Failure      405    {string}  string
// @Failure      500    {object}  response.CheckoutResponse
// @Router       /paga [post]
func (h *CheckoutHandler) Paga(c *gin.Context) {
	switch c.Request.Method {
	case http.MethodOptions:
		c.Status(http.StatusOK)
		return
	case http.MethodPost:
	default:
		log.Printf("[checkout][handler] method not allowed method=%s", c.Request.Method)
		c.String(http.StatusMethodNotAllowed, methodNotAllowedBody)
		return
	}

	requestID := c.GetString(middleware.RequestIDKey)
	log.Printf("[checkout][handler] create start request_id=%s", requestID)

	raw, err := c.GetRawData()
	if err != nil {
		log.Printf("[checkout][handler] body read failed request_id=%s err=%v", requestID, err)
		h.fail(c, pkg.NewDomainError(string(entities.ErrorKindInternal), err.Error(), err, http.StatusInternalServerError))
		return
	}

	session, err := h.usecase.CreateCheckout(c.Request.Context(), raw)
	if err != nil {
		appErr := mapCheckoutError(err)
		log.Printf("[checkout][handler] create failed request_id=%s kind=%s err=%v", requestID, appErr.Code, err)
		h.fail(c, appErr)
		return
	}

	log.Printf("[checkout][handler] create success request_id=%s checkout_id=%s", requestID, session.ID)
	h.observe("success")
	c.JSON(http.StatusOK, response.FromCheckoutResult(entities.SucceededCheckout(session.RedirectURL)))
}

func (h *CheckoutHandler) fail(c *gin.Context, appErr *pkg.AppError) {
	h.observe(appErr.Code)
	if appErr.IsServerError() {
		_ = c.Error(appErr)
	}
	result := entities.FailedCheckout(entities.ErrorKind(appErr.Code), appErr.Message)
	c.JSON(appErr.HTTPStatus, response.FromCheckoutResult(result))
}

func (h *CheckoutHandler) observe(outcome string) {
	if h.observer != nil {
		h.observer.ObserveCheckout(outcome)
	}
}

// mapCheckoutError renders business failures as 200 and internal faults as 500.
func mapCheckoutError(err error) *pkg.AppError {
	var ce *usecase.CheckoutError
	if !errors.As(err, &ce) {
		return pkg.NewDomainError(string(entities.ErrorKindInternal), err.Error(), err, http.StatusInternalServerError)
	}

	switch ce.Kind {
	case entities.ErrorKindConfiguration,
		entities.ErrorKindInvalidOrder,
		entities.ErrorKindAuthentication,
		entities.ErrorKindMerchantResolution,
		entities.ErrorKindCheckoutCreation:
		return pkg.NewDomainError(string(ce.Kind), ce.Message, ce.Err, http.StatusOK)
	default:
		return pkg.NewDomainError(string(entities.ErrorKindInternal), ce.Message, ce.Err, http.StatusInternalServerError)
	}
}

// OrderRequestDoc documents the POST /paga body.
type OrderRequestDoc struct {
	OrderID     string  `json:"orderId" example:"A100"`
	TotalAmount float64 `json:"totalAmount" example:"12.5"`
}

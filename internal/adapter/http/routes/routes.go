package routes

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	_ "nfarinati_checkout/docs" // generated by swag init
	response "nfarinati_checkout/internal/adapter/http/dto/response"
	"nfarinati_checkout/internal/adapter/http/handlers"
	"nfarinati_checkout/internal/adapter/http/middleware"
	"nfarinati_checkout/internal/config"
	"nfarinati_checkout/internal/domain/entities"
	"nfarinati_checkout/internal/infrastructure/metrics"
	"nfarinati_checkout/internal/infrastructure/payments"
	"nfarinati_checkout/internal/infrastructure/secrets"
	"nfarinati_checkout/internal/usecase"
	"nfarinati_checkout/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const secretLookupTimeout = 5 * time.Second

// Run will start the server
func Run() {
	cfg := config.Load()
	router := NewRouter(cfg)

	err := router.Run(":" + strconv.Itoa(cfg.Port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// NewRouter wires the checkout stack described by cfg into a gin engine.
func NewRouter(cfg *config.Config) *gin.Engine {
	router := gin.New()
	serverMetrics := metrics.NewServerMetrics("checkout")
	setMiddlewares(router, serverMetrics)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(serverMetrics.Handler()))

	getRoutes(router, cfg, serverMetrics)
	return router
}

func getRoutes(router *gin.Engine, cfg *config.Config, serverMetrics *metrics.ServerMetrics) {
	gateway := buildGateway(cfg)

	checkoutUseCase := usecase.NewCheckoutUseCase(gateway, usecase.CheckoutOptions{
		ResolveMerchant: cfg.ResolveMerchant(),
		MerchantCode:    cfg.SumUpMerchantCode,
		Currency:        cfg.Checkout.Currency,
		Description:     cfg.Checkout.Description,
		ReturnURL:       cfg.Checkout.ReturnURL,
	})
	checkoutHandler := handlers.NewCheckoutHandler(checkoutUseCase, serverMetrics)

	addCheckoutRoutes(router, checkoutHandler)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
}

// buildGateway returns nil when the provider credential is missing; the use
// case then answers every checkout with a configuration error.
func buildGateway(cfg *config.Config) interfaces.IPaymentGateway {
	if cfg.GatewayMock {
		return payments.NewMockGateway(cfg.SumUpCheckoutPageURL)
	}

	var paymentGateway interfaces.IPaymentGateway
	switch cfg.PaymentProvider {
	case config.ProviderMercadoPago:
		mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken)
		if err != nil {
			log.Printf("Mercado Pago gateway not configured: %v", err)
		} else {
			paymentGateway = mpGateway
		}
	default:
		sumupGateway, err := payments.NewSumUpGateway(resolveSumUpAPIKey(cfg), payments.SumUpOptions{
			BaseURL:         cfg.SumUpAPIBaseURL,
			CheckoutPageURL: cfg.SumUpCheckoutPageURL,
			Timeout:         cfg.SumUpHTTPTimeout,
		})
		if err != nil {
			log.Printf("SumUp gateway not configured: %v", err)
		} else {
			paymentGateway = sumupGateway
		}
	}
	return paymentGateway
}

func resolveSumUpAPIKey(cfg *config.Config) string {
	if cfg.SumUpAPIKey != "" || cfg.SumUpAPIKeySecretID == "" {
		return cfg.SumUpAPIKey
	}

	ctx, cancel := context.WithTimeout(context.Background(), secretLookupTimeout)
	defer cancel()

	resolver, err := secrets.NewResolverFromEnv(ctx, cfg.AWSRegion)
	if err != nil {
		log.Printf("Secrets Manager client not configured: %v", err)
		return ""
	}
	apiKey, err := resolver.Resolve(ctx, cfg.SumUpAPIKeySecretID)
	if err != nil {
		log.Printf("SumUp API key lookup failed secret_id=%s: %v", cfg.SumUpAPIKeySecretID, err)
		return ""
	}
	return apiKey
}

func setMiddlewares(router *gin.Engine, serverMetrics *metrics.ServerMetrics) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(recoverWithCheckoutError))
	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics(serverMetrics))
}

// recoverWithCheckoutError answers a panic with the regular failure body.
func recoverWithCheckoutError(c *gin.Context, recovered interface{}) {
	log.Printf("Recovered from panic: %v", recovered)
	result := entities.FailedCheckout(entities.ErrorKindInternal, fmt.Sprint(recovered))
	c.AbortWithStatusJSON(http.StatusInternalServerError, response.FromCheckoutResult(result))
}

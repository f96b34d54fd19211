package routes

import (
	"nfarinati_checkout/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPaga = "/paga"
)

// addCheckoutRoutes registers every method on /paga; the handler gates them.
// Methods gin has no tree for (PURGE, PROPFIND, ...) land in NoRoute.
func addCheckoutRoutes(router *gin.Engine, checkoutHandler *handlers.CheckoutHandler) {
	router.Any(PathPaga, checkoutHandler.Paga)
	router.NoRoute(func(c *gin.Context) {
		if c.Request.URL.Path == PathPaga {
			checkoutHandler.Paga(c)
		}
	})
}

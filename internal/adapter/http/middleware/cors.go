package middleware

import "github.com/gin-gonic/gin"

// CORSHeaders are attached to every response, whatever the outcome.
var CORSHeaders = map[string]string{
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Methods": "POST, OPTIONS",
	"Access-Control-Allow-Headers": "Content-Type, Authorization",
}

func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		for k, v := range CORSHeaders {
			h.Set(k, v)
		}
		c.Next()
	}
}

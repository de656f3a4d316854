package httpx

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Principal is the acting staff identity resolved upstream by the auth
// layer. The core trusts it; role enforcement happens in the services.
type Principal struct {
	StaffID string
	Role    string
}

const principalKey = "principal"

func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set("rid", rid)
		c.Writer.Header().Set("X-Request-ID", rid)
		c.Next()
	}
}

func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		rid, _ := c.Get("rid")
		log.Printf("[http] rid=%v %s %s status=%d dur=%s",
			rid, c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}

// ResolvePrincipal reads the staff identity headers set by the gateway
// and makes them available to handlers. Missing headers are fine for
// public routes; handlers that need a principal check for one.
func ResolvePrincipal() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Staff-ID")
		if id != "" {
			c.Set(principalKey, Principal{
				StaffID: id,
				Role:    c.GetHeader("X-Staff-Role"),
			})
		}
		c.Next()
	}
}

// GetPrincipal returns the resolved principal, if any.
func GetPrincipal(c *gin.Context) (Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return Principal{}, false
	}
	p, ok := v.(Principal)
	return p, ok
}

package i

import "github.com/gin-gonic/gin"

// Controller registers its routes on the router groups it is given.
type Controller interface {
	// RegisterPublic registers cheap, read-only routes.
	RegisterPublic(*gin.RouterGroup)
	// RegisterThrottled registers routes that run agents and are rate limited.
	RegisterThrottled(*gin.RouterGroup)
}

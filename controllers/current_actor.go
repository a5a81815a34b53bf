package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Virus3D/invent/models"
)

// currentActor resolves the acting user once at the request boundary. Audit
// rows written outside an authenticated request carry the system sentinel.
func currentActor(c *gin.Context) string {
	if v, ok := c.Get("username"); ok {
		if name, ok := v.(string); ok && name != "" {
			return name
		}
	}
	return models.SystemActor
}

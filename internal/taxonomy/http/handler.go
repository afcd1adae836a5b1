package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/folio-site/folio-backend/internal/taxonomy"
)

// Register serves the registry so the front-end renders the same labels and
// colors the server validates against.
func Register(rg *gin.RouterGroup) {
	rg.GET("/taxonomy", get)
}

func get(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"skills":     taxonomy.SkillsByCategory(),
		"tags":       taxonomy.Tags(),
		"categories": taxonomy.Categories(),
		"colors":     taxonomy.Colors(),
		"subtleTag":  taxonomy.SubtleTag,
	})
}

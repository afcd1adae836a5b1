package http

import "github.com/gin-gonic/gin"

// Register attaches the admin routes. The caller guards the group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/projects", h.listProjects)
	rg.POST("/projects/create", h.createProject)
	rg.POST("/projects/update", h.updateProject)
	rg.POST("/projects/delete", h.deleteProject)

	rg.POST("/achievements/create", h.createAchievement)
	rg.POST("/achievements/update", h.updateAchievement)
	rg.POST("/achievements/delete", h.dropAchievement)
	rg.POST("/achievements/archive", h.dropAchievement)

	rg.GET("/applications", h.listApplications)
	rg.POST("/applications/create", h.createApplication)
	rg.POST("/applications/update", h.updateApplication)
	rg.POST("/applications/archive", h.archiveApplication)
	rg.POST("/applications/delete", h.deleteApplication)
}

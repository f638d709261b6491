package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/dtalero78/siigo-retiros/internal/service"
	"github.com/dtalero78/siigo-retiros/internal/util"
)

type AdminController struct {
	BackupService *service.BackupService
}

func NewAdminController(backupService *service.BackupService) *AdminController {
	return &AdminController{BackupService: backupService}
}

// @Summary Take a backup snapshot
// @Description Dumps the response and roster tables as a JSON snapshot to the configured target (local directory or MinIO bucket).
// @Tags admin
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/admin/backup [post]
func (c *AdminController) Backup(ctx *gin.Context) {
	location, err := c.BackupService.Run(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"location": location})
}

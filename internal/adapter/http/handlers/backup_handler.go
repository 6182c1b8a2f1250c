package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"os_pro/internal/domain/entities"
	"os_pro/internal/usecase"
	"os_pro/pkg"
)

type BackupHandler struct {
	usecase usecase.IBackupUseCase
}

func NewBackupHandler(uc usecase.IBackupUseCase) *BackupHandler {
	return &BackupHandler{usecase: uc}
}

// ExportBackup returns the whole dataset as one JSON document. The
// payload round-trips through ImportBackup unchanged.
func (h *BackupHandler) ExportBackup(c *gin.Context) {
	backup, err := h.usecase.Export(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Header("Content-Disposition", `attachment; filename="os_pro_backup.json"`)
	c.JSON(http.StatusOK, backup)
}

// ImportBackup replaces every collection with the uploaded dataset.
func (h *BackupHandler) ImportBackup(c *gin.Context) {
	var backup entities.Backup
	if err := c.ShouldBindJSON(&backup); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_BACKUP_INPUT", "Invalid backup payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if err := h.usecase.Import(c.Request.Context(), backup); err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

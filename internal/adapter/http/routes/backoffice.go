package routes

import (
	"os_pro/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathDashboard = "/dashboard"
	PathCompany   = "/company"
	PathBackup    = "/backup"
)

func addBackofficeRoutes(rg *gin.RouterGroup, dashboardHandler *handlers.DashboardHandler, companyHandler *handlers.CompanyHandler, backupHandler *handlers.BackupHandler) {
	rg.GET(PathDashboard, dashboardHandler.GetStats)

	company := rg.Group(PathCompany)
	{
		company.GET("", companyHandler.GetCompany)
		company.PUT("", companyHandler.UpdateCompany)
	}

	backup := rg.Group(PathBackup)
	{
		backup.GET("", backupHandler.ExportBackup)
		backup.POST("", backupHandler.ImportBackup)
	}
}

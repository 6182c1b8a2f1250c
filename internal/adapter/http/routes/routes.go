package routes

import (
	"log"
	"os"
	"strconv"

	_ "os_pro/docs" // This will be auto-generated
	"os_pro/internal/adapter/http/handlers"
	repository2 "os_pro/internal/adapter/persistence/repository"
	"os_pro/internal/infrastructure/ai"
	"os_pro/internal/infrastructure/database"
	"os_pro/internal/infrastructure/document"
	"os_pro/internal/usecase"
	"os_pro/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	store := newBlobStore()

	customerRepo := repository2.NewCustomerRepository(store)
	itemRepo := repository2.NewCatalogItemRepository(store)
	orderRepo := repository2.NewServiceOrderRepository(store)
	companyRepo := repository2.NewCompanyRepository(store)

	listener := logChangeListener{}

	customerUseCase := usecase.NewCustomerUseCase(customerRepo, listener)
	catalogUseCase := usecase.NewCatalogUseCase(itemRepo, listener)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, customerRepo, itemRepo, listener)
	companyUseCase := usecase.NewCompanyUseCase(companyRepo, listener)
	dashboardUseCase := usecase.NewDashboardUseCase(orderRepo)
	backupUseCase := usecase.NewBackupUseCase(customerRepo, orderRepo, itemRepo, companyRepo, listener)

	var advisoryGateway interfaces.IAdvisoryGateway
	advisor, err := ai.NewGeminiAdvisor(os.Getenv("GEMINI_API_KEY"))
	if err != nil {
		log.Printf("Gemini advisor not configured: %v", err)
	} else {
		advisoryGateway = advisor
	}
	advisoryUseCase := usecase.NewAdvisoryUseCase(orderUseCase, advisoryGateway)

	customerHandler := handlers.NewCustomerHandler(customerUseCase)
	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)
	orderHandler := handlers.NewOrderHandler(orderUseCase, companyUseCase, document.NewPDFGenerator())
	companyHandler := handlers.NewCompanyHandler(companyUseCase)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUseCase)
	backupHandler := handlers.NewBackupHandler(backupUseCase)
	advisoryHandler := handlers.NewAdvisoryHandler(advisoryUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addWorkshopRoutes(v1, customerHandler, catalogHandler, orderHandler, advisoryHandler)
	addBackofficeRoutes(v1, dashboardHandler, companyHandler, backupHandler)
}

// newBlobStore picks the persistence backend. DynamoDB is the default;
// OSPRO_STORE=memory keeps everything in-process for local runs.
func newBlobStore() repository2.BlobStore {
	if os.Getenv("OSPRO_STORE") == "memory" {
		log.Printf("[store] using in-memory store; data is lost on restart")
		return repository2.NewMemoryBlobStore()
	}
	return repository2.NewDynamoBlobStore(database.ConnectDynamoDB())
}

// logChangeListener mirrors every collection write to the log, the
// server-side stand-in for a storage change event.
type logChangeListener struct{}

var _ interfaces.IChangeListener = logChangeListener{}

func (logChangeListener) DataChanged(collection string) {
	log.Printf("[store][changed] %s", collection)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

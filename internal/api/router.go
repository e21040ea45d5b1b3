package api

import (
	"github.com/gin-gonic/gin"
	"github.com/rlin/jobdeck/internal/api/handler"
	"github.com/rlin/jobdeck/internal/api/middleware"
	"github.com/rlin/jobdeck/internal/logger"
	"github.com/rlin/jobdeck/internal/service"
)

// Services bundles everything the router needs wired in.
type Services struct {
	Jobs   *service.JobService
	Prep   *service.PrepService
	Stats  *service.StatsService
	Export *service.ExportService
	Parse  *service.ParseService
}

// SetupRouter configures the Gin router with all routes
func SetupRouter(svc Services, log *logger.Logger, mode string, cors middleware.CORSConfig) *gin.Engine {
	// Set Gin mode
	switch mode {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()

	// Add middleware
	r.Use(gin.Recovery())
	r.Use(middleware.LoggerMiddleware(log))
	r.Use(middleware.CORS(cors))

	// Create handlers
	healthHandler := handler.NewHealthHandler()
	jobHandler := handler.NewJobHandler(svc.Jobs)
	contactHandler := handler.NewContactHandler(svc.Jobs)
	interviewHandler := handler.NewInterviewHandler(svc.Jobs)
	prepHandler := handler.NewPrepHandler(svc.Prep)
	statsHandler := handler.NewStatsHandler(svc.Stats)
	exportHandler := handler.NewExportHandler(svc.Export)
	aiHandler := handler.NewAIHandler(svc.Parse)

	// Health check
	r.GET("/health", healthHandler.Health)

	// API routes
	apiGroup := r.Group("/api")
	{
		// Jobs
		apiGroup.GET("/jobs", jobHandler.ListJobs)
		apiGroup.POST("/jobs", jobHandler.CreateJob)
		apiGroup.GET("/jobs/:id", jobHandler.GetJob)
		apiGroup.PUT("/jobs/:id", jobHandler.UpdateJob)
		apiGroup.DELETE("/jobs/:id", jobHandler.DeleteJob)

		// Activity log
		apiGroup.GET("/jobs/:id/activity", jobHandler.GetActivity)
		apiGroup.POST("/jobs/:id/activity", jobHandler.AddActivity)

		// Contacts
		apiGroup.POST("/jobs/:id/contacts", contactHandler.AddContact)
		apiGroup.PUT("/contacts/:id", contactHandler.UpdateContact)
		apiGroup.DELETE("/contacts/:id", contactHandler.DeleteContact)

		// Interview rounds
		apiGroup.POST("/jobs/:id/interviews", interviewHandler.AddInterview)
		apiGroup.PUT("/interviews/:id", interviewHandler.UpdateInterview)
		apiGroup.DELETE("/interviews/:id", interviewHandler.DeleteInterview)

		// Prep questions
		apiGroup.GET("/prep", prepHandler.ListQuestions)
		apiGroup.POST("/prep", prepHandler.CreateQuestion)
		apiGroup.PUT("/prep/:id", prepHandler.UpdateQuestion)
		apiGroup.DELETE("/prep/:id", prepHandler.DeleteQuestion)

		// Stats
		apiGroup.GET("/stats", statsHandler.GetStats)

		// Export
		apiGroup.GET("/export/csv", exportHandler.ExportCSV)
		apiGroup.POST("/export/backup", exportHandler.BackupSnapshot)

		// AI auto-fill
		apiGroup.POST("/ai/parse-job", aiHandler.ParseJob)
	}

	return r
}

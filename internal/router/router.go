package router

import (
	"time"

	"studyrecs/internal/handlers"
	"studyrecs/internal/logger"
	"studyrecs/internal/middleware"
	"studyrecs/internal/models"
	"studyrecs/internal/observability"
	"studyrecs/internal/repository"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"
)

// Deps is everything the HTTP layer needs from the process.
type Deps struct {
	DB             *gorm.DB
	Repos          *repository.Repositories
	Log            *logger.Logger
	Metrics        *observability.Metrics
	AllowedOrigins []string
	RequestTimeout time.Duration
	Tracing        bool
}

// New builds the engine with the middleware chain and all routes.
func New(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	if d.Tracing {
		r.Use(otelgin.Middleware(observability.ServiceName))
	}
	r.Use(middleware.CORS(d.AllowedOrigins))
	r.Use(middleware.Metrics(d.Metrics))
	r.Use(middleware.RequestLogger(d.Log))
	r.Use(middleware.Timeout(d.RequestTimeout))

	RegisterRoutes(r, d)
	return r
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	// Handlers
	catalogHandler := handlers.NewCatalogHandler()
	recHandler := handlers.NewRecHandler(d.Repos, d.Log)
	userHandler := handlers.NewUserHandler(d.Repos, d.Log)
	commentHandler := handlers.NewCommentHandler(d.Repos, d.Log)
	studyListHandler := handlers.NewStudyListHandler(d.Repos, d.Log)
	likeHandler := handlers.NewEngagementHandler(models.EngagementLike, d.Repos, d.Log)
	dislikeHandler := handlers.NewEngagementHandler(models.EngagementDislike, d.Repos, d.Log)
	healthHandler := handlers.NewHealthHandler(d.DB, d.Log)

	// Recs
	r.GET("/recentrecs", recHandler.Recent)
	r.GET("/rec/:rec_id", recHandler.Detail)
	r.GET("/recs/:type", recHandler.ByType)
	r.GET("/tags/:tags", recHandler.ByTags)
	r.GET("/search/:query", recHandler.Search)
	r.POST("/rec", recHandler.Create)
	r.POST("/comment", commentHandler.Create)

	// Catalog
	r.GET("/types", catalogHandler.Types)
	r.GET("/tags", catalogHandler.Tags)

	// Users and study lists
	r.GET("/users", userHandler.List)
	r.GET("/user/:id", userHandler.Get)
	r.GET("/studylist/:user_id", studyListHandler.List)
	r.POST("/study-list/:user_id/:rec_id", studyListHandler.Add)
	r.DELETE("/study-list/:user_id/:rec_id", studyListHandler.Remove)

	// Engagement
	r.POST("/like/:user_id/:rec_id", likeHandler.Add)
	r.DELETE("/like/:user_id/:rec_id", likeHandler.Remove)
	r.POST("/dislike/:user_id/:rec_id", dislikeHandler.Add)
	r.DELETE("/dislike/:user_id/:rec_id", dislikeHandler.Remove)
	r.GET("/total-likes/:rec_id", likeHandler.Total)
	r.GET("/total-dislikes/:rec_id", dislikeHandler.Total)

	// Ops
	r.GET("/healthz", healthHandler.Healthz)
	if d.Metrics != nil {
		r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))
	}
}

package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"time4swim/backend/config"
	"time4swim/backend/internal/api/handler"
	"time4swim/backend/internal/api/middleware"
	"time4swim/backend/internal/model"
	"time4swim/backend/pkg/jwt"
	"time4swim/backend/pkg/redis"
)

// Setup builds the Gin engine with all routes.
//
// Guard summary: heats, lanes and timer mutations need an operator or admin;
// coaches record final times for the lanes they supervise (club ownership is
// re-checked in the service layer); reads only need authentication.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	operator := middleware.RoleAuth(model.RoleAdmin, model.RoleOperator)
	timekeeper := middleware.RoleAuth(model.RoleAdmin, model.RoleOperator, model.RoleCoach)

	v1 := r.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb, logger))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.GetCurrentUser)
			authorized.PUT("/auth/password", h.Auth.ChangePassword)

			clubs := authorized.Group("/clubs")
			{
				clubs.GET("", h.Club.ListClubs)
				clubs.GET("/:id", h.Club.GetClub)
				clubs.POST("", middleware.RoleAuth(model.RoleAdmin), h.Club.CreateClub)
				clubs.PUT("/:id", middleware.RoleAuth(model.RoleAdmin), h.Club.UpdateClub)
				clubs.DELETE("/:id", middleware.RoleAuth(model.RoleAdmin), h.Club.DeleteClub)
			}

			swimmers := authorized.Group("/swimmers")
			{
				swimmers.GET("", h.Swimmer.ListSwimmers)
				swimmers.GET("/:id", h.Swimmer.GetSwimmer)
				swimmers.POST("", operator, h.Swimmer.CreateSwimmer)
				swimmers.PUT("/:id", operator, h.Swimmer.UpdateSwimmer)
				swimmers.DELETE("/:id", operator, h.Swimmer.DeleteSwimmer)
			}

			events := authorized.Group("/events")
			{
				events.GET("", h.Event.ListEvents)
				events.GET("/:id", h.Event.GetEvent)
				events.POST("", operator, h.Event.CreateEvent)
				events.PUT("/:id", operator, h.Event.UpdateEvent)
				events.DELETE("/:id", operator, h.Event.DeleteEvent)

				events.GET("/:id/heats", h.Heat.ListHeats)
				events.POST("/:id/heats", operator, h.Heat.CreateHeat)
				events.PUT("/:id/lanes/:laneId/swimmer", operator, h.Heat.AssignSwimmer)
				events.PUT("/:id/lanes/:laneId/time", timekeeper, h.Heat.RecordFinalTime)

				events.GET("/:id/timer", h.Timer.Query)
				events.POST("/:id/timer/start", operator, h.Timer.Start)
				events.POST("/:id/timer/stop", operator, h.Timer.Stop)
				events.POST("/:id/timer/reset", operator, h.Timer.Reset)

				events.GET("/:id/results", h.Result.GetResults)
			}

			export := authorized.Group("/export")
			{
				export.GET("/events/:id/results.xlsx", operator, h.Export.ExportResults)
				export.GET("/calendar.ics", h.Export.ExportCalendar)
			}
		}
	}

	return r
}

package routes

import (
	"rental_quotes/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes      = "/quotes"
	PathAdminQuotes = "/admin/quotes"
	PathEmailQueue  = "/admin/email-queue"
	PathCron        = "/cron"
)

func addQuoteRoutes(rg *gin.RouterGroup, deps Dependencies) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.GET("/mine", middleware.RequireAuth(deps.JwtSecret), deps.Quotes.ListMine)

		public := quotes.Group("")
		if deps.PublicLimit != nil {
			public.Use(middleware.RateLimit(deps.PublicLimit, "quotes", deps.Logger))
		}
		public.POST("", middleware.OptionalAuth(deps.JwtSecret), deps.Quotes.CreateQuote)
		public.GET("/:id", deps.Quotes.GetQuote)
		public.POST("/:id/accept", deps.Quotes.AcceptQuote)
		public.POST("/:id/reject", deps.Quotes.RejectQuote)
	}
}

func addAdminRoutes(rg *gin.RouterGroup, deps Dependencies) {
	admin := rg.Group("", middleware.RequireAuth(deps.JwtSecret), middleware.RequireAdmin())

	quotes := admin.Group(PathAdminQuotes)
	{
		quotes.GET("", deps.AdminQuotes.ListQuotes)
		quotes.GET("/:id", deps.AdminQuotes.GetQuote)
		quotes.POST("/:id/finalize", deps.AdminQuotes.FinalizeQuote)
		quotes.POST("/:id/lock", deps.AdminQuotes.LockQuote)
		quotes.POST("/:id/unlock", deps.AdminQuotes.UnlockQuote)
		quotes.POST("/:id/confirm", deps.AdminQuotes.ConfirmQuote)
		quotes.POST("/:id/reject", deps.AdminQuotes.RejectQuote)
	}

	admin.GET(PathEmailQueue+"/stats", deps.EmailQueue.Stats)
}

func addCronRoutes(rg *gin.RouterGroup, deps Dependencies) {
	cron := rg.Group(PathCron, middleware.CronAuth(deps.CronSecret))
	cron.GET("/process-email-queue", deps.EmailQueue.ProcessQueue)
}

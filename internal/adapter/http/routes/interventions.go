package routes

import (
	"depannel_dispatch/internal/adapter/http/handlers"
	"depannel_dispatch/internal/domain/lifecycle"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth          = "/auth"
	PathInterventions = "/interventions"
	PathQuotes        = "/quotes"
	PathAgents        = "/agents"
	PathProblemTypes  = "/problem-types"
	PathEvents        = "/events"
)

func addInterventionRoutes(rg *gin.RouterGroup, a *app) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/login", a.session.Login)
		auth.POST("/logout", handlers.AuthMiddleware(a.sessions), a.session.Logout)
	}

	// Rotas autenticadas
	private := rg.Group("", handlers.AuthMiddleware(a.sessions))

	interventions := private.Group(PathInterventions)
	{
		interventions.GET("", a.interventions.List)
		interventions.GET("/summary", a.interventions.Summary)
		interventions.GET("/:id", a.interventions.Get)
		interventions.GET("/:id/actions", a.interventions.Actions)
		interventions.GET("/:id/history", a.interventions.History)
		for _, action := range lifecycle.AllActions {
			interventions.POST("/:id/"+string(action), a.interventions.Transition(action))
		}
		interventions.GET("/:id/quotes", a.quotes.List)
		interventions.POST("/:id/quotes", a.quotes.Create)
	}

	quotes := private.Group(PathQuotes)
	{
		quotes.PUT("/:id", a.quotes.Update)
		quotes.DELETE("/:id", a.quotes.Delete)
	}

	agents := private.Group(PathAgents, handlers.RequireManager())
	{
		agents.GET("", a.agents.List)
		agents.POST("", a.agents.Create)
		agents.GET("/available", a.interventions.AvailableAgents)
		agents.GET("/:id", a.agents.Get)
		agents.PUT("/:id", a.agents.Update)
	}

	problemTypes := private.Group(PathProblemTypes)
	{
		problemTypes.GET("", a.catalog.List)
		problemTypes.POST("", a.catalog.Create)
		problemTypes.PUT("/:id", a.catalog.Update)
		problemTypes.DELETE("/:id", a.catalog.Delete)
	}

	private.GET(PathEvents+"/ws", a.events.Stream)
}

package app

import (
	"github.com/gin-gonic/gin"
	"github.com/linkmoa/core/internal/modules/archive/chat"
	"github.com/linkmoa/core/internal/modules/archive/link"
	"github.com/linkmoa/core/internal/modules/processing/ai"
	"github.com/linkmoa/core/internal/modules/processing/extract"
	"github.com/linkmoa/core/internal/pkg/response"
)

func (a *App) registerRoutes() {
	r := a.router

	r.NoRoute(func(c *gin.Context) { response.NotFound(c) })
	r.NoMethod(func(c *gin.Context) { response.MethodNotAllowed(c) })

	r.GET("/", func(c *gin.Context) {
		response.OK(c, gin.H{"message": "AI Link Archive Ready!"})
	})

	extractSvc := extract.NewService(a.logger.Named("extract"))
	aiSvc := ai.NewService(a.cfg.AI, a.logger.Named("ai"))

	linkSvc := link.NewService(a.db, extractSvc, aiSvc, a.logger.Named("link"))
	link.NewHandler(linkSvc, a.logger.Named("link")).RegisterRoutes(r)

	chatSvc := chat.NewService(a.db, aiSvc, a.logger.Named("chat"))
	chat.NewHandler(chatSvc, a.logger.Named("chat")).RegisterRoutes(r)
}

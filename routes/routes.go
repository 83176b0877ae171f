package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/BIG-PRIMEZ/mortgage-prequalification/config"
	"github.com/BIG-PRIMEZ/mortgage-prequalification/controllers"
	"github.com/BIG-PRIMEZ/mortgage-prequalification/middlewares"
)

func Register(r *gin.Engine, cfg config.Config) {
    api := r.Group("/api")
    api.Use(middlewares.Session(cfg.SessionSecret))
    {
        chat := api.Group("/chat")
        chat.POST("/message", controllers.ChatMessage(cfg))
        chat.GET("/session", controllers.ChatGetSession())
        chat.POST("/reset", controllers.ChatReset())

        verify := api.Group("/verification")
        verify.POST("/send", controllers.VerificationSend(cfg))
        verify.POST("/verify", controllers.VerificationVerify(cfg))

        // direct calculator access, no conversation needed
        api.POST("/calculation/borrowing-capacity", controllers.BorrowingCapacity())
    }
}

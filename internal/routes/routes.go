package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"harvesttracker/internal/handlers"
)

func SetupRoutes(r *gin.Engine, otpHandler *handlers.OTPHandler) *gin.Engine {
	// ---- public, no auth: the OTP challenge is the login itself
	r.POST("/send-otp", otpHandler.SendOTP)
	r.POST("/verify-otp", otpHandler.VerifyOTP)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

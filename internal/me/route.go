package me

import (
	"github.com/ChanieT/WannabeStackOverflow/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup) {
	h := &MeHandler{}
	r.GET("/me", middleware.JWTAuth(), h.GetCurrentUser)
}

package controllers

import (
	"net/http"

	"github.com/DesaiVishal-16/Longevix/services"

	"github.com/gin-gonic/gin"
)

type AIController struct {
	ai *services.AIService
}

func NewAIController(ai *services.AIService) *AIController {
	return &AIController{ai: ai}
}

func (ac *AIController) Chat(c *gin.Context) {
	var body struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, ac.ai.Chat(c.Request.Context(), body.Message))
}

func (ac *AIController) GenerateNutrients(c *gin.Context) {
	var body struct {
		Food []services.FoodRef `json:"food" binding:"required"`
		Time string             `json:"time"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req := services.GenerateNutrientsRequest{
		Food:            body.Food,
		Time:            body.Time,
		IsAuthenticated: true,
		Role:            c.GetString("role"),
	}
	c.JSON(http.StatusOK, ac.ai.GenerateNutrients(c.Request.Context(), req))
}

package controllers

import (
    "net/http"

    "github.com/gin-gonic/gin"

    "github.com/BIG-PRIMEZ/mortgage-prequalification/calculation"
    "github.com/BIG-PRIMEZ/mortgage-prequalification/models"
)

type borrowingCapacityRequest struct {
    models.UserData
    Intent models.Intent `json:"intent"`
}

// BorrowingCapacity runs the calculator directly, without a conversation.
// Accepts the same field names the chat flow collects plus an intent.
func BorrowingCapacity() gin.HandlerFunc {
    return func(c *gin.Context) {
        var req borrowingCapacityRequest
        if err := c.ShouldBindJSON(&req); err != nil {
            c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
            return
        }
        if req.GrossAnnualIncome == nil {
            c.JSON(http.StatusBadRequest, gin.H{"error": "grossAnnualIncome is required"})
            return
        }
        intent := req.Intent
        if intent == models.IntentUnset {
            intent = models.IntentPurchase
        }
        result, err := calculation.Calculate(calculation.FromUserData(req.UserData, intent))
        if err != nil {
            c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
            return
        }
        c.JSON(http.StatusOK, result)
    }
}

package controllers

import (
    "context"
    "net/http"
    "time"

    "github.com/gin-gonic/gin"

    "github.com/BIG-PRIMEZ/mortgage-prequalification/config"
    "github.com/BIG-PRIMEZ/mortgage-prequalification/database"
    "github.com/BIG-PRIMEZ/mortgage-prequalification/models"
)

func collectedIdentifier(sess models.SessionData, kind string) string {
    data := sess.Conversation.CollectedData
    switch kind {
    case "sms":
        if data.Phone != nil {
            return *data.Phone
        }
    case "email":
        if data.Email != nil {
            return *data.Email
        }
    }
    return ""
}

// VerificationSend issues a one-time code to the contact details collected
// during the conversation.
func VerificationSend(cfg config.Config) gin.HandlerFunc {
    return func(c *gin.Context) {
        var req models.VerificationSendRequest
        if err := c.ShouldBindJSON(&req); err != nil || (req.Type != "sms" && req.Type != "email") {
            c.JSON(http.StatusBadRequest, gin.H{"error": "type must be sms or email"})
            return
        }
        sid := c.GetString("session_id")
        ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
        defer cancel()

        sess, err := database.GetSession(ctx, sid)
        if err != nil {
            c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
            return
        }
        identifier := collectedIdentifier(sess, req.Type)
        if identifier == "" {
            c.JSON(http.StatusBadRequest, gin.H{"error": "no " + req.Type + " contact collected yet"})
            return
        }

        svc := verificationService(cfg)
        if req.Type == "sms" {
            err = svc.SendSMSCode(ctx, &sess, identifier)
        } else {
            err = svc.SendEmailCode(ctx, &sess, identifier)
        }
        if err != nil {
            c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
            return
        }
        if err := database.PutSession(ctx, sid, sess); err != nil {
            c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
            return
        }
        c.JSON(http.StatusOK, gin.H{"success": true, "message": "Verification code sent"})
    }
}

// VerificationVerify checks a submitted code and records the result on the
// conversation state.
func VerificationVerify(cfg config.Config) gin.HandlerFunc {
    return func(c *gin.Context) {
        var req models.VerificationVerifyRequest
        if err := c.ShouldBindJSON(&req); err != nil || (req.Type != "sms" && req.Type != "email") || req.Code == "" {
            c.JSON(http.StatusBadRequest, gin.H{"error": "type must be sms or email and code is required"})
            return
        }
        sid := c.GetString("session_id")
        ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
        defer cancel()

        sess, err := database.GetSession(ctx, sid)
        if err != nil {
            c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
            return
        }
        identifier := collectedIdentifier(sess, req.Type)
        if identifier == "" {
            c.JSON(http.StatusBadRequest, gin.H{"error": "no " + req.Type + " contact collected yet"})
            return
        }

        svc := verificationService(cfg)
        ok := svc.VerifyCode(&sess, req.Type, identifier, req.Code)
        if ok {
            if req.Type == "sms" {
                sess.Conversation.VerificationStatus.SMS = true
            } else {
                sess.Conversation.VerificationStatus.Email = true
            }
            if err := database.PutSession(ctx, sid, sess); err != nil {
                c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
                return
            }
        }
        c.JSON(http.StatusOK, gin.H{"verified": ok})
    }
}

package controllers

import (
    "context"
    "log"
    "net/http"
    "strings"
    "time"

    "github.com/gin-gonic/gin"

    "github.com/BIG-PRIMEZ/mortgage-prequalification/config"
    "github.com/BIG-PRIMEZ/mortgage-prequalification/conversation"
    "github.com/BIG-PRIMEZ/mortgage-prequalification/database"
    "github.com/BIG-PRIMEZ/mortgage-prequalification/models"
    "github.com/BIG-PRIMEZ/mortgage-prequalification/notify"
    "github.com/BIG-PRIMEZ/mortgage-prequalification/utils"
    "github.com/BIG-PRIMEZ/mortgage-prequalification/verification"
)

func verificationService(cfg config.Config) *verification.Service {
    var sms verification.SMSSender
    if cfg.SMSProviderURL != "" {
        sms = verification.HTTPSMSSender{URL: cfg.SMSProviderURL, From: cfg.SMSFrom}
    }
    var email verification.EmailSender
    if cfg.EmailProviderURL != "" {
        email = notify.HTTPEmailSender{URL: cfg.EmailProviderURL, From: cfg.EmailFrom}
    }
    return verification.NewService(sms, email, cfg.SMSDefaultCountryCode)
}

// ChatMessage handles one user turn: load session state, run the
// conversation service, persist, answer with the new state and reply.
func ChatMessage(cfg config.Config) gin.HandlerFunc {
    return func(c *gin.Context) {
        var req models.SendMessageRequest
        if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Content) == "" {
            c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body or missing content"})
            return
        }
        sid := c.GetString("session_id")
        ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
        defer cancel()

        sess, err := database.GetSession(ctx, sid)
        if err != nil {
            c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
            return
        }

        machine := conversation.NewMachine(verification.SessionVerifier{Sess: &sess})
        var notifier conversation.ResultsNotifier
        if cfg.EmailProviderURL != "" {
            notifier = notify.ResultsMailer{Sender: notify.HTTPEmailSender{URL: cfg.EmailProviderURL, From: cfg.EmailFrom}}
        }
        svc := conversation.NewService(
            machine,
            utils.GeminiGenerator{Cfg: utils.AIConfig{APIKey: cfg.GeminiAPIKey, GenModel: cfg.GeminiModel}},
            verificationService(cfg),
            notifier,
            cfg.AICorrectionsWin,
        )

        turn, err := svc.ProcessTurn(ctx, &sess, req.Content)
        if err != nil {
            log.Printf("process turn error: %v", err)
            c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to process message right now"})
            return
        }

        if err := database.PutSession(ctx, sid, sess); err != nil {
            c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
            return
        }
        // audit trail, best effort
        msgs := sess.Conversation.Messages
        for i := len(msgs) - 2; i < len(msgs); i++ {
            if i < 0 {
                continue
            }
            if err := database.AppendAuditMessage(ctx, sid, msgs[i]); err != nil {
                log.Printf("audit append error: %v", err)
            }
        }

        c.JSON(http.StatusOK, turn)
    }
}

// ChatGetSession returns the current conversation state for the session.
func ChatGetSession() gin.HandlerFunc {
    return func(c *gin.Context) {
        sid := c.GetString("session_id")
        ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
        defer cancel()
        sess, err := database.GetSession(ctx, sid)
        if err != nil {
            c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
            return
        }
        c.JSON(http.StatusOK, sess.Conversation)
    }
}

// ChatReset clears the session's state. The audit table keeps its rows.
func ChatReset() gin.HandlerFunc {
    return func(c *gin.Context) {
        sid := c.GetString("session_id")
        ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
        defer cancel()
        if err := database.DeleteSession(ctx, sid); err != nil {
            c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
            return
        }
        c.JSON(http.StatusOK, gin.H{"success": true, "message": "Session cleared successfully"})
    }
}

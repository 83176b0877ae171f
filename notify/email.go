// Package notify delivers outbound email through an HTTP provider endpoint.
package notify

import (
    "bytes"
    "context"
    "encoding/json"
    "fmt"
    "io"
    "log"
    "net/http"
)

// HTTPEmailSender posts JSON to an email provider endpoint.
type HTTPEmailSender struct {
    URL  string
    From string
}

type emailPayload struct {
    To      string `json:"to"`
    From    string `json:"from"`
    Subject string `json:"subject"`
    HTML    string `json:"html"`
}

func (s HTTPEmailSender) SendEmail(ctx context.Context, to, subject, html string) error {
    data, _ := json.Marshal(emailPayload{To: to, From: s.From, Subject: subject, HTML: html})
    req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.URL, bytes.NewBuffer(data))
    if err != nil {
        return err
    }
    req.Header.Set("Content-Type", "application/json")
    resp, err := http.DefaultClient.Do(req)
    if err != nil {
        return fmt.Errorf("email provider error: %w", err)
    }
    defer resp.Body.Close()
    body, _ := io.ReadAll(resp.Body)
    log.Printf("email provider response (%d): %s", resp.StatusCode, string(body))
    if resp.StatusCode >= 300 {
        return fmt.Errorf("email provider status %d", resp.StatusCode)
    }
    return nil
}

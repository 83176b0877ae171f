package verification

import (
    "bytes"
    "context"
    "encoding/json"
    "fmt"
    "io"
    "log"
    "net/http"
)

// SMSSender delivers one text message. Implementations are delivery
// integrations; the core only cares that sending was attempted.
type SMSSender interface {
    SendSMS(ctx context.Context, to, body string) error
}

// HTTPSMSSender posts JSON to an SMS provider endpoint.
type HTTPSMSSender struct {
    URL  string
    From string
}

type smsPayload struct {
    To   string `json:"to"`
    From string `json:"from"`
    Body string `json:"body"`
}

func (s HTTPSMSSender) SendSMS(ctx context.Context, to, body string) error {
    data, _ := json.Marshal(smsPayload{To: to, From: s.From, Body: body})
    req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.URL, bytes.NewBuffer(data))
    if err != nil {
        return err
    }
    req.Header.Set("Content-Type", "application/json")
    resp, err := http.DefaultClient.Do(req)
    if err != nil {
        return fmt.Errorf("sms provider error: %w", err)
    }
    defer resp.Body.Close()
    respBody, _ := io.ReadAll(resp.Body)
    log.Printf("SMS provider response (%d): %s", resp.StatusCode, string(respBody))
    if resp.StatusCode >= 300 {
        return fmt.Errorf("sms provider status %d", resp.StatusCode)
    }
    return nil
}

package models

type SendMessageRequest struct {
    Content string `json:"content"`
}

type VerificationSendRequest struct {
    Type string `json:"type"` // "sms" or "email"
}

type VerificationVerifyRequest struct {
    Type string `json:"type"`
    Code string `json:"code"`
}

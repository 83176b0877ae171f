package models

import "time"

// ConversationPhase is the stage the intake dialog is in. Phases only move
// forward (intent -> collection -> verification -> results) unless the user
// restarts from the results phase.
type ConversationPhase string

const (
    PhaseIntent       ConversationPhase = "intent"
    PhaseCollection   ConversationPhase = "collection"
    PhaseVerification ConversationPhase = "verification"
    PhaseResults      ConversationPhase = "results"
)

// Intent is what the user wants a loan for. It gates which fields are
// required during collection.
type Intent string

const (
    IntentUnset     Intent = ""
    IntentPurchase  Intent = "purchase"
    IntentRefinance Intent = "refinance"
)

type Sender string

const (
    SenderUser  Sender = "user"
    SenderAgent Sender = "agent"
)

type Message struct {
    ID        string    `json:"id"`
    Content   string    `json:"content"`
    Sender    Sender    `json:"sender"`
    Timestamp time.Time `json:"timestamp"`
}

type VerificationStatus struct {
    SMS   bool `json:"sms"`
    Email bool `json:"email"`
}

// ConversationState is the root aggregate for one session. Messages are
// append-only and survive a restart; everything else is cleared on restart.
type ConversationState struct {
    Phase              ConversationPhase  `json:"phase"`
    Intent             Intent             `json:"intent"`
    CollectedData      UserData           `json:"collectedData"`
    VerificationStatus VerificationStatus `json:"verificationStatus"`
    Messages           []Message          `json:"messages"`
}

func NewConversationState() ConversationState {
    return ConversationState{
        Phase:    PhaseIntent,
        Intent:   IntentUnset,
        Messages: []Message{},
    }
}

// StoredCode is a pending verification code with its expiry.
type StoredCode struct {
    Code   string    `json:"code"`
    Expiry time.Time `json:"expiry"`
}

// SessionData is everything persisted per session key: the conversation state
// plus the verification bookkeeping keyed by "type:identifier".
type SessionData struct {
    Conversation        ConversationState     `json:"conversation"`
    VerificationCodes   map[string]StoredCode `json:"verificationCodes,omitempty"`
    VerifiedIdentifiers map[string]bool       `json:"verifiedIdentifiers,omitempty"`
}

func NewSessionData() SessionData {
    return SessionData{Conversation: NewConversationState()}
}

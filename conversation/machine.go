// Package conversation owns the intake dialog: the phase state machine that
// decides when enough data exists to move forward, and the turn service that
// orchestrates extraction, reply generation, verification and calculation.
package conversation

import (
    "context"
    "regexp"
    "strings"

    "github.com/BIG-PRIMEZ/mortgage-prequalification/extraction"
    "github.com/BIG-PRIMEZ/mortgage-prequalification/models"
)

// PhoneVerifier is the external verification collaborator. The machine only
// reads it for the affirmative-cue shortcut; the actual code check lives
// outside.
type PhoneVerifier interface {
    IsPhoneVerified(ctx context.Context, phone string) bool
}

type Machine struct {
    verifier PhoneVerifier
}

func NewMachine(verifier PhoneVerifier) *Machine {
    return &Machine{verifier: verifier}
}

var restartCues = []string{"purchase", "refinance", "start over", "new"}

// IsRestartCue reports whether a message in the results phase should reset
// the application. Substring-based and known to false-positive on questions
// like "is that a new calculation?"; kept isolated so it can be tuned.
func IsRestartCue(message string) bool {
    lower := strings.ToLower(message)
    for _, cue := range restartCues {
        if strings.Contains(lower, cue) {
            return true
        }
    }
    return false
}

// whole words only, so "yesterday" is not an affirmation
var affirmativeCue = regexp.MustCompile(`(?i)\b(?:yes|verified)\b`)

func isAffirmative(message string) bool {
    return affirmativeCue.MatchString(message)
}

// Advance applies one user turn to the state. Transition rules run in
// priority order: restart, intent, collection, verification. Phase never
// regresses except through restart, and extraction never deletes a field.
func (m *Machine) Advance(ctx context.Context, state models.ConversationState, userMessage string, extracted extraction.Fields) models.ConversationState {
    if state.Phase == models.PhaseResults && IsRestartCue(userMessage) {
        return models.ConversationState{
            Phase:    models.PhaseIntent,
            Intent:   models.IntentUnset,
            Messages: state.Messages, // audit trail survives restarts
        }
    }

    state.CollectedData = state.CollectedData.Merge(extracted.Data)
    if extracted.Intent != models.IntentUnset {
        state.Intent = extracted.Intent
    }

    switch state.Phase {
    case models.PhaseIntent:
        if state.Intent != models.IntentUnset {
            state.Phase = models.PhaseCollection
        }
    case models.PhaseCollection:
        if requiredDataPresent(state.CollectedData, state.Intent) {
            state.Phase = models.PhaseVerification
        }
    case models.PhaseVerification:
        if state.VerificationStatus.SMS {
            state.Phase = models.PhaseResults
            break
        }
        // Convenience path, not a security boundary: an affirmative reply
        // moves forward only if the external check already verified the phone.
        if isAffirmative(userMessage) && state.CollectedData.Phone != nil && m.verifier != nil {
            if m.verifier.IsPhoneVerified(ctx, *state.CollectedData.Phone) {
                state.VerificationStatus.SMS = true
                state.Phase = models.PhaseResults
            }
        }
    }
    return state
}

// requiredDataPresent checks the intent-specific required set. A set pointer
// counts as present even when it points at zero.
func requiredDataPresent(d models.UserData, intent models.Intent) bool {
    base := d.GrossAnnualIncome != nil && d.MonthlyDebts != nil &&
        d.FullName != nil && d.Email != nil && d.Phone != nil
    if !base {
        return false
    }
    switch intent {
    case models.IntentPurchase:
        return d.PurchasePrice != nil && d.DownPayment != nil
    case models.IntentRefinance:
        return d.PropertyValue != nil && d.DesiredLoanAmount != nil
    }
    return true
}

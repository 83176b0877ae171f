// Package extraction turns free-text chat messages into typed applicant
// fields using ordered regex rules with per-field postprocessing, plus a
// clause-based keyword fallback for messages the rules miss.
package extraction

import (
    "regexp"
    "strings"

    "github.com/BIG-PRIMEZ/mortgage-prequalification/models"
)

// Fields is the partial record produced by one extraction pass. Absent
// fields are nil pointers, never present-with-zero.
type Fields struct {
    Intent models.Intent
    Data   models.UserData
}

func (f Fields) Empty() bool {
    return f.Intent == models.IntentUnset && f.Data == (models.UserData{})
}

// Tolerates trailing punctuation after a number, e.g. "The price is $420,000,."
var trailingCommaAfterNumber = regexp.MustCompile(`(\d+(?:,\d{3})*(?:\.\d{2})?),(\s|$)`)

// Extract is a pure function: identical (message, phase, existing) always
// yields identical output. Finding nothing is a normal outcome, not an error.
func Extract(message string, phase models.ConversationPhase, existing models.UserData) Fields {
    cleaned := trailingCommaAfterNumber.ReplaceAllString(message, "${1}${2}")

    var out Fields
    if phase == models.PhaseIntent {
        out.Intent = classifyIntent(cleaned)
    }

    for _, r := range extractionRules {
        for _, p := range r.patterns {
            m := p.FindStringSubmatch(cleaned)
            if len(m) > 1 && m[1] != "" {
                r.apply(m[1], existing, &out.Data)
                break
            }
        }
    }

    if phase == models.PhaseCollection && out.Empty() {
        contextBasedExtraction(cleaned, &out.Data)
    }
    return out
}

// classifyIntent reads purchase/refinance cues from a lower-cased message.
// Messages that look like a question are skipped so the agent's own prompt
// echoed back ("are you looking to purchase or refinance?") is not misread,
// and the compound phrase is excluded for the same reason.
func classifyIntent(message string) models.Intent {
    lower := strings.ToLower(message)
    if strings.Contains(lower, "?") || strings.Contains(lower, "are you looking") {
        return models.IntentUnset
    }
    if strings.Contains(lower, "purchase or refinance") || strings.Contains(lower, "buy or refinance") {
        return models.IntentUnset
    }
    if strings.Contains(lower, "purchase") || strings.Contains(lower, "buy") || strings.Contains(lower, "buying") {
        return models.IntentPurchase
    }
    if strings.Contains(lower, "refinance") || strings.Contains(lower, "refinancing") {
        return models.IntentRefinance
    }
    return models.IntentUnset
}

var (
    groupingComma = regexp.MustCompile(`(\d),(\d{3})`)
    clauseSplit   = regexp.MustCompile(`[,;.]`)
    bareNumber    = regexp.MustCompile(`(?i)\$?(\d+k|\d+(?:,\d{3})*(?:\.\d{2})?)`)
)

const commaPlaceholder = "\x00NUM\x00"

// contextBasedExtraction splits the message into clauses and assigns a bare
// number in each clause to whichever field's keyword appears alongside it.
// First match per field wins; fields already found in this pass are kept.
func contextBasedExtraction(message string, data *models.UserData) {
    // protect digit-grouping commas from the clause split
    protected := groupingComma.ReplaceAllString(message, "${1}"+commaPlaceholder+"${2}")

    for _, part := range clauseSplit.Split(protected, -1) {
        part = strings.ReplaceAll(strings.TrimSpace(part), commaPlaceholder, ",")
        if part == "" {
            continue
        }
        idx := bareNumber.FindStringSubmatchIndex(part)
        if idx == nil {
            continue
        }
        // percentages need a base amount to resolve against; the regex rules
        // handle those, never this fallback
        if idx[1] < len(part) && part[idx[1]] == '%' {
            continue
        }
        value := parseAmount(part[idx[2]:idx[3]])
        lower := strings.ToLower(part)

        switch {
        case containsAny(lower, "income", "earn", "make", "salary") && data.GrossAnnualIncome == nil:
            data.GrossAnnualIncome = &value
        case containsAny(lower, "debt", "monthly", "payment") && data.MonthlyDebts == nil:
            data.MonthlyDebts = &value
        case containsAny(lower, "price", "cost", "purchase", "home") && data.PurchasePrice == nil:
            data.PurchasePrice = &value
        case containsAny(lower, "down", "deposit") && data.DownPayment == nil:
            data.DownPayment = &value
        case containsAny(lower, "value", "worth") && data.PropertyValue == nil:
            data.PropertyValue = &value
        case containsAny(lower, "borrow", "loan") && data.DesiredLoanAmount == nil:
            data.DesiredLoanAmount = &value
        }
    }
}

func containsAny(s string, subs ...string) bool {
    for _, sub := range subs {
        if strings.Contains(s, sub) {
            return true
        }
    }
    return false
}

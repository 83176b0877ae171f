package notify

import (
    "context"
    "fmt"
    "log"
    "strings"
    "time"

    "github.com/BIG-PRIMEZ/mortgage-prequalification/calculation"
    "github.com/BIG-PRIMEZ/mortgage-prequalification/models"
)

// ResultsMailer sends the borrowing-capacity summary once the results phase
// is reached. Fire-and-forget: delivery failure is logged, never surfaced to
// the conversation.
type ResultsMailer struct {
    Sender HTTPEmailSender
}

func (m ResultsMailer) SendResults(email string, result calculation.Result, data models.UserData) {
    go func() {
        ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
        defer cancel()
        html := resultsHTML(result, data)
        if err := m.Sender.SendEmail(ctx, email, "Your Mortgage Pre-Qualification Results", html); err != nil {
            log.Printf("send results email: %v", err)
        }
    }()
}

func resultsHTML(result calculation.Result, data models.UserData) string {
    name := "Valued Customer"
    if data.FullName != nil {
        name = *data.FullName
    }
    var b strings.Builder
    b.WriteString(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">`)
    b.WriteString(`<h1>Mortgage Pre-Qualification Results</h1>`)
    fmt.Fprintf(&b, `<p>Dear %s,</p>`, name)
    b.WriteString(`<p>Thank you for using our mortgage pre-qualification service. Based on the information you provided, here are your results:</p>`)
    fmt.Fprintf(&b, `<h2>Your Estimated Borrowing Capacity</h2><p><strong>%s</strong> to <strong>%s</strong></p>`,
        formatCurrency(result.MinBorrowingCapacity), formatCurrency(result.MaxBorrowingCapacity))
    fmt.Fprintf(&b, `<p>Net monthly income: %s<br>Monthly expenses: %s<br>Monthly surplus: %s<br>Assessment rate: %.2f%%</p>`,
        formatCurrency(result.NetMonthlyIncome), formatCurrency(result.MonthlyExpenses),
        formatCurrency(result.MonthlySurplus), result.AssessmentRate*100)
    b.WriteString(`<p style="font-size: 12px; color: #666;">This estimate is based on the information provided and is not a loan offer or approval.</p>`)
    b.WriteString(`</div>`)
    return b.String()
}

// formatCurrency renders a whole-dollar amount with thousands separators.
func formatCurrency(v float64) string {
    neg := v < 0
    if neg {
        v = -v
    }
    s := fmt.Sprintf("%.0f", v)
    var parts []string
    for len(s) > 3 {
        parts = append([]string{s[len(s)-3:]}, parts...)
        s = s[:len(s)-3]
    }
    parts = append([]string{s}, parts...)
    out := "$" + strings.Join(parts, ",")
    if neg {
        return "-" + out
    }
    return out
}

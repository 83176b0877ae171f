package extraction

import (
    "math"
    "regexp"
    "strconv"
    "strings"

    "github.com/BIG-PRIMEZ/mortgage-prequalification/models"
)

// rule is one field's ordered pattern list. Patterns are tried in order and
// the first match wins; ordering matters because shorthand notation ("80k")
// must be tried before the decimal-comma patterns for the same field.
type rule struct {
    field    string
    patterns []*regexp.Regexp
    apply    func(raw string, existing models.UserData, out *models.UserData)
}

// parseAmount normalizes a captured money string: strips currency symbols and
// thousands separators, expands a trailing k suffix.
func parseAmount(raw string) float64 {
    s := strings.TrimSpace(raw)
    if strings.HasSuffix(strings.ToLower(s), "k") {
        n, _ := strconv.ParseFloat(strings.TrimSuffix(strings.ToLower(s), "k"), 64)
        return n * 1000
    }
    s = strings.NewReplacer("$", "", ",", "").Replace(s)
    n, _ := strconv.ParseFloat(s, 64)
    return math.Trunc(n)
}

func amountApply(set func(*models.UserData, float64)) func(string, models.UserData, *models.UserData) {
    return func(raw string, _ models.UserData, out *models.UserData) {
        v := parseAmount(raw)
        set(out, v)
    }
}

var extractionRules = []rule{
    {
        field: "grossAnnualIncome",
        patterns: []*regexp.Regexp{
            // k-notation first
            regexp.MustCompile(`(?i)(?:income|salary|earn|make)\s*(?:is|of)?\s*\$?(\d+k)`),
            regexp.MustCompile(`(?i)\$?(\d+k)\s*(?:per year|annually|annual|yearly)`),
            regexp.MustCompile(`(?i)make\s+\$?(\d+k)\s*(?:annually|per year|a year)?`),
            regexp.MustCompile(`(?i)earn\s+\$?(\d+k)\s*(?:annually|per year|a year)?`),
            // full-number patterns
            regexp.MustCompile(`(?i)(?:annual income|yearly income|income|salary|earn|make)\s*(?:is|of|about|around)?\s*\$?(\d+(?:,\d{3})*(?:\.\d{2})?)`),
            regexp.MustCompile(`(?i)\$?(\d+(?:,\d{3})*(?:\.\d{2})?)\s*(?:per year|annually|annual|yearly|/year|/yr)`),
            regexp.MustCompile(`(?i)earn\s+\$?(\d+(?:,\d{3})*(?:\.\d{2})?)\s*(?:a year|per year)?`),
            regexp.MustCompile(`(?i)make\s+\$?(\d+(?:,\d{3})*(?:\.\d{2})?)\s*(?:a year|per year)?`),
        },
        apply: amountApply(func(d *models.UserData, v float64) { d.GrossAnnualIncome = &v }),
    },
    {
        field: "monthlyDebts",
        patterns: []*regexp.Regexp{
            regexp.MustCompile(`(?i)(?:monthly\s*debt\s*obligations?)\s*(?:are|is)?\s*\$?(\d+(?:,\d{3})*(?:\.\d{2})?)`),
            regexp.MustCompile(`(?i)\$?(\d+(?:,\d{3})*(?:\.\d{2})?)\s*(?:in\s*)?(?:monthly|per month|/month|/mo)\s*(?:debts?|payments?|obligations?|expenses?)`),
            regexp.MustCompile(`(?i)(?:monthly|per month)\s*(?:debts?|payments?|obligations?|expenses?)\s*(?:are|is|of|about|total)?\s*\$?(\d+(?:,\d{3})*(?:\.\d{2})?)`),
            regexp.MustCompile(`(?i)(?:debts?|payments?|obligations?)\s*(?:are|is)?\s*\$?(\d+(?:,\d{3})*(?:\.\d{2})?)\s*(?:monthly|per month|a month|/month)`),
            regexp.MustCompile(`(?i)pay\s+\$?(\d+(?:,\d{3})*(?:\.\d{2})?)\s*(?:monthly|per month|a month)`),
            regexp.MustCompile(`(?i)\$?(\d+(?:,\d{3})*(?:\.\d{2})?)\s*(?:in\s*)?monthly\s*(?:debt|payment)`),
            regexp.MustCompile(`(?i)monthly:?\s*\$?(\d+(?:,\d{3})*(?:\.\d{2})?)`),
            regexp.MustCompile(`(?i)debts?:?\s*\$?(\d+(?:,\d{3})*(?:\.\d{2})?)\s*(?:monthly|/mo)?`),
        },
        apply: amountApply(func(d *models.UserData, v float64) { d.MonthlyDebts = &v }),
    },
    {
        field: "purchasePrice",
        patterns: []*regexp.Regexp{
            regexp.MustCompile(`(?i)purchase\s*price\s*(?:is|of)?\s*\$?(\d+k)`),
            regexp.MustCompile(`(?i)(?:home|house|property)\s*(?:costs?|price)\s*\$?(\d+k)`),
            regexp.MustCompile(`(?i)looking\s*at\s*(?:a\s*)?\$?(\d+k)\s*(?:home|house|property)`),
            regexp.MustCompile(`(?i)(\d+k)\s*(?:home|house|property)`),
            regexp.MustCompile(`(?i)purchase\s*price\s*(?:of\s*the\s*property\s*)?(?:I'm\s*interested\s*in\s*)?(?:is|of|about|around)?\s*\$?(\d+(?:,\d{3})*(?:\.\d{2})?)`),
            regexp.MustCompile(`(?i)(?:home|house|property|place)\s*(?:costs?|price|is priced at|is listed at)\s*\$?(\d+(?:,\d{3})*(?:\.\d{2})?)`),
            regexp.MustCompile(`(?i)(?:looking at|considering|interested in|want to buy)\s*(?:a\s*)?\$?(\d+(?:,\d{3})*(?:\.\d{2})?)\s*(?:home|house|property)`),
            regexp.MustCompile(`(?i)(?:buying|purchasing)\s*(?:a|the)?\s*(?:home|house|property)\s*(?:for|at)\s*\$?(\d+(?:,\d{3})*(?:\.\d{2})?)`),
            regexp.MustCompile(`(?i)\$?(\d+(?:,\d{3})*(?:\.\d{2})?)\s*(?:home|house|property|place)`),
            regexp.MustCompile(`(?i)purchase\s*price\s*of\s*the\s*property\s*I'?m?\s*interested.*?(?:is|in)?\s*\$?(\d+(?:,\d{3})*(?:\.\d{2})?)`),
            regexp.MustCompile(`(?i)price:?\s*\$?(\d+(?:,\d{3})*(?:\.\d{2})?)`),
            regexp.MustCompile(`(?i)cost:?\s*\$?(\d+(?:,\d{3})*(?:\.\d{2})?)`),
        },
        apply: amountApply(func(d *models.UserData, v float64) { d.PurchasePrice = &v }),
    },
    {
        field: "downPayment",
        patterns: []*regexp.Regexp{
            regexp.MustCompile(`(?i)(?:have|saved)\s*\$?(\d+k)\s*(?:for\s*)?down`),
            regexp.MustCompile(`(?i)down\s*payment\s*\$?(\d+k)`),
            regexp.MustCompile(`(?i)down\s*payment\s*amount\s*\$?(\d+k)`),
            regexp.MustCompile(`(?i)(\d+k)\s*down`),
            regexp.MustCompile(`(?i)(\d+k)\s*(?:for\s*)?down\s*payment`),
            regexp.MustCompile(`(?i)(?:have|saved|putting down|can put down|down payment amount)\s*\$?(\d+(?:,\d{3})*(?:\.\d{2})?)\s*(?:for\s*(?:the\s*)?)?(?:down payment|down|deposit)`),
            regexp.MustCompile(`(?i)down\s*payment\s*(?:is|of|about)?\s*\$?(\d+(?:,\d{3})*(?:\.\d{2})?)`),
            regexp.MustCompile(`(?i)\$?(\d+(?:,\d{3})*(?:\.\d{2})?)\s*(?:for\s*(?:the\s*)?)?down\s*(?:payment)?`),
            regexp.MustCompile(`(?i)(?:deposit|down)\s*(?:is|of)?\s*\$?(\d+(?:,\d{3})*(?:\.\d{2})?)`),
            // percentage forms; converted against the known purchase price
            regexp.MustCompile(`(?i)(\d+%)\s*down`),
            regexp.MustCompile(`(?i)down\s*payment\s*(?:is|of)?\s*(\d+%)`),
        },
        apply: func(raw string, existing models.UserData, out *models.UserData) {
            if strings.HasSuffix(raw, "%") {
                if existing.PurchasePrice == nil {
                    return
                }
                pct, _ := strconv.ParseFloat(strings.TrimSuffix(raw, "%"), 64)
                v := math.Round(pct / 100 * *existing.PurchasePrice)
                out.DownPayment = &v
                return
            }
            v := parseAmount(raw)
            out.DownPayment = &v
        },
    },
    {
        field: "propertyValue",
        patterns: []*regexp.Regexp{
            regexp.MustCompile(`(?i)(?:current\s*estimated\s*value|estimated\s*value)\s*(?:of\s*(?:my|the)\s*property\s*)?(?:is\s*)?\$?(\d+(?:,\d{3})*(?:\.\d{2})?)`),
            regexp.MustCompile(`(?i)property\s*(?:is\s*)?(?:valued?|worth|appraised)\s*(?:at\s*)?\$?(\d+(?:,\d{3})*(?:\.\d{2})?)`),
            regexp.MustCompile(`(?i)(?:home|house)\s*(?:is\s*)?worth\s*\$?(\d+(?:,\d{3})*(?:\.\d{2})?)`),
            regexp.MustCompile(`(?i)(?:current|market)\s*value\s*(?:is|of)?\s*\$?(\d+(?:,\d{3})*(?:\.\d{2})?)`),
            regexp.MustCompile(`(?i)value\s*of\s*(?:my|the)\s*property\s*(?:is\s*)?\$?(\d+(?:,\d{3})*(?:\.\d{2})?)`),
            regexp.MustCompile(`(?i)valued?\s*at\s*\$?(\d+(?:,\d{3})*(?:\.\d{2})?)`),
            regexp.MustCompile(`(?i)property\s*(?:value|worth)\s*\$?(\d+k)`),
        },
        apply: amountApply(func(d *models.UserData, v float64) { d.PropertyValue = &v }),
    },
    {
        field: "desiredLoanAmount",
        patterns: []*regexp.Regexp{
            regexp.MustCompile(`(?i)(?:want to|would like to|need to|looking to)\s*(?:borrow|refinance for|get|take out)\s*\$?(\d+(?:,\d{3})*(?:\.\d{2})?)`),
            regexp.MustCompile(`(?i)(?:loan amount|refinance amount)\s*(?:is|of|would be)?\s*\$?(\d+(?:,\d{3})*(?:\.\d{2})?)`),
            regexp.MustCompile(`(?i)(?:borrow|need|want)\s*\$?(\d+(?:,\d{3})*(?:\.\d{2})?)\s*(?:from|for|in)\s*(?:the\s*)?(?:refinance|loan)`),
            regexp.MustCompile(`(?i)(?:borrow|refinance)\s*\$?(\d+k)`),
        },
        apply: amountApply(func(d *models.UserData, v float64) { d.DesiredLoanAmount = &v }),
    },
    {
        field: "email",
        patterns: []*regexp.Regexp{
            regexp.MustCompile(`\b([a-zA-Z0-9][a-zA-Z0-9._%+-]*@[a-zA-Z0-9][a-zA-Z0-9.-]*\.[a-zA-Z]{2,})\b`),
        },
        apply: func(raw string, _ models.UserData, out *models.UserData) {
            v := strings.ToLower(strings.TrimSpace(raw))
            out.Email = &v
        },
    },
    {
        field: "phone",
        patterns: []*regexp.Regexp{
            regexp.MustCompile(`\b(\d{11})\b`),
            regexp.MustCompile(`\b(\d{10})\b`),
            regexp.MustCompile(`\b((?:\+?\d{1,3}[-.\s]?)?\(?\d{3,4}\)?[-.\s]?\d{3,4}[-.\s]?\d{3,6})\b`),
            regexp.MustCompile(`\b(\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4})\b`),
            regexp.MustCompile(`(?i)\b(\d{3}[-.\s]?\d{3}[-.\s]?\d{4}(?:\s*(?:ext|x|extension)\.?\s*\d{1,5})?)`),
        },
        apply: func(raw string, _ models.UserData, out *models.UserData) {
            v := cleanPhone(raw)
            out.Phone = &v
        },
    },
    {
        field: "fullName",
        patterns: []*regexp.Regexp{
            // cue is case-insensitive, the captured name is not
            regexp.MustCompile(`(?i:my\s*(?:full\s*)?name\s*is|i\s*am|i'm)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)+)`),
            regexp.MustCompile(`(?i:name|called)\s*:\s*([A-Z][a-z]+(?:\s+[A-Z][a-z]+)+)`),
        },
        apply: func(raw string, _ models.UserData, out *models.UserData) {
            v := strings.TrimSpace(raw)
            out.FullName = &v
        },
    },
}

var phoneStrip = regexp.MustCompile(`[-.\s()]`)

// cleanPhone strips formatting characters and a single leading literal 1, a
// common US country-code artifact. E.164 formatting happens downstream.
func cleanPhone(raw string) string {
    s := phoneStrip.ReplaceAllString(raw, "")
    return strings.TrimPrefix(s, "1")
}

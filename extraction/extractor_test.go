package extraction_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BIG-PRIMEZ/mortgage-prequalification/extraction"
	"github.com/BIG-PRIMEZ/mortgage-prequalification/models"
)

func TestExtractIncomeNotations(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    float64
	}{
		{"dollar with separators", "My income is $92,000", 92000},
		{"k shorthand", "my income is 92k", 92000},
		{"earn phrasing", "I earn 85k a year", 85000},
		{"per year suffix", "I get $78,500 per year", 78500},
		{"cents truncated", "my salary is 92000.75", 92000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extraction.Extract(tt.message, models.PhaseCollection, models.UserData{})
			require.NotNil(t, got.Data.GrossAnnualIncome)
			assert.Equal(t, tt.want, *got.Data.GrossAnnualIncome)
		})
	}
}

func TestExtractIsPure(t *testing.T) {
	msg := "I make $95,000 and pay $1,200 monthly in debt"
	first := extraction.Extract(msg, models.PhaseCollection, models.UserData{})
	second := extraction.Extract(msg, models.PhaseCollection, models.UserData{})
	assert.Equal(t, first, second)
}

func TestExtractMultipleFields(t *testing.T) {
	msg := "I make $95,000 a year and my monthly debts are $1,200"
	got := extraction.Extract(msg, models.PhaseCollection, models.UserData{})
	require.NotNil(t, got.Data.GrossAnnualIncome)
	assert.Equal(t, float64(95000), *got.Data.GrossAnnualIncome)
	require.NotNil(t, got.Data.MonthlyDebts)
	assert.Equal(t, float64(1200), *got.Data.MonthlyDebts)
}

func TestExtractTrailingComma(t *testing.T) {
	got := extraction.Extract("The purchase price is $420,000, I think.", models.PhaseCollection, models.UserData{})
	require.NotNil(t, got.Data.PurchasePrice)
	assert.Equal(t, float64(420000), *got.Data.PurchasePrice)
}

func TestExtractDownPaymentPercent(t *testing.T) {
	price := 300000.0
	existing := models.UserData{PurchasePrice: &price}

	got := extraction.Extract("I can put 20% down", models.PhaseCollection, existing)
	require.NotNil(t, got.Data.DownPayment)
	assert.Equal(t, float64(60000), *got.Data.DownPayment)

	// no known price means the percentage cannot be resolved
	got = extraction.Extract("I can put 20% down", models.PhaseCollection, models.UserData{})
	assert.Nil(t, got.Data.DownPayment)
}

func TestExtractDownPaymentAmount(t *testing.T) {
	got := extraction.Extract("I have saved $60,000 for the down payment", models.PhaseCollection, models.UserData{})
	require.NotNil(t, got.Data.DownPayment)
	assert.Equal(t, float64(60000), *got.Data.DownPayment)
}

func TestExtractRefinanceFields(t *testing.T) {
	got := extraction.Extract("My property is valued at $650,000 and I want to borrow $400,000", models.PhaseCollection, models.UserData{})
	require.NotNil(t, got.Data.PropertyValue)
	assert.Equal(t, float64(650000), *got.Data.PropertyValue)
	require.NotNil(t, got.Data.DesiredLoanAmount)
	assert.Equal(t, float64(400000), *got.Data.DesiredLoanAmount)
}

func TestClassifyIntent(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    models.Intent
	}{
		{"purchase", "I want to purchase a home", models.IntentPurchase},
		{"buying", "we are buying our first house", models.IntentPurchase},
		{"refinance", "looking at refinancing my loan", models.IntentRefinance},
		{"question ignored", "Are you looking to purchase or refinance?", models.IntentUnset},
		{"compound ignored", "purchase or refinance, whichever works", models.IntentUnset},
		{"no cue", "hello there", models.IntentUnset},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extraction.Extract(tt.message, models.PhaseIntent, models.UserData{})
			assert.Equal(t, tt.want, got.Intent)
		})
	}
}

func TestIntentOnlyReadInIntentPhase(t *testing.T) {
	got := extraction.Extract("I want to purchase a home", models.PhaseCollection, models.UserData{})
	assert.Equal(t, models.IntentUnset, got.Intent)
}

func TestExtractContact(t *testing.T) {
	got := extraction.Extract("My name is John Smith, email John.Smith@Example.COM, call me at (555) 123-4567", models.PhaseCollection, models.UserData{})
	require.NotNil(t, got.Data.FullName)
	assert.Equal(t, "John Smith", *got.Data.FullName)
	require.NotNil(t, got.Data.Email)
	assert.Equal(t, "john.smith@example.com", *got.Data.Email)
	require.NotNil(t, got.Data.Phone)
	assert.Equal(t, "5551234567", *got.Data.Phone)
}

func TestExtractPhoneWithCountryCode(t *testing.T) {
	got := extraction.Extract("you can reach me on 15551234567", models.PhaseCollection, models.UserData{})
	require.NotNil(t, got.Data.Phone)
	assert.Equal(t, "5551234567", *got.Data.Phone)
}

func TestContextFallback(t *testing.T) {
	// no direct rule matches here; the clause fallback pairs numbers with
	// nearby keywords
	msg := "about 95,000 from my salary-wise earnings, and roughly 1,100 toward debt each cycle"
	got := extraction.Extract(msg, models.PhaseCollection, models.UserData{})
	require.NotNil(t, got.Data.GrossAnnualIncome)
	assert.Equal(t, float64(95000), *got.Data.GrossAnnualIncome)
	require.NotNil(t, got.Data.MonthlyDebts)
	assert.Equal(t, float64(1100), *got.Data.MonthlyDebts)
}

func TestExtractNothing(t *testing.T) {
	got := extraction.Extract("thanks, talk soon", models.PhaseCollection, models.UserData{})
	assert.True(t, got.Empty())
}

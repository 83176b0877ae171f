package models

// Household types accepted by the HEM lookup.
const (
    HouseholdSingle = "Single"
    HouseholdCouple = "Couple"
)

// UserData is the accumulator of everything extracted from the conversation.
// Fields are pointers so that "not collected yet" is distinguishable from a
// legitimate zero (a $0 down payment still counts as collected).
type UserData struct {
    FullName          *string  `json:"fullName,omitempty"`
    Email             *string  `json:"email,omitempty"`
    Phone             *string  `json:"phone,omitempty"`
    GrossAnnualIncome *float64 `json:"grossAnnualIncome,omitempty"`
    Overtime          *float64 `json:"overtime,omitempty"`
    Bonus             *float64 `json:"bonus,omitempty"`
    MonthlyDebts      *float64 `json:"monthlyDebts,omitempty"`
    PurchasePrice     *float64 `json:"purchasePrice,omitempty"`
    DownPayment       *float64 `json:"downPayment,omitempty"`
    PropertyValue     *float64 `json:"propertyValue,omitempty"`
    DesiredLoanAmount *float64 `json:"desiredLoanAmount,omitempty"`
    CreditCardLimits  *float64 `json:"creditCardLimits,omitempty"`
    PersonalLoans     *float64 `json:"personalLoans,omitempty"`
    OtherLoans        *float64 `json:"otherLoans,omitempty"`
    HasHECS           *bool    `json:"hasHECS,omitempty"`
    HouseholdType     *string  `json:"householdType,omitempty"`
    NumberOfChildren  *int     `json:"numberOfChildren,omitempty"`
    LoanTerm          *int     `json:"loanTerm,omitempty"`     // years
    InterestRate      *float64 `json:"interestRate,omitempty"` // decimal, e.g. 0.045
}

// Merge overlays newly extracted fields onto the accumulator. A field present
// in the update overwrites; a field absent from the update is kept. Nothing is
// ever deleted.
func (d UserData) Merge(u UserData) UserData {
    if u.FullName != nil {
        d.FullName = u.FullName
    }
    if u.Email != nil {
        d.Email = u.Email
    }
    if u.Phone != nil {
        d.Phone = u.Phone
    }
    if u.GrossAnnualIncome != nil {
        d.GrossAnnualIncome = u.GrossAnnualIncome
    }
    if u.Overtime != nil {
        d.Overtime = u.Overtime
    }
    if u.Bonus != nil {
        d.Bonus = u.Bonus
    }
    if u.MonthlyDebts != nil {
        d.MonthlyDebts = u.MonthlyDebts
    }
    if u.PurchasePrice != nil {
        d.PurchasePrice = u.PurchasePrice
    }
    if u.DownPayment != nil {
        d.DownPayment = u.DownPayment
    }
    if u.PropertyValue != nil {
        d.PropertyValue = u.PropertyValue
    }
    if u.DesiredLoanAmount != nil {
        d.DesiredLoanAmount = u.DesiredLoanAmount
    }
    if u.CreditCardLimits != nil {
        d.CreditCardLimits = u.CreditCardLimits
    }
    if u.PersonalLoans != nil {
        d.PersonalLoans = u.PersonalLoans
    }
    if u.OtherLoans != nil {
        d.OtherLoans = u.OtherLoans
    }
    if u.HasHECS != nil {
        d.HasHECS = u.HasHECS
    }
    if u.HouseholdType != nil {
        d.HouseholdType = u.HouseholdType
    }
    if u.NumberOfChildren != nil {
        d.NumberOfChildren = u.NumberOfChildren
    }
    if u.LoanTerm != nil {
        d.LoanTerm = u.LoanTerm
    }
    if u.InterestRate != nil {
        d.InterestRate = u.InterestRate
    }
    return d
}

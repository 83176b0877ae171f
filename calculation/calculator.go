package calculation

import (
    "math"

    "github.com/BIG-PRIMEZ/mortgage-prequalification/models"
)

// Affordability parameters from the UBank reference workbook.
const (
    affordabilityFloor  = 0.0575 // minimum assessment rate
    affordabilityBuffer = 0.03   // buffer above the offered rate
    creditCardRate      = 0.038  // monthly servicing on the full limit
    personalLoanFloor   = 0.1    // annual floor rate for personal loans
    personalLoanTerm    = 36     // months
    rentalDiscount      = 0.75   // rental income haircut for vacancy/costs

    defaultInterestRate = 0.045
    defaultLoanTermYrs  = 30
)

type Applicant struct {
    Salary             float64 `json:"salary"`
    Overtime           float64 `json:"overtime"`
    Bonus              float64 `json:"bonus"`
    NonTaxableIncome   float64 `json:"nonTaxableIncome"`
    RentalIncome       float64 `json:"rentalIncome"`
    GovernmentPayments float64 `json:"governmentPayments"`
    InvestmentIncome   float64 `json:"investmentIncome"`
    HasHECS            bool    `json:"hasHECS"`
}

type Loan struct {
    Purpose      string  `json:"purpose"`
    LoanAmount   float64 `json:"loanAmount"`
    InterestRate float64 `json:"interestRate"` // annual, decimal
    LoanTerm     int     `json:"loanTerm"`     // years
}

type Household struct {
    Type             string `json:"type"` // Single or Couple
    NumberOfChildren int    `json:"numberOfChildren"`
}

type Expenses struct {
    GeneralLivingExpenses float64 `json:"generalLivingExpenses"` // monthly
    CreditCardLimits      float64 `json:"creditCardLimits"`
    PersonalLoans         float64 `json:"personalLoans"`
    OtherLoans            float64 `json:"otherLoans"` // already a monthly figure
}

type Request struct {
    Applicant1 Applicant  `json:"applicant1"`
    Applicant2 *Applicant `json:"applicant2,omitempty"`
    Loan       Loan       `json:"loan"`
    Household  Household  `json:"household"`
    Expenses   Expenses   `json:"expenses"`
}

type Result struct {
    MaxBorrowingCapacity float64  `json:"maxBorrowingCapacity"`
    MinBorrowingCapacity float64  `json:"minBorrowingCapacity"`
    NetMonthlyIncome     float64  `json:"netMonthlyIncome"`
    MonthlyExpenses      float64  `json:"monthlyExpenses"`
    MonthlySurplus       float64  `json:"monthlySurplus"`
    AssessmentRate       float64  `json:"assessmentRate"`
    Applicant1NetMonthly float64  `json:"applicant1NetMonthly"`
    Applicant2NetMonthly *float64 `json:"applicant2NetMonthly,omitempty"`
}

// Calculate runs the full borrowing-capacity computation. Deterministic, no
// I/O; the only error is an invalid household type.
func Calculate(req Request) (Result, error) {
    app1Net := netMonthlyIncome(req.Applicant1)
    var app2Net float64
    if req.Applicant2 != nil {
        app2Net = netMonthlyIncome(*req.Applicant2)
    }
    totalNet := app1Net + app2Net

    // HEM brackets key off annual *net* income.
    monthlyExpenses, err := monthlyExpenses(req.Household, totalNet*12, req.Expenses)
    if err != nil {
        return Result{}, err
    }

    surplus := totalNet - monthlyExpenses

    assessmentRate := math.Max(affordabilityFloor, req.Loan.InterestRate+affordabilityBuffer)

    maxLoan := maxLoanAmount(surplus, assessmentRate, req.Loan.LoanTerm)
    minLoan := maxLoan * 0.9

    res := Result{
        MaxBorrowingCapacity: math.Round(maxLoan/1000) * 1000,
        MinBorrowingCapacity: math.Round(minLoan/1000) * 1000,
        NetMonthlyIncome:     math.Round(totalNet),
        MonthlyExpenses:      math.Round(monthlyExpenses),
        MonthlySurplus:       math.Round(surplus),
        AssessmentRate:       assessmentRate,
        Applicant1NetMonthly: math.Round(app1Net),
    }
    if req.Applicant2 != nil {
        v := math.Round(app2Net)
        res.Applicant2NetMonthly = &v
    }
    return res, nil
}

func netMonthlyIncome(a Applicant) float64 {
    grossAnnualEmployment := a.Salary + a.Overtime + a.Bonus
    grossWeekly := grossAnnualEmployment / 52
    netWeekly := NetWeeklyIncome(grossWeekly, a.HasHECS)
    netMonthlyEmployment := netWeekly * 52 / 12

    // Non-employment income enters untaxed; rental is discounted for
    // vacancy and holding costs.
    otherMonthly := (a.NonTaxableIncome +
        a.RentalIncome*rentalDiscount +
        a.GovernmentPayments +
        a.InvestmentIncome) / 12

    return netMonthlyEmployment + otherMonthly
}

func monthlyExpenses(h Household, annualNetIncome float64, e Expenses) (float64, error) {
    hem, err := HEMMonthly(h.Type, h.NumberOfChildren, annualNetIncome)
    if err != nil {
        return 0, err
    }

    // HEM is a floor on living costs, never a ceiling.
    living := math.Max(hem, e.GeneralLivingExpenses)

    var debtServicing float64
    if e.CreditCardLimits > 0 {
        debtServicing += e.CreditCardLimits * creditCardRate
    }
    if e.PersonalLoans > 0 {
        debtServicing += monthlyPayment(e.PersonalLoans, personalLoanFloor/12, personalLoanTerm)
    }
    if e.OtherLoans > 0 {
        debtServicing += e.OtherLoans
    }

    return living + debtServicing, nil
}

// maxLoanAmount inverts the amortizing-payment formula: given the surplus as
// the affordable payment, solve for principal at the assessment rate.
func maxLoanAmount(monthlySurplus, annualRate float64, termYears int) float64 {
    if monthlySurplus <= 0 {
        return 0
    }
    r := annualRate / 12
    n := float64(termYears * 12)
    if r == 0 {
        return monthlySurplus * n
    }
    factor := (r * math.Pow(1+r, n)) / (math.Pow(1+r, n) - 1)
    return monthlySurplus / factor
}

// monthlyPayment is the standard level-payment formula, with the zero-rate
// case as a straight-line division.
func monthlyPayment(principal, monthlyRate float64, numberOfPayments int) float64 {
    n := float64(numberOfPayments)
    if monthlyRate == 0 {
        return principal / n
    }
    return principal * (monthlyRate * math.Pow(1+monthlyRate, n)) / (math.Pow(1+monthlyRate, n) - 1)
}

// FromUserData bridges the conversation accumulator into a calculation
// request, filling the workbook defaults for anything the chat never asks.
func FromUserData(data models.UserData, intent models.Intent) Request {
    app1 := Applicant{
        Salary:   deref(data.GrossAnnualIncome),
        Overtime: deref(data.Overtime),
        Bonus:    deref(data.Bonus),
    }
    if data.HasHECS != nil {
        app1.HasHECS = *data.HasHECS
    }

    purpose := "Purchase"
    loanAmount := deref(data.PurchasePrice)
    if intent == models.IntentRefinance {
        purpose = "Refinance"
        loanAmount = deref(data.DesiredLoanAmount)
    } else if data.DesiredLoanAmount != nil {
        loanAmount = *data.DesiredLoanAmount
    }

    rate := defaultInterestRate
    if data.InterestRate != nil {
        rate = *data.InterestRate
    }
    term := defaultLoanTermYrs
    if data.LoanTerm != nil {
        term = *data.LoanTerm
    }

    household := Household{Type: models.HouseholdSingle}
    if data.HouseholdType != nil {
        household.Type = *data.HouseholdType
    }
    if data.NumberOfChildren != nil {
        household.NumberOfChildren = *data.NumberOfChildren
    }

    return Request{
        Applicant1: app1,
        Loan:       Loan{Purpose: purpose, LoanAmount: loanAmount, InterestRate: rate, LoanTerm: term},
        Household:  household,
        Expenses: Expenses{
            GeneralLivingExpenses: deref(data.MonthlyDebts),
            CreditCardLimits:      deref(data.CreditCardLimits),
            PersonalLoans:         deref(data.PersonalLoans),
            OtherLoans:            deref(data.OtherLoans),
        },
    }
}

func deref(p *float64) float64 {
    if p == nil {
        return 0
    }
    return *p
}

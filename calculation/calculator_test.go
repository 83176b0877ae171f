package calculation_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BIG-PRIMEZ/mortgage-prequalification/calculation"
	"github.com/BIG-PRIMEZ/mortgage-prequalification/models"
)

func singleApplicantRequest() calculation.Request {
	return calculation.Request{
		Applicant1: calculation.Applicant{Salary: 80000, Overtime: 5000, Bonus: 10000},
		Loan:       calculation.Loan{Purpose: "Purchase", LoanAmount: 500000, InterestRate: 0.045, LoanTerm: 30},
		Household:  calculation.Household{Type: models.HouseholdSingle, NumberOfChildren: 0},
		Expenses:   calculation.Expenses{GeneralLivingExpenses: 2000},
	}
}

func TestCalculateSingleApplicant(t *testing.T) {
	res, err := calculation.Calculate(singleApplicantRequest())
	require.NoError(t, err)

	// 95000/52 gross weekly lands in the 0.39/358.3077 band:
	// net weekly 1472.73, net monthly 6381.83.
	assert.Equal(t, float64(6382), res.Applicant1NetMonthly)
	assert.Equal(t, float64(6382), res.NetMonthlyIncome)
	assert.Nil(t, res.Applicant2NetMonthly)

	// declared living expenses beat the S0 HEM floor of 1759
	assert.Equal(t, float64(2000), res.MonthlyExpenses)
	assert.Equal(t, float64(4382), res.MonthlySurplus)

	// 4.5% + 3% buffer clears the 5.75% floor
	assert.Equal(t, 0.075, res.AssessmentRate)

	require.Greater(t, res.MaxBorrowingCapacity, float64(0))
	assert.Zero(t, math.Mod(res.MaxBorrowingCapacity, 1000))
	assert.Zero(t, math.Mod(res.MinBorrowingCapacity, 1000))
	// min is 90% of max before the $1000 rounding
	assert.InDelta(t, res.MaxBorrowingCapacity*0.9, res.MinBorrowingCapacity, 1000)
}

func TestCalculateAssessmentRateFloor(t *testing.T) {
	req := singleApplicantRequest()
	req.Loan.InterestRate = 0.02 // 2% + 3% buffer is below the floor
	res, err := calculation.Calculate(req)
	require.NoError(t, err)
	assert.Equal(t, 0.0575, res.AssessmentRate)
}

func TestCalculateHEMFloorApplies(t *testing.T) {
	req := singleApplicantRequest()
	req.Expenses.GeneralLivingExpenses = 500 // below any HEM value
	res, err := calculation.Calculate(req)
	require.NoError(t, err)
	// S0 top band
	assert.Equal(t, float64(1759), res.MonthlyExpenses)
}

func TestCalculateCoupleWithChildren(t *testing.T) {
	req := singleApplicantRequest()
	req.Household = calculation.Household{Type: models.HouseholdCouple, NumberOfChildren: 2}
	req.Expenses.GeneralLivingExpenses = 1000
	res, err := calculation.Calculate(req)
	require.NoError(t, err)
	// C2 top band
	assert.Equal(t, float64(3519), res.MonthlyExpenses)
}

func TestCalculateTwoApplicants(t *testing.T) {
	req := singleApplicantRequest()
	second := calculation.Applicant{Salary: 95000}
	req.Applicant2 = &second
	req.Household.Type = models.HouseholdCouple
	res, err := calculation.Calculate(req)
	require.NoError(t, err)
	require.NotNil(t, res.Applicant2NetMonthly)
	assert.Equal(t, float64(6382), *res.Applicant2NetMonthly)
	assert.Equal(t, float64(12764), res.NetMonthlyIncome)
}

func TestCalculateHECSReducesNet(t *testing.T) {
	req := singleApplicantRequest()
	plain, err := calculation.Calculate(req)
	require.NoError(t, err)

	req.Applicant1.HasHECS = true
	withHECS, err := calculation.Calculate(req)
	require.NoError(t, err)

	assert.Less(t, withHECS.Applicant1NetMonthly, plain.Applicant1NetMonthly)
	assert.Less(t, withHECS.MaxBorrowingCapacity, plain.MaxBorrowingCapacity)
}

func TestCalculateDebtServicing(t *testing.T) {
	req := singleApplicantRequest()
	req.Expenses.CreditCardLimits = 10000
	res, err := calculation.Calculate(req)
	require.NoError(t, err)
	// 3.8% of the full limit per month
	assert.Equal(t, float64(2380), res.MonthlyExpenses)

	req.Expenses.CreditCardLimits = 0
	req.Expenses.PersonalLoans = 10000
	res, err = calculation.Calculate(req)
	require.NoError(t, err)
	// amortized at the 10% floor over 36 months: 322.67/mo
	assert.Equal(t, float64(2323), res.MonthlyExpenses)

	req.Expenses.PersonalLoans = 0
	req.Expenses.OtherLoans = 450
	res, err = calculation.Calculate(req)
	require.NoError(t, err)
	assert.Equal(t, float64(2450), res.MonthlyExpenses)
}

func TestCalculateNoSurplusMeansNoCapacity(t *testing.T) {
	req := singleApplicantRequest()
	req.Applicant1.Salary = 20000
	req.Expenses.GeneralLivingExpenses = 5000
	res, err := calculation.Calculate(req)
	require.NoError(t, err)
	assert.Zero(t, res.MaxBorrowingCapacity)
	assert.Zero(t, res.MinBorrowingCapacity)
	assert.Negative(t, res.MonthlySurplus)
}

func TestCalculateRentalIncomeDiscounted(t *testing.T) {
	base := singleApplicantRequest()
	withRental := singleApplicantRequest()
	withRental.Applicant1.RentalIncome = 12000 // annual

	resBase, err := calculation.Calculate(base)
	require.NoError(t, err)
	resRental, err := calculation.Calculate(withRental)
	require.NoError(t, err)

	// 12000 * 0.75 / 12 = 750 extra net per month
	assert.Equal(t, resBase.NetMonthlyIncome+750, resRental.NetMonthlyIncome)
}

func TestCalculateInvalidHousehold(t *testing.T) {
	req := singleApplicantRequest()
	req.Household.Type = "Commune"
	_, err := calculation.Calculate(req)
	var hhErr calculation.ErrHouseholdType
	require.ErrorAs(t, err, &hhErr)
	assert.Equal(t, "Commune", hhErr.Got)
}

func TestFromUserDataDefaults(t *testing.T) {
	income := 80000.0
	debts := 1500.0
	data := models.UserData{GrossAnnualIncome: &income, MonthlyDebts: &debts}

	req := calculation.FromUserData(data, models.IntentPurchase)
	assert.Equal(t, "Purchase", req.Loan.Purpose)
	assert.Equal(t, 0.045, req.Loan.InterestRate)
	assert.Equal(t, 30, req.Loan.LoanTerm)
	assert.Equal(t, models.HouseholdSingle, req.Household.Type)
	assert.Equal(t, 80000.0, req.Applicant1.Salary)
	assert.Equal(t, 1500.0, req.Expenses.GeneralLivingExpenses)
}

func TestFromUserDataRefinance(t *testing.T) {
	income := 80000.0
	loan := 320000.0
	data := models.UserData{GrossAnnualIncome: &income, DesiredLoanAmount: &loan}

	req := calculation.FromUserData(data, models.IntentRefinance)
	assert.Equal(t, "Refinance", req.Loan.Purpose)
	assert.Equal(t, 320000.0, req.Loan.LoanAmount)
}

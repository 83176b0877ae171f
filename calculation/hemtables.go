package calculation

import (
    "fmt"

    "github.com/BIG-PRIMEZ/mortgage-prequalification/models"
)

// Income band keys used by the HEM table.
const (
    bandLow  = "0-26000"
    bandMid1 = "26000-39000"
    bandMid2 = "39000-52000"
    bandTop  = "52000+"
)

// HEM Table 24Q3 from the UBank reference workbook. Keys are household code
// (S/C) plus child count capped at 4; values are fixed monthly dollars.
var hemTable = map[string]map[string]float64{
    "C0": {bandLow: 2569, bandMid1: 2569, bandMid2: 2632, bandTop: 2754},
    "C1": {bandLow: 2983, bandMid1: 2983, bandMid2: 2983, bandTop: 3105},
    "C2": {bandLow: 3397, bandMid1: 3397, bandMid2: 3397, bandTop: 3519},
    "C3": {bandLow: 3811, bandMid1: 3811, bandMid2: 3811, bandTop: 3933},
    "C4": {bandLow: 4225, bandMid1: 4225, bandMid2: 4225, bandTop: 4347},
    "S0": {bandLow: 1574, bandMid1: 1574, bandMid2: 1637, bandTop: 1759},
    "S1": {bandLow: 1988, bandMid1: 1988, bandMid2: 2051, bandTop: 2173},
    "S2": {bandLow: 2402, bandMid1: 2402, bandMid2: 2465, bandTop: 2587},
    "S3": {bandLow: 2816, bandMid1: 2816, bandMid2: 2879, bandTop: 3001},
    "S4": {bandLow: 3230, bandMid1: 3230, bandMid2: 3293, bandTop: 3415},
}

// ErrHouseholdType reports a household type outside {Single, Couple}. This is
// a caller contract violation and the one place the calculator fails fast.
type ErrHouseholdType struct {
    Got string
}

func (e ErrHouseholdType) Error() string {
    return fmt.Sprintf("invalid household type %q: want Single or Couple", e.Got)
}

func hemKey(householdType string, numberOfChildren int) (string, error) {
    var code string
    switch householdType {
    case models.HouseholdCouple:
        code = "C"
    case models.HouseholdSingle:
        code = "S"
    default:
        return "", ErrHouseholdType{Got: householdType}
    }
    children := numberOfChildren
    if children > 4 {
        children = 4
    }
    if children < 0 {
        children = 0
    }
    return fmt.Sprintf("%s%d", code, children), nil
}

// incomeBracket buckets an annual income with strict upper bounds; the top
// band is the default ceiling.
func incomeBracket(annualIncome float64) string {
    switch {
    case annualIncome < 26000:
        return bandLow
    case annualIncome < 39000:
        return bandMid1
    case annualIncome < 52000:
        return bandMid2
    default:
        return bandTop
    }
}

// HEMMonthly returns the household expense measure baseline for a household
// composition and annual income. Values come straight from the table, never
// interpolated.
func HEMMonthly(householdType string, numberOfChildren int, annualIncome float64) (float64, error) {
    key, err := hemKey(householdType, numberOfChildren)
    if err != nil {
        return 0, err
    }
    return hemTable[key][incomeBracket(annualIncome)], nil
}

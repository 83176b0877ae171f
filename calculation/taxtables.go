package calculation

// TaxBracket is one row of a weekly withholding scale. GrossWeeklyIncome is
// the band ceiling; weekly tax inside the band is aCoef*gross - bCoef.
type TaxBracket struct {
    GrossWeeklyIncome float64
    ACoef             float64
    BCoef             float64
}

// Scale 24Q3 from the UBank reference workbook.
var standardTaxTable = []TaxBracket{
    {361, 0.16, 57.8462},
    {500, 0.26, 107.8462},
    {625, 0.18, 57.8462},
    {721, 0.189, 64.3365},
    {865, 0.3227, 180.0385},
    {1282, 0.32, 176.5769},
    {2596, 0.39, 358.3077},
    {3653, 0.47, 650.6154},
}

// STSL scale: same bands plus study-loan withholding steps.
var stslTaxTable = []TaxBracket{
    {361, 0.16, 57.8462},
    {500, 0.26, 107.8462},
    {625, 0.18, 57.8462},
    {721, 0.189, 64.3365},
    {865, 0.3227, 180.0385},
    {1046, 0.3327, 180.0385},
    {1208, 0.3427, 180.0385},
    {1281, 0.345, 176.5769},
    {1358, 0.35, 176.5769},
    {1439, 0.355, 176.5769},
    {1525, 0.36, 176.5769},
    {1617, 0.365, 176.5769},
    {1714, 0.37, 176.5769},
    {1817, 0.375, 176.5769},
    {1926, 0.38, 176.5769},
    {2042, 0.385, 176.5769},
    {2164, 0.39, 176.5769},
    {2294, 0.395, 176.5769},
    {2432, 0.4, 176.5769},
    {2578, 0.405, 176.5769},
    {2596, 0.475, 358.3077},
    {2732, 0.48, 358.3077},
    {2896, 0.485, 358.3077},
    {3070, 0.49, 358.3077},
    {3653, 0.57, 650.6154},
}

// findTaxBracket returns the first band whose ceiling covers the income.
// Income above every ceiling falls into the top band.
func findTaxBracket(grossWeekly float64, table []TaxBracket) TaxBracket {
    for _, b := range table {
        if grossWeekly <= b.GrossWeeklyIncome {
            return b
        }
    }
    return table[len(table)-1]
}

func taxTableFor(hasHECS bool) []TaxBracket {
    if hasHECS {
        return stslTaxTable
    }
    return standardTaxTable
}

// NetWeeklyIncome converts a gross weekly income to net using the scale
// selected by the HECS flag. Total on all inputs; negative income is the
// caller's problem, not validated here.
func NetWeeklyIncome(grossWeekly float64, hasHECS bool) float64 {
    b := findTaxBracket(grossWeekly, taxTableFor(hasHECS))
    weeklyTax := b.ACoef*grossWeekly - b.BCoef
    return grossWeekly - weeklyTax
}

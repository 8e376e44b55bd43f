package payroll

import "math"

// Statutory deduction rates applied to the gross total. Fixed, not
// configurable.
const (
	EPFRate = 0.08
	ETFRate = 0.03
)

// ComputeTotal returns the gross total for one payroll record. A nil
// overtimeRate falls back to the hourly rate. The total is allowed to go
// negative when deductions exceed earnings.
func ComputeTotal(basicHours, hourlyRate, overtimeHours float64, overtimeRate *float64, deductions float64) float64 {
	rate := hourlyRate
	if overtimeRate != nil {
		rate = *overtimeRate
	}
	return basicHours*hourlyRate + overtimeHours*rate - deductions
}

// StatutoryDeductions splits a gross total into EPF, ETF and the remaining
// net salary. Negative totals produce negative contributions, matching the
// behaviour of the calculator on display.
func StatutoryDeductions(total float64) (epf, etf, net float64) {
	epf = total * EPFRate
	etf = total * ETFRate
	net = total - epf - etf
	return epf, etf, net
}

// Round2 is for presentation only; stored totals keep full precision.
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}

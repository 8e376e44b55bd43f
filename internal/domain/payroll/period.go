package payroll

import "regexp"

// A pay period is a calendar year-month token, e.g. "2025-07".
var payPeriodPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

func ValidPayPeriod(period string) bool {
	return payPeriodPattern.MatchString(period)
}

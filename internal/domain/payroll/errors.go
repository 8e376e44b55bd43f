package payroll

import "errors"

var (
	ErrDuplicateRecord = errors.New("payroll record already exists for this employee and pay period")
	ErrNoRecords       = errors.New("no payroll records found for pay period")
)

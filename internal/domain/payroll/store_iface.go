package payroll

import "context"

type StoreAPI interface {
	Insert(ctx context.Context, rec Record) (string, error)
	List(ctx context.Context, employeeID, payPeriod string) ([]Record, error)
	PayslipRows(ctx context.Context, payPeriod string) ([]PayslipData, error)
	PayslipRow(ctx context.Context, payPeriod, employeeID string) (PayslipData, error)
}

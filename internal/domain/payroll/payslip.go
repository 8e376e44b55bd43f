package payroll

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/jung-kurt/gofpdf"
	"golang.org/x/sync/errgroup"
)

// payslipFilename is keyed by (employee, pay period) so generating documents
// for several periods at once cannot collide.
func payslipFilename(employeeID, payPeriod string) string {
	return fmt.Sprintf("payslip_%s_%s.pdf", employeeID, payPeriod)
}

// GenerateDocuments renders one PDF per payroll record in the period.
// Render failures are collected per employee; the rest of the batch
// proceeds.
func (s *Service) GenerateDocuments(ctx context.Context, payPeriod string) ([]GeneratedDoc, []SendFailure, error) {
	rows, err := s.store.PayslipRows(ctx, payPeriod)
	if err != nil {
		return nil, nil, err
	}
	if len(rows) == 0 {
		return nil, nil, ErrNoRecords
	}

	if err := os.MkdirAll(s.cfg.PayslipDir, 0o755); err != nil {
		return nil, nil, err
	}

	var docs []GeneratedDoc
	var failures []SendFailure
	for _, data := range rows {
		filename := payslipFilename(data.EmployeeID, payPeriod)
		if err := s.writePDF(data, filepath.Join(s.cfg.PayslipDir, filename)); err != nil {
			failures = append(failures, SendFailure{
				Employee: data.FirstName + " " + data.LastName,
				Email:    data.Email,
				Error:    err.Error(),
			})
			continue
		}
		docs = append(docs, GeneratedDoc{
			EmployeeID: data.EmployeeID,
			Filename:   filename,
			URL:        s.cfg.PayslipBaseURL + "/" + filename,
		})
	}
	return docs, failures, nil
}

func (s *Service) writePDF(data PayslipData, path string) error {
	epf, etf, net := StatutoryDeductions(data.TotalSalary)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, s.cfg.CompanyName)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	if s.cfg.CompanyAddress != "" {
		pdf.Cell(0, 6, s.cfg.CompanyAddress)
		pdf.Ln(8)
	}
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, fmt.Sprintf("Payslip for %s", data.PayPeriod))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Employee: %s %s", data.FirstName, data.LastName))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Email: %s", data.Email))
	pdf.Ln(10)

	line := func(label string, amount float64) {
		pdf.CellFormat(90, 7, label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 7, fmt.Sprintf("%.2f", Round2(amount)), "1", 1, "R", false, 0, "")
	}
	line(fmt.Sprintf("Basic pay (%.2f h x %.2f)", data.BasicHours, data.HourlyRate), data.BasicHours*data.HourlyRate)
	line(fmt.Sprintf("Overtime (%.2f h x %.2f)", data.OvertimeHours, data.OvertimeRate), data.OvertimeHours*data.OvertimeRate)
	line("Other deductions", -data.Deductions)
	line("Gross total", data.TotalSalary)
	line("EPF (8%)", -epf)
	line("ETF (3%)", -etf)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(90, 8, "Net salary", "1", 0, "L", false, 0, "")
	pdf.CellFormat(50, 8, fmt.Sprintf("%.2f", Round2(net)), "1", 1, "R", false, 0, "")

	return pdf.OutputFileAndClose(path)
}

func buildEmailBody(companyName string, data PayslipData) string {
	epf, etf, net := StatutoryDeductions(data.TotalSalary)
	row := func(label string, amount float64) string {
		return fmt.Sprintf("<tr><td>%s</td><td align=\"right\">%.2f</td></tr>", label, Round2(amount))
	}
	return fmt.Sprintf(`<html><body>
<h3>%s</h3>
<p>Payslip for %s %s — %s</p>
<table border="1" cellpadding="4" cellspacing="0">
%s%s%s%s%s%s
<tr><td><b>Net salary</b></td><td align="right"><b>%.2f</b></td></tr>
</table>
</body></html>`,
		companyName, data.FirstName, data.LastName, data.PayPeriod,
		row("Basic pay", data.BasicHours*data.HourlyRate),
		row("Overtime", data.OvertimeHours*data.OvertimeRate),
		row("Other deductions", -data.Deductions),
		row("Gross total", data.TotalSalary),
		row("EPF (8%)", -epf),
		row("ETF (3%)", -etf),
		Round2(net))
}

// SendAll emails a payslip to every employee with a record in the period.
// Sends run concurrently up to the configured limit; one failing recipient
// never blocks the rest. The summary reports success only when nothing
// failed.
func (s *Service) SendAll(ctx context.Context, payPeriod string) (SendSummary, error) {
	rows, err := s.store.PayslipRows(ctx, payPeriod)
	if err != nil {
		return SendSummary{}, err
	}
	if len(rows) == 0 {
		return SendSummary{}, ErrNoRecords
	}

	var mu sync.Mutex
	summary := SendSummary{Failures: []SendFailure{}}

	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(s.cfg.SendLimit)
	for _, data := range rows {
		data := data
		group.Go(func() error {
			err := s.sendOne(gctx, data)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				summary.Failed++
				summary.Failures = append(summary.Failures, SendFailure{
					Employee: data.FirstName + " " + data.LastName,
					Email:    data.Email,
					Error:    err.Error(),
				})
				return nil
			}
			summary.Sent++
			return nil
		})
	}
	_ = group.Wait()

	sort.Slice(summary.Failures, func(i, j int) bool {
		return summary.Failures[i].Employee < summary.Failures[j].Employee
	})
	summary.Success = summary.Failed == 0
	return summary, nil
}

// SendOne emails exactly one payslip for the given employee and period.
func (s *Service) SendOne(ctx context.Context, payPeriod, employeeID string) error {
	data, err := s.store.PayslipRow(ctx, payPeriod, employeeID)
	if err != nil {
		return err
	}
	return s.sendOne(ctx, data)
}

func (s *Service) sendOne(ctx context.Context, data PayslipData) error {
	subject := fmt.Sprintf("Your payslip for %s", data.PayPeriod)
	body := buildEmailBody(s.cfg.CompanyName, data)
	return s.mailer.Send(ctx, s.cfg.EmailFrom, data.Email, subject, body)
}

package dashboard

import "time"

// HeadcountByDepartment counts employees per department. Buckets keep the
// order in which a department is first seen; a missing department lands in
// "Unknown".
func HeadcountByDepartment(employees []EmployeeRow) ChartSeries {
	series := ChartSeries{Labels: []string{}, Data: []float64{}}
	index := map[string]int{}
	for _, emp := range employees {
		dept := emp.Department
		if dept == "" {
			dept = unknownDepartment
		}
		pos, ok := index[dept]
		if !ok {
			pos = len(series.Labels)
			index[dept] = pos
			series.Labels = append(series.Labels, dept)
			series.Data = append(series.Data, 0)
		}
		series.Data[pos]++
	}
	return series
}

// OvertimeByDepartment sums overtime hours per department, resolving each
// payroll row through its owning employee. Rows whose employee is unknown
// are bucketed under "Unknown".
func OvertimeByDepartment(employees []EmployeeRow, payrolls []PayrollRow) ChartSeries {
	departments := make(map[string]string, len(employees))
	for _, emp := range employees {
		dept := emp.Department
		if dept == "" {
			dept = unknownDepartment
		}
		departments[emp.ID] = dept
	}

	series := ChartSeries{Labels: []string{}, Data: []float64{}}
	index := map[string]int{}
	for _, row := range payrolls {
		dept, ok := departments[row.EmployeeID]
		if !ok {
			dept = unknownDepartment
		}
		pos, ok := index[dept]
		if !ok {
			pos = len(series.Labels)
			index[dept] = pos
			series.Labels = append(series.Labels, dept)
			series.Data = append(series.Data, 0)
		}
		series.Data[pos] += row.OvertimeHours
	}
	return series
}

// ExpenseSeries builds the trailing six calendar-month payroll expense
// series ending at now's month. Records outside the window are silently
// dropped.
func ExpenseSeries(payrolls []PayrollRow, now time.Time) ChartSeries {
	series := ChartSeries{Labels: make([]string, 0, 6), Data: make([]float64, 6)}
	index := map[string]int{}
	anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	for i := 5; i >= 0; i-- {
		month := anchor.AddDate(0, -i, 0)
		index[month.Format("2006-01")] = len(series.Labels)
		series.Labels = append(series.Labels, month.Month().String())
	}

	for _, row := range payrolls {
		pos, ok := index[row.PaidDate.Format("2006-01")]
		if !ok {
			continue
		}
		series.Data[pos] += row.TotalSalary
	}
	return series
}

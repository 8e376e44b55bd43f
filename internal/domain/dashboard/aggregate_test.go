package dashboard

import (
	"reflect"
	"testing"
	"time"
)

func TestHeadcountByDepartment(t *testing.T) {
	employees := []EmployeeRow{
		{ID: "1", Department: "Eng"},
		{ID: "2", Department: "Eng"},
		{ID: "3", Department: "HR"},
		{ID: "4", Department: ""},
	}

	series := HeadcountByDepartment(employees)
	wantLabels := []string{"Eng", "HR", "Unknown"}
	if !reflect.DeepEqual(series.Labels, wantLabels) {
		t.Fatalf("expected labels %v, got %v", wantLabels, series.Labels)
	}
	wantData := []float64{2, 1, 1}
	if !reflect.DeepEqual(series.Data, wantData) {
		t.Fatalf("expected data %v, got %v", wantData, series.Data)
	}
}

func TestHeadcountEmptyInput(t *testing.T) {
	series := HeadcountByDepartment(nil)
	if len(series.Labels) != 0 || len(series.Data) != 0 {
		t.Fatalf("expected empty series, got %+v", series)
	}
}

func TestOvertimeByDepartment(t *testing.T) {
	employees := []EmployeeRow{
		{ID: "1", Department: "Eng"},
		{ID: "2", Department: "HR"},
	}
	payrolls := []PayrollRow{
		{EmployeeID: "1", OvertimeHours: 5},
		{EmployeeID: "2", OvertimeHours: 3},
		{EmployeeID: "1", OvertimeHours: 2},
		{EmployeeID: "missing", OvertimeHours: 4},
	}

	series := OvertimeByDepartment(employees, payrolls)
	wantLabels := []string{"Eng", "HR", "Unknown"}
	if !reflect.DeepEqual(series.Labels, wantLabels) {
		t.Fatalf("expected labels %v, got %v", wantLabels, series.Labels)
	}
	wantData := []float64{7, 3, 4}
	if !reflect.DeepEqual(series.Data, wantData) {
		t.Fatalf("expected data %v, got %v", wantData, series.Data)
	}
}

func TestExpenseSeriesWindow(t *testing.T) {
	now := time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC)
	payrolls := []PayrollRow{
		{TotalSalary: 100, PaidDate: time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)},
		{TotalSalary: 200, PaidDate: time.Date(2025, time.May, 10, 0, 0, 0, 0, time.UTC)},
		{TotalSalary: 300, PaidDate: time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)},
		{TotalSalary: 400, PaidDate: time.Date(2024, time.January, 3, 0, 0, 0, 0, time.UTC)},
	}

	series := ExpenseSeries(payrolls, now)
	wantLabels := []string{"February", "March", "April", "May", "June", "July"}
	if !reflect.DeepEqual(series.Labels, wantLabels) {
		t.Fatalf("expected labels %v, got %v", wantLabels, series.Labels)
	}
	wantData := []float64{0, 0, 0, 200, 0, 300}
	if !reflect.DeepEqual(series.Data, wantData) {
		t.Fatalf("expected data %v, got %v", wantData, series.Data)
	}
}

func TestExpenseSeriesYearBoundary(t *testing.T) {
	now := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)
	payrolls := []PayrollRow{
		{TotalSalary: 50, PaidDate: time.Date(2024, time.September, 30, 0, 0, 0, 0, time.UTC)},
		{TotalSalary: 75, PaidDate: time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC)},
	}

	series := ExpenseSeries(payrolls, now)
	wantLabels := []string{"September", "October", "November", "December", "January", "February"}
	if !reflect.DeepEqual(series.Labels, wantLabels) {
		t.Fatalf("expected labels %v, got %v", wantLabels, series.Labels)
	}
	if series.Data[0] != 50 || series.Data[4] != 75 {
		t.Fatalf("unexpected data: %v", series.Data)
	}
}

func TestExpenseSeriesEmpty(t *testing.T) {
	series := ExpenseSeries(nil, time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC))
	if len(series.Labels) != 6 {
		t.Fatalf("expected 6 labels, got %d", len(series.Labels))
	}
	for i, value := range series.Data {
		if value != 0 {
			t.Fatalf("expected zero bucket at %d, got %v", i, value)
		}
	}
}

package payroll

import "testing"

func TestComputeTotal(t *testing.T) {
	overtime := 15.0
	tests := []struct {
		name          string
		basicHours    float64
		hourlyRate    float64
		overtimeHours float64
		overtimeRate  *float64
		deductions    float64
		want          float64
	}{
		{"plain", 160, 10, 0, nil, 0, 1600},
		{"with overtime rate", 160, 10, 8, &overtime, 0, 1720},
		{"overtime defaults to hourly rate", 160, 10, 8, nil, 0, 1680},
		{"deductions subtracted", 160, 10, 0, nil, 100, 1500},
		{"negative total allowed", 10, 10, 0, nil, 500, -400},
		{"all zero", 0, 0, 0, nil, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTotal(tt.basicHours, tt.hourlyRate, tt.overtimeHours, tt.overtimeRate, tt.deductions)
			if got != tt.want {
				t.Fatalf("expected total %v, got %v", tt.want, got)
			}
		})
	}
}

func TestStatutoryDeductions(t *testing.T) {
	epf, etf, net := StatutoryDeductions(1000)
	if epf != 80 {
		t.Fatalf("expected EPF 80, got %v", epf)
	}
	if etf != 30 {
		t.Fatalf("expected ETF 30, got %v", etf)
	}
	if net != 890 {
		t.Fatalf("expected net 890, got %v", net)
	}
}

func TestStatutoryDeductionsNegativeTotal(t *testing.T) {
	epf, etf, net := StatutoryDeductions(-100)
	if epf != -8 {
		t.Fatalf("expected EPF -8, got %v", epf)
	}
	if etf != -3 {
		t.Fatalf("expected ETF -3, got %v", etf)
	}
	if net != -89 {
		t.Fatalf("expected net -89, got %v", net)
	}
}

func TestRound2(t *testing.T) {
	if got := Round2(10.005); got != 10.01 {
		t.Fatalf("expected 10.01, got %v", got)
	}
	if got := Round2(-2.344); got != -2.34 {
		t.Fatalf("expected -2.34, got %v", got)
	}
}

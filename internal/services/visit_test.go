package services

import "testing"

func TestAverageDuration(t *testing.T) {
	tests := []struct {
		name        string
		durationSum float64
		totalVisits int
		want        float64
	}{
		{name: "no visits", durationSum: 0, totalVisits: 0, want: 0},
		{name: "no durations recorded", durationSum: 0, totalVisits: 5, want: 0},
		{name: "exact division", durationSum: 30, totalVisits: 3, want: 10},
		{name: "rounds to two decimals", durationSum: 10, totalVisits: 3, want: 3.33},
		{name: "rounds up", durationSum: 5, totalVisits: 3, want: 1.67},
		{name: "visits without duration dilute the average", durationSum: 12.5, totalVisits: 4, want: 3.13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AverageDuration(tt.durationSum, tt.totalVisits); got != tt.want {
				t.Errorf("AverageDuration(%v, %d) = %v, want %v", tt.durationSum, tt.totalVisits, got, tt.want)
			}
		})
	}
}

package cost

import (
	"testing"
)

func TestToolMetrics(t *testing.T) {
	metrics := ToolMetrics{
		Amount:   0.001,
		Currency: "USD",
	}

	if metrics.Amount != 0.001 {
		t.Errorf("Expected amount 0.001, got %f", metrics.Amount)
	}

	if metrics.Currency != "USD" {
		t.Errorf("Expected currency USD, got %s", metrics.Currency)
	}
}

func TestToolMetricsString(t *testing.T) {
	tests := []struct {
		name     string
		metrics  ToolMetrics
		expected string
	}{
		{
			name:     "default currency",
			metrics:  ToolMetrics{Amount: 0.001},
			expected: "0.001000 USD",
		},
		{
			name:     "custom currency",
			metrics:  ToolMetrics{Amount: 2, Currency: "credits"},
			expected: "2.000000 credits",
		},
		{
			name:     "with description",
			metrics:  ToolMetrics{Amount: 0, Currency: "USD", CostDescription: "local computation"},
			expected: "0.000000 USD (local computation)",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.metrics.String(); got != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestToolMetricsMetricsString(t *testing.T) {
	tests := []struct {
		name     string
		metrics  ToolMetrics
		expected string
	}{
		{
			name:     "empty",
			metrics:  ToolMetrics{},
			expected: "",
		},
		{
			name:     "accuracy only",
			metrics:  ToolMetrics{Accuracy: 1.0},
			expected: "Accuracy: 100.0%",
		},
		{
			name:     "accuracy and duration",
			metrics:  ToolMetrics{Accuracy: 0.95, AverageDurationInMillis: 1500},
			expected: "Accuracy: 95.0%, Avg duration: 1500ms",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.metrics.MetricsString(); got != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}

package config

import (
	"math"
	"testing"
)

func TestTotalEstimatedCost(t *testing.T) {
	// Sum of the per-operation table: 0.002+0.002+0.0005+0.01+0.0005.
	want := 0.015
	if got := TotalEstimatedCost(); math.Abs(got-want) > 1e-9 {
		t.Errorf("TotalEstimatedCost = %v, want %v", got, want)
	}
}

func TestSufficientBalance(t *testing.T) {
	if SufficientBalance(0.01) {
		t.Error("0.01 SOL should not cover the estimate")
	}
	if !SufficientBalance(0.5) {
		t.Error("0.5 SOL should cover the estimate")
	}
}

func TestEstimatedCostsOrder(t *testing.T) {
	costs := EstimatedCosts()
	if len(costs) != 5 {
		t.Fatalf("len(EstimatedCosts) = %d, want 5", len(costs))
	}
	if costs[0].Operation != "Create Token" {
		t.Errorf("first operation = %q, want Create Token", costs[0].Operation)
	}
	if costs[len(costs)-1].Operation != "Transfer Tokens" {
		t.Errorf("last operation = %q, want Transfer Tokens", costs[len(costs)-1].Operation)
	}
}

package config

// OperationCost is the typical fee for one launch operation, in SOL.
type OperationCost struct {
	Operation string
	SOL       float64
}

// EstimatedCosts returns the expected per-operation fees for a full
// launch, in execution order. The values are typical network fees, not
// quotes; the chain is the authority on the actual charge.
func EstimatedCosts() []OperationCost {
	return []OperationCost{
		{Operation: "Create Token", SOL: 0.002},
		{Operation: "Create Token Account", SOL: 0.002},
		{Operation: "Mint Tokens", SOL: 0.0005},
		{Operation: "Create Metadata", SOL: 0.01},
		{Operation: "Transfer Tokens", SOL: 0.0005},
	}
}

// TotalEstimatedCost sums the per-operation estimates.
func TotalEstimatedCost() float64 {
	var total float64
	for _, c := range EstimatedCosts() {
		total += c.SOL
	}
	return total
}

// SufficientBalance reports whether balance covers the estimated total.
func SufficientBalance(balance float64) bool {
	return balance >= TotalEstimatedCost()
}

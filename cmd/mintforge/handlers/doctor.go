package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/mintforge/mintforge/internal/config"
	"github.com/mintforge/mintforge/internal/solana"
	"github.com/mintforge/mintforge/internal/util/prerequisites"
)

// DoctorStatus represents the launch environment diagnostic status.
type DoctorStatus struct {
	Tools  []ToolStatus  `json:"tools"`
	Wallet *WalletStatus `json:"wallet,omitempty"`
	Ready  bool          `json:"ready"`
}

// ToolStatus represents the availability of one client tool.
type ToolStatus struct {
	Name       string `json:"name"`
	Required   bool   `json:"required"`
	Found      bool   `json:"found"`
	Path       string `json:"path,omitempty"`
	Version    string `json:"version,omitempty"`
	InstallURL string `json:"installUrl,omitempty"`
}

// WalletStatus represents the configured wallet's reachability.
type WalletStatus struct {
	Network    string  `json:"network"`
	Address    string  `json:"address,omitempty"`
	Balance    float64 `json:"balance"`
	Sufficient bool    `json:"sufficient"`
	Error      string  `json:"error,omitempty"`
}

// Factory function variables for doctor - can be replaced in tests.
var (
	// checkAllPrereqs checks required and optional tools.
	checkAllPrereqs = prerequisites.CheckAll
)

// Doctor diagnoses the launch environment.
//
// Tool checks always run. Wallet checks run when a config file is
// present: the solana CLI is pointed at the configured cluster and the
// wallet's address and balance are read. A missing config file is not
// an error; doctor then reports tool status only.
func Doctor(ctx context.Context, configPath string, jsonOutput bool) error {
	status := &DoctorStatus{}

	results := checkAllPrereqs()
	for _, r := range results.Results {
		status.Tools = append(status.Tools, ToolStatus{
			Name:       r.Tool.Name,
			Required:   r.Tool.Required,
			Found:      r.Found,
			Path:       r.Path,
			Version:    r.Version,
			InstallURL: r.Tool.InstallURL,
		})
	}
	status.Ready = !results.HasErrors()

	if cfg := doctorConfig(configPath); cfg != nil && status.Ready {
		status.Wallet = checkWallet(ctx, cfg)
		if status.Wallet.Error != "" || !status.Wallet.Sufficient {
			status.Ready = false
		}
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(status)
	}

	printDoctorStatus(status)

	if !status.Ready {
		return fmt.Errorf("environment is not ready for a launch")
	}
	return nil
}

// doctorConfig loads the session for wallet checks, tolerating absence.
func doctorConfig(configPath string) *config.Session {
	if configPath == "" {
		path, err := findConfigFile()
		if err != nil {
			return nil
		}
		configPath = path
	}
	cfg, err := loadConfigFile(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load %s: %v\n", configPath, err)
		return nil
	}
	return cfg
}

// checkWallet points the solana CLI at the configured cluster and reads
// the wallet address and balance.
func checkWallet(ctx context.Context, cfg *config.Session) *WalletStatus {
	status := &WalletStatus{Network: string(cfg.Network)}

	client := solana.NewClient(newRunner())
	if err := configureWallet(ctx, client, cfg); err != nil {
		status.Error = err.Error()
		return status
	}

	addr, err := client.Address(ctx)
	if err != nil {
		status.Error = fmt.Sprintf("failed to resolve wallet address: %v", err)
		return status
	}
	status.Address = addr

	balance, err := client.Balance(ctx)
	if err != nil {
		status.Error = fmt.Sprintf("failed to read wallet balance: %v", err)
		return status
	}
	status.Balance = balance
	status.Sufficient = config.SufficientBalance(balance)

	return status
}

// printDoctorStatus renders the diagnostic report as text.
func printDoctorStatus(status *DoctorStatus) {
	fmt.Println()
	fmt.Println("mintforge doctor")
	fmt.Println("================")
	fmt.Println()

	fmt.Println("Tools")
	for _, t := range status.Tools {
		switch {
		case t.Found && t.Version != "":
			printCheck(true, t.Name, t.Version)
		case t.Found:
			printCheck(true, t.Name, "")
		case t.Required:
			printCheck(false, t.Name, "missing, install: "+t.InstallURL)
		default:
			printCheck(false, t.Name, "missing (optional), install: "+t.InstallURL)
		}
	}
	fmt.Println()

	if w := status.Wallet; w != nil {
		fmt.Printf("Wallet (%s)\n", w.Network)
		if w.Error != "" {
			printCheck(false, "connection", w.Error)
		} else {
			printCheck(true, "address", w.Address)
			printCheck(w.Sufficient, "balance",
				fmt.Sprintf("%.4f SOL (need %.4f SOL)", w.Balance, config.TotalEstimatedCost()))
		}
		fmt.Println()
	}

	if status.Ready {
		fmt.Println("Ready to launch.")
	} else {
		fmt.Println("Not ready. Fix the items above and re-run 'mintforge doctor'.")
	}
	fmt.Println()
}

// printCheck prints one diagnostic line with a pass or fail marker.
func printCheck(ok bool, name, extra string) {
	marker := "[OK]"
	if !ok {
		marker = "[!!]"
	}
	if extra != "" {
		fmt.Printf("  %s  %-12s %s\n", marker, name, extra)
	} else {
		fmt.Printf("  %s  %s\n", marker, name)
	}
}

package prerequisites

import (
	"strings"
	"testing"
)

func TestCheck(t *testing.T) {
	// Test with a tool that definitely exists - try multiple common tools
	// because different environments have different tools available
	possibleTools := []string{"go", "bash", "sh", "ls", "cat"}

	var foundTool string
	for _, tool := range possibleTools {
		results := Check([]Tool{{Name: tool, Required: false}})
		if len(results.Results) > 0 && results.Results[0].Found {
			foundTool = tool
			break
		}
	}

	if foundTool == "" {
		t.Skip("no common tools found in PATH, skipping test")
	}

	tools := []Tool{
		{
			Name:        foundTool,
			Required:    true,
			Description: "Test tool",
			InstallURL:  "https://example.com",
		},
	}

	results := Check(tools)

	if len(results.Results) != 1 {
		t.Errorf("expected 1 result, got %d", len(results.Results))
	}

	if !results.Results[0].Found {
		t.Errorf("expected %s to be found", foundTool)
	}

	if results.Results[0].Path == "" {
		t.Errorf("expected path to be set")
	}

	if results.HasErrors() {
		t.Errorf("expected no errors")
	}
}

func TestCheckMissingTool(t *testing.T) {
	tools := []Tool{
		{
			Name:        "nonexistent-tool-xyz123",
			Required:    true,
			Description: "A tool that does not exist",
			InstallURL:  "https://example.com",
		},
	}

	results := Check(tools)

	if len(results.Missing) != 1 {
		t.Errorf("expected 1 missing tool, got %d", len(results.Missing))
	}

	if !results.HasErrors() {
		t.Errorf("expected HasErrors to be true")
	}

	err := results.Error()
	if err == nil {
		t.Fatalf("expected Error to return an error")
	}
	if !strings.Contains(err.Error(), "nonexistent-tool-xyz123") {
		t.Errorf("error should name the missing tool, got %q", err)
	}
}

func TestCheckOptionalMissing(t *testing.T) {
	tools := []Tool{
		{
			Name:        "nonexistent-optional-tool-xyz123",
			Required:    false,
			Description: "An optional tool that does not exist",
			InstallURL:  "https://example.com",
		},
	}

	results := Check(tools)

	if len(results.Missing) != 1 {
		t.Errorf("expected 1 missing tool, got %d", len(results.Missing))
	}

	// Optional tools never make the check fail.
	if results.HasErrors() {
		t.Errorf("expected HasErrors to be false for optional tools")
	}
	if err := results.Error(); err != nil {
		t.Errorf("expected no error for optional tools, got %v", err)
	}
}

func TestDefaultToolLists(t *testing.T) {
	names := map[string]bool{}
	for _, tool := range DefaultTools() {
		names[tool.Name] = tool.Required
	}
	if !names["solana"] || !names["spl-token"] {
		t.Errorf("solana and spl-token must be required, got %v", names)
	}

	for _, tool := range MetadataTools() {
		if tool.Required {
			t.Errorf("metadata tool %s should be optional", tool.Name)
		}
	}
}

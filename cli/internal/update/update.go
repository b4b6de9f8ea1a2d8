package update

import (
	"fmt"

	"github.com/hashicorp/go-version"

	"github.com/ontoforge/shaclgen/cli/internal/ui"
)

// latestKnown is the newest release the CLI knows about. Release
// tooling rewrites it at build time; a stale value only suppresses the
// update hint.
const latestKnown = "0.1.0"

// CheckForUpdates compares the running version against the newest known
// release and prints an upgrade hint when it lags behind.
func CheckForUpdates(currentVersion string) error {
	current, err := version.NewVersion(currentVersion)
	if err != nil {
		return fmt.Errorf("invalid version format: %w", err)
	}

	latest, err := version.NewVersion(latestKnown)
	if err != nil {
		return fmt.Errorf("invalid latest version format: %w", err)
	}

	if current.LessThan(latest) {
		ui.PrintWarning("A new version is available!")
		fmt.Printf("Current version: %s\n", currentVersion)
		fmt.Printf("Latest version:  %s\n", latestKnown)
		fmt.Printf("\nUpdate with: go install github.com/ontoforge/shaclgen@latest\n")
		return nil
	}

	return nil
}

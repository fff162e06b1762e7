package cli

import (
	"fmt"

	"github.com/ecotrack/ecotrack-cli/internal/api"
	"github.com/ecotrack/ecotrack-cli/internal/keyring"
)

type DoctorCmd struct{}

func (c *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("EcoTrack diagnostics")
	fmt.Println()

	fmt.Printf("Server URL:     %s\n", ctx.Config.ServerURL)
	fmt.Printf("Config dir:     %s\n", ctx.Config.ConfigDir)
	if ctx.Notifier.Enabled() {
		fmt.Printf("Notifications:  enabled (%s)\n", ctx.Notifier.Name())
	} else {
		fmt.Println("Notifications:  disabled (tray not running)")
	}

	if keyring.IsAvailable() {
		fmt.Println("OS keyring:     available")
	} else {
		fmt.Println("OS keyring:     unavailable (use ECOTRACK_SESSION instead)")
	}

	if ctx.Config.Session == "" {
		fmt.Println("Session:        not configured (run 'ecotrack auth set')")
	} else {
		fmt.Println("Session:        configured")
	}

	reqCtx, cancel := RequestContext()
	defer cancel()

	switch _, err := ctx.Store.Client().FetchUserData(reqCtx); err.(type) {
	case nil:
		fmt.Println("Server:         reachable, session accepted")
	case *api.HTTPError:
		fmt.Printf("Server:         reachable, request rejected (%v)\n", err)
	case *api.NetworkError:
		fmt.Printf("Server:         unreachable (%v)\n", err)
	default:
		fmt.Printf("Server:         check failed (%v)\n", err)
	}

	if day := ctx.Store.LastCheckinDate(); day != "" {
		fmt.Printf("Last check-in:  %s\n", FormatDay(day))
	} else {
		fmt.Println("Last check-in:  never")
	}

	return nil
}

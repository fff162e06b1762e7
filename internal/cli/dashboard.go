package cli

import (
	"fmt"

	"github.com/ecotrack/ecotrack-cli/internal/logger"
	"github.com/ecotrack/ecotrack-cli/internal/render"
)

type DashboardCmd struct {
	Compact bool `help:"Print the one-line compact widget instead of the full dashboard."`
}

func (c *DashboardCmd) Run(ctx *Context) error {
	reqCtx, cancel := RequestContext()
	defer cancel()

	if err := ctx.Store.Refresh(reqCtx); err != nil {
		return err
	}

	if c.Compact {
		user, ok := ctx.Store.User()
		if !ok {
			return fmt.Errorf("no user data available")
		}
		fmt.Println(render.CompactWidget(user))
		return nil
	}

	// Achievements are decoration on the dashboard; a failed fetch just
	// renders the preview from whatever is cached.
	if err := ctx.Store.RefreshAchievements(reqCtx); err != nil {
		logger.Warn("Achievements fetch failed", "error", err)
	}

	user, ok := ctx.Store.User()
	if !ok {
		return fmt.Errorf("no user data available")
	}

	fmt.Println(render.Dashboard(user, ctx.Store.Achievements()))
	return nil
}

type AchievementsCmd struct{}

func (c *AchievementsCmd) Run(ctx *Context) error {
	reqCtx, cancel := RequestContext()
	defer cancel()

	if err := ctx.Store.RefreshAchievements(reqCtx); err != nil {
		return err
	}

	fmt.Println(render.AchievementGrid(ctx.Store.Achievements()))
	return nil
}

type SuggestionsCmd struct{}

func (c *SuggestionsCmd) Run(ctx *Context) error {
	reqCtx, cancel := RequestContext()
	defer cancel()

	// Suggestion failures degrade to the built-in defaults.
	if err := ctx.Store.RefreshSuggestions(reqCtx); err != nil {
		logger.Warn("Suggestions fetch failed", "error", err)
	}

	fmt.Println(render.SuggestionCards(ctx.Store.Suggestions()))
	return nil
}

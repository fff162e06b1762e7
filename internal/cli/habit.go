package cli

import (
	"fmt"
)

type HabitCmd struct {
	Add    HabitAddCmd    `cmd:"" help:"Add a new habit."`
	List   HabitListCmd   `cmd:"" help:"List habits." default:"1"`
	Edit   HabitEditCmd   `cmd:"" help:"Rewrite a habit's text."`
	Toggle HabitToggleCmd `cmd:"" help:"Toggle a habit's completed state."`
	Delete HabitDeleteCmd `cmd:"" help:"Delete a habit."`
}

type HabitAddCmd struct {
	Text string `arg:"" help:"Habit text."`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	reqCtx, cancel := RequestContext()
	defer cancel()

	if err := ctx.Store.Client().SaveHabit(reqCtx, c.Text); err != nil {
		return err
	}

	fmt.Printf("Added habit: %s\n", c.Text)
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *Context) error {
	reqCtx, cancel := RequestContext()
	defer cancel()

	if err := ctx.Store.Refresh(reqCtx); err != nil {
		return err
	}

	habits := ctx.Store.Habits()
	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	for _, h := range habits {
		status := "[ ]"
		if h.Completed {
			status = "[x]"
		}
		fmt.Printf("%s %d: %s\n", status, h.ID, h.Text)
	}

	return nil
}

type HabitEditCmd struct {
	ID   int    `arg:"" help:"Habit ID."`
	Text string `arg:"" help:"New habit text."`
}

func (c *HabitEditCmd) Run(ctx *Context) error {
	reqCtx, cancel := RequestContext()
	defer cancel()

	if err := ctx.Store.Client().UpdateHabit(reqCtx, c.ID, c.Text); err != nil {
		return err
	}

	fmt.Printf("Updated habit %d: %s\n", c.ID, c.Text)
	return nil
}

type HabitToggleCmd struct {
	ID int `arg:"" help:"Habit ID."`
}

func (c *HabitToggleCmd) Run(ctx *Context) error {
	reqCtx, cancel := RequestContext()
	defer cancel()

	if err := ctx.Store.Client().ToggleHabit(reqCtx, c.ID); err != nil {
		return err
	}

	fmt.Printf("Toggled habit %d\n", c.ID)
	return nil
}

type HabitDeleteCmd struct {
	ID int `arg:"" help:"Habit ID."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	reqCtx, cancel := RequestContext()
	defer cancel()

	if err := ctx.Store.Client().DeleteHabit(reqCtx, c.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted habit %d\n", c.ID)
	return nil
}

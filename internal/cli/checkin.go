package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/ecotrack/ecotrack-cli/internal/questionnaire"
)

type CheckinCmd struct{}

func (c *CheckinCmd) Run(ctx *Context) error {
	if ctx.Store.CheckedInToday() {
		fmt.Println("✓ Daily check-in already submitted. See you tomorrow!")
		return nil
	}

	qForm := questionnaire.NewForm(false)
	questions := questionnaire.Questions()

	choices := make([]int, len(questions))
	var fields []huh.Field
	for i, q := range questions {
		opts := make([]huh.Option[int], len(q.Options))
		for j, o := range q.Options {
			opts[j] = huh.NewOption(o.Label, j)
		}
		fields = append(fields, huh.NewSelect[int]().
			Title(q.Prompt).
			Options(opts...).
			Value(&choices[i]))
	}

	form := huh.NewForm(huh.NewGroup(fields...)).WithTheme(huh.ThemeDracula())
	if err := form.Run(); err != nil {
		return err
	}

	for i, q := range questions {
		if err := qForm.Select(q.ID, choices[i]); err != nil {
			return err
		}
	}

	impact, err := qForm.BeginSubmit()
	if err != nil {
		return err
	}

	reqCtx, cancel := RequestContext()
	defer cancel()

	if err := ctx.Store.Client().SubmitQuestionnaire(reqCtx, impact); err != nil {
		qForm.SubmitFailed()
		return err
	}
	qForm.SubmitSucceeded()
	ctx.Store.MarkCheckedInToday()

	if err := ctx.Notifier.Notify("Daily check-in submitted successfully!"); err != nil {
		// Notification delivery is best effort.
		fmt.Println("Daily check-in submitted successfully!")
	}
	fmt.Printf("Recorded impact: %d\n", impact)
	return nil
}

package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/gantt/internal/models"
)

type TaskFormModel struct {
	Name       string
	CategoryID int
	Start      string
	End        string
	Assignee   string
	Progress   string
}

func taskFormFrom(t models.Task) *TaskFormModel {
	return &TaskFormModel{
		Name:       t.Name,
		CategoryID: t.CategoryID,
		Start:      models.FormatDate(t.StartDate),
		End:        models.FormatDate(t.EndDate),
		Assignee:   t.InchargeUser,
		Progress:   strconv.Itoa(t.Percentage),
	}
}

// apply copies the form values onto t, re-checking what the field
// validators check.
func (fm *TaskFormModel) apply(t *models.Task) error {
	start, err := models.ParseDate(strings.TrimSpace(fm.Start))
	if err != nil {
		return err
	}
	end, err := models.ParseDate(strings.TrimSpace(fm.End))
	if err != nil {
		return err
	}
	pct, err := strconv.Atoi(strings.TrimSpace(fm.Progress))
	if err != nil {
		return fmt.Errorf("invalid progress %q: %w", fm.Progress, err)
	}
	if pct < 0 || pct > 100 {
		return fmt.Errorf("progress %d%% is outside 0-100", pct)
	}
	t.Name = strings.TrimSpace(fm.Name)
	t.CategoryID = fm.CategoryID
	t.StartDate = start
	t.EndDate = end
	t.InchargeUser = strings.TrimSpace(fm.Assignee)
	t.Percentage = pct
	return nil
}

func newTaskForm(fm *TaskFormModel, categories []models.Category) *huh.Form {
	options := make([]huh.Option[int], len(categories))
	for i, c := range categories {
		options[i] = huh.NewOption(c.Name, c.ID)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&fm.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewSelect[int]().
				Title("Category").
				Options(options...).
				Value(&fm.CategoryID),
			huh.NewInput().
				Title("Start").
				Description("YYYY-MM-DD").
				Value(&fm.Start).
				Validate(validDate),
			huh.NewInput().
				Title("End").
				Description("YYYY-MM-DD, on or after start").
				Value(&fm.End).
				Validate(func(s string) error {
					if err := validDate(s); err != nil {
						return err
					}
					start, err := models.ParseDate(strings.TrimSpace(fm.Start))
					if err != nil {
						return nil
					}
					if end, _ := models.ParseDate(strings.TrimSpace(s)); end.Before(start) {
						return fmt.Errorf("end must not be before start")
					}
					return nil
				}),
			huh.NewInput().
				Title("Assignee").
				Value(&fm.Assignee),
			huh.NewInput().
				Title("Progress (%)").
				Value(&fm.Progress).
				Validate(func(s string) error {
					i, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil {
						return fmt.Errorf("progress must be a number")
					}
					if i < 0 || i > 100 {
						return fmt.Errorf("progress must be between 0 and 100")
					}
					return nil
				}),
		),
	)
}

func validDate(s string) error {
	_, err := models.ParseDate(strings.TrimSpace(s))
	return err
}

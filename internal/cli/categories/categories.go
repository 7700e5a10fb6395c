package categories

import (
	"fmt"

	"github.com/julianstephens/gantt/internal/cli"
	"github.com/julianstephens/gantt/internal/models"
)

type CategoryAddCmd struct {
	Name string `arg:"" help:"Category name."`
}

func (c *CategoryAddCmd) Run(ctx *cli.Context) error {
	category, err := ctx.Store.AddCategory(models.Category{Name: c.Name})
	if err != nil {
		return err
	}
	fmt.Printf("Added category: %s (ID: %d)\n", category.Name, category.ID)
	return nil
}

type CategoryListCmd struct{}

func (c *CategoryListCmd) Run(ctx *cli.Context) error {
	categories, err := ctx.Store.GetAllCategories()
	if err != nil {
		return err
	}
	if len(categories) == 0 {
		fmt.Println("No categories found.")
		return nil
	}

	tasks, err := ctx.Store.GetAllTasks()
	if err != nil {
		return err
	}
	counts := make(map[int]int)
	for _, t := range tasks {
		counts[t.CategoryID]++
	}

	for _, cat := range categories {
		fmt.Printf("[%d] %s (%d tasks)\n", cat.ID, cat.Name, counts[cat.ID])
	}
	return nil
}

type CategoryRenameCmd struct {
	ID   int    `arg:"" help:"Category ID."`
	Name string `arg:"" help:"New name."`
}

func (c *CategoryRenameCmd) Run(ctx *cli.Context) error {
	category, err := ctx.Store.GetCategory(c.ID)
	if err != nil {
		return fmt.Errorf("failed to find category with ID %d: %w", c.ID, err)
	}
	old := category.Name
	category.Name = c.Name
	if err := ctx.Store.UpdateCategory(category); err != nil {
		return fmt.Errorf("failed to rename category: %w", err)
	}
	fmt.Printf("Renamed category %d: %s -> %s\n", c.ID, old, c.Name)
	return nil
}

// CategoryDeleteCmd soft-deletes a category. Its tasks stay in the database
// and are hidden from the chart until the category is restored.
type CategoryDeleteCmd struct {
	ID int `arg:"" help:"Category ID to delete."`
}

func (c *CategoryDeleteCmd) Run(ctx *cli.Context) error {
	category, err := ctx.Store.GetCategory(c.ID)
	if err != nil {
		return fmt.Errorf("failed to find category with ID %d: %w", c.ID, err)
	}
	if err := ctx.Store.DeleteCategory(c.ID); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	fmt.Printf("Deleted category: %s (ID: %d)\n", category.Name, c.ID)

	tasks, err := ctx.Store.GetAllTasks()
	if err != nil {
		return err
	}
	hidden := 0
	for _, t := range tasks {
		if t.CategoryID == c.ID {
			hidden++
		}
	}
	if hidden > 0 {
		fmt.Printf("%d task(s) are now hidden from the chart. Restore with 'gantt restore category %d'.\n", hidden, c.ID)
	}
	return nil
}

type CategoryRestoreCmd struct {
	ID int `arg:"" help:"Category ID to restore."`
}

func (c *CategoryRestoreCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.RestoreCategory(c.ID); err != nil {
		return fmt.Errorf("failed to restore category: %w", err)
	}
	fmt.Printf("Restored category %d\n", c.ID)
	return nil
}

package cli

import (
	"fmt"

	"github.com/akozyreva/medcab/internal/models"
)

type CategoryCmd struct {
	Add    CategoryAddCmd    `cmd:"" help:"Add a custom category."`
	List   CategoryListCmd   `cmd:"" help:"List categories."`
	Delete CategoryDeleteCmd `cmd:"" help:"Delete a custom category."`
}

type CategoryAddCmd struct {
	Name string `arg:"" help:"Category name."`
}

func (c *CategoryAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.AddCategory(c.Name); err != nil {
		return err
	}
	fmt.Printf("Added category: %s\n", c.Name)
	return nil
}

type CategoryListCmd struct{}

func (c *CategoryListCmd) Run(ctx *Context) error {
	custom, err := ctx.Store.GetCustomCategories()
	if err != nil {
		return err
	}
	for _, name := range models.MergeCategories(custom) {
		if models.IsDefaultCategory(name) {
			fmt.Println(name)
		} else {
			fmt.Printf("%s (custom)\n", name)
		}
	}
	return nil
}

type CategoryDeleteCmd struct {
	Name string `arg:"" help:"Category name."`
}

func (c *CategoryDeleteCmd) Run(ctx *Context) error {
	// Refuse while medicines still reference the category
	medicines, err := ctx.Store.GetAllMedicines()
	if err != nil {
		return err
	}
	for _, m := range medicines {
		if m.Category == c.Name {
			return fmt.Errorf("category %q is still used by %s", c.Name, m.Name)
		}
	}

	if err := ctx.Store.DeleteCategory(c.Name); err != nil {
		return err
	}
	fmt.Printf("Deleted category: %s\n", c.Name)
	return nil
}

package cli

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/akozyreva/medcab/internal/keyring"
	"github.com/akozyreva/medcab/internal/models"
	"github.com/akozyreva/medcab/internal/ocr"
)

type ScanCmd struct {
	Image    string `arg:"" help:"Path to a receipt photo."`
	Add      bool   `help:"Add recognized items straight into the cabinet."`
	Category string `help:"Category for added items." default:"Другое"`
}

func (c *ScanCmd) Run(ctx *Context) error {
	token := ctx.Config.OCRToken
	if token == "" {
		stored, err := keyring.GetToken()
		if err == nil {
			token = stored
		}
	}

	client := ocr.NewClient(ctx.Config.OCRURL, token)
	items, err := client.RecognizeFile(context.Background(), c.Image)
	if err != nil {
		return err
	}

	fmt.Printf("Recognized %d item(s):\n\n", len(items))
	for _, item := range items {
		fmt.Printf("  %s  x%.0f  %.2f ₽\n", item.Name, item.Quantity, item.Price)
	}

	if !c.Add {
		fmt.Println("\nRe-run with --add to put the items into the cabinet.")
		return nil
	}

	custom, err := ctx.Store.GetCustomCategories()
	if err != nil {
		return err
	}
	if !models.IsKnownCategory(c.Category, custom) {
		return fmt.Errorf("unknown category %q, add it first with 'medcab category add'", c.Category)
	}

	fmt.Println()
	for _, item := range items {
		m := models.Medicine{
			ID:        uuid.New().String(),
			Name:      item.Name,
			Quantity:  receiptQuantity(item.Quantity),
			Category:  c.Category,
			CreatedAt: time.Now(),
		}
		if err := m.Validate(); err != nil {
			return fmt.Errorf("cannot add %q: %w", item.Name, err)
		}
		if err := ctx.Store.AddMedicine(m); err != nil {
			return err
		}
		fmt.Printf("Added medicine: %s (%s)\n", m.Name, m.Category)
	}
	return nil
}

// receiptQuantity converts a fractional receipt quantity (by-weight items) to
// a stock count of at least one pack.
func receiptQuantity(q float64) int {
	n := int(math.Round(q))
	if n < 1 {
		return 1
	}
	return n
}

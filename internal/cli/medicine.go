package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/akozyreva/medcab/internal/models"
)

type MedicineCmd struct {
	Add      MedicineAddCmd      `cmd:"" help:"Add a medicine to the cabinet."`
	Edit     MedicineEditCmd     `cmd:"" help:"Edit an existing medicine."`
	List     MedicineListCmd     `cmd:"" help:"List medicines."`
	Take     MedicineTakeCmd     `cmd:"" help:"Record taking a dose (decrements stock)."`
	Restock  MedicineRestockCmd  `cmd:"" help:"Add stock for a medicine."`
	Delete   MedicineDeleteCmd   `cmd:"" help:"Remove a medicine from the cabinet."`
	Favorite MedicineFavoriteCmd `cmd:"" help:"Toggle favorite status."`
}

type MedicineAddCmd struct {
	Name     string `arg:"" help:"Medicine name."`
	Category string `required:"" help:"Medicine category."`
	Quantity int    `help:"Initial stock count." default:"1"`
	Dosage   string `help:"Dosage description (e.g. '1 tablet')." default:""`
	Expires  string `help:"Expiration date in YYYY-MM-DD format." default:""`
	Image    string `help:"Path to a package photo." default:""`
}

func (c *MedicineAddCmd) Run(ctx *Context) error {
	custom, err := ctx.Store.GetCustomCategories()
	if err != nil {
		return err
	}
	if !models.IsKnownCategory(c.Category, custom) {
		return fmt.Errorf("unknown category %q, add it first with 'medcab category add'", c.Category)
	}

	m := models.Medicine{
		ID:             uuid.New().String(),
		Name:           c.Name,
		Quantity:       c.Quantity,
		Dosage:         c.Dosage,
		ExpirationDate: c.Expires,
		Category:       c.Category,
		Image:          c.Image,
		CreatedAt:      time.Now(),
	}
	if err := m.Validate(); err != nil {
		return err
	}

	if err := ctx.Store.AddMedicine(m); err != nil {
		return err
	}

	fmt.Printf("Added medicine: %s (%s)\n", m.Name, m.Category)
	return nil
}

type MedicineEditCmd struct {
	ID       string `arg:"" help:"Medicine id."`
	Name     string `help:"New name." default:""`
	Category string `help:"New category." default:""`
	Quantity int    `help:"New stock count." default:"-1"`
	Dosage   string `help:"New dosage description." default:""`
	Expires  string `help:"New expiration date in YYYY-MM-DD format." default:""`
	Image    string `help:"New package photo path." default:""`
}

func (c *MedicineEditCmd) Run(ctx *Context) error {
	m, err := ctx.Store.GetMedicine(c.ID)
	if err != nil {
		return err
	}

	if c.Name != "" {
		m.Name = c.Name
	}
	if c.Category != "" {
		custom, err := ctx.Store.GetCustomCategories()
		if err != nil {
			return err
		}
		if !models.IsKnownCategory(c.Category, custom) {
			return fmt.Errorf("unknown category %q", c.Category)
		}
		m.Category = c.Category
	}
	if c.Quantity >= 0 {
		m.Quantity = c.Quantity
	}
	if c.Dosage != "" {
		m.Dosage = c.Dosage
	}
	if c.Expires != "" {
		m.ExpirationDate = c.Expires
	}
	if c.Image != "" {
		m.Image = c.Image
	}

	if err := m.Validate(); err != nil {
		return err
	}
	if err := ctx.Store.UpdateMedicine(m); err != nil {
		return err
	}

	fmt.Printf("Updated medicine: %s\n", m.Name)
	return nil
}

type MedicineListCmd struct {
	Category  string `help:"Filter by category." default:""`
	Favorites bool   `help:"Show only favorites."`
	Expired   bool   `help:"Show only expired medicines."`
}

func (c *MedicineListCmd) Run(ctx *Context) error {
	medicines, err := ctx.Store.GetAllMedicines()
	if err != nil {
		return err
	}

	today := time.Now()
	shown := 0
	for _, m := range medicines {
		if c.Category != "" && m.Category != c.Category {
			continue
		}
		if c.Favorites && !m.Favorite {
			continue
		}
		if c.Expired && !m.IsExpired(today) {
			continue
		}

		marker := " "
		if m.Favorite {
			marker = "*"
		}
		line := fmt.Sprintf("%s %s [%s] qty: %s", marker, m.Name, m.Category, FormatQuantity(m.Quantity))
		if m.Dosage != "" {
			line += fmt.Sprintf(", dosage: %s", m.Dosage)
		}
		if m.ExpirationDate != "" {
			line += fmt.Sprintf(", expires: %s", m.ExpirationDate)
			if m.IsExpired(today) {
				line += " [EXPIRED]"
			}
		}
		fmt.Printf("%s\n  id: %s\n", line, m.ID)
		shown++
	}

	if shown == 0 {
		fmt.Println("No medicines found.")
	}
	return nil
}

type MedicineTakeCmd struct {
	ID    string `arg:"" help:"Medicine id."`
	Count int    `help:"Number of doses taken." default:"1"`
}

func (c *MedicineTakeCmd) Run(ctx *Context) error {
	if c.Count <= 0 {
		return fmt.Errorf("count must be positive")
	}
	m, err := ctx.Store.AdjustMedicineQuantity(c.ID, -c.Count)
	if err != nil {
		return err
	}
	fmt.Printf("Took %d of %s, %s left\n", c.Count, m.Name, FormatQuantity(m.Quantity))
	return nil
}

type MedicineRestockCmd struct {
	ID    string `arg:"" help:"Medicine id."`
	Count int    `arg:"" help:"Number of units to add."`
}

func (c *MedicineRestockCmd) Run(ctx *Context) error {
	if c.Count <= 0 {
		return fmt.Errorf("count must be positive")
	}
	m, err := ctx.Store.AdjustMedicineQuantity(c.ID, c.Count)
	if err != nil {
		return err
	}
	fmt.Printf("Restocked %s, now %s\n", m.Name, FormatQuantity(m.Quantity))
	return nil
}

type MedicineDeleteCmd struct {
	ID string `arg:"" help:"Medicine id."`
}

func (c *MedicineDeleteCmd) Run(ctx *Context) error {
	m, err := ctx.Store.GetMedicine(c.ID)
	if err != nil {
		return err
	}
	if err := ctx.Store.DeleteMedicine(c.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted medicine: %s\n", m.Name)
	return nil
}

type MedicineFavoriteCmd struct {
	ID string `arg:"" help:"Medicine id."`
}

func (c *MedicineFavoriteCmd) Run(ctx *Context) error {
	m, err := ctx.Store.GetMedicine(c.ID)
	if err != nil {
		return err
	}
	if err := ctx.Store.SetMedicineFavorite(c.ID, !m.Favorite); err != nil {
		return err
	}
	if m.Favorite {
		fmt.Printf("Removed %s from favorites\n", m.Name)
	} else {
		fmt.Printf("Added %s to favorites\n", m.Name)
	}
	return nil
}

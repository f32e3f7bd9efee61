package cli

import (
	"fmt"
	"time"

	"github.com/akozyreva/medcab/internal/constants"
)

type ProfileCmd struct {
	Show ProfileShowCmd `cmd:"" help:"Show the stored profile." default:"1"`
	Set  ProfileSetCmd  `cmd:"" help:"Update profile fields."`
}

type ProfileShowCmd struct{}

func (c *ProfileShowCmd) Run(ctx *Context) error {
	p, err := ctx.Store.GetProfile()
	if err != nil {
		return err
	}

	if p.FirstName == "" && p.LastName == "" && p.BirthDate == "" {
		fmt.Println("Profile is empty. Use 'medcab profile set' to fill it in.")
		return nil
	}

	fmt.Printf("Name: %s %s\n", p.FirstName, p.LastName)
	if p.BirthDate != "" {
		fmt.Printf("Birth date: %s\n", p.BirthDate)
	}
	if p.ImagePath != "" {
		fmt.Printf("Photo: %s\n", p.ImagePath)
	}
	return nil
}

type ProfileSetCmd struct {
	FirstName string `help:"First name." default:""`
	LastName  string `help:"Last name." default:""`
	BirthDate string `help:"Birth date in YYYY-MM-DD format." default:""`
	Image     string `help:"Path to a profile photo." default:""`
}

func (c *ProfileSetCmd) Run(ctx *Context) error {
	p, err := ctx.Store.GetProfile()
	if err != nil {
		return err
	}

	if c.FirstName != "" {
		p.FirstName = c.FirstName
	}
	if c.LastName != "" {
		p.LastName = c.LastName
	}
	if c.BirthDate != "" {
		if _, err := time.Parse(constants.DateFormat, c.BirthDate); err != nil {
			return fmt.Errorf("invalid birth date (expected YYYY-MM-DD): %w", err)
		}
		p.BirthDate = c.BirthDate
	}
	if c.Image != "" {
		p.ImagePath = c.Image
	}

	if err := ctx.Store.SaveProfile(p); err != nil {
		return err
	}
	fmt.Println("Profile updated.")
	return nil
}

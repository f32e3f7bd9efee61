package cli

import (
	"context"
	"fmt"

	"github.com/akozyreva/medcab/internal/pharmacy"
)

type PharmacyCmd struct {
	Lat    float64 `arg:"" help:"Latitude of the search center."`
	Lon    float64 `arg:"" help:"Longitude of the search center."`
	Radius int     `help:"Search radius in meters (default from config)." default:"0"`
}

func (c *PharmacyCmd) Run(ctx *Context) error {
	radius := c.Radius
	if radius <= 0 {
		radius = ctx.Config.PharmacyRadius
	}

	client := pharmacy.NewClient(ctx.Config.OverpassURL)
	pharmacies, err := client.Nearby(context.Background(), c.Lat, c.Lon, radius)
	if err != nil {
		return err
	}

	if len(pharmacies) == 0 {
		fmt.Printf("No pharmacies found within %dm.\n", radius)
		return nil
	}

	fmt.Printf("Pharmacies within %dm:\n\n", radius)
	for _, p := range pharmacies {
		fmt.Printf("  %s (%.5f, %.5f)\n", p.Name, p.Lat, p.Lon)
		fmt.Printf("    %s\n", p.DirectionsURL())
	}
	return nil
}

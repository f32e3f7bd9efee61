package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/akozyreva/medcab/internal/models"
)

type AppointmentCmd struct {
	Add         AppointmentAddCmd         `cmd:"" help:"Schedule a doctor appointment."`
	Edit        AppointmentEditCmd        `cmd:"" help:"Edit an appointment."`
	List        AppointmentListCmd        `cmd:"" help:"List appointments."`
	Delete      AppointmentDeleteCmd      `cmd:"" help:"Delete an appointment."`
	Specialties AppointmentSpecialtiesCmd `cmd:"" help:"List known doctor specialties."`
}

type AppointmentAddCmd struct {
	Doctor    string `arg:"" help:"Doctor name."`
	Specialty string `required:"" help:"Doctor specialty."`
	Date      string `required:"" help:"Appointment date in YYYY-MM-DD format."`
	Time      string `required:"" help:"Appointment time in HH:MM format."`
}

func (c *AppointmentAddCmd) Run(ctx *Context) error {
	a := models.Appointment{
		ID:        uuid.New().String(),
		Doctor:    c.Doctor,
		Specialty: c.Specialty,
		Date:      c.Date,
		Time:      c.Time,
		CreatedAt: time.Now(),
	}
	if err := a.ValidateFuture(time.Now()); err != nil {
		return err
	}

	if err := ctx.Store.AddAppointment(a); err != nil {
		return err
	}

	fmt.Printf("Scheduled appointment with %s (%s) on %s at %s\n", a.Doctor, a.Specialty, a.Date, a.Time)
	fmt.Printf("  id: %s\n", a.ID)
	return nil
}

type AppointmentEditCmd struct {
	ID        string `arg:"" help:"Appointment id."`
	Doctor    string `help:"New doctor name." default:""`
	Specialty string `help:"New specialty." default:""`
	Date      string `help:"New date in YYYY-MM-DD format." default:""`
	Time      string `help:"New time in HH:MM format." default:""`
}

func (c *AppointmentEditCmd) Run(ctx *Context) error {
	a, err := ctx.Store.GetAppointment(c.ID)
	if err != nil {
		return err
	}

	if c.Doctor != "" {
		a.Doctor = c.Doctor
	}
	if c.Specialty != "" {
		a.Specialty = c.Specialty
	}
	if c.Date != "" {
		a.Date = c.Date
	}
	if c.Time != "" {
		a.Time = c.Time
	}

	if err := a.ValidateFuture(time.Now()); err != nil {
		return err
	}
	if err := ctx.Store.UpdateAppointment(a); err != nil {
		return err
	}

	fmt.Printf("Updated appointment with %s on %s at %s\n", a.Doctor, a.Date, a.Time)
	return nil
}

type AppointmentListCmd struct {
	All bool `help:"Include past appointments."`
}

func (c *AppointmentListCmd) Run(ctx *Context) error {
	appointments, err := ctx.Store.GetAllAppointments()
	if err != nil {
		return err
	}

	now := time.Now()
	shown := 0
	for _, a := range appointments {
		if !c.All && a.IsPast(now) {
			continue
		}
		status := ""
		if a.IsPast(now) {
			status = " [PAST]"
		}
		fmt.Printf("%s %s  %s (%s)%s\n  id: %s\n", a.Date, a.Time, a.Doctor, a.Specialty, status, a.ID)
		shown++
	}

	if shown == 0 {
		fmt.Println("No appointments found.")
	}
	return nil
}

type AppointmentDeleteCmd struct {
	ID string `arg:"" help:"Appointment id."`
}

func (c *AppointmentDeleteCmd) Run(ctx *Context) error {
	a, err := ctx.Store.GetAppointment(c.ID)
	if err != nil {
		return err
	}
	if err := ctx.Store.DeleteAppointment(c.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted appointment with %s on %s\n", a.Doctor, a.Date)
	return nil
}

type AppointmentSpecialtiesCmd struct{}

func (c *AppointmentSpecialtiesCmd) Run(ctx *Context) error {
	for _, s := range models.Specialties {
		fmt.Println(s)
	}
	return nil
}

package cli

import (
	"fmt"
	"io/fs"
	"time"

	"github.com/akozyreva/medcab/internal/backup"
	"github.com/akozyreva/medcab/internal/constants"
	"github.com/akozyreva/medcab/internal/keyring"
	"github.com/akozyreva/medcab/internal/migration"
	"github.com/akozyreva/medcab/internal/notify"
	"github.com/akozyreva/medcab/internal/storage/sqlite"
	"github.com/akozyreva/medcab/migrations"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	storeReachable := false

	// Check 1: store reachable
	if err := ctx.Store.Load(); err != nil {
		fmt.Printf("❌ Store reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Store reachable: OK\n")
		storeReachable = true
	}

	// Check 2: schema version (SQLite only)
	if storeReachable {
		if err := checkSchemaVersion(ctx); err != nil {
			fmt.Printf("❌ Schema version: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Schema version: OK\n")
		}
	} else {
		fmt.Printf("⊘ Schema version: SKIPPED (store not reachable)\n")
	}

	// Check 3: trigger integrity
	if storeReachable {
		if err := checkTriggerIntegrity(ctx); err != nil {
			fmt.Printf("❌ Trigger integrity: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Trigger integrity: OK\n")
		}
	} else {
		fmt.Printf("⊘ Trigger integrity: SKIPPED (store not reachable)\n")
	}

	// Check 4: backups present (warning only)
	if err := checkBackupsPresent(ctx); err != nil {
		fmt.Printf("⚠ Backups present: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Backups present: OK\n")
	}

	// Check 5: tray agent running (warning only; reminders silently stall without it)
	if _, err := notify.GetTrayAppConfigDir(); err != nil {
		fmt.Printf("⚠ Tray agent: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else if err := probeTrayAgent(); err != nil {
		fmt.Printf("⚠ Tray agent: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Tray agent: OK\n")
	}

	// Check 6: keyring available (warning only; receipt scanning needs it)
	if keyring.IsAvailable() {
		fmt.Printf("✓ OS keyring: OK\n")
	} else {
		fmt.Printf("⚠ OS keyring: WARNING\n")
		fmt.Printf("   OS keyring is not available, receipt scanning will need MEDCAB_OCR_TOKEN\n")
	}

	// Check 7: clock sanity
	if err := checkClock(); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkSchemaVersion(ctx *Context) error {
	sqliteStore, ok := ctx.Store.(*sqlite.Store)
	if !ok {
		// JSON store has no schema version
		return nil
	}

	db := sqliteStore.GetDB()
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return err
	}
	return migration.NewRunner(db, subFS).Validate()
}

// checkTriggerIntegrity verifies every reminder trigger id still resolves and
// no orphaned reminder-owned triggers are left behind.
func checkTriggerIntegrity(ctx *Context) error {
	reminders, err := ctx.Store.GetAllReminders()
	if err != nil {
		return err
	}
	triggers, err := ctx.Store.GetAllTriggers()
	if err != nil {
		return err
	}

	known := make(map[string]bool, len(triggers))
	for _, t := range triggers {
		known[t.ID] = true
	}

	reminderIDs := make(map[string]bool, len(reminders))
	for _, r := range reminders {
		reminderIDs[r.ID] = true
		for _, id := range r.TriggerIDs {
			if !known[id] {
				return fmt.Errorf("reminder %s references missing trigger %s", r.ID, id)
			}
		}
	}

	for _, t := range triggers {
		if t.OwnerType == "reminder" && !reminderIDs[t.OwnerID] {
			return fmt.Errorf("orphaned trigger %s owned by deleted reminder %s", t.ID, t.OwnerID)
		}
	}

	return nil
}

func checkBackupsPresent(ctx *Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found, run 'medcab backup create'")
	}
	return nil
}

func probeTrayAgent() error {
	// Checking the lockfile is enough to tell whether the agent is up;
	// sending a probe notification would be noisy.
	dir, err := notify.GetTrayAppConfigDir()
	if err != nil {
		return err
	}
	return notify.CheckTrayLockfile(dir)
}

func checkClock() error {
	now := time.Now()
	if now.Year() < 2020 {
		return fmt.Errorf("system clock appears to be wrong: %s", now.Format(constants.DateFormat))
	}
	if now.Location() == nil {
		return fmt.Errorf("no timezone information available")
	}
	return nil
}

package constants

const (
	AppName            = "medcab"
	DefaultKeyringUser = "receipt-api-token"
	DefaultConfigPath  = "~/.config/medcab/medcab.db"
	Version            = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "medcab-"
	BackupFileSuffix = ".db"

	// Notify constants
	NotifierLockfileName   = "medcab-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.akozyreva.medcab"

	// MinOneShotLeadSeconds is the minimum delay before a one-shot trigger may fire.
	MinOneShotLeadSeconds = 5

	// NotifyGraceMinutes is how far back a notify sweep looks for triggers it
	// missed because the previous sweep did not run on time.
	NotifyGraceMinutes = 10
)

// Notification log type tags.
const (
	LogTypeDose        = "dose"
	LogTypeAppointment = "appointment"
	LogTypeSystem      = "system"
)

// Environment variables read by internal/config.
const (
	EnvOCRURL         = "MEDCAB_OCR_URL"
	EnvOCRToken       = "MEDCAB_OCR_TOKEN"
	EnvOverpassURL    = "MEDCAB_OVERPASS_URL"
	EnvPharmacyRadius = "MEDCAB_PHARMACY_RADIUS"

	DefaultOCRURL         = "https://proverkacheka.com/api/v1/check/get"
	DefaultOverpassURL    = "https://overpass-api.de/api/interpreter"
	DefaultPharmacyRadius = 1000
)

package storage

import (
	"strings"

	"github.com/akozyreva/medcab/internal/storage/sqlite"
)

var (
	_ Provider = (*JSONStore)(nil)
	_ Provider = (*sqlite.Store)(nil)
)

// NewProvider picks a backend by file extension: .json gets the single-file
// JSON store, everything else the SQLite store.
func NewProvider(configPath string) Provider {
	if strings.HasSuffix(configPath, ".json") {
		return NewJSONStore(configPath)
	}
	return sqlite.NewStore(configPath)
}

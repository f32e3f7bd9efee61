package models

// DefaultCategories is the built-in category set. User-added categories are
// stored separately and merged on read; defaults cannot be deleted.
var DefaultCategories = []string{
	"Обезболивающие",
	"Антибиотики",
	"БАДы",
	"Витамины",
	"Другое",
	"Перевязочные",
	"Противовоспалительные",
	"Антигистаминные",
	"Желудочно-кишечные",
	"Сердечно-сосудистые",
	"Антидепрессанты",
	"Противовирусные",
	"Гормональные",
}

// MergeCategories unions the default category list with custom entries,
// preserving order and dropping duplicates.
func MergeCategories(custom []string) []string {
	seen := make(map[string]bool, len(DefaultCategories)+len(custom))
	merged := make([]string, 0, len(DefaultCategories)+len(custom))

	for _, c := range DefaultCategories {
		if !seen[c] {
			seen[c] = true
			merged = append(merged, c)
		}
	}
	for _, c := range custom {
		if c != "" && !seen[c] {
			seen[c] = true
			merged = append(merged, c)
		}
	}

	return merged
}

// IsDefaultCategory reports whether name is one of the built-in categories.
func IsDefaultCategory(name string) bool {
	for _, c := range DefaultCategories {
		if c == name {
			return true
		}
	}
	return false
}

// IsKnownCategory reports whether name is a default or custom category.
func IsKnownCategory(name string, custom []string) bool {
	for _, c := range MergeCategories(custom) {
		if c == name {
			return true
		}
	}
	return false
}

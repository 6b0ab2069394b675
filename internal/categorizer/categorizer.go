// Package categorizer assigns categories to transactions by matching the
// keywords of the category store against transaction narratives.
package categorizer

import (
	"strings"

	"github.com/pocketledger/backend/internal/models"
	"github.com/ryanuber/go-glob"
)

// Apply assigns a category to every transaction in the slice. Every
// transaction starts out with the default category. Categories are
// evaluated in store order; a transaction whose narrative contains any
// keyword of a category is assigned that category, and a category evaluated
// later overwrites an earlier assignment. The whole slice is re-matched
// from scratch on every call, so Apply is idempotent.
func Apply(store *models.CategoryStore, transactions []models.Transaction) {
	for i := range transactions {
		transactions[i].Category = models.DefaultCategory
	}

	for _, category := range store.Categories {
		if category.Name == models.DefaultCategory || len(category.Keywords) == 0 {
			continue
		}

		// Keywords are normalized when they are stored, but the store file
		// can be edited by hand, so normalize again before matching.
		keywords := make([]string, 0, len(category.Keywords))
		for _, keyword := range category.Keywords {
			if keyword = models.NormalizeKeyword(keyword); keyword != "" {
				keywords = append(keywords, keyword)
			}
		}

		for i := range transactions {
			narrative := strings.ToLower(strings.TrimSpace(transactions[i].Narrative))
			if narrative == "" {
				continue
			}

			for _, keyword := range keywords {
				if matchKeyword(keyword, narrative) {
					transactions[i].Category = category.Name
					break
				}
			}
		}
	}
}

// matchKeyword reports whether the narrative contains the keyword. A
// keyword that contains the glob wildcard itself, which can happen with
// learned narrative phrases, is compared literally instead of being
// expanded as a pattern.
func matchKeyword(keyword, narrative string) bool {
	if strings.Contains(keyword, glob.GLOB) {
		return strings.Contains(narrative, keyword)
	}

	return glob.Glob(glob.GLOB+keyword+glob.GLOB, narrative)
}

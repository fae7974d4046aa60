package giphy

import (
	"sort"

	"gifsaver/pkg/models"
)

// SortByRating orders results ascending by plain string comparison of the
// rating field ("g" < "pg" < "pg-13" < "r"). Equal ratings keep API order.
func SortByRating(results []models.GIF) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Rating < results[j].Rating
	})
}

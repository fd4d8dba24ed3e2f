package pricing

import "github.com/felizhandmade/feliz-store/models"

// Selection holds everything the customization designer has picked so far.
// Any member may be nil or empty; missing options simply add nothing.
type Selection struct {
	Knots     []models.Knot
	Color1    *models.ColorOption
	Color2    *models.ColorOption
	Rope      *models.Rope
	Accessory *models.Accessory
}

// addon guards against malformed catalog rows; a negative PriceAdd counts as
// zero rather than discounting the piece.
func addon(v int64) int64 {
	if v < 0 {
		return 0
	}
	return v
}

// Total returns base plus the add-on price of every selected option.
func Total(base int64, sel Selection) int64 {
	total := base
	if total < 0 {
		total = 0
	}

	for _, k := range sel.Knots {
		total += addon(k.PriceAdd)
	}
	if sel.Color1 != nil {
		total += addon(sel.Color1.PriceAdd)
	}
	if sel.Color2 != nil {
		total += addon(sel.Color2.PriceAdd)
	}
	if sel.Rope != nil {
		total += addon(sel.Rope.PriceAdd)
	}
	if sel.Accessory != nil {
		total += addon(sel.Accessory.PriceAdd)
	}

	return total
}

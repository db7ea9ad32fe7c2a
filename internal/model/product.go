package model

// Products is the fixed set of dealership products being compared, in
// presentation order. Ranking ties are broken by this order, so it is
// part of the output contract, not just a display concern.
var Products = []string{
	"Автодруг",
	"Независимая Гарантия",
	"ПитСтоп",
	"CAR GARANT",
}

// MaxScore is the maximum attainable per-product score under the current
// question catalog. It is a configuration constant kept in sync with the
// seeded score tables by hand; it is NOT derived from the catalog, and
// scores are never clamped to it.
const MaxScore = 9

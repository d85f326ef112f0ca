package model

// FeeBand is a discrete bucket of the normalized monthly-fee value.
type FeeBand string

const (
	FeeBandUnspecified FeeBand = "unspecified"
	FeeBandUnder100K   FeeBand = "[0,100k)"
	FeeBand100To200K   FeeBand = "[100k,200k)"
	FeeBand200To300K   FeeBand = "[200k,300k)"
	FeeBand300To400K   FeeBand = "[300k,400k)"
	FeeBand400To500K   FeeBand = "[400k,500k)"
	FeeBand500KPlus    FeeBand = "[500k,∞)"
)

// FeeBandAll is the sentinel selection that disables fee-band filtering.
const FeeBandAll FeeBand = "all"

// AllFeeBands lists the concrete bands in ascending order, excluding the
// unspecified bucket and the "all" sentinel.
var AllFeeBands = []FeeBand{
	FeeBandUnder100K,
	FeeBand100To200K,
	FeeBand200To300K,
	FeeBand300To400K,
	FeeBand400To500K,
	FeeBand500KPlus,
}

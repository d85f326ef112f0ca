package normalize

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/width"

	"github.com/bough38-web/haeji-voc-dashboard-sub000/internal/model"
)

// feeScaleThreshold marks the magnitude above which a parsed fee is assumed
// to have been recorded one order too large. A subset of upstream rows
// carried the yearly ledger figure in the monthly-fee column.
const feeScaleThreshold = 200_000

// feeNullWords are free-text spellings of "no value" seen in the feeds.
var feeNullWords = map[string]struct{}{
	"":     {},
	"nan":  {},
	"none": {},
}

// Fee parses a free-text currency field into a numeric monthly fee.
// Returns nil for blank or unparsable input; a parsed value at or above
// feeScaleThreshold is divided by 10.
func Fee(raw string) *float64 {
	cleaned := strings.ToLower(strings.TrimSpace(width.Fold.String(raw)))
	if _, isNull := feeNullWords[cleaned]; isNull {
		return nil
	}

	var b strings.Builder
	b.Grow(len(cleaned))
	for _, r := range cleaned {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}

	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return nil
	}

	if v >= feeScaleThreshold {
		v /= 10
	}
	return &v
}

// FeeBand assigns the discrete band for a normalized fee value. A nil fee
// lands in the unspecified band and never matches a concrete band selection.
func FeeBand(fee *float64) model.FeeBand {
	if fee == nil {
		return model.FeeBandUnspecified
	}
	switch v := *fee; {
	case v < 100_000:
		return model.FeeBandUnder100K
	case v < 200_000:
		return model.FeeBand100To200K
	case v < 300_000:
		return model.FeeBand200To300K
	case v < 400_000:
		return model.FeeBand300To400K
	case v < 500_000:
		return model.FeeBand400To500K
	default:
		return model.FeeBand500KPlus
	}
}

var feePrinter = message.NewPrinter(language.English)

// FormatFee renders a normalized fee back to display text: rounded to the
// nearest integer, thousands-separated. Nil renders as the empty string.
func FormatFee(fee *float64) string {
	if fee == nil {
		return ""
	}
	return feePrinter.Sprintf("%d", int64(math.Round(*fee)))
}

// Package rarity maps item rarity values to CSS class names.
//
// Class names are spelled out in full so that CSS purging tools can find them.
package rarity

import (
	"fmt"

	"github.com/samber/lo"
)

// Gradient classes, from most to least rare.
const (
	GradientLegendary = "item-gradient-3"
	GradientRare      = "item-gradient-2"
	GradientUncommon  = "item-gradient-1"
	GradientGray      = "item-gradient-gray"
)

// Text color classes.
const (
	TextGold   = "text-gold"
	TextPurple = "text-purple"
	TextBlue   = "text-blue"
)

var gradientClasses = map[string]string{
	"0":    GradientLegendary,
	"1":    GradientRare,
	"2":    GradientUncommon,
	"gray": GradientGray,
}

var textColorClasses = map[string]string{
	"0": TextGold,
	"1": TextPurple,
	"2": TextBlue,
}

// Normalize returns the string form of a rarity, so 0 and "0" are the same key.
func Normalize(r any) string {
	switch v := r.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// ItemGradientClass returns the background gradient class. Unknown rarities get the gray gradient.
func ItemGradientClass(r any) string {
	return lo.ValueOr(gradientClasses, Normalize(r), GradientGray)
}

// TextColorClass returns the text color class. Unknown rarities get blue.
func TextColorClass(r any) string {
	return lo.ValueOr(textColorClasses, Normalize(r), TextBlue)
}

// Style bundles both classes for a rarity.
type Style struct {
	Rarity   string `json:"rarity"`
	Gradient string `json:"gradient"`
	Text     string `json:"text"`
}

func Styles(r any) Style {
	return Style{
		Rarity:   Normalize(r),
		Gradient: ItemGradientClass(r),
		Text:     TextColorClass(r),
	}
}

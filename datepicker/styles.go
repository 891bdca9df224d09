package datepicker

import (
	"github.com/muurk/extrabubbles/indicativelist"
	"github.com/muurk/extrabubbles/integerpicker"
)

// Styles bundles the styles handed down to the three pickers. Year styles
// apply to the year picker, List styles to the bars of the month and day
// lists, Items to their entries.
type Styles struct {
	Year        integerpicker.Style
	YearBlurred integerpicker.Style
	List        indicativelist.Style
	ListBlurred indicativelist.Style
	Items       indicativelist.DefaultItemStyles
}

// DefaultStyles returns the default styles of the sub-pickers.
func DefaultStyles() Styles {
	yearFocused, yearBlurred := integerpicker.DefaultStyles()
	listFocused, listBlurred := indicativelist.DefaultStyles()
	return Styles{
		Year:        yearFocused,
		YearBlurred: yearBlurred,
		List:        listFocused,
		ListBlurred: listBlurred,
		Items:       indicativelist.NewDefaultItemStyles(),
	}
}

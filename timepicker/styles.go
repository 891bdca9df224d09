package timepicker

import (
	"github.com/muurk/extrabubbles/indicativelist"
	"github.com/muurk/extrabubbles/integerpicker"
)

// Styles bundles the styles handed down to the three pickers. Hour styles
// apply to the hour picker, List styles to the bars of the minute and
// second lists, Items to their entries.
type Styles struct {
	Hour        integerpicker.Style
	HourBlurred integerpicker.Style
	List        indicativelist.Style
	ListBlurred indicativelist.Style
	Items       indicativelist.DefaultItemStyles
}

// DefaultStyles returns the default styles of the sub-pickers.
func DefaultStyles() Styles {
	hourFocused, hourBlurred := integerpicker.DefaultStyles()
	listFocused, listBlurred := indicativelist.DefaultStyles()
	return Styles{
		Hour:        hourFocused,
		HourBlurred: hourBlurred,
		List:        listFocused,
		ListBlurred: listBlurred,
		Items:       indicativelist.NewDefaultItemStyles(),
	}
}

package constants

import (
	"time"
)

// *********************************************************************************************************************
// THESE ARE KEY TO RESPONSIVENESS WHEN SCROLLING LARGE LISTS (EXACT VALUES DETERMINED BY FEEL)

// ScrollSettleInterval controls how long scrolling must pause before the top bar and debug log report the new
// position. Rapid scroll events in between only update the viewport
var ScrollSettleInterval = 150 * time.Millisecond

// MouseWheelScrollItems is the number of items scrolled per mouse wheel event
const MouseWheelScrollItems = 3

// *********************************************************************************************************************

// DefaultCount is the number of items generated when no file is given
const DefaultCount = 100_000

// DefaultItemHeight is the number of rows each item takes
const DefaultItemHeight = 1

// DefaultBuffer is the number of items materialized beyond each edge of the viewport
const DefaultBuffer = 3

// ToastDuration controls how long a toast message is shown
const ToastDuration = 3 * time.Second

// SaveDirName is the directory, relative to the user's home, where saved items are written
const SaveDirName = "vlist"

// MinHeight is the smallest viewport height. Smaller terminals still get a single row
const MinHeight = 1

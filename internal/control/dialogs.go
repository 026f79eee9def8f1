package control

import (
	"errors"
	"strconv"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/spindrift/internal/config"
	"github.com/iburimskiy/spindrift/internal/spindrift"
)

// Dialogs asks the user for values the keyboard cannot express. Calls block
// until the user answers and are never made on the tick goroutine.
type Dialogs interface {
	PickColor(title string, initial spindrift.RGB) (spindrift.RGB, error)
	AskSides(current int) (string, error)
}

// ZenityDialogs uses native dialogs.
type ZenityDialogs struct{}

func (ZenityDialogs) PickColor(title string, initial spindrift.RGB) (spindrift.RGB, error) {
	c, err := zenity.SelectColor(
		zenity.Title(title),
		zenity.Color(initial),
	)
	if err != nil {
		return initial, err
	}
	return spindrift.FromColor(c), nil
}

func (ZenityDialogs) AskSides(current int) (string, error) {
	return zenity.Entry(
		"Number of sides ("+strconv.Itoa(config.MinSides)+"-"+strconv.Itoa(config.MaxSides)+"):",
		zenity.Title("Custom shape"),
		zenity.EntryText(strconv.Itoa(current)),
	)
}

func isCanceled(err error) bool {
	return errors.Is(err, zenity.ErrCanceled)
}

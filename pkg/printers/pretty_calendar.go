package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/dlync/murmur/pkg/timeutil"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Calendar prints the month containing on, with days that have journal
// activity emphasized.
func (pp *PrettyPrint) Calendar(on time.Time, counts map[string]int) {
	loc := pp.Location
	if loc == nil {
		loc = time.Local
	}
	then := time.Date(on.In(loc).Year(), on.In(loc).Month(), 1, 0, 0, 0, 0, loc)
	pp.PrintMonthCount(then, counts)
}

// Year prints all twelve month grids for the year containing on.
func (pp *PrettyPrint) Year(on time.Time, counts map[string]int) {
	loc := pp.Location
	if loc == nil {
		loc = time.Local
	}
	then := time.Date(on.In(loc).Year(), 1, 1, 0, 0, 0, 0, loc)
	for i := 0; i < 12; i++ {
		pp.PrintMonthCount(then, counts)
		then = then.AddDate(0, 1, 0)
	}
}

// PrintMonthCount draws one month grid. Days whose day key appears in counts
// with a positive value are highlighted.
func (pp *PrettyPrint) PrintMonthCount(then time.Time, counts map[string]int) {
	loc := then.Location()
	d := StartDay(then)

	tf := color.New(color.FgWhite, color.Italic)

	m := then.Month().String()
	mid := (width - len(m)) / 2
	_, _ = tf.Printf("%s%s%s\n", strings.Repeat(" ", mid), m, strings.Repeat(" ", width-mid-len(m)))

	days := DaysIn(then)

	// Pad out the start of the month.
	for i := time.Sunday; i < d; i++ {
		fmt.Print("   ")
	}

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)

	for i := 0; i < days; i++ {
		key := timeutil.DayKey(time.Date(then.Year(), then.Month(), i+1, 12, 0, 0, 0, loc), loc)
		if counts[key] > 0 {
			_, _ = l2.Printf("%2d ", i+1)
		} else {
			_, _ = l1.Printf("%2d ", i+1)
		}

		d++
		if d > time.Saturday {
			d = time.Sunday
			fmt.Print("\n")
		}
	}
	fmt.Print("\n\n")
}

func DaysIn(then time.Time) int {
	return time.Date(then.Year(), then.Month()+1, 0, 0, 0, 0, 0, then.Location()).Day()
}

func StartDay(then time.Time) time.Weekday {
	return time.Date(then.Year(), then.Month(), 1, 0, 0, 0, 0, then.Location()).Weekday()
}

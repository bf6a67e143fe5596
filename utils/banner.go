package utils

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/common-nighthawk/go-figure"
	"github.com/jedib0t/go-pretty/v6/text"
)

var progressSpinner = spinner.New(spinner.CharSets[14], 100*time.Millisecond)

func DrawBanner() {
	banner := figure.NewColorFigure("Azure FinOps", "", "blue", true)
	banner.Print()
}

func StartSpinner(message string) {
	progressSpinner.Suffix = " " + message
	progressSpinner.Color("blue")
	progressSpinner.Start()
}

func StopSpinner() {
	progressSpinner.Stop()
}

func Warnf(format string, args ...any) {
	fmt.Println(text.FgHiYellow.Sprintf(" ⚠ "+format, args...))
}

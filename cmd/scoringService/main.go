package main

import (
	"github.com/eduspeech/scorelit/internal/app/scoring"
	"github.com/labstack/gommon/color"
)

func main() {
	printBanner()
	scoring.Execute()
}

var (
	version string
)

func printBanner() {
	banner := `
                              ___ __
   ______________  ________  / (_) /_
  / ___/ ___/ __ \/ ___/ _ \/ / / __/
 (__  ) /__/ /_/ / /  /  __/ / / /_
/____/\___/\____/_/   \___/_/_/\__/  v: %s
%s
________________________________________________________

`
	cl := color.New()
	cl.Printf(banner, cl.Red(version), cl.Green("github.com/eduspeech/scorelit"))
}

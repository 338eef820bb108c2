package main

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/dmitrymomot/spaserve/core/static"
)

// printBanner writes the startup summary to stdout. Kept apart from the
// structured log stream: this is for the human who just started the server.
func printBanner(app, root, url string, policy static.Policy) {
	title := color.New(color.FgYellow, color.Bold)
	label := color.New(color.FgCyan)
	value := color.New(color.FgWhite)

	title.Printf("%s development server\n", app)
	fmt.Println()

	label.Print("  serving:   ")
	value.Println(root)
	label.Print("  url:       ")
	value.Println(url)
	label.Print("  fallback:  ")
	value.Println(policy.Fallback)
	if len(policy.ExcludedPrefixes) > 0 {
		label.Print("  excluded:  ")
		value.Println(policy.ExcludedPrefixes)
	}
	fmt.Println()

	ok := color.New(color.FgGreen)
	ok.Println("  gzip compression, security headers, cache control, SPA routing")
	fmt.Println()
	fmt.Println("press Ctrl+C to stop")
}

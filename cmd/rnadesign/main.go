// cmd/rnadesign/main.go
package main

import (
	"rnadesign/internal/app"
	"rnadesign/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}

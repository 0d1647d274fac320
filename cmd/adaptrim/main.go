// cmd/adaptrim/main.go
package main

import (
	"adaptrim/internal/app"
	"adaptrim/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}

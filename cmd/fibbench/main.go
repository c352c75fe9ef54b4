// cmd/fibbench/main.go
package main

import (
	"fibbench/internal/app"
	"fibbench/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }

package main

import (
	"spur/internal/app"

	"github.com/charmbracelet/log"
)

func main() {
	if err := app.Run(); err != nil {
		log.Fatal("command failed", "error", err)
	}
}

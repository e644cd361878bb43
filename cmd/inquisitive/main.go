package main

import (
	"os"

	"horse.fit/inquisitive/internal/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:]))
}

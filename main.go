package main

import (
	"os"

	"github.com/GoRandomString/GoRandomString/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}

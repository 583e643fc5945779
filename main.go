package main

import (
	_ "github.com/joho/godotenv/autoload"

	"github.com/matteocalo/photodesk/cmd"
)

func main() {
	cmd.Execute()
}

package main

import (
	"os"

	"github.com/MrSnakeDoc/readinglist/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}

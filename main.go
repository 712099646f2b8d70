// Command nrml serves the nrml.io website.
package main

import (
	"embed"
	"io/fs"
	"log"
	"os"

	"github.com/nigellippett2/nrml/internal/cmd"
)

//go:embed static
var staticFS embed.FS

func main() {
	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		log.Fatal("Failed to access static files:", err)
	}

	if err := cmd.Execute(static); err != nil {
		os.Exit(1)
	}
}

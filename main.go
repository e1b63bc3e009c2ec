package main

import (
	"fmt"
	"os"

	"github.com/leonardinius/tinylox/cmd"
	"github.com/leonardinius/tinylox/internal/config"
)

func main() {
	cfg, err := config.LoadDefault()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cmd.ExitConfig)
	}

	app := cmd.NewLoxApp(cmd.WithConfig(cfg))
	os.Exit(app.Main(os.Args[1:]))
}

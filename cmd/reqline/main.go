// Command reqline parses raw HTTP/1.x request text and prints the result.
package main

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/shapestone/shape-reqline/internal/cli"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	_ = godotenv.Load() // .env file is optional

	cfg, err := cli.LoadConfig(env.Options{Prefix: cli.EnvPrefix})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.ExitConfigError)
	}

	os.Exit(cli.Execute(cfg, version, buildTime))
}

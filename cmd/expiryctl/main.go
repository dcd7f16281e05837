// Command expiryctl is a small control CLI for the expiryd daemon.
package main

import (
	"net/http"
	"time"

	"github.com/alecthomas/kong"
)

// CLI defines the command-line interface structure parsed by Kong.
type CLI struct {
	Addr string `help:"Address of the expiryd daemon." default:"127.0.0.1:8265" env:"EXPIRYD_LISTEN_ADDR"`

	Status  StatusCmd  `cmd:"" help:"Print the current password expiry status."`
	Refresh RefreshCmd `cmd:"" help:"Force an immediate poll and print the result."`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("expiryctl"),
		kong.Description("Control CLI for the expiryd password expiry daemon."),
		kong.UsageOnError(),
	)

	client := &apiClient{
		addr: cli.Addr,
		http: &http.Client{Timeout: 10 * time.Second},
	}

	ctx.FatalIfErrorf(ctx.Run(client))
}

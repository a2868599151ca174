package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/spf13/afero"

	agentkitmcp "github.com/orbiqd/orbiqd-agentkit/internal/app/agentkit-mcp"
	"github.com/orbiqd/orbiqd-agentkit/internal/pkg/cli"
)

func main() {
	var command agentkitmcp.Command

	kongCtx := kong.Parse(&command,
		kong.Name(cli.ExecutableMCP),
		kong.Description("MCP stdio server exposing configured agents as chat tools"),
		kong.UsageOnError(),
	)

	kongCtx.FatalIfErrorf(cli.Setup(command.Log))

	fsys := afero.NewOsFs()

	repository, err := cli.CreateConfigRepositoryFromConfig(command.Store, fsys)
	kongCtx.FatalIfErrorf(err)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	err = command.Run(ctx, repository)
	kongCtx.FatalIfErrorf(err)
}

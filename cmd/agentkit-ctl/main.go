package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/spf13/afero"

	agentkitctl "github.com/orbiqd/orbiqd-agentkit/internal/app/agentkit-ctl"
	"github.com/orbiqd/orbiqd-agentkit/internal/pkg/agent"
	"github.com/orbiqd/orbiqd-agentkit/internal/pkg/cli"
)

func main() {
	var command agentkitctl.Command

	kongCtx := kong.Parse(&command,
		kong.Name(cli.ExecutableCtl),
		kong.Description("Developer toolkit for building agents on Google Vertex AI"),
		kong.UsageOnError(),
	)

	kongCtx.FatalIfErrorf(cli.Setup(command.Log))

	fsys := afero.NewOsFs()

	repository, err := cli.CreateConfigRepositoryFromConfig(command.Store, fsys)
	kongCtx.FatalIfErrorf(err)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	err = kongCtx.Run(
		kong.BindTo(ctx, (*context.Context)(nil)),
		kong.BindTo(repository, (*agent.ConfigRepository)(nil)),
		kong.BindTo(fsys, (*afero.Fs)(nil)),
	)
	kongCtx.FatalIfErrorf(err)
}

package agentkitctl

import (
	"fmt"
	"runtime"

	"github.com/orbiqd/orbiqd-agentkit/internal/pkg/cli"
)

// VersionCmd prints build and runtime version information.
type VersionCmd struct{}

func (command *VersionCmd) Run() error {
	fmt.Printf("%s %s (%s)\n", executableName(), Version, runtime.Version())
	return nil
}

func executableName() string {
	return cli.ExecutableCtl
}

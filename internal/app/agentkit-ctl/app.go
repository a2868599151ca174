// Package agentkitctl implements the agentkit-ctl command tree.
package agentkitctl

import "github.com/orbiqd/orbiqd-agentkit/internal/pkg/cli"

// Version is stamped by the build; "dev" otherwise.
var Version = "dev"

type Command struct {
	Log   cli.LogConfig   `embed:"" prefix:"log-"`
	Store cli.StoreConfig `embed:"" prefix:"store-"`

	Validate ValidateCmd `cmd:"" help:"Validate the development environment"`
	Setup    SetupCmd    `cmd:"" help:"Set up a new AgentKit project"`
	Init     InitCmd     `cmd:"" help:"Initialize a new agent configuration"`
	Agent    AgentCmd    `cmd:"" help:"Manage agents"`
	Chat     ChatCmd     `cmd:"" help:"Start an interactive chat session with an agent"`
	Test     TestCmd     `cmd:"" help:"Test an agent with a single message"`
	Version  VersionCmd  `cmd:"" help:"Show version information"`
}

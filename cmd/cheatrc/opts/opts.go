package opts

import (
	"context"

	"github.com/walteh/cheatrc/pkg/config"
	"github.com/walteh/cheatrc/pkg/rules"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	Config *config.Config
	Table  *rules.Table
}

// Loader builds RootOpts after flags have been parsed
type Loader func(ctx context.Context) (*RootOpts, error)

package cmd

import "go.uber.org/fx"

var Module = fx.Module("cli",
	fx.Provide(
		fx.Annotate(checkCmd, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(fmtCmd, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(replCmd, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(watchCmd, fx.ResultTags(`group:"commands"`)),
	),
	fx.Invoke(Run),
)

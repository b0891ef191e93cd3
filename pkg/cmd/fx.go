package cmd

import "go.uber.org/fx"

var Module = fx.Module("cli",
	fx.Provide(
		fx.Annotate(renderCmd, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(verifyCmd, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(groupCmd, fx.ResultTags(`group:"commands"`)),
	),
	fx.Invoke(Run),
)

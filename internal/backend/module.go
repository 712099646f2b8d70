package backend

import "go.uber.org/fx"

// Module provides the backend client.
var Module = fx.Module("backend",
	fx.Provide(NewClient),
)

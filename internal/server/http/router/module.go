package router

import "go.uber.org/fx"

// Module provides the gin engine carrying the marketplace routes.
var Module = fx.Provide(Setup)

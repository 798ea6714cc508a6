package config

import "go.uber.org/fx"

// Module provides the marketplace runtime configuration.
var Module = fx.Provide(Load)

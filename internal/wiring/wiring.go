// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/nymag/nymag-fs/internal/adapters/config"
	_ "github.com/nymag/nymag-fs/internal/adapters/fs"
	_ "github.com/nymag/nymag-fs/internal/adapters/logger"
	_ "github.com/nymag/nymag-fs/internal/adapters/module"
	_ "github.com/nymag/nymag-fs/internal/adapters/telemetry"
	_ "github.com/nymag/nymag-fs/internal/adapters/yamldoc"
	// Register app and engine nodes.
	_ "github.com/nymag/nymag-fs/internal/app"
	_ "github.com/nymag/nymag-fs/internal/engine/access"
)

package commands

import (
	"strings"

	"github.com/tidynest/sitekit/internal/logging"
	"github.com/tidynest/sitekit/pkg/interfaces"
)

const commandModuleRoot = "sitekit.commands"

// CommandLogger returns a module-scoped logger for command handlers,
// enriching it with consistent structured fields.
func CommandLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	name := strings.TrimSpace(module)
	if name == "" {
		name = "core"
	}
	logger := logging.ModuleLogger(provider, commandModuleRoot+"."+name)
	return logging.WithFields(logger, map[string]any{
		"component":      "command",
		"command_module": name,
	})
}

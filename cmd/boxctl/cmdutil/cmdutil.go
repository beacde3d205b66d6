// Package cmdutil wires commands to the runtime transport. The client
// is constructed once per invocation and handed to each command
// explicitly; there is no ambient singleton.
package cmdutil

import (
	"strings"

	"boxctl/config"
	"boxctl/internal/runtime/docker"
)

// ConnectionFlags carries the root persistent flag values shared by
// every subcommand. Commands receive a pointer from main.
type ConnectionFlags struct {
	ConfigPath string
	Host       string
}

// Dial loads the config file and connects to the runtime. The --host
// flag wins over the config file's host; both empty means the client's
// environment defaults (the local control socket).
func (f *ConnectionFlags) Dial() (*docker.Runtime, *config.Config, error) {
	cfg, err := config.Load(strings.TrimSpace(f.ConfigPath))
	if err != nil {
		return nil, nil, err
	}

	host := strings.TrimSpace(f.Host)
	if host == "" {
		host = strings.TrimSpace(cfg.Host)
	}

	rt, err := docker.NewRuntime(host)
	if err != nil {
		return nil, nil, err
	}
	return rt, cfg, nil
}

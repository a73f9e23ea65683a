package handlers

import (
	"context"
	"errors"
	"strings"

	"github.com/robomesh/roboprov/internal/config"
)

// stubRunner records commands and optionally fails ones matching failOn.
type stubRunner struct {
	commands  []string
	dirs      []string
	outputs   map[string]string
	failOn    string
	outputErr error
}

func (s *stubRunner) Run(_ context.Context, dir, command string) error {
	s.commands = append(s.commands, command)
	s.dirs = append(s.dirs, dir)
	if s.failOn != "" && strings.Contains(command, s.failOn) {
		return errors.New("exit status 1")
	}
	return nil
}

func (s *stubRunner) Output(_ context.Context, command string) (string, error) {
	if s.outputErr != nil {
		return "", s.outputErr
	}
	if out, ok := s.outputs[command]; ok {
		return out, nil
	}
	return "precise\n", nil
}

func stubConfigRecord() *config.Record {
	return &config.Record{
		DeveloperMode:       true,
		PasswordStore:       "/opt/roboprov/creds",
		ContainerOS:         "quantal",
		ContainerMiddleware: "hydro",
		HostMiddleware:      "hydro",
		Platform:            config.PlatformOther,
		ExternalInterface:   "eth0",
		InternalInterface:   "eth1",
		ContainerInterface:  "lxcbr0",
		RootFS:              "/opt/roboprov/container/rootfs",
		ConfDir:             "/opt/roboprov/container/config",
		DataDir:             "/opt/roboprov/container/data",
	}
}

package session

import (
	"fmt"

	"github.com/gg582/hanfe/internal/layout"
	"github.com/gg582/hanfe/internal/types"
)

type CommandKind int

const (
	CommandToggleMode CommandKind = iota
	CommandSetMode
	CommandSwitchLayout
	CommandReloadLayout
)

// Command is a mode or layout change requested from outside the goroutine
// that owns the session.
type Command struct {
	Kind   CommandKind
	Mode   types.InputMode
	Layout string
	// Pairs replaces the custom key pairs for CommandReloadLayout.
	Pairs  []layout.CustomPair
}

func ToggleMode() Command { return Command{Kind: CommandToggleMode} }

func SetMode(mode types.InputMode) Command {
	return Command{Kind: CommandSetMode, Mode: mode}
}

func SwitchLayout(id string) Command {
	return Command{Kind: CommandSwitchLayout, Layout: id}
}

// ReloadLayout switches to id with a new set of custom key pairs, for example
// after the config file changed.
func ReloadLayout(id string, pairs []layout.CustomPair) Command {
	return Command{Kind: CommandReloadLayout, Layout: id, Pairs: pairs}
}

func (c Command) String() string {
	switch c.Kind {
	case CommandToggleMode:
		return "toggle-mode"
	case CommandSetMode:
		return fmt.Sprintf("set-mode(%s)", c.Mode)
	case CommandSwitchLayout:
		return fmt.Sprintf("switch-layout(%s)", c.Layout)
	case CommandReloadLayout:
		return fmt.Sprintf("reload-layout(%s, %d pairs)", c.Layout, len(c.Pairs))
	default:
		return "unknown"
	}
}

// Post queues cmd for the owning goroutine. It is safe to call from any
// goroutine.
func (s *Session) Post(cmd Command) {
	s.mu.Lock()
	s.pending = append(s.pending, cmd)
	s.mu.Unlock()
}

// Drain applies queued commands in order. HandleKey calls it first; an
// owner with its own loop may call it between keys. It must only be called
// from the owning goroutine.
func (s *Session) Drain() {
	s.mu.Lock()
	pending := s.pending
	s.pending = nil
	s.mu.Unlock()

	for _, cmd := range pending {
		s.apply(cmd)
	}
}

func (s *Session) apply(cmd Command) {
	s.log.Debug("apply command", "command", cmd.String())
	switch cmd.Kind {
	case CommandToggleMode:
		s.setMode(s.mode.Toggle())
	case CommandSetMode:
		s.setMode(cmd.Mode)
	case CommandSwitchLayout:
		s.setLayout(cmd.Layout)
	case CommandReloadLayout:
		s.cfg.CustomPairs = cmd.Pairs
		s.setLayout(cmd.Layout)
	}
}

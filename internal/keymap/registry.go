package keymap

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// Command represents a registered command handler.
type Command struct {
	ID      string
	Name    string
	Handler func() tea.Cmd
}

// Registry maps keys to commands and dispatches key events. Users can
// rebind any command through overrides; defaults stay in place for keys
// that are not overridden.
type Registry struct {
	commands      map[string]Command // ID -> Command
	bindings      map[string]string  // key -> command ID
	userOverrides map[string]string  // key -> command ID
	mu            sync.RWMutex
}

// NewRegistry creates an empty keymap registry.
func NewRegistry() *Registry {
	return &Registry{
		commands:      make(map[string]Command),
		bindings:      make(map[string]string),
		userOverrides: make(map[string]string),
	}
}

// RegisterCommand adds a command to the registry.
func (r *Registry) RegisterCommand(cmd Command) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commands[cmd.ID] = cmd
}

// Bind sets the default key for a command.
func (r *Registry) Bind(key, commandID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bindings[key] = commandID
}

// SetUserOverride sets a user-configured key override. An empty command
// ID unbinds the key.
func (r *Registry) SetUserOverride(key, commandID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if commandID == "" {
		r.userOverrides[key] = ""
		return
	}
	r.userOverrides[key] = commandID
}

// ClearUserOverrides drops all user overrides, as on a config reload.
func (r *Registry) ClearUserOverrides() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.userOverrides = make(map[string]string)
}

// Handle dispatches a key event to its bound command handler. Returns
// nil when the key is unbound.
func (r *Registry) Handle(key tea.KeyMsg) tea.Cmd {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keyStr := keyToString(key)

	cmdID, overridden := r.userOverrides[keyStr]
	if !overridden {
		cmdID = r.bindings[keyStr]
	}
	if cmdID == "" {
		return nil
	}
	if cmd, ok := r.commands[cmdID]; ok && cmd.Handler != nil {
		return cmd.Handler()
	}
	return nil
}

// GetCommand retrieves a command by ID.
func (r *Registry) GetCommand(id string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, ok := r.commands[id]
	return cmd, ok
}

// KeyFor returns the effective key bound to a command ID, for help text.
func (r *Registry) KeyFor(commandID string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for k, id := range r.userOverrides {
		if id == commandID {
			return k
		}
	}
	for k, id := range r.bindings {
		if id == commandID {
			if ov, ok := r.userOverrides[k]; ok && ov != commandID {
				continue
			}
			return k
		}
	}
	return ""
}

// keyToString converts a tea.KeyMsg to a bindable string.
func keyToString(key tea.KeyMsg) string {
	switch key.Type {
	case tea.KeyCtrlC:
		return "ctrl+c"
	case tea.KeyEnter:
		return "enter"
	case tea.KeyEsc:
		return "esc"
	case tea.KeySpace:
		return "space"
	case tea.KeyTab:
		return "tab"
	case tea.KeyBackspace:
		return "backspace"
	case tea.KeyUp:
		return "up"
	case tea.KeyDown:
		return "down"
	case tea.KeyLeft:
		return "left"
	case tea.KeyRight:
		return "right"
	case tea.KeyRunes:
		return string(key.Runes)
	default:
		return key.String()
	}
}

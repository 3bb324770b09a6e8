package hotkey

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/atomicstack/helium/internal/identifier"
	"github.com/atomicstack/helium/internal/input"
	"github.com/atomicstack/helium/internal/world"
)

// Binding is one entry of a keymap file.
//
//	- action: basic.log_clicked
//	  keys: [ctrl, l]
//	  trigger: press-and-release
type Binding struct {
	Action  identifier.Identifier `yaml:"action"`
	Keys    []string              `yaml:"keys"`
	Trigger TriggerType           `yaml:"trigger,omitempty"`
}

// Hotkey converts the entry into an always-available hotkey.
func (b Binding) Hotkey() (Hotkey, error) {
	if len(b.Keys) == 0 {
		return Hotkey{}, fmt.Errorf("hotkey: %s has no keys", b.Action)
	}
	if len(b.Keys) > MaxKeys {
		return Hotkey{}, fmt.Errorf("hotkey: %s has %d keys, limit is %d", b.Action, len(b.Keys), MaxKeys)
	}
	keys := make([]input.KeyCode, 0, len(b.Keys))
	for _, name := range b.Keys {
		k, err := input.ParseKeyCode(name)
		if err != nil {
			return Hotkey{}, fmt.Errorf("hotkey: %s: %w", b.Action, err)
		}
		keys = append(keys, k)
	}
	return NewAdvanced(b.Trigger, world.Always(), keys...), nil
}

// LoadKeymap decodes a YAML list of bindings. Entries without an action are
// rejected.
func LoadKeymap(r io.Reader) ([]Binding, error) {
	var bindings []Binding
	if err := yaml.NewDecoder(r).Decode(&bindings); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("hotkey: decode keymap: %w", err)
	}
	for i, b := range bindings {
		if b.Action.IsEmpty() {
			return nil, fmt.Errorf("hotkey: keymap entry %d has no action", i)
		}
	}
	return bindings, nil
}

// LoadKeymapFile reads a keymap from path.
func LoadKeymapFile(path string) ([]Binding, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("hotkey: open keymap: %w", err)
	}
	defer f.Close()
	return LoadKeymap(f)
}

// ApplyKeymap registers every binding on w.
func ApplyKeymap(w *world.World, bindings []Binding) error {
	for _, b := range bindings {
		h, err := b.Hotkey()
		if err != nil {
			return err
		}
		if err := Register(w, b.Action, h); err != nil {
			return err
		}
	}
	return nil
}

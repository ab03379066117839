// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"

	"go-dice-defense/internal/component"
)

// LoadDiceDefinitions reads a JSON array of die definitions and overlays it on
// the built-in table. Entries are matched by "id" (single, multi, freeze).
func LoadDiceDefinitions(path string) (DiceLibrary, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dice definitions file: %w", err)
	}
	return ParseDiceDefinitions(file)
}

// ParseDiceDefinitions is LoadDiceDefinitions without the file read.
func ParseDiceDefinitions(data []byte) (DiceLibrary, error) {
	var dieDefs []DieDefinition
	if err := json.Unmarshal(data, &dieDefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal dice definitions: %w", err)
	}

	lib := DefaultDice()
	for _, def := range dieDefs {
		t, ok := dieTypeByID(def.ID)
		if !ok {
			return nil, fmt.Errorf("unknown die id %q", def.ID)
		}
		if def.BasePeriod <= 0 {
			return nil, fmt.Errorf("die %q: base_period must be positive", def.ID)
		}
		if def.MinPeriod <= 0 {
			def.MinPeriod = lib[t].MinPeriod
		}
		lib[t] = def
	}
	return lib, nil
}

func dieTypeByID(id string) (component.DieType, bool) {
	for _, t := range component.AllDieTypes {
		if t.String() == id {
			return t, true
		}
	}
	return 0, false
}

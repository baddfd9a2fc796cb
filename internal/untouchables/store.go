// Package untouchables loads the externally maintained list of protected
// players. The file is refreshed by a separate weekly process; this bot only
// reads it.
package untouchables

import (
	"encoding/json"
	"log"
	"os"
	"sort"
)

type entry struct {
	Name       string  `json:"name"`
	MVPPercent float64 `json:"mvp_percent"`
}

type fileFormat struct {
	UpdatedAt    string  `json:"updated_at,omitempty"`
	Untouchables []entry `json:"untouchables"`
}

// Load reads the untouchables file into a {name: priority weight} map.
// A missing or malformed file is a warning, never an error: the run simply
// proceeds without protected players.
func Load(path string) map[string]float64 {
	result := make(map[string]float64)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("[WARN] %s not found, running without untouchables", path)
		} else {
			log.Printf("[WARN] read untouchables: %v, running without untouchables", err)
		}
		return result
	}

	var ff fileFormat
	if err := json.Unmarshal(data, &ff); err != nil {
		log.Printf("[WARN] parse untouchables: %v, running without untouchables", err)
		return result
	}

	for _, e := range ff.Untouchables {
		if e.Name == "" {
			continue
		}
		result[e.Name] = e.MVPPercent
	}
	log.Printf("[INFO] loaded %d untouchables", len(result))
	return result
}

// Save writes the map back out in the file format Load reads. The bot never
// rewrites the list itself; this exists for the external refresh tooling that
// maintains the file.
func Save(path string, untouchables map[string]float64) error {
	names := make([]string, 0, len(untouchables))
	for name := range untouchables {
		names = append(names, name)
	}
	sort.Strings(names)

	ff := fileFormat{}
	for _, name := range names {
		ff.Untouchables = append(ff.Untouchables, entry{Name: name, MVPPercent: untouchables[name]})
	}
	data, err := json.MarshalIndent(ff, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/mentorhub/internal/flagx"
	"github.com/dmitrijs2005/mentorhub/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "5s"
// or as integer nanoseconds. Fields are pointers so a partial config file
// overlays only the keys it actually contains.
type JsonConfig struct {
	DatabasePath    *string         `json:"database_path"`
	RefreshInterval *timex.Duration `json:"refresh_interval"`
}

// parseJson overlays Config with values loaded from a JSON file named via
// the -c or -config flags. If neither flag is present, nothing is loaded.
// Keys absent from the file leave the current values untouched.
// Panics on read or unmarshal errors (caller should recover if desired).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.RefreshInterval != nil {
		cfg.RefreshInterval = time.Duration(jc.RefreshInterval.Duration)
	}
}

package mystery

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// RawCast mirrors the cast file layout before trimming and validation.
type RawCast struct {
	Suspects []string
	Weapons  []string
	Rooms    []string
}

// CastFromJSON loads a cast definition from a JSON file.
func CastFromJSON(file string) (Cast, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return Cast{}, err
	}

	var castJson map[string]any
	if err := json.Unmarshal(bytes, &castJson); err != nil {
		return Cast{}, fmt.Errorf("cannot parse cast file %q: %w", file, err)
	}
	return decodeRawCast(castJson)
}

// CastFromYAML loads a cast definition from a YAML file.
func CastFromYAML(file string) (Cast, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return Cast{}, err
	}

	var castYaml map[string]any
	if err := yaml.Unmarshal(bytes, &castYaml); err != nil {
		return Cast{}, fmt.Errorf("cannot parse cast file %q: %w", file, err)
	}
	return decodeRawCast(castYaml)
}

func decodeRawCast(raw map[string]any) (Cast, error) {
	var rawCast RawCast
	if err := mapstructure.Decode(raw, &rawCast); err != nil {
		return Cast{}, fmt.Errorf("cannot decode cast definition: %w", err)
	}
	return ProcessRawCast(rawCast)
}

// ProcessRawCast trims surrounding whitespace from every name and validates
// the result.
func ProcessRawCast(raw RawCast) (Cast, error) {
	trim := func(name string, _ int) string { return strings.TrimSpace(name) }
	cast := Cast{
		Suspects: lo.Map(raw.Suspects, trim),
		Weapons:  lo.Map(raw.Weapons, trim),
		Rooms:    lo.Map(raw.Rooms, trim),
	}

	if err := cast.Validate(); err != nil {
		return Cast{}, err
	}
	return cast, nil
}

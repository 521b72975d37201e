package options

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// PlayerFile is one player document: a slot name, a game and the settings
// listed under the game's name.
type PlayerFile struct {
	Name     string
	Game     string
	Settings map[string]any
	Source   string
}

// ParsePlayerFiles reads every YAML document in data.
func ParsePlayerFiles(data []byte, source string) ([]PlayerFile, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var out []PlayerFile
	for doc := 1; ; doc++ {
		var raw map[string]any
		err := dec.Decode(&raw)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse %s document %d: %w", source, doc, err)
		}
		if raw == nil {
			continue
		}
		pf, err := playerFromDoc(raw)
		if err != nil {
			return nil, fmt.Errorf("%s document %d: %w", source, doc, err)
		}
		pf.Source = source
		out = append(out, pf)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%s: no player documents", source)
	}
	return out, nil
}

// LoadPlayerFiles reads and parses each path in order.
func LoadPlayerFiles(paths ...string) ([]PlayerFile, error) {
	var out []PlayerFile
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("read player file: %w", err)
		}
		files, err := ParsePlayerFiles(data, p)
		if err != nil {
			return nil, err
		}
		out = append(out, files...)
	}
	return out, nil
}

func playerFromDoc(raw map[string]any) (PlayerFile, error) {
	name, _ := raw["name"].(string)
	game, _ := raw["game"].(string)
	name = strings.TrimSpace(name)
	game = strings.TrimSpace(game)
	if name == "" {
		return PlayerFile{}, errors.New("name is required")
	}
	if game == "" {
		return PlayerFile{}, errors.New("game is required")
	}
	pf := PlayerFile{Name: name, Game: game, Settings: map[string]any{}}
	section, ok := raw[game]
	if !ok || section == nil {
		return pf, nil
	}
	settings, ok := section.(map[string]any)
	if !ok {
		return PlayerFile{}, fmt.Errorf("settings for %q must be a mapping", game)
	}
	pf.Settings = settings
	return pf, nil
}

package loader

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nathoo/wawel/types"
)

type yamlWorld struct {
	Game  yamlGame   `yaml:"game"`
	Rooms []yamlRoom `yaml:"rooms"`
	Items []yamlItem `yaml:"items"`
}

type yamlGame struct {
	Title             string   `yaml:"title"`
	Author            string   `yaml:"author"`
	Version           string   `yaml:"version"`
	Intro             string   `yaml:"intro"`
	Help              string   `yaml:"help"`
	Start             string   `yaml:"start"`
	Enemies           int      `yaml:"enemies"`
	EnemyName         string   `yaml:"enemy_name"`
	EnemyMaxInjuries  *int     `yaml:"enemy_max_injuries"`
	PlayerMaxInjuries *int     `yaml:"player_max_injuries"`
	MaxWeight         *int     `yaml:"max_weight"`
	Artwork           []string `yaml:"artwork"`
}

type yamlRoom struct {
	ID          string              `yaml:"id"`
	Description string              `yaml:"description"`
	Open        bool                `yaml:"open"`
	Exits       map[string]yamlExit `yaml:"exits"`
}

// yamlExit accepts either a bare room ID or {to: id, closed: true}.
type yamlExit struct {
	To     string `yaml:"to"`
	Closed bool   `yaml:"closed"`
}

func (e *yamlExit) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		e.To = value.Value
		return nil
	}
	type plain yamlExit
	return value.Decode((*plain)(e))
}

type yamlItem struct {
	ID          string `yaml:"id"`
	Kind        string `yaml:"kind"`
	Description string `yaml:"description"`
	Weight      int    `yaml:"weight"`
	Bullets     int    `yaml:"bullets"`
	Opens       string `yaml:"opens"`
	Location    string `yaml:"location"`
}

// LoadYAML reads a single-file YAML world.
func LoadYAML(path string) (*types.Defs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading world %s: %w", path, err)
	}
	defs, err := ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("world %s: %w", path, err)
	}
	return defs, nil
}

// ParseYAML decodes and validates YAML world content.
func ParseYAML(data []byte) (*types.Defs, error) {
	var w yamlWorld
	if err := yaml.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("parsing yaml: %w", err)
	}

	defs := &types.Defs{Game: w.Game.toDef()}
	for _, r := range w.Rooms {
		defs.Rooms = append(defs.Rooms, r.toDef())
	}
	for _, it := range w.Items {
		d, err := it.toDef()
		if err != nil {
			return nil, fmt.Errorf("item %s: %w", it.ID, err)
		}
		defs.Items = append(defs.Items, d)
	}

	if err := Validate(defs); err != nil {
		return nil, err
	}
	return defs, nil
}

func (g yamlGame) toDef() types.GameDef {
	def := types.GameDef{
		Title:             g.Title,
		Author:            g.Author,
		Version:           g.Version,
		Intro:             g.Intro,
		Help:              g.Help,
		Start:             g.Start,
		Enemies:           g.Enemies,
		EnemyName:         g.EnemyName,
		EnemyMaxInjuries:  intOr(g.EnemyMaxInjuries, defaultEnemyMaxInjuries),
		PlayerMaxInjuries: intOr(g.PlayerMaxInjuries, defaultPlayerMaxInjuries),
		MaxWeight:         intOr(g.MaxWeight, defaultMaxWeight),
		Artwork:           g.Artwork,
	}
	if def.EnemyName == "" {
		def.EnemyName = defaultEnemyName
	}
	return def
}

func (r yamlRoom) toDef() types.RoomDef {
	def := types.RoomDef{
		ID:          r.ID,
		Description: r.Description,
		Open:        r.Open,
		Exits:       make(map[string]types.ExitDef, len(r.Exits)),
	}
	for dir, e := range r.Exits {
		def.Exits[dir] = types.ExitDef{To: e.To, Closed: e.Closed}
	}
	return def
}

func (it yamlItem) toDef() (types.ItemDef, error) {
	place, err := parsePlacement(it.Location)
	if err != nil {
		return types.ItemDef{}, err
	}
	kind := it.Kind
	if kind == "" {
		kind = types.KindItem
	}
	return types.ItemDef{
		ID:          it.ID,
		Kind:        kind,
		Description: it.Description,
		Weight:      it.Weight,
		Bullets:     it.Bullets,
		Opens:       it.Opens,
		Place:       place,
	}, nil
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

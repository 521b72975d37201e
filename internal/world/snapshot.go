package world

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

type RegionState struct {
	Name      string   `json:"name"`
	Locations []string `json:"locations"`
}

type Placement struct {
	Location string `json:"location"`
	Item     string `json:"item"`
}

// Snapshot is the frozen outcome of curating one player's world, in the
// form handed to placement.
type Snapshot struct {
	Game         string        `json:"game"`
	Player       int           `json:"player"`
	Regions      []RegionState `json:"regions"`
	Locked       []Placement   `json:"locked"`
	Pool         []Entry       `json:"pool"`
	Precollected []string      `json:"precollected"`
	Discarded    []string      `json:"discarded"`
	Fillable     int           `json:"fillable"`
}

func (w *World) Snapshot() *Snapshot {
	s := &Snapshot{
		Game:         w.catalog.Game(),
		Player:       w.player,
		Pool:         w.pool.Counts(),
		Precollected: w.Precollected(),
		Discarded:    w.Discarded(),
		Fillable:     w.FillableCount(),
	}
	for _, r := range w.catalog.Regions() {
		rs := RegionState{Name: r.Name}
		for _, loc := range r.Locations {
			if !w.active.Has(loc.Name) {
				continue
			}
			rs.Locations = append(rs.Locations, loc.Name)
			if item, ok := w.locked[loc.Name]; ok {
				s.Locked = append(s.Locked, Placement{Location: loc.Name, Item: item})
			}
		}
		if len(rs.Locations) > 0 {
			s.Regions = append(s.Regions, rs)
		}
	}
	return s
}

// PoolSize is the number of item copies awaiting placement.
func (s *Snapshot) PoolSize() int {
	n := 0
	for _, e := range s.Pool {
		n += e.Count
	}
	return n
}

// Digest is a stable hash over everything curation decided.
func (s *Snapshot) Digest() string {
	data, err := json.Marshal(s)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

package dungeon

import (
	"strconv"

	"mad-shapes/internal/core"
	pcore "mad-shapes/pkg/core"
	"mad-shapes/pkg/shape"
)

// Config holds parameters for the dungeon generator.
type Config struct {
	Width  int
	Height int

	// PillarRadius spaces the Poisson-disc pillar centres.
	PillarRadius float64
	// PillarGrowth is how many Moore dilations each pillar centre gets.
	PillarGrowth int
	// RoomArea caps the size of a BSP room.
	RoomArea int
	// Vault is the side of the square feature packed into the largest room.
	Vault int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 96, Height: 64, PillarRadius: 14, PillarGrowth: 1, RoomArea: 64, Vault: 3}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["pillar_radius"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.PillarRadius = parsed
		}
	}
	if v, ok := cfg["pillar_growth"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.PillarGrowth = parsed
		}
	}
	if v, ok := cfg["room_area"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.RoomArea = parsed
		}
	}
	if v, ok := cfg["vault"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Vault = parsed
		}
	}
	return c
}

// Dungeon carves pillars out of a rectangle, partitions the remaining
// floor into BSP rooms and reveals one room per step.
type Dungeon struct {
	cfg    Config
	domain *shape.Pattern

	floor    *shape.Pattern
	rooms    *shape.Multipattern
	vault    *shape.Pattern
	revealed int
	grid     *core.ByteGrid
}

// New returns a dungeon generator for the configuration.
func New(cfg Config) *Dungeon {
	return &Dungeon{
		cfg:    cfg,
		domain: shape.Rectangle(cfg.Width, cfg.Height),
		floor:  shape.New(),
		rooms:  shape.NewMultipattern(),
		grid:   core.NewByteGrid(cfg.Width, cfg.Height),
	}
}

// Name returns the simulation identifier.
func (d *Dungeon) Name() string { return "dungeon" }

// Size returns the grid dimensions.
func (d *Dungeon) Size() core.Size { return core.Size{W: d.cfg.Width, H: d.cfg.Height} }

// Cells exposes the room labels of the revealed rooms.
func (d *Dungeon) Cells() []uint8 { return d.grid.Cells() }

// Rooms returns every room, revealed or not.
func (d *Dungeon) Rooms() *shape.Multipattern { return d.rooms }

// Floor returns the walkable area the rooms partition.
func (d *Dungeon) Floor() *shape.Pattern { return d.floor }

// Vault returns the packed feature, or nil when no room could hold it.
func (d *Dungeon) Vault() *shape.Pattern { return d.vault }

// Shapes returns the revealed rooms followed by the vault once every room
// is shown.
func (d *Dungeon) Shapes() *shape.Multipattern {
	shown := shape.NewMultipattern(d.rooms.Patterns()[:d.revealed]...)
	if d.revealed == d.rooms.Len() && d.vault != nil {
		shown.Append(d.vault)
	}
	return shown
}

// Reset regenerates the dungeon.
func (d *Dungeon) Reset(seed int64) {
	rng := pcore.NewRNG(seed)
	pillars, err := shape.PoissonDisc(d.domain, d.cfg.PillarRadius, shape.Euclidean, rng)
	if err != nil {
		panic(err)
	}
	for i := 0; i < d.cfg.PillarGrowth; i++ {
		pillars = shape.Dilate(pillars, nil)
	}
	d.floor = shape.Difference(d.domain, pillars)
	d.rooms, err = shape.BSP(d.floor, d.cfg.RoomArea)
	if err != nil {
		panic(err)
	}
	d.vault = nil
	if largest := d.rooms.Largest(); largest != nil && d.cfg.Vault > 0 {
		stamp := shape.Rectangle(d.cfg.Vault, d.cfg.Vault)
		if off, found, err := shape.FindPackingPosition(stamp, largest, shape.ClosestToCentroid); err == nil && found {
			d.vault = stamp.Translate(off)
		}
	}
	d.revealed = 0
	d.paint()
}

// Step reveals the next room.
func (d *Dungeon) Step() {
	if d.revealed < d.rooms.Len() {
		d.revealed++
	}
	d.paint()
}

func (d *Dungeon) paint() {
	d.grid.PaintLabels(d.Shapes())
}

// Parameters describes the current configuration and state.
func (d *Dungeon) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "dungeon",
		Params: []core.Parameter{
			{Key: "room_area", Label: "Room area", Type: core.ParamTypeInt, Value: strconv.Itoa(d.cfg.RoomArea)},
			{Key: "pillar_radius", Label: "Pillar radius", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(d.cfg.PillarRadius, 'g', -1, 64)},
			{Key: "rooms", Label: "Rooms", Type: core.ParamTypeInt, Value: strconv.Itoa(d.revealed) + "/" + strconv.Itoa(d.rooms.Len())},
		},
	}}}
}

func init() {
	core.Register("dungeon", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}

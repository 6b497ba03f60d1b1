package arena

// Combat map ids chosen by MapForTile.
const (
	MapGrass     = "grass"
	MapMarsh     = "marsh"
	MapBrush     = "brush"
	MapForest    = "forest"
	MapHill      = "hill"
	MapDungeon   = "dungeon"
	MapBridge    = "bridge"
	MapBrick     = "brick"
	MapShore     = "shore"
	MapShipSea   = "ship_sea"
	MapShipShip  = "ship_ship"
	MapShoreShip = "shore_ship"
	MapShipShore = "ship_shore"
	MapDng0      = "dng0"
	MapDng1      = "dng1"
	MapDng2      = "dng2"
	MapDng3      = "dng3"
	MapDng5      = "dng5"
	MapDng6      = "dng6"
)

var groundMaps = map[string]string{
	"horse":            MapGrass,
	"swamp":            MapMarsh,
	"grass":            MapGrass,
	"brush":            MapBrush,
	"forest":           MapForest,
	"hills":            MapHill,
	"dungeon":          MapDungeon,
	"city":             MapGrass,
	"castle":           MapGrass,
	"town":             MapGrass,
	"lcb_entrance":     MapGrass,
	"bridge":           MapBridge,
	"balloon":          MapGrass,
	"bridge_pieces":    MapBridge,
	"shrine":           MapGrass,
	"chest":            MapGrass,
	"brick_floor":      MapBrick,
	"moongate":         MapGrass,
	"moongate_opening": MapGrass,
	"dungeon_floor":    MapGrass,
}

// dungeon chests are deliberately left on the default map.
var dungeonMaps = map[string]string{
	"brick_floor":    MapDng0,
	"up_ladder":      MapDng1,
	"down_ladder":    MapDng2,
	"up_down_ladder": MapDng3,
	"dungeon_door":   MapDng5,
	"secret_door":    MapDng6,
}

// MapQuery describes where an encounter starts.
type MapQuery struct {
	// Ground is the tile name under the party.
	Ground    string
	InDungeon bool
	// FromShip is true when the party travels by ship or stands on one.
	FromShip bool
	// Foe is nil for encounters without a foe on the outer map, such as camping.
	Foe *MapFoe
}

// MapFoe describes the creature that triggered the encounter.
type MapFoe struct {
	PirateShip bool
	// OverWater is true when the ground under the foe is water.
	OverWater bool
}

// MapForTile returns the id of the combat map used for an encounter.
//
// Postcondition: Always returns a non-empty id; unknown ground falls back to MapBrick.
func MapForTile(q MapQuery) string {
	if q.InDungeon {
		if id, ok := dungeonMaps[q.Ground]; ok {
			return id
		}
		return MapDng0
	}

	toShip := q.Foe != nil && q.Foe.PirateShip
	if q.FromShip && toShip {
		return MapShipShip
	}
	if q.Foe != nil {
		switch {
		case toShip:
			return MapShoreShip
		case q.FromShip && q.Foe.OverWater:
			return MapShipSea
		case q.Foe.OverWater:
			return MapShore
		case q.FromShip:
			return MapShipShore
		}
	}
	if id, ok := groundMaps[q.Ground]; ok {
		return id
	}
	return MapBrick
}

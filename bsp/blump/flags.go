package blump

import (
	"github.com/samber/lo"
)

type (
	Flag struct {
		Name  string
		Value uint32
	}
)

var ContentsFlags = []Flag{
	{"SOLID", 0x1},
	{"WINDOW", 0x2},
	{"AUX", 0x4},
	{"GRATE", 0x8},
	{"SLIME", 0x10},
	{"WATER", 0x20},
	{"MIST", 0x40},
	{"OPAQUE", 0x80},
	{"TESTFOGVOLUME", 0x100},
	{"UNUSED", 0x200},
	{"UNUSED6", 0x400},
	{"TEAM1", 0x800},
	{"TEAM2", 0x1000},
	{"IGNORE_NODRAW_OPAQUE", 0x2000},
	{"MOVEABLE", 0x4000},
	{"AREAPORTAL", 0x8000},
	{"PLAYERCLIP", 0x10000},
	{"MONSTERCLIP", 0x20000},
	{"CURRENT_0", 0x40000},
	{"CURRENT_90", 0x80000},
	{"CURRENT_180", 0x100000},
	{"CURRENT_270", 0x200000},
	{"CURRENT_UP", 0x400000},
	{"CURRENT_DOWN", 0x800000},
	{"ORIGIN", 0x1000000},
	{"MONSTER", 0x2000000},
	{"DEBRIS", 0x4000000},
	{"DETAIL", 0x8000000},
	{"TRANSLUCENT", 0x10000000},
	{"LADDER", 0x20000000},
	{"HITBOX", 0x80000000},
}

var SurfaceFlags = []Flag{
	{"LIGHT", 0x1},
	{"SKY2D", 0x2},
	{"SKY", 0x4},
	{"WARP", 0x8},
	{"TRANS", 0x10},
	{"NOPORTAL", 0x20},
	{"TRIGGER", 0x40},
	{"NODRAW", 0x80},
	{"HINT", 0x100},
	{"SKIP", 0x200},
	{"NOLIGHT", 0x400},
	{"BUMPLIGHT", 0x800},
	{"NOSHADOWS", 0x1000},
	{"NODECALS", 0x2000},
	{"NOCHOP", 0x4000},
	{"HITBOX", 0x8000},
}

var DispTriFlags = []Flag{
	{"TAG_SURFACE", 0x1},
	{"TAG_WALKABLE", 0x2},
	{"TAG_BUILDABLE", 0x4},
	{"FLAG_SURFPROP1", 0x8},
	{"FLAG_SURFPROP2", 0x10},
}

// Quake and GoldSrc leaves store one negative contents value instead of bits.
var legacyContents = map[int32]string{
	-1:  "EMPTY",
	-2:  "SOLID",
	-3:  "WATER",
	-4:  "SLIME",
	-5:  "LAVA",
	-6:  "SKY",
	-7:  "ORIGIN",
	-8:  "CLIP",
	-9:  "CURRENT_0",
	-10: "CURRENT_90",
	-11: "CURRENT_180",
	-12: "CURRENT_270",
	-13: "CURRENT_UP",
	-14: "CURRENT_DOWN",
	-15: "TRANSLUCENT",
}

// FlagNames returns the names of the bits set in value. A zero value is EMPTY.
func FlagNames(value uint32, flags []Flag) []string {
	if value == 0 {
		return []string{"EMPTY"}
	}
	return lo.FilterMap(
		flags,
		func(flag Flag, _ int) (string, bool) {
			return flag.Name, value&flag.Value != 0
		},
	)
}

func LegacyContentsName(value int32) string {
	name, ok := legacyContents[value]
	if !ok {
		return "UNKNOWN"
	}
	return name
}

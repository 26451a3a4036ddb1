// Package bgame decodes the game lump, a directory of sub-lumps addressed by
// absolute file offsets.
package bgame

type (
	Descriptor struct {
		ID         []byte `json:"id"`
		Flags      uint16 `json:"flags"`
		Version    uint16 `json:"version"`
		FileOffset int32  `json:"file_offset"`
		FileLength int32  `json:"file_length"`
	}
	// Data is either StaticProps or Unparsed.
	Data interface {
		isGameData()
	}
	StaticProps struct {
		Dictionary    []string `json:"dictionary"`
		Leaves        []uint16 `json:"leaves"`
		InstanceCount int32    `json:"instance_count"`
	}
	Unparsed struct {
		ID string `json:"id"`
	}
	GameLump struct {
		Descriptors []Descriptor `json:"descriptors"`
		Data        []Data       `json:"data"`
	}
)

const (
	TagStaticProps         = "sprp"
	SizeDescriptor         = 16
	SizeStaticPropName     = 128
	SizeStaticPropLeafItem = 2
)

func (StaticProps) isGameData() {}
func (Unparsed) isGameData()    {}

// Tag returns the sub-lump id the way the engine spells it. Ids are stored
// as little-endian integers, so the file bytes read backwards.
func (r Descriptor) Tag() string {
	tag := make([]byte, len(r.ID))
	for i, b := range r.ID {
		tag[len(r.ID)-1-i] = b
	}
	return string(tag)
}

func (r Descriptor) IsStaticProps() bool {
	return r.Tag() == TagStaticProps
}

package blump

import (
	"bsp-dump/bsp/bheader"
	"bsp-dump/bsp/lbytes"
	"github.com/pkg/errors"
)

// Record layouts shared by Quake (29) and GoldSrc (30) files.
type (
	MipTexture struct {
		Name    string    `json:"name"`
		Width   uint32    `json:"width"`
		Height  uint32    `json:"height"`
		Offsets [4]uint32 `json:"offsets"`
		// Missing is set for directory slots holding offset -1.
		Missing bool `json:"missing"`
	}
	LegacyNode struct {
		PlaneNum int32 `json:"plane_num"`
		// negative children are -(leaf + 1)
		Children  [2]int16 `json:"children"`
		Mins      [3]int16 `json:"mins"`
		Maxs      [3]int16 `json:"maxs"`
		FirstFace uint16   `json:"first_face"`
		NumFaces  uint16   `json:"num_faces"`
	}
	LegacyTexInfo struct {
		Vecs   [2][4]float32 `json:"vecs"`
		MipTex int32         `json:"mip_tex"`
		Flags  int32         `json:"flags"`
	}
	LegacyFace struct {
		PlaneNum    int16    `json:"plane_num"`
		Side        int16    `json:"side"`
		FirstEdge   int32    `json:"first_edge"`
		NumEdges    int16    `json:"num_edges"`
		TexInfo     int16    `json:"tex_info"`
		Styles      [4]uint8 `json:"styles"`
		LightOffset int32    `json:"light_offset"`
	}
	ClipNode struct {
		PlaneNum int32    `json:"plane_num"`
		Children [2]int16 `json:"children"`
	}
	LegacyLeaf struct {
		Contents int32 `json:"contents"`
		// -1 when the leaf has no visibility data
		VisOffset        int32    `json:"vis_offset"`
		Mins             [3]int16 `json:"mins"`
		Maxs             [3]int16 `json:"maxs"`
		FirstMarkSurface uint16   `json:"first_mark_surface"`
		NumMarkSurfaces  uint16   `json:"num_mark_surfaces"`
		AmbientLevels    [4]uint8 `json:"ambient_levels"`
	}
	LegacyModel struct {
		Mins      lbytes.Vector `json:"mins"`
		Maxs      lbytes.Vector `json:"maxs"`
		Origin    lbytes.Vector `json:"origin"`
		HeadNodes [4]int32      `json:"head_nodes"`
		VisLeafs  int32         `json:"vis_leafs"`
		FirstFace int32         `json:"first_face"`
		NumFaces  int32         `json:"num_faces"`
	}
)

const (
	SizeMipTextureName   = 16
	MissingMipTexture    = -1
	sizeMipTextureHeader = SizeMipTextureName + 4 + 4 + 4*4
)

func decodeMipTexture(reader *lbytes.Reader) (*MipTexture, error) {
	texture := MipTexture{}
	var err error
	texture.Name, err = reader.ReadString(SizeMipTextureName)
	if err != nil {
		return nil, err
	}
	if texture.Width, err = reader.ReadUInt(); err != nil {
		return nil, err
	}
	if texture.Height, err = reader.ReadUInt(); err != nil {
		return nil, err
	}
	if err := reader.ReadRecord(&texture.Offsets); err != nil {
		return nil, err
	}
	return &texture, nil
}

// decodeMipTextures reads the texture directory: a count, one offset per
// texture relative to the lump, then a miptex header at each offset.
// Pixel data is left in place.
func decodeMipTextures(reader *lbytes.Reader, entry bheader.LumpEntry) (Lump, error) {
	textures := make(MipTextures, 0)
	if entry.Length == 0 {
		return textures, nil
	}
	count, err := reader.ReadCount(4)
	if err != nil {
		err := errors.Wrap(err, "blump.decodeMipTextures error reading texture count")
		return nil, err
	}
	offsets := make([]int32, 0, count)
	for i := 0; i < count; i++ {
		// the count check above guarantees the read succeeds
		offset, _ := reader.ReadInt()
		offsets = append(offsets, offset)
	}

	for i, offset := range offsets {
		if offset == MissingMipTexture {
			textures = append(textures, MipTexture{Missing: true})
			continue
		}
		position := int64(entry.Offset) + int64(offset)
		if offset < 0 || int64(offset)+sizeMipTextureHeader > int64(entry.Length) {
			return nil, lbytes.ErrOutOfBounds{
				Offset:    position,
				Want:      sizeMipTextureHeader,
				Remaining: entry.End() - position,
			}
		}
		if err := reader.SeekTo(position); err != nil {
			return nil, err
		}
		texture, err := decodeMipTexture(reader)
		if err != nil {
			err := errors.Wrapf(err, "blump.decodeMipTextures error reading texture %d", i)
			return nil, err
		}
		textures = append(textures, *texture)
	}
	return textures, nil
}

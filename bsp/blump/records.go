package blump

import (
	"bsp-dump/bsp/lbytes"
)

type (
	Plane struct {
		Normal lbytes.Vector `json:"normal"`
		Dist   float32       `json:"dist"`
		Type   int32         `json:"type"`
	}
	TexData struct {
		Reflectivity      lbytes.Vector `json:"reflectivity"`
		NameStringTableID int32         `json:"name_string_table_id"`
		Width             int32         `json:"width"`
		Height            int32         `json:"height"`
		ViewWidth         int32         `json:"view_width"`
		ViewHeight        int32         `json:"view_height"`
	}
	Node struct {
		PlaneNum  int32    `json:"plane_num"`
		Children  [2]int32 `json:"children"`
		Mins      [3]int16 `json:"mins"`
		Maxs      [3]int16 `json:"maxs"`
		FirstFace uint16   `json:"first_face"`
		NumFaces  uint16   `json:"num_faces"`
		Area      int16    `json:"area"`
		Padding   int16    `json:"padding"`
	}
	TexInfo struct {
		TextureVecs  [2][4]float32 `json:"texture_vecs"`
		LightmapVecs [2][4]float32 `json:"lightmap_vecs"`
		Flags        int32         `json:"flags"`
		TexData      int32         `json:"tex_data"`
	}
	Face struct {
		PlaneNum           uint16   `json:"plane_num"`
		Side               uint8    `json:"side"`
		OnNode             uint8    `json:"on_node"`
		FirstEdge          int32    `json:"first_edge"`
		NumEdges           int16    `json:"num_edges"`
		TexInfo            int16    `json:"tex_info"`
		DispInfo           int16    `json:"disp_info"`
		SurfaceFogVolumeID int16    `json:"surface_fog_volume_id"`
		Styles             [4]uint8 `json:"styles"`
		LightOffset        int32    `json:"light_offset"`
		Area               float32  `json:"area"`
		// both in luxels
		LightmapTextureMins [2]int32 `json:"lightmap_texture_mins"`
		LightmapTextureSize [2]int32 `json:"lightmap_texture_size"`
		OrigFace            int32    `json:"orig_face"`
		NumPrims            uint16   `json:"num_prims"`
		FirstPrimID         uint16   `json:"first_prim_id"`
		SmoothingGroups     uint32   `json:"smoothing_groups"`
	}
	ColorRGBExp32 struct {
		R        uint8 `json:"r"`
		G        uint8 `json:"g"`
		B        uint8 `json:"b"`
		Exponent int8  `json:"exponent"`
	}
	CompressedLightCube [6]ColorRGBExp32
	OccluderData        struct {
		Flags     int32         `json:"flags"`
		FirstPoly int32         `json:"first_poly"`
		PolyCount int32         `json:"poly_count"`
		Mins      lbytes.Vector `json:"mins"`
		Maxs      lbytes.Vector `json:"maxs"`
		// only present from lump version 2 on
		Area int32 `json:"area"`
	}
	OccluderPolyData struct {
		FirstVertexIndex int32 `json:"first_vertex_index"`
		VertexCount      int32 `json:"vertex_count"`
		PlaneNum         int32 `json:"plane_num"`
	}
	LeafCommon struct {
		Contents       int32    `json:"contents"`
		Cluster        int16    `json:"cluster"`
		AreaFlags      int16    `json:"area_flags"`
		Mins           [3]int16 `json:"mins"`
		Maxs           [3]int16 `json:"maxs"`
		FirstLeafFace  uint16   `json:"first_leaf_face"`
		NumLeafFaces   uint16   `json:"num_leaf_faces"`
		FirstLeafBrush uint16   `json:"first_leaf_brush"`
		NumLeafBrushes uint16   `json:"num_leaf_brushes"`
		InWater        int16    `json:"in_water"`
	}
	Leaf struct {
		LeafCommon
		// only present in lump version 0
		AmbientLighting *CompressedLightCube `json:"ambient_lighting,omitempty"`
		Padding         int16                `json:"padding"`
	}
	Edge  [2]uint16
	Model struct {
		Mins      lbytes.Vector `json:"mins"`
		Maxs      lbytes.Vector `json:"maxs"`
		Origin    lbytes.Vector `json:"origin"`
		HeadNode  int32         `json:"head_node"`
		FirstFace int32         `json:"first_face"`
		NumFaces  int32         `json:"num_faces"`
	}
	Brush struct {
		FirstSide int32 `json:"first_side"`
		NumSides  int32 `json:"num_sides"`
		Contents  int32 `json:"contents"`
	}
	BrushSide struct {
		PlaneNum uint16 `json:"plane_num"`
		TexInfo  int16  `json:"tex_info"`
		DispInfo int16  `json:"disp_info"`
		Bevel    int16  `json:"bevel"`
	}
	Area struct {
		NumAreaPortals  int32 `json:"num_area_portals"`
		FirstAreaPortal int32 `json:"first_area_portal"`
	}
	AreaPortal struct {
		PortalKey           uint16 `json:"portal_key"`
		OtherArea           uint16 `json:"other_area"`
		FirstClipPortalVert uint16 `json:"first_clip_portal_vert"`
		ClipPortalVerts     uint16 `json:"clip_portal_verts"`
		PlaneNum            int32  `json:"plane_num"`
	}
	DispSubNeighbor struct {
		Neighbor            uint16 `json:"neighbor"`
		NeighborOrientation uint8  `json:"neighbor_orientation"`
		Span                uint8  `json:"span"`
		NeighborSpan        uint8  `json:"neighbor_span"`
		Padding             uint8  `json:"padding"`
	}
	DispNeighbor struct {
		SubNeighbors [2]DispSubNeighbor `json:"sub_neighbors"`
	}
	DispCornerNeighbors struct {
		Neighbors    [4]uint16 `json:"neighbors"`
		NumNeighbors uint8     `json:"num_neighbors"`
		Padding      uint8     `json:"padding"`
	}
	DispInfo struct {
		StartPosition  lbytes.Vector `json:"start_position"`
		DispVertStart  int32         `json:"disp_vert_start"`
		DispTriStart   int32         `json:"disp_tri_start"`
		Power          int32         `json:"power"`
		MinTess        int32         `json:"min_tess"`
		SmoothingAngle float32       `json:"smoothing_angle"`
		Contents       int32         `json:"contents"`
		MapFace        uint16        `json:"map_face"`
		_              [2]byte
		LightmapAlphaStart          int32                  `json:"lightmap_alpha_start"`
		LightmapSamplePositionStart int32                  `json:"lightmap_sample_position_start"`
		EdgeNeighbors               [4]DispNeighbor        `json:"edge_neighbors"`
		CornerNeighbors             [4]DispCornerNeighbors `json:"corner_neighbors"`
		AllowedVerts                [10]uint32             `json:"allowed_verts"`
	}
	DispVert struct {
		Vec   lbytes.Vector `json:"vec"`
		Dist  float32       `json:"dist"`
		Alpha float32       `json:"alpha"`
	}
	Primitive struct {
		Type       uint16 `json:"type"`
		FirstIndex uint16 `json:"first_index"`
		NumIndices uint16 `json:"num_indices"`
		FirstVert  uint16 `json:"first_vert"`
		NumVerts   uint16 `json:"num_verts"`
	}
	CubemapSample struct {
		Origin [3]int32 `json:"origin"`
		Size   int32    `json:"size"`
	}
	// TexDataString keeps the lump relative offset TexDataStringTable points at.
	TexDataString struct {
		Offset int    `json:"offset"`
		Value  string `json:"value"`
	}
	Overlay struct {
		ID                      int32            `json:"id"`
		TexInfo                 int16            `json:"tex_info"`
		FaceCountAndRenderOrder uint16           `json:"face_count_and_render_order"`
		Faces                   [64]int32        `json:"faces"`
		U                       [2]float32       `json:"u"`
		V                       [2]float32       `json:"v"`
		UVPoints                [4]lbytes.Vector `json:"uv_points"`
		Origin                  lbytes.Vector    `json:"origin"`
		BasisNormal             lbytes.Vector    `json:"basis_normal"`
	}
	LeafAmbientSample struct {
		Cube    CompressedLightCube `json:"cube"`
		X       uint8               `json:"x"`
		Y       uint8               `json:"y"`
		Z       uint8               `json:"z"`
		Padding uint8               `json:"padding"`
	}
	LeafAmbientIndexEntry struct {
		AmbientSampleCount uint16 `json:"ambient_sample_count"`
		FirstAmbientSample uint16 `json:"first_ambient_sample"`
	}
)

const (
	SizeLeafCommon   = 30
	SizeLeafVersion0 = 56
	SizeLeaf         = 32

	SizeOccluderDataVersion1 = 36
	SizeOccluderPolyData     = 12
)

// RenderOrder is stored in the top two bits of FaceCountAndRenderOrder.
func (r Overlay) RenderOrder() uint16 {
	return r.FaceCountAndRenderOrder >> 14
}

func (r Overlay) FaceCount() uint16 {
	return r.FaceCountAndRenderOrder & 0x3FFF
}

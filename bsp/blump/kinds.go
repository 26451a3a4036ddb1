package blump

import (
	"bsp-dump/bsp/bentity"
	"bsp-dump/bsp/bgame"
	"bsp-dump/bsp/bphys"
	"bsp-dump/bsp/bvis"
	"bsp-dump/bsp/lbytes"
)

type (
	Entities    []bentity.Entity
	Planes      []Plane
	TexDataLump []TexData
	Vertexes    []lbytes.Vector
	Visibility struct {
		bvis.Table
	}
	Nodes    []Node
	TexInfos []TexInfo
	Faces    []Face
	Lighting []ColorRGBExp32
	Occlusion struct {
		Data          []OccluderData     `json:"data"`
		Polys         []OccluderPolyData `json:"polys"`
		VertexIndices []int32            `json:"vertex_indices"`
	}
	Leafs                       []Leaf
	FaceIDs                     []uint16
	Edges                       []Edge
	SurfEdges                   []int32
	Models                      []Model
	LeafFaces                   []uint16
	LeafBrushes                 []uint16
	Brushes                     []Brush
	BrushSides                  []BrushSide
	Areas                       []Area
	AreaPortals                 []AreaPortal
	DispInfos                   []DispInfo
	OriginalFaces               []Face
	PhysDisp                    []uint16
	PhysCollide                 []bphys.Model
	VertNormals                 []lbytes.Vector
	VertNormalIndices           []uint16
	DispVerts                   []DispVert
	DispLightmapSamplePositions []uint8
	GameLump struct {
		bgame.GameLump
	}
	Primitives             []Primitive
	PrimVerts              []lbytes.Vector
	PrimIndices            []uint16
	PakFile                []byte
	ClipPortalVerts        []lbytes.Vector
	Cubemaps               []CubemapSample
	TexDataStringData      []TexDataString
	TexDataStringTable     []uint32
	Overlays               []Overlay
	LeafMinDistToWater     []uint16
	FaceMacroTextureInfo   []uint16
	DispTris               []uint16
	LeafAmbientIndexHDR    []LeafAmbientIndexEntry
	LeafAmbientIndex       []LeafAmbientIndexEntry
	LightingHDR            []ColorRGBExp32
	LeafAmbientLightingHDR []LeafAmbientSample
	LeafAmbientLighting    []LeafAmbientSample
	FacesHDR               []Face
	MipTextures            []MipTexture
	LegacyNodes            []LegacyNode
	LegacyTexInfos         []LegacyTexInfo
	LegacyFaces            []LegacyFace
	ClipNodes              []ClipNode
	LegacyLeafs            []LegacyLeaf
	MarkSurfaces           []uint16
	LegacyModels           []LegacyModel
)

const (
	KindEntities                    Kind = "entities"
	KindPlanes                      Kind = "planes"
	KindTexDataLump                 Kind = "tex_data"
	KindVertexes                    Kind = "vertexes"
	KindVisibility                  Kind = "visibility"
	KindNodes                       Kind = "nodes"
	KindTexInfos                    Kind = "tex_info"
	KindFaces                       Kind = "faces"
	KindLighting                    Kind = "lighting"
	KindOcclusion                   Kind = "occlusion"
	KindLeafs                       Kind = "leafs"
	KindFaceIDs                     Kind = "face_ids"
	KindEdges                       Kind = "edges"
	KindSurfEdges                   Kind = "surf_edges"
	KindModels                      Kind = "models"
	KindLeafFaces                   Kind = "leaf_faces"
	KindLeafBrushes                 Kind = "leaf_brushes"
	KindBrushes                     Kind = "brushes"
	KindBrushSides                  Kind = "brush_sides"
	KindAreas                       Kind = "areas"
	KindAreaPortals                 Kind = "area_portals"
	KindDispInfos                   Kind = "disp_info"
	KindOriginalFaces               Kind = "original_faces"
	KindPhysDisp                    Kind = "phys_disp"
	KindPhysCollide                 Kind = "phys_collide"
	KindVertNormals                 Kind = "vert_normals"
	KindVertNormalIndices           Kind = "vert_normal_indices"
	KindDispVerts                   Kind = "disp_verts"
	KindDispLightmapSamplePositions Kind = "disp_lightmap_sample_positions"
	KindGameLump                    Kind = "game_lump"
	KindPrimitives                  Kind = "primitives"
	KindPrimVerts                   Kind = "prim_verts"
	KindPrimIndices                 Kind = "prim_indices"
	KindPakFile                     Kind = "pak_file"
	KindClipPortalVerts             Kind = "clip_portal_verts"
	KindCubemaps                    Kind = "cubemaps"
	KindTexDataStringData           Kind = "tex_data_string_data"
	KindTexDataStringTable          Kind = "tex_data_string_table"
	KindOverlays                    Kind = "overlays"
	KindLeafMinDistToWater          Kind = "leaf_min_dist_to_water"
	KindFaceMacroTextureInfo        Kind = "face_macro_texture_info"
	KindDispTris                    Kind = "disp_tris"
	KindLeafAmbientIndexHDR         Kind = "leaf_ambient_index_hdr"
	KindLeafAmbientIndex            Kind = "leaf_ambient_index"
	KindLightingHDR                 Kind = "lighting_hdr"
	KindLeafAmbientLightingHDR      Kind = "leaf_ambient_lighting_hdr"
	KindLeafAmbientLighting         Kind = "leaf_ambient_lighting"
	KindFacesHDR                    Kind = "faces_hdr"
	KindMipTextures                 Kind = "mip_textures"
	KindLegacyNodes                 Kind = "legacy_nodes"
	KindLegacyTexInfos              Kind = "legacy_tex_info"
	KindLegacyFaces                 Kind = "legacy_faces"
	KindClipNodes                   Kind = "clip_nodes"
	KindLegacyLeafs                 Kind = "legacy_leafs"
	KindMarkSurfaces                Kind = "mark_surfaces"
	KindLegacyModels                Kind = "legacy_models"
)

func (Entities) Kind() Kind { return KindEntities }
func (Planes) Kind() Kind { return KindPlanes }
func (TexDataLump) Kind() Kind { return KindTexDataLump }
func (Vertexes) Kind() Kind { return KindVertexes }
func (Visibility) Kind() Kind { return KindVisibility }
func (Nodes) Kind() Kind { return KindNodes }
func (TexInfos) Kind() Kind { return KindTexInfos }
func (Faces) Kind() Kind { return KindFaces }
func (Lighting) Kind() Kind { return KindLighting }
func (Occlusion) Kind() Kind { return KindOcclusion }
func (Leafs) Kind() Kind { return KindLeafs }
func (FaceIDs) Kind() Kind { return KindFaceIDs }
func (Edges) Kind() Kind { return KindEdges }
func (SurfEdges) Kind() Kind { return KindSurfEdges }
func (Models) Kind() Kind { return KindModels }
func (LeafFaces) Kind() Kind { return KindLeafFaces }
func (LeafBrushes) Kind() Kind { return KindLeafBrushes }
func (Brushes) Kind() Kind { return KindBrushes }
func (BrushSides) Kind() Kind { return KindBrushSides }
func (Areas) Kind() Kind { return KindAreas }
func (AreaPortals) Kind() Kind { return KindAreaPortals }
func (DispInfos) Kind() Kind { return KindDispInfos }
func (OriginalFaces) Kind() Kind { return KindOriginalFaces }
func (PhysDisp) Kind() Kind { return KindPhysDisp }
func (PhysCollide) Kind() Kind { return KindPhysCollide }
func (VertNormals) Kind() Kind { return KindVertNormals }
func (VertNormalIndices) Kind() Kind { return KindVertNormalIndices }
func (DispVerts) Kind() Kind { return KindDispVerts }
func (DispLightmapSamplePositions) Kind() Kind { return KindDispLightmapSamplePositions }
func (GameLump) Kind() Kind { return KindGameLump }
func (Primitives) Kind() Kind { return KindPrimitives }
func (PrimVerts) Kind() Kind { return KindPrimVerts }
func (PrimIndices) Kind() Kind { return KindPrimIndices }
func (PakFile) Kind() Kind { return KindPakFile }
func (ClipPortalVerts) Kind() Kind { return KindClipPortalVerts }
func (Cubemaps) Kind() Kind { return KindCubemaps }
func (TexDataStringData) Kind() Kind { return KindTexDataStringData }
func (TexDataStringTable) Kind() Kind { return KindTexDataStringTable }
func (Overlays) Kind() Kind { return KindOverlays }
func (LeafMinDistToWater) Kind() Kind { return KindLeafMinDistToWater }
func (FaceMacroTextureInfo) Kind() Kind { return KindFaceMacroTextureInfo }
func (DispTris) Kind() Kind { return KindDispTris }
func (LeafAmbientIndexHDR) Kind() Kind { return KindLeafAmbientIndexHDR }
func (LeafAmbientIndex) Kind() Kind { return KindLeafAmbientIndex }
func (LightingHDR) Kind() Kind { return KindLightingHDR }
func (LeafAmbientLightingHDR) Kind() Kind { return KindLeafAmbientLightingHDR }
func (LeafAmbientLighting) Kind() Kind { return KindLeafAmbientLighting }
func (FacesHDR) Kind() Kind { return KindFacesHDR }
func (MipTextures) Kind() Kind { return KindMipTextures }
func (LegacyNodes) Kind() Kind { return KindLegacyNodes }
func (LegacyTexInfos) Kind() Kind { return KindLegacyTexInfos }
func (LegacyFaces) Kind() Kind { return KindLegacyFaces }
func (ClipNodes) Kind() Kind { return KindClipNodes }
func (LegacyLeafs) Kind() Kind { return KindLegacyLeafs }
func (MarkSurfaces) Kind() Kind { return KindMarkSurfaces }
func (LegacyModels) Kind() Kind { return KindLegacyModels }

func (Entities) isLump() {}
func (Planes) isLump() {}
func (TexDataLump) isLump() {}
func (Vertexes) isLump() {}
func (Visibility) isLump() {}
func (Nodes) isLump() {}
func (TexInfos) isLump() {}
func (Faces) isLump() {}
func (Lighting) isLump() {}
func (Occlusion) isLump() {}
func (Leafs) isLump() {}
func (FaceIDs) isLump() {}
func (Edges) isLump() {}
func (SurfEdges) isLump() {}
func (Models) isLump() {}
func (LeafFaces) isLump() {}
func (LeafBrushes) isLump() {}
func (Brushes) isLump() {}
func (BrushSides) isLump() {}
func (Areas) isLump() {}
func (AreaPortals) isLump() {}
func (DispInfos) isLump() {}
func (OriginalFaces) isLump() {}
func (PhysDisp) isLump() {}
func (PhysCollide) isLump() {}
func (VertNormals) isLump() {}
func (VertNormalIndices) isLump() {}
func (DispVerts) isLump() {}
func (DispLightmapSamplePositions) isLump() {}
func (GameLump) isLump() {}
func (Primitives) isLump() {}
func (PrimVerts) isLump() {}
func (PrimIndices) isLump() {}
func (PakFile) isLump() {}
func (ClipPortalVerts) isLump() {}
func (Cubemaps) isLump() {}
func (TexDataStringData) isLump() {}
func (TexDataStringTable) isLump() {}
func (Overlays) isLump() {}
func (LeafMinDistToWater) isLump() {}
func (FaceMacroTextureInfo) isLump() {}
func (DispTris) isLump() {}
func (LeafAmbientIndexHDR) isLump() {}
func (LeafAmbientIndex) isLump() {}
func (LightingHDR) isLump() {}
func (LeafAmbientLightingHDR) isLump() {}
func (LeafAmbientLighting) isLump() {}
func (FacesHDR) isLump() {}
func (MipTextures) isLump() {}
func (LegacyNodes) isLump() {}
func (LegacyTexInfos) isLump() {}
func (LegacyFaces) isLump() {}
func (ClipNodes) isLump() {}
func (LegacyLeafs) isLump() {}
func (MarkSurfaces) isLump() {}
func (LegacyModels) isLump() {}

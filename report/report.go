// Package report renders a decoded BSP document as indented plain text.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"bsp-dump/bsp/bdoc"
	"bsp-dump/bsp/bgame"
	"bsp-dump/bsp/bheader"
	"bsp-dump/bsp/blump"
	"bsp-dump/bsp/bphys"
	"bsp-dump/bsp/bvis"
	"bsp-dump/ds"
	"bsp-dump/pakfile"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	Generator = "bsp-dump"
	Version   = "0.1.0"

	EmptyLump       = "lump is empty"
	ClustersPerLine = 16
)

type (
	// printer writes raw values the way they are stored. Only the summary
	// counts in parentheses go through the localized number printer.
	printer struct {
		printer *message.Printer
		builder *strings.Builder
	}
)

func newPrinter() printer {
	return printer{
		printer: message.NewPrinter(language.English),
		builder: &strings.Builder{},
	}
}

func (p printer) line(depth int, format string, args ...any) {
	p.builder.WriteString(strings.Repeat("\t", depth))
	p.builder.WriteString(fmt.Sprintf(format, args...))
	p.builder.WriteByte('\n')
}

// count formats n with digit grouping, 12345 becomes 12,345.
func (p printer) count(n int) string {
	return p.printer.Sprintf("%d", n)
}

func (p printer) String() string {
	return p.builder.String()
}

// Render returns the full text report of document. name is the file name
// printed in the preamble.
func Render(name string, document bdoc.Document) (string, error) {
	p := newPrinter()
	p.line(0, "generated by %s %s", Generator, Version)
	p.line(0, "file name: %s", name)
	p.line(0, "")

	writeHeader(p, document.Header)

	p.line(0, "====lumps====")
	for index, lump := range document.Lumps {
		p.line(0, "")
		if err := writeSection(p, document.Header.Dialect, index, lump); err != nil {
			err := errors.Wrapf(err, "report.Render error writing lump %d", index)
			return "", err
		}
	}
	return p.String(), nil
}

// RenderLump returns the section of a single lump, title included.
func RenderLump(dialect bheader.Dialect, index int, lump blump.Lump) (string, error) {
	p := newPrinter()
	if err := writeSection(p, dialect, index, lump); err != nil {
		return "", err
	}
	return p.String(), nil
}

func writeSection(p printer, dialect bheader.Dialect, index int, lump blump.Lump) error {
	p.line(0, "%s (index %d)", blump.Name(dialect, index), index)
	return writeLump(p, lump)
}

func Write(w io.Writer, name string, document bdoc.Document) error {
	text, err := Render(name, document)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, text)
	return err
}

func writeHeader(p printer, header bheader.Header) {
	p.line(0, "====header====")
	p.line(0, "")
	p.line(0, "dialect: %s", header.Dialect)
	p.line(0, "bsp version: %d", header.Version)
	if header.Dialect == bheader.DialectVBSP {
		p.line(0, "map revision: %d", header.MapRevision)
	}
	p.line(0, "")

	for _, entry := range header.Lumps {
		p.line(0, "lump %d info:", entry.Index)
		p.line(1, "file offset: %d bytes", entry.Offset)
		p.line(1, "length: %d bytes (%s)", entry.Length, humanize.Bytes(uint64(entry.Length)))
		if header.Dialect == bheader.DialectVBSP {
			p.line(1, "version: %d", entry.Version)
			p.line(1, "ident: %q", string(entry.Ident))
		}
		p.line(0, "")
	}
}

func writeRecords[T any](p printer, prefix string, records []T) {
	if len(records) == 0 {
		p.line(1, EmptyLump)
		return
	}
	for i, record := range records {
		p.line(1, "[%s%d] %+v", prefix, i, record)
	}
}

func writeLump(p printer, lump blump.Lump) error {
	switch lump := lump.(type) {
	case blump.Unparsed:
		p.line(1, "not parsed: %d bytes at offset %d", lump.Length, lump.Offset)
	case blump.Entities:
		writeEntities(p, lump)
	case blump.Planes:
		writePlanes(p, lump)
	case blump.TexDataLump:
		writeRecords(p, "tdata", lump)
	case blump.Vertexes:
		writeRecords(p, "vtx", lump)
	case blump.Visibility:
		writeVisibility(p, lump)
	case blump.Nodes:
		writeRecords(p, "node", lump)
	case blump.TexInfos:
		writeTexInfos(p, lump)
	case blump.Faces:
		writeRecords(p, "face", lump)
	case blump.Lighting:
		writeLighting(p, lump)
	case blump.Occlusion:
		writeOcclusion(p, lump)
	case blump.Leafs:
		writeLeafs(p, lump)
	case blump.FaceIDs:
		writeRecords(p, "fid", lump)
	case blump.Edges:
		writeRecords(p, "edge", lump)
	case blump.SurfEdges:
		writeRecords(p, "sedge", lump)
	case blump.Models:
		writeRecords(p, "mdl", lump)
	case blump.LeafFaces:
		writeRecords(p, "lface", lump)
	case blump.LeafBrushes:
		writeRecords(p, "lbrush", lump)
	case blump.Brushes:
		writeBrushes(p, lump)
	case blump.BrushSides:
		writeRecords(p, "bside", lump)
	case blump.Areas:
		writeRecords(p, "area", lump)
	case blump.AreaPortals:
		writeRecords(p, "aportal", lump)
	case blump.DispInfos:
		writeRecords(p, "dinfo", lump)
	case blump.OriginalFaces:
		writeRecords(p, "oface", lump)
	case blump.PhysDisp:
		writeRecords(p, "pdisp", lump)
	case blump.PhysCollide:
		writePhysCollide(p, lump)
	case blump.VertNormals:
		writeRecords(p, "vnorm", lump)
	case blump.VertNormalIndices:
		writeRecords(p, "vnormidx", lump)
	case blump.DispVerts:
		writeRecords(p, "dvert", lump)
	case blump.DispLightmapSamplePositions:
		writeRecords(p, "dlsp", lump)
	case blump.GameLump:
		writeGameLump(p, lump)
	case blump.Primitives:
		writeRecords(p, "prim", lump)
	case blump.PrimVerts:
		writeRecords(p, "pvert", lump)
	case blump.PrimIndices:
		writeRecords(p, "pidx", lump)
	case blump.PakFile:
		writePakFile(p, lump)
	case blump.ClipPortalVerts:
		writeRecords(p, "cpvert", lump)
	case blump.Cubemaps:
		writeRecords(p, "cube", lump)
	case blump.TexDataStringData:
		writeTexDataStringData(p, lump)
	case blump.TexDataStringTable:
		writeRecords(p, "tdst", lump)
	case blump.Overlays:
		writeRecords(p, "ovl", lump)
	case blump.LeafMinDistToWater:
		writeRecords(p, "lmdw", lump)
	case blump.FaceMacroTextureInfo:
		writeRecords(p, "fmti", lump)
	case blump.DispTris:
		writeDispTris(p, lump)
	case blump.LeafAmbientIndexHDR:
		writeRecords(p, "laih", lump)
	case blump.LeafAmbientIndex:
		writeRecords(p, "lai", lump)
	case blump.LightingHDR:
		writeLighting(p, blump.Lighting(lump))
	case blump.LeafAmbientLightingHDR:
		writeRecords(p, "lalh", lump)
	case blump.LeafAmbientLighting:
		writeRecords(p, "lal", lump)
	case blump.FacesHDR:
		writeRecords(p, "hface", lump)
	case blump.MipTextures:
		writeMipTextures(p, lump)
	case blump.LegacyNodes:
		writeRecords(p, "node", lump)
	case blump.LegacyTexInfos:
		writeRecords(p, "tinfo", lump)
	case blump.LegacyFaces:
		writeRecords(p, "face", lump)
	case blump.ClipNodes:
		writeRecords(p, "cnode", lump)
	case blump.LegacyLeafs:
		writeLegacyLeafs(p, lump)
	case blump.MarkSurfaces:
		writeRecords(p, "msurf", lump)
	case blump.LegacyModels:
		writeRecords(p, "mdl", lump)
	default:
		return ds.ErrUnreachableCode{Caller: "report.writeLump", Value: lump}
	}
	return nil
}

func writeEntities(p printer, entities blump.Entities) {
	if len(entities) == 0 {
		p.line(1, EmptyLump)
		return
	}
	for i, entity := range entities {
		p.line(1, "[ent%d]", i)
		for _, pair := range entity.Pairs {
			p.line(2, "%s: %s", pair.Key, pair.Value)
		}
	}
}

func writePlanes(p printer, planes blump.Planes) {
	if len(planes) == 0 {
		p.line(1, EmptyLump)
		return
	}
	for i, plane := range planes {
		p.line(1, "[pln%d]", i)
		p.line(2, "normal: %v", plane.Normal)
		p.line(2, "dist: %v", plane.Dist)
		p.line(2, "type: %d", plane.Type)
	}
}

func writeClusters(p printer, label string, clusters []int) {
	if len(clusters) == 0 {
		p.line(3, "%s: none", label)
		return
	}
	p.line(3, "%s:", label)
	for _, chunk := range ds.MakeChunks(clusters, ClustersPerLine) {
		p.line(4, "%s", strings.Join(lo.Map(chunk, func(c int, _ int) string { return strconv.Itoa(c) }), " "))
	}
}

func writeVisibility(p printer, visibility blump.Visibility) {
	p.line(1, "num_clusters: %d", visibility.NumClusters)
	p.line(1, "overruns: %d", visibility.Overruns)
	p.line(1, "byte_offsets:")
	for i, offsets := range visibility.ByteOffsets {
		p.line(2, "[%d] PVS: %d, PAS: %d", i, offsets[bvis.SetVisible], offsets[bvis.SetAudible])
	}
	p.line(1, "data:")
	for cluster := 0; cluster < int(visibility.NumClusters); cluster++ {
		p.line(2, "[cluster%d]", cluster)
		writeClusters(p, "visible", visibility.Visible(cluster))
		writeClusters(p, "audible", visibility.Audible(cluster))
	}
}

func writeTexInfos(p printer, texInfos blump.TexInfos) {
	if len(texInfos) == 0 {
		p.line(1, EmptyLump)
		return
	}
	for i, texInfo := range texInfos {
		p.line(1, "[tinfo%d]", i)
		p.line(2, "texture_vecs: %v", texInfo.TextureVecs)
		p.line(2, "lightmap_vecs: %v", texInfo.LightmapVecs)
		p.line(2, "flags: %s", strings.Join(blump.FlagNames(uint32(texInfo.Flags), blump.SurfaceFlags), " | "))
		p.line(2, "tex_data: %d", texInfo.TexData)
	}
}

func writeLighting(p printer, lighting blump.Lighting) {
	if len(lighting) == 0 {
		p.line(1, EmptyLump)
		return
	}
	for i, color := range lighting {
		p.line(1, "[light%d] r, g, b, exp: %d, %d, %d, %d", i, color.R, color.G, color.B, color.Exponent)
	}
}

func writeOcclusion(p printer, occlusion blump.Occlusion) {
	p.line(1, "occluder_data (%s entries)", p.count(len(occlusion.Data)))
	for i, data := range occlusion.Data {
		p.line(2, "[occdata%d]", i)
		p.line(3, "flags: %d", data.Flags)
		p.line(3, "first_poly: %d", data.FirstPoly)
		p.line(3, "poly_count: %d", data.PolyCount)
		p.line(3, "mins: %v", data.Mins)
		p.line(3, "maxs: %v", data.Maxs)
		p.line(3, "area: %d", data.Area)
	}
	p.line(1, "poly_data (%s entries)", p.count(len(occlusion.Polys)))
	for i, poly := range occlusion.Polys {
		p.line(2, "[polydata%d]", i)
		p.line(3, "first_vertex_index: %d", poly.FirstVertexIndex)
		p.line(3, "vertex_count: %d", poly.VertexCount)
		p.line(3, "plane_num: %d", poly.PlaneNum)
	}
	p.line(1, "vertex_indices (%s entries)", p.count(len(occlusion.VertexIndices)))
	if len(occlusion.VertexIndices) > 0 {
		p.line(2, "%v", occlusion.VertexIndices)
	}
}

func writeLeafs(p printer, leafs blump.Leafs) {
	if len(leafs) == 0 {
		p.line(1, EmptyLump)
		return
	}
	for i, leaf := range leafs {
		p.line(1, "[leaf%d]", i)
		p.line(2, "contents: %s", strings.Join(blump.FlagNames(uint32(leaf.Contents), blump.ContentsFlags), " | "))
		p.line(2, "cluster: %d", leaf.Cluster)
		p.line(2, "area_flags: %d", leaf.AreaFlags)
		p.line(2, "mins: %v", leaf.Mins)
		p.line(2, "maxs: %v", leaf.Maxs)
		p.line(2, "first_leaf_face, num_leaf_faces: %d, %d", leaf.FirstLeafFace, leaf.NumLeafFaces)
		p.line(2, "first_leaf_brush, num_leaf_brushes: %d, %d", leaf.FirstLeafBrush, leaf.NumLeafBrushes)
		p.line(2, "in_water: %d", leaf.InWater)
		if leaf.AmbientLighting != nil {
			p.line(2, "ambient_lighting: %v", *leaf.AmbientLighting)
		}
	}
}

func writeBrushes(p printer, brushes blump.Brushes) {
	if len(brushes) == 0 {
		p.line(1, EmptyLump)
		return
	}
	for i, brush := range brushes {
		p.line(1, "[brush%d]", i)
		p.line(2, "first_side, num_sides: %d, %d", brush.FirstSide, brush.NumSides)
		p.line(2, "contents: %s", strings.Join(blump.FlagNames(uint32(brush.Contents), blump.ContentsFlags), " | "))
	}
}

func writePhysCollide(p printer, models blump.PhysCollide) {
	if len(models) == 0 {
		p.line(1, EmptyLump)
		return
	}
	for _, model := range models {
		p.line(1, "[model%d]", model.ModelIndex)
		p.line(2, "data_size: %d", model.DataSize)
		p.line(2, "key_data_size: %d", model.KeyDataSize)
		p.line(2, "solid_count: %d", model.SolidCount)
		for i, solid := range model.Solids {
			p.line(2, "[solid%d]", i)
			p.line(3, "size: %d", solid.Header.Size)
			p.line(3, "id: %d", solid.Header.ID)
			p.line(3, "version: %d", solid.Header.Version)
			p.line(3, "model_type: %d", solid.Header.ModelType)
			switch header := solid.SurfaceHeader.(type) {
			case bphys.CompactSurfaceHeader:
				p.line(3, "compact surface: %d bytes", header.SurfaceSize)
				p.line(3, "drag_axis_areas: %v", header.DragAxisAreas)
				p.line(3, "axis_map_size: %d", header.AxisMapSize)
			case bphys.MoppSurfaceHeader:
				p.line(3, "mopp surface: %d bytes", header.Size)
			case bphys.UnknownSurfaceHeader:
				p.line(3, "unknown surface type %d: %d bytes", header.ModelType, header.Size)
			}
		}
		for _, object := range model.KeyData {
			p.line(2, "%s", object.Name)
			for _, pair := range object.Pairs {
				p.line(3, "%s: %s", pair.Key, pair.Value)
			}
		}
	}
}

func writeGameLump(p printer, gameLump blump.GameLump) {
	p.line(1, "sub-lumps (%s entries)", p.count(len(gameLump.Descriptors)))
	for i, descriptor := range gameLump.Descriptors {
		p.line(2, "[%s] version %d, flags %d, %d bytes at offset %d",
			descriptor.Tag(), descriptor.Version, descriptor.Flags, descriptor.FileLength, descriptor.FileOffset)
		if i >= len(gameLump.Data) {
			continue
		}
		switch data := gameLump.Data[i].(type) {
		case bgame.StaticProps:
			p.line(3, "dictionary (%s entries)", p.count(len(data.Dictionary)))
			for j, name := range data.Dictionary {
				p.line(4, "[%d] %s", j, name)
			}
			p.line(3, "leaves: %v", data.Leaves)
			p.line(3, "instances: %d", data.InstanceCount)
		case bgame.Unparsed:
			p.line(3, "not parsed")
		}
	}
}

func writePakFile(p printer, pakFile blump.PakFile) {
	if len(pakFile) == 0 {
		p.line(1, EmptyLump)
		return
	}
	p.line(1, "zip archive: %s", humanize.Bytes(uint64(len(pakFile))))
	files, err := pakfile.List(pakFile)
	if err != nil {
		p.line(1, "unreadable archive: %v", err)
		return
	}
	p.line(1, "files (%s entries)", p.count(len(files)))
	for _, file := range files {
		p.line(2, "%s (%s)", file.Name, humanize.Bytes(file.UncompressedSize))
	}
}

func writeTexDataStringData(p printer, names blump.TexDataStringData) {
	if len(names) == 0 {
		p.line(1, EmptyLump)
		return
	}
	for _, name := range names {
		p.line(1, "[%d] %s", name.Offset, name.Value)
	}
}

func writeDispTris(p printer, tris blump.DispTris) {
	if len(tris) == 0 {
		p.line(1, EmptyLump)
		return
	}
	for i, flags := range tris {
		p.line(1, "[dtri%d] %s", i, strings.Join(blump.FlagNames(uint32(flags), blump.DispTriFlags), " | "))
	}
}

func writeMipTextures(p printer, textures blump.MipTextures) {
	if len(textures) == 0 {
		p.line(1, EmptyLump)
		return
	}
	for i, texture := range textures {
		if texture.Missing {
			p.line(1, "[tex%d] missing", i)
			continue
		}
		p.line(1, "[tex%d] %s %dx%d", i, texture.Name, texture.Width, texture.Height)
	}
}

func writeLegacyLeafs(p printer, leafs blump.LegacyLeafs) {
	if len(leafs) == 0 {
		p.line(1, EmptyLump)
		return
	}
	for i, leaf := range leafs {
		p.line(1, "[leaf%d]", i)
		p.line(2, "contents: %s", blump.LegacyContentsName(leaf.Contents))
		p.line(2, "vis_offset: %d", leaf.VisOffset)
		p.line(2, "mins: %v", leaf.Mins)
		p.line(2, "maxs: %v", leaf.Maxs)
		p.line(2, "first_mark_surface, num_mark_surfaces: %d, %d", leaf.FirstMarkSurface, leaf.NumMarkSurfaces)
		p.line(2, "ambient_levels: %v", leaf.AmbientLevels)
	}
}

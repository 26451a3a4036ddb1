package report

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"bsp-dump/bsp"
	"bsp-dump/bsp/bdoc"
	"bsp-dump/bsp/bheader"
	"bsp-dump/bsp/blump"
	"bsp-dump/bsp/bsptest"
	"bsp-dump/ds"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, bs []byte) bdoc.Document {
	document, err := bsp.Decode(bs)
	require.NoError(t, err)
	return *document
}

func TestRender_VBSP(t *testing.T) {
	document := decode(t, bsptest.SampleVBSP().Build())
	text, err := Render("sample.bsp", document)
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(text, "generated by bsp-dump 0.1.0\nfile name: sample.bsp\n"))
	require.Less(t, strings.Index(text, "====header===="), strings.Index(text, "====lumps===="))
	require.Contains(t, text, "dialect: vbsp")
	require.Contains(t, text, "map revision: 7")
	require.Contains(t, text, "lump 63 info:")

	lo.ForEach(
		ds.MakeRange(0, bheader.LumpCountVBSP, 1),
		func(index int, _ int) {
			section := fmt.Sprintf("\n%s (index %d)\n", blump.Name(bheader.DialectVBSP, index), index)
			require.Contains(t, text, section)
		},
	)

	expected := []string{
		"\t[ent1]\n\t\tclassname: light\n\t\t_light: 255 255 255 200\n",
		"\t[pln1]\n\t\tnormal: (1, 0, 0)\n\t\tdist: 64\n",
		"LUMP_TEXDATA (index 2)\n\tlump is empty\n",
		"\tnum_clusters: 2\n",
		"\t\t[cluster1]\n\t\t\tvisible:\n\t\t\t\t0 1\n",
		"\t\tcontents: EMPTY\n",
		"\tnot parsed: 88 bytes",
		"\t\t[sprp] version 10, flags 0",
		"\t\t\t\t[0] " + bsptest.SamplePropModel + "\n",
		"\t\t[ddrp] version 4",
		"\tfiles (0 entries)\n",
		"\t[18] DEV/DEV_MEASUREGENERIC01\n",
	}
	for _, s := range expected {
		require.Contains(t, text, s)
	}
}

func TestRender_GoldSrc(t *testing.T) {
	document := decode(t, bsptest.SampleGoldSrc().Build())
	text, err := Render("legacy.bsp", document)
	require.NoError(t, err)

	require.Contains(t, text, "dialect: goldsrc")
	require.NotContains(t, text, "map revision")
	require.NotContains(t, text, "ident:")
	require.Contains(t, text, "lump 14 info:")
	require.NotContains(t, text, "lump 15 info:")
	require.Contains(t, text, "\t[tex0] +0button 16x16\n")
	require.Contains(t, text, "\t[tex1] missing\n")
}

func TestWrite(t *testing.T) {
	document := decode(t, bsptest.SampleGoldSrc().Build())
	text, err := Render("legacy.bsp", document)
	require.NoError(t, err)

	buffer := bytes.Buffer{}
	require.NoError(t, Write(&buffer, "legacy.bsp", document))
	require.Equal(t, text, buffer.String())
}

func TestWriteLump_Unknown(t *testing.T) {
	err := writeLump(newPrinter(), nil)
	require.ErrorAs(t, err, &ds.ErrUnreachableCode{})
}

func TestWriteClusters(t *testing.T) {
	p := newPrinter()
	writeClusters(p, "visible", ds.MakeRange(0, ClustersPerLine+2, 1))
	writeClusters(p, "audible", nil)
	lines := strings.Split(strings.TrimSuffix(p.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	require.Equal(t, "\t\t\t\t16 17", lines[2])
	require.Equal(t, "\t\t\taudible: none", lines[3])
}

func TestRenderLump(t *testing.T) {
	document := decode(t, bsptest.SampleVBSP().Build())
	lump, ok := document.Lump(blump.LumpPakFile)
	require.True(t, ok)

	text, err := RenderLump(bheader.DialectVBSP, blump.LumpPakFile, lump)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(text, "LUMP_PAKFILE (index 40)\n"))
	require.Contains(t, text, "files (0 entries)")
}

func TestRender_PlainIntegers(t *testing.T) {
	builder := bsptest.SampleVBSP()
	text, err := Render("sample.bsp", decode(t, builder.Build()))
	require.NoError(t, err)

	offset := builder.OffsetOf(1)
	require.Greater(t, offset, 999)
	require.Contains(t, text, fmt.Sprintf("lump 1 info:\n\tfile offset: %d bytes\n", offset))
	require.NotContains(t, text, fmt.Sprintf("%d,%03d", offset/1000, offset%1000))
}

func TestPrinter_Count(t *testing.T) {
	p := newPrinter()
	require.Equal(t, "12,345", p.count(12345))
	require.Equal(t, "7", p.count(7))
}

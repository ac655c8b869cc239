package bgui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RangeyRover/AMS2-BGUI-Editor/internal/buf"
	"github.com/RangeyRover/AMS2-BGUI-Editor/internal/format"
	"github.com/RangeyRover/AMS2-BGUI-Editor/pkg/bgui"
	"github.com/RangeyRover/AMS2-BGUI-Editor/pkg/types"
)

// manifestBlock builds the zero-name record that carries the asset string
// table: marker, zero name length, string count, then the packed strings at
// a fixed distance from the marker.
func manifestBlock(values ...string) []byte {
	var b []byte
	b = append(b, format.Marker3...)
	b = append(b, 0x00)
	b = buf.AppendU32LE(b, uint32(len(values)))
	for len(b) < 64 {
		b = append(b, 0x00)
	}
	for _, v := range values {
		b = append(b, byte(len(v)))
		b = append(b, v...)
	}
	return b
}

func TestManifestStrings(t *testing.T) {
	head, err := format.EncodeHead(format.HeadSpec{
		MagicRaw:       format.MagicStandard,
		ContainerLabel: "FontSet",
		Prelude:        manifestBlock("font1", "atlas.dds"),
	})
	require.NoError(t, err)

	rec := mustRecord(t, 0, "Canvas", 0, "bg.dds", 0xFF000000)
	reg := format.EncodeRegister([]types.RegisterEntry{{ElementID: 0, ChildCount: 0}})

	data := append(append(head, rec...), reg...)
	f, err := bgui.Parse(data)
	require.NoError(t, err)

	require.Len(t, f.Manifest, 2)
	assert.Equal(t, "font1", f.Manifest[0].Value)
	assert.Equal(t, "atlas.dds", f.Manifest[1].Value)
	for _, m := range f.Manifest {
		assert.Equal(t, m.Value, string(data[m.Span.Offset:m.Span.End()]))
	}
}

func TestManifestAbsent(t *testing.T) {
	fx := defaultFixture(t)
	f, err := bgui.Parse(fx.data)
	require.NoError(t, err)
	assert.Empty(t, f.Manifest)
}

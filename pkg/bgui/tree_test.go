package bgui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RangeyRover/AMS2-BGUI-Editor/pkg/bgui"
	"github.com/RangeyRover/AMS2-BGUI-Editor/pkg/types"
)

func TestTreeStructure(t *testing.T) {
	fx := defaultFixture(t)
	f, err := bgui.Parse(fx.data)
	require.NoError(t, err)

	root := f.Tree()
	require.Nil(t, root.Entry)
	require.Len(t, root.Children, 1)

	panel := root.Children[0]
	assert.Equal(t, uint32(0), panel.Entry.ElementID)
	require.Len(t, panel.Children, 2)
	assert.Equal(t, "SpeedReadout", panel.Children[0].Element.Name)

	gear := panel.Children[1]
	assert.Equal(t, uint32(2), gear.Entry.ElementID)
	require.Len(t, gear.Children, 1)
	assert.Equal(t, uint32(3), gear.Children[0].Entry.ElementID)

	assert.Empty(t, f.Diagnostics())
}

func TestTreeTruncatedRegister(t *testing.T) {
	// Root claims five children but the register only carries three more
	// entries. The forest is built from what exists; one TREE diagnostic
	// records the shortfall.
	fx := buildFixture(t, [4]uint32{5, 0, 1, 0})
	f, err := bgui.Parse(fx.data)
	require.NoError(t, err)

	root := f.Tree()
	require.Len(t, root.Children, 1)
	panel := root.Children[0]
	assert.Len(t, panel.Children, 2, "only the available children are attached")

	require.Len(t, f.Diagnostics(), 1)
	d := f.Diagnostics()[0]
	assert.Equal(t, types.SevError, d.Severity)
	assert.Equal(t, types.StructTree, d.Structure)

	// Rebuilding must not duplicate the diagnostic.
	_ = f.Tree()
	assert.Len(t, f.Diagnostics(), 1)
}

func TestTreeByteRange(t *testing.T) {
	fx := defaultFixture(t)
	f, err := bgui.Parse(fx.data)
	require.NoError(t, err)

	root := f.Tree()
	panel := root.Children[0]

	span, ok := panel.ByteRange()
	require.True(t, ok)
	assert.Equal(t, fx.starts[0], span.Offset)
	assert.Equal(t, f.BodySpan.End(), span.End(), "root subtree covers the whole element body")

	gear := panel.Children[1]
	span, ok = gear.ByteRange()
	require.True(t, ok)
	assert.Equal(t, fx.starts[2], span.Offset)
	assert.Equal(t, f.BodySpan.End(), span.End())
}

func TestTreeRender(t *testing.T) {
	fx := defaultFixture(t)
	f, err := bgui.Parse(fx.data)
	require.NoError(t, err)

	out := f.Tree().Render()
	assert.Contains(t, out, "(root)")
	assert.Contains(t, out, "RootPanel [id=0]")
	assert.Contains(t, out, "├── SpeedReadout [id=1]")
	assert.Contains(t, out, "└── GearBox [id=2]")
	assert.Contains(t, out, "    └── GearDigit [id=3]")
}

package bgui

import (
	"github.com/RangeyRover/AMS2-BGUI-Editor/internal/buf"
	"github.com/RangeyRover/AMS2-BGUI-Editor/internal/format"
	"github.com/RangeyRover/AMS2-BGUI-Editor/pkg/types"
)

// Header is the parsed head section of a BGUI file. The prelude between the
// container label and the first element record is opaque and preserved
// verbatim. Editing any decoded field invalidates the preserved raw block,
// forcing a re-encode on the next Serialize.
type Header struct {
	MagicRaw       []byte // 4 bytes, preserved even when non-standard
	StandardMagic  bool
	SpritePresent  bool
	SpritePath     string
	ContainerLabel string
	Prelude        []byte // opaque bytes after the label, preserved

	Span           types.Span // the whole head block
	SpritePathSpan types.Span
	LabelSpan      types.Span

	raw   []byte // verbatim head block for byte-identical round trips
	dirty bool
	owner *File
}

// SetSpritePath replaces the sprite path and flags the head for re-encoding.
// An empty path clears the sprite block entirely.
func (h *Header) SetSpritePath(path string) {
	h.SpritePath = path
	h.SpritePresent = path != ""
	h.markDirty()
}

// SetContainerLabel replaces the container label.
func (h *Header) SetContainerLabel(label string) {
	h.ContainerLabel = label
	h.markDirty()
}

func (h *Header) markDirty() {
	h.dirty = true
	h.raw = nil
}

// Element is one named, positioned entity in the layout. Every decoded field
// keeps the byte position it was read from so a presentation layer can
// highlight it. RawBytes is the round-trip source of truth: as long as the
// element is untouched, Serialize emits it verbatim.
type Element struct {
	ID       uint32
	Kind     types.ElementKind
	Name     string
	NameHash uint32 // opaque pad/hash word after the name, preserved
	X        float32
	Y        float32
	Scale    float32
	Color    uint32 // packed 0xAARRGGBB, alpha implied 0xFF when absent
	Reserved []byte // fixed-size opaque block, preserved
	Resource string // possibly empty

	// ChildCount is the authoritative value from the register when the id is
	// known there, else the in-record duplicate.
	ChildCount uint32

	FileOffset int // record start (first opaque header byte)
	BodyOffset int // absolute offset of the id field
	ByteLen    int // FileOffset + ByteLen == end resolved by overlap detection

	NameSpan     types.Span
	ColorSpan    types.Span // zero when no color terminator was found
	ResourceSpan types.Span // zero when the record carries no resource

	raw       []byte // verbatim record span; nil once a field was edited
	rawHeader []byte // the 8 opaque bytes before the marker
	owner     *File
}

// Span returns the byte extent of the whole record.
func (e *Element) Span() types.Span {
	return types.Span{Offset: e.FileOffset, Length: e.ByteLen}
}

// IDField returns the element id with its byte position.
func (e *Element) IDField() (uint32, types.Span) {
	return e.ID, types.Span{Offset: e.BodyOffset + format.BodyIDOffset, Length: 4}
}

// XField returns the X position with its byte position.
func (e *Element) XField() (float32, types.Span) {
	return e.X, types.Span{Offset: e.BodyOffset + format.BodyXOffset, Length: 4}
}

// YField returns the Y position with its byte position.
func (e *Element) YField() (float32, types.Span) {
	return e.Y, types.Span{Offset: e.BodyOffset + format.BodyYOffset, Length: 4}
}

// ScaleField returns the scale with its byte position.
func (e *Element) ScaleField() (float32, types.Span) {
	return e.Scale, types.Span{Offset: e.BodyOffset + format.BodyScaleOffset, Length: 4}
}

// NameField returns the name with the position of its bytes.
func (e *Element) NameField() (string, types.Span) { return e.Name, e.NameSpan }

// ColorField returns the packed color with the position of the R byte.
// The span is zero-length when color decoding found no terminator.
func (e *Element) ColorField() (uint32, types.Span) { return e.Color, e.ColorSpan }

// ResourceField returns the resource path with the position of its first byte.
func (e *Element) ResourceField() (string, types.Span) { return e.Resource, e.ResourceSpan }

// Dirty reports whether the element was edited since parsing.
func (e *Element) Dirty() bool { return e.raw == nil }

// SetName replaces the element name.
func (e *Element) SetName(name string) {
	e.Name = name
	e.markDirty()
}

// SetPosition replaces the X/Y transform.
func (e *Element) SetPosition(x, y float32) {
	e.X = x
	e.Y = y
	e.markDirty()
}

// SetScale replaces the scale factor.
func (e *Element) SetScale(scale float32) {
	e.Scale = scale
	e.markDirty()
}

// SetColor replaces the packed 0xAARRGGBB color. When the decoded RGB bytes
// sit inside the preserved reserved block, they are patched in place so the
// re-encoded record decodes to the new color. RGB located beyond the reserved
// block is lost on re-encode; the canonical record shape does not carry it.
func (e *Element) SetColor(color uint32) {
	e.Color = color
	if e.ColorSpan.Valid() {
		idx := e.ColorSpan.Offset - (e.BodyOffset + format.BodyReservedOffset)
		if idx >= 0 && idx+3 <= len(e.Reserved) {
			e.Reserved[idx] = byte(color >> 16)
			e.Reserved[idx+1] = byte(color >> 8)
			e.Reserved[idx+2] = byte(color)
		}
	}
	e.markDirty()
}

// SetResource replaces the resource path. Re-encoding normalizes the resource
// sub-block to the canonical shape, so the edited record will not reproduce
// every historical header variant byte-for-byte.
func (e *Element) SetResource(resource string) {
	e.Resource = resource
	e.markDirty()
}

// markDirty clears the preserved raw span so the next Serialize re-encodes
// this record.
func (e *Element) markDirty() {
	e.raw = nil
	if e.owner != nil {
		e.owner.bodyDirty = true
	}
}

// ManifestString is one entry of the manifest record's string table.
type ManifestString struct {
	Value string
	Span  types.Span
}

// File owns the decoded model of one BGUI file plus the raw byte spans used
// for byte-identical round trips of untouched sections. All retained slices
// are copies; the buffer passed to Parse is not referenced afterwards, so
// concurrent readers of a File are safe. Writers must be serialized by the
// caller.
type File struct {
	Header   Header
	Elements []*Element
	Register []types.RegisterEntry
	Manifest []ManifestString

	BodySpan     types.Span // element records between head and register
	RegisterSpan types.Span // register block including its signature
	Size         int        // original file length

	rawBody       []byte
	rawRegister   []byte
	bodyDirty     bool
	registerDirty bool

	diags             []types.Diagnostic
	treeTruncatedSeen bool
	byID              map[uint32]*Element
}

// ElementByID resolves an element by id. When a well-formed file repeats an
// id (the format does not strictly forbid it), the first record wins.
func (f *File) ElementByID(id uint32) (*Element, bool) {
	e, ok := f.byID[id]
	return e, ok
}

// RegisterEntryByID returns the first register entry for id.
func (f *File) RegisterEntryByID(id uint32) (types.RegisterEntry, bool) {
	for _, entry := range f.Register {
		if entry.ElementID == id {
			return entry, true
		}
	}
	return types.RegisterEntry{}, false
}

// SetChildCount updates the child count of an element in both the register
// and the in-record duplicate. The register is re-encoded on the next
// Serialize.
func (f *File) SetChildCount(id uint32, count uint32) error {
	found := false
	for i := range f.Register {
		if f.Register[i].ElementID == id {
			f.Register[i].ChildCount = count
			found = true
			break
		}
	}
	if !found {
		return types.ErrNotFound
	}
	f.registerDirty = true
	if e, ok := f.byID[id]; ok {
		e.ChildCount = count
		if len(e.rawHeader) == format.RecordHeaderSize {
			buf.PutU32LE(e.rawHeader, format.HeadChildCountOffset, count)
		}
		e.markDirty()
	}
	return nil
}

// Diagnostics returns the issues absorbed while parsing and while building
// trees, in the order they were recorded.
func (f *File) Diagnostics() []types.Diagnostic { return f.diags }

func (f *File) addDiag(sev types.Severity, structure string, offset int, msg string) {
	f.diags = append(f.diags, types.Diagnostic{
		Severity:  sev,
		Structure: structure,
		Offset:    offset,
		Message:   msg,
	})
}

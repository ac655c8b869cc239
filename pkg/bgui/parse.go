package bgui

import (
	"fmt"

	"github.com/RangeyRover/AMS2-BGUI-Editor/internal/format"
	"github.com/RangeyRover/AMS2-BGUI-Editor/internal/mmfile"
	"github.com/RangeyRover/AMS2-BGUI-Editor/pkg/types"
)

// Parse decodes a BGUI buffer into a File. The register is located first; a
// file whose register cannot be found is unparseable and fails with
// ErrNoRegister. Everything else degrades: unknown magic, missing sprite
// markers, undecodable colors and resources become diagnostics on the
// returned File.
//
// All retained state is copied out of data, so the caller may reuse or unmap
// the buffer immediately.
func Parse(data []byte) (*File, error) {
	if len(data) < format.MagicSize+4 {
		return nil, types.ErrTruncatedFile
	}

	registerBody, ok := format.FindRegister(data)
	if !ok {
		return nil, types.ErrNoRegister
	}
	registerStart := format.RegisterBlockStart(data, registerBody)
	entries, _ := format.DecodeRegister(data, registerBody)

	ids := make(map[uint32]struct{}, len(entries))
	for _, e := range entries {
		ids[e.ElementID] = struct{}{}
	}
	inRegister := func(id uint32) bool {
		_, ok := ids[id]
		return ok
	}

	head, err := format.DecodeHead(data)
	if err != nil {
		return nil, &types.Error{Kind: types.ErrKindFormat, Msg: "decode head", Err: err}
	}
	// On degenerate files the heuristic locator can land inside the head
	// itself. A register overlapping the head is unusable.
	if registerStart < head.PreludeOffset {
		return nil, types.ErrNoRegister
	}

	f := &File{
		Register: entries,
		Size:     len(data),
		byID:     make(map[uint32]*Element),
	}
	if !head.StandardMagic {
		f.addDiag(types.SevWarning, types.StructHead, 0,
			fmt.Sprintf("unrecognized magic % X, decoding anyway", head.MagicRaw))
	}
	if head.SpriteMissing {
		f.addDiag(types.SevInfo, types.StructHead, head.SpritePathOffset,
			"sprite path present without trailing marker")
	}

	candidates := scanElements(data, head.PreludeOffset, registerStart, inRegister)

	headEnd := registerStart
	if len(candidates) > 0 {
		headEnd = candidates[0].Start
	}
	f.Header = Header{
		MagicRaw:       head.MagicRaw,
		StandardMagic:  head.StandardMagic,
		SpritePresent:  head.SpritePresent,
		SpritePath:     head.SpritePath,
		ContainerLabel: head.ContainerLabel,
		Prelude:        append([]byte(nil), data[head.PreludeOffset:headEnd]...),
		Span:           types.Span{Offset: 0, Length: headEnd},
		raw:            append([]byte(nil), data[:headEnd]...),
		owner:          f,
	}
	f.Header.LabelSpan = types.Span{Offset: head.LabelOffset, Length: len(head.ContainerLabel)}
	if head.SpritePresent {
		f.Header.SpritePathSpan = types.Span{Offset: head.SpritePathOffset, Length: len(head.SpritePath)}
	}

	for i, c := range candidates {
		extentEnd := registerStart
		if i+1 < len(candidates) {
			extentEnd = candidates[i+1].Start
		}
		f.Elements = append(f.Elements, buildElement(f, data, c, extentEnd))
	}
	for _, e := range f.Elements {
		if _, seen := f.byID[e.ID]; !seen {
			f.byID[e.ID] = e
		}
	}

	f.BodySpan = types.Span{Offset: headEnd, Length: registerStart - headEnd}
	f.RegisterSpan = types.Span{Offset: registerStart, Length: len(data) - registerStart}
	f.rawBody = append([]byte(nil), data[headEnd:registerStart]...)
	f.rawRegister = append([]byte(nil), data[registerStart:]...)

	f.Manifest = scanManifest(data, head.PreludeOffset, registerStart)

	return f, nil
}

// buildElement decodes one validated candidate into the model, attaching
// diagnostics for the heuristic fields that could not be resolved.
func buildElement(f *File, data []byte, c format.Candidate, extentEnd int) *Element {
	fields := format.DecodeFields(data, c)

	e := &Element{
		ID:         fields.ID,
		Kind:       c.Kind,
		Name:       string(data[c.NameOff : c.NameOff+c.NameLen]),
		NameHash:   fields.NameHash,
		X:          fields.X,
		Y:          fields.Y,
		Scale:      fields.Scale,
		Reserved:   fields.Reserved,
		ChildCount: fields.HeadChildCount,
		FileOffset: c.Start,
		BodyOffset: c.BodyOff,
		ByteLen:    extentEnd - c.Start,
		NameSpan:   types.Span{Offset: c.NameOff, Length: c.NameLen},
		raw:        append([]byte(nil), data[c.Start:extentEnd]...),
		rawHeader:  append([]byte(nil), data[c.Start:c.Start+format.RecordHeaderSize]...),
		owner:      f,
	}
	if entry, ok := f.RegisterEntryByID(e.ID); ok {
		e.ChildCount = entry.ChildCount
	}

	if color, rgbOff, ok := format.ExtractColor(data, c.BodyOff, extentEnd); ok {
		e.Color = color
		e.ColorSpan = types.Span{Offset: rgbOff, Length: 3}
	} else {
		f.addDiag(types.SevWarning, types.StructElement, c.Start,
			fmt.Sprintf("element %d: no color terminator in record", e.ID))
	}

	resource, resOff, tagged := format.ExtractResource(data, c.BodyOff, extentEnd)
	if tagged && resource == "" {
		f.addDiag(types.SevWarning, types.StructElement, c.Start,
			fmt.Sprintf("element %d: resource tag without a plausible string", e.ID))
	}
	if resource != "" {
		e.Resource = resource
		e.ResourceSpan = types.Span{Offset: resOff, Length: len(resource)}
	}

	declaredEnd := c.BodyOff + format.BodyResourceOffset + 4 + int(fields.ResourceOuter)
	if fields.ResourceOuter > 0 && declaredEnd > extentEnd {
		f.addDiag(types.SevInfo, types.StructElement, c.Start,
			fmt.Sprintf("element %d: declared resource block overruns the next record, clipped", e.ID))
	}
	return e
}

// ParseFile memory-maps path and parses it. The mapping is released before
// returning; the File owns copies of everything it needs.
func ParseFile(path string) (*File, error) {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return nil, &types.Error{Kind: types.ErrKindFormat, Msg: "open " + path, Err: err}
	}
	defer cleanup()
	return Parse(data)
}

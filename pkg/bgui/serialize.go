package bgui

import (
	"bytes"
	"os"

	"github.com/RangeyRover/AMS2-BGUI-Editor/internal/format"
	"github.com/RangeyRover/AMS2-BGUI-Editor/pkg/types"
)

// Serialize re-encodes the file. The three top-level blocks (head, element
// body, register) are emitted verbatim from their preserved bytes while
// untouched; an edit anywhere in a block switches that block, and only that
// block, to re-encoding. Parsing and serializing without edits is therefore
// byte-identical to the input.
func (f *File) Serialize() ([]byte, error) {
	var out bytes.Buffer
	out.Grow(f.Size)

	if !f.Header.dirty && f.Header.raw != nil {
		out.Write(f.Header.raw)
	} else {
		head, err := format.EncodeHead(format.HeadSpec{
			MagicRaw:       f.Header.MagicRaw,
			SpritePresent:  f.Header.SpritePresent,
			SpritePath:     f.Header.SpritePath,
			ContainerLabel: f.Header.ContainerLabel,
			Prelude:        f.Header.Prelude,
		})
		if err != nil {
			return nil, &types.Error{Kind: types.ErrKindState, Msg: "encode head", Err: err}
		}
		out.Write(head)
	}

	if !f.bodyDirty {
		out.Write(f.rawBody)
	} else {
		for _, e := range f.Elements {
			if e.raw != nil {
				out.Write(e.raw)
				continue
			}
			rec, err := format.EncodeRecord(format.RecordSpec{
				RawHeader: e.rawHeader,
				Kind:      e.Kind,
				Name:      e.Name,
				NameHash:  e.NameHash,
				ID:        e.ID,
				X:         e.X,
				Y:         e.Y,
				Scale:     e.Scale,
				Color:     e.Color,
				Reserved:  e.Reserved,
				Resource:  e.Resource,
			})
			if err != nil {
				return nil, &types.Error{Kind: types.ErrKindState, Msg: "encode element record", Err: err}
			}
			out.Write(rec)
		}
	}

	if !f.registerDirty {
		out.Write(f.rawRegister)
	} else {
		out.Write(format.EncodeRegister(f.Register))
	}

	return out.Bytes(), nil
}

// WriteFile serializes and writes the result to path.
func (f *File) WriteFile(path string) error {
	data, err := f.Serialize()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// RoundTripIdentical reports whether serializing reproduces original exactly.
// Useful as a self-check before editing a file in place.
func (f *File) RoundTripIdentical(original []byte) (bool, error) {
	data, err := f.Serialize()
	if err != nil {
		return false, err
	}
	return bytes.Equal(data, original), nil
}

// Package format houses low-level decoders for the BGUI layout container
// format. The goal is to keep the parsing focused, allocation-free where
// possible, and independent from the public API so higher-level packages can
// orchestrate the data in a more ergonomic form.
//
// The format has no authoritative grammar. Marker values recur incidentally
// inside resource blobs and padding, so every decoder here validates its
// candidate before accepting it and reports rejection instead of failing.
package format

var (
	// MagicStandard is the four-byte magic at the start of a standard BGUI file.
	MagicStandard = []byte{0x00, 0x00, 0x10, 0x40}

	// MagicAlternate is a second magic observed in the same version family.
	// Files carrying it decode identically.
	MagicAlternate = []byte{0x7B, 0x14, 0x0E, 0x40}

	// Marker3 and Marker4 are the two element record markers. The marker sits
	// RecordHeaderSize bytes into a record, after the opaque header words.
	Marker3 = []byte{0x03, 0x00, 0x00, 0x00}
	Marker4 = []byte{0x04, 0x00, 0x00, 0x00}

	// SpriteMarker terminates the optional sprite path block in the head.
	SpriteMarker = []byte{0x01, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00}

	// RegisterSignature precedes the flat register index: one tag byte
	// followed by thirteen zero bytes. The register body starts
	// RegisterSignatureSize bytes after the signature.
	RegisterSignature = []byte{
		0x0E,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}

	// ResourceTag opens the nested resource sub-block inside an element body.
	ResourceTag = []byte{0xBD, 0x00, 0x00, 0x00}

	// ColorTerminator is float32(1.0) little-endian. It terminates the
	// color-and-homogeneous-coordinate tuple; the three bytes before the last
	// occurrence inside a record are R, G, B.
	ColorTerminator = []byte{0x00, 0x00, 0x80, 0x3F}
)

// Element record layout. All integers little-endian.
//
//	Offset  Size  Field
//	0x00    8     Opaque header words (child-count duplicate at 0x04)
//	0x08    4     Marker (03 or 04)
//	0x0C    1     Name length
//	0x0D    n     Name (printable ASCII)
//	+0      4     Name hash / pad (opaque, preserved)
//	+4      ...   Body (offsets below are body-relative)
//
//	Body:
//	0x00    4     Element id
//	0x04    4     X position (f32)
//	0x08    4     Y position (f32)
//	0x0C    4     Scale (f32)
//	0x10    4     Color-bearing word (actual RGB located heuristically)
//	0x14    44    Reserved opaque block (preserved byte-for-byte)
//	0x40    4     Resource sub-block outer length
//	0x44    ...   Resource sub-block (tagged, variable-shape inner string)
const (
	MagicSize  = 4
	MarkerSize = 4

	// RecordHeaderSize is the count of opaque bytes preceding the marker.
	RecordHeaderSize = 8

	// HeadChildCountOffset is the record-header offset of the in-record
	// child-count duplicate. The register wins whenever it knows the id.
	HeadChildCountOffset = 4

	NameLenOffset = RecordHeaderSize + MarkerSize // 0x0C, relative to record start
	NameOffset    = NameLenOffset + 1             // 0x0D
	NameHashSize  = 4

	BodyIDOffset       = 0x00
	BodyXOffset        = 0x04
	BodyYOffset        = 0x08
	BodyScaleOffset    = 0x0C
	BodyColorOffset    = 0x10
	BodyReservedOffset = 0x14
	ReservedSize       = 44
	BodyResourceOffset = BodyReservedOffset + ReservedSize // 0x40
	BodyMinSize        = BodyResourceOffset + 4            // 0x44

	// ColorSearchSkip and ResourceSearchSkip keep the heuristic searches from
	// matching the fixed transform fields at the top of the body.
	ColorSearchSkip    = 20
	ResourceSearchSkip = 24

	// ResourceBlockCanonicalSize is the outer length written when a record is
	// re-encoded. Historical files carry several sub-header variants; edited
	// records are normalized to this single decodable shape.
	ResourceBlockCanonicalSize = 189
	// resource sub-block canonical inner layout: 5 flag bytes then the
	// length-prefixed string.
	ResourceFlagsSize = 5

	RegisterSignatureSize = 14
	RegisterEntrySize     = 8

	// Search windows for the two register location strategies. Bounded so a
	// scan never ranges into the element body.
	RegisterSigWindow  = 4096
	RegisterScanWindow = 8192
)

// Sanity limits. Candidates exceeding these are rejected, not errors.
const (
	MaxNameLen     = 100
	MaxElementID   = 50000
	MaxChildCount  = 100000
	MaxResourceLen = 200
	// MaxManifestStrings bounds the string-count word of the manifest record.
	MaxManifestStrings = 10000
)

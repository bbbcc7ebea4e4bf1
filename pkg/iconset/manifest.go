// Package iconset defines the fixed size manifest shared by all exporters.
//
// The manifest mirrors Apple's iconset naming convention: a 1x and 2x
// variant for each point size from 16 through 512, plus a canonical 1024
// entry. The same table drives the iconset directory, the canonical PNG,
// and (via ICOSizes) the Windows container, so every output format agrees
// on which resolutions exist.
package iconset

// CanonicalSize is the side of the primary icon.png.
const CanonicalSize = 1024

// DirName is the iconset directory consumed by the macOS icon compiler.
const DirName = "icon.iconset"

// Entry pairs a pixel size with its file name inside the iconset directory.
type Entry struct {
	Size int
	Name string
}

// Manifest is the ordered list of bitmaps every iconset must contain.
// The order is fixed so repeated runs touch files deterministically.
var Manifest = []Entry{
	{16, "icon_16x16.png"},
	{32, "icon_16x16@2x.png"},
	{32, "icon_32x32.png"},
	{64, "icon_32x32@2x.png"},
	{64, "icon_64x64.png"},
	{128, "icon_64x64@2x.png"},
	{128, "icon_128x128.png"},
	{256, "icon_128x128@2x.png"},
	{256, "icon_256x256.png"},
	{512, "icon_256x256@2x.png"},
	{512, "icon_512x512.png"},
	{1024, "icon_512x512@2x.png"},
	{1024, "icon_1024x1024.png"},
}

// ICOSizes are the resolutions embedded in the Windows container, smallest
// first so the 16px frame is the container's primary image.
var ICOSizes = []int{16, 32, 48, 64, 128, 256}

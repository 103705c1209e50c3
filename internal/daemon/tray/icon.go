package tray

// iconData is a 16x16 template PNG (black circle, alpha-masked) used for the
// tray icon on every platform.
var iconData = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x10, 0x00, 0x00, 0x00, 0x10,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0xf3, 0xff, 0x61, 0x00, 0x00, 0x00,
	0x5e, 0x49, 0x44, 0x41, 0x54, 0x78, 0xda, 0x63, 0x60, 0xa0, 0x01, 0x90,
	0x05, 0xe2, 0x0e, 0x20, 0xbe, 0x0c, 0xc4, 0xbf, 0xa0, 0xf8, 0x32, 0x54,
	0x4c, 0x96, 0x90, 0xe6, 0x14, 0xa8, 0x86, 0xff, 0x38, 0xf0, 0x2f, 0xa8,
	0x1a, 0x9c, 0x9a, 0xff, 0x13, 0x89, 0x53, 0xb0, 0x39, 0xfb, 0x17, 0x09,
	0x06, 0xfc, 0x42, 0xf7, 0x4e, 0x07, 0x09, 0x9a, 0x61, 0xb8, 0x03, 0xd9,
	0x80, 0xcb, 0x64, 0x18, 0x70, 0x19, 0xd9, 0x80, 0x5f, 0x64, 0x18, 0xf0,
	0x8b, 0xaa, 0x06, 0x50, 0xec, 0x05, 0x8a, 0x03, 0x91, 0xe2, 0x68, 0xa4,
	0x38, 0x21, 0x51, 0x25, 0x29, 0x53, 0x25, 0x33, 0x91, 0x0c, 0x00, 0x07,
	0x72, 0x9a, 0x05, 0x29, 0x5a, 0x82, 0x30, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

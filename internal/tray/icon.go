package tray

// defaultIcon 内置 16x16 PNG 占位图标（未提供图标时使用）
var defaultIcon = []byte{
	0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00, 0x00, 0x0D,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x10, 0x00, 0x00, 0x00, 0x10,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1F, 0xF3, 0xFF, 0x61, 0x00, 0x00, 0x00,
	0x01, 0x73, 0x52, 0x47, 0x42, 0x00, 0xAE, 0xCE, 0x1C, 0xE9, 0x00, 0x00,
	0x00, 0x44, 0x49, 0x44, 0x41, 0x54, 0x38, 0x4F, 0x63, 0x60, 0x18, 0x05,
	0xA3, 0x60, 0x14, 0x8C, 0x02, 0x08, 0x18, 0x19, 0x19, 0xFF, 0x63, 0x93,
	0x64, 0x64, 0x64, 0xFC, 0x0F, 0x00, 0xB2, 0x00, 0x00, 0x06, 0xDC, 0x01,
	0x3D, 0x4D, 0x9F, 0x2F, 0x08, 0x00, 0x00, 0x00, 0x00, 0x49, 0x45, 0x4E,
	0x44, 0xAE, 0x42, 0x60, 0x82,
}

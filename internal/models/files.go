package models

// Storage prefixes for uploaded files, one per purpose.
const (
	PrefixProfileImages = "profile_images"
	PrefixCVs           = "cvs"
	PrefixToolIcons     = "tool_icons"
	PrefixProjectImages = "project_images"
)

// ToolIconExtensions lists the file extensions accepted for tool icons.
var ToolIconExtensions = []string{"svg", "png", "jpg", "jpeg"}

// FileField is one file-bearing attribute of a record and the storage key it
// currently points at (empty when unset).
type FileField struct {
	Name string
	Path string
}

// FileOwner is implemented by records that own uploaded files.
type FileOwner interface {
	FileFields() []FileField
}

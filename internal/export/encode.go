package export

import (
	"fmt"
	"io"

	"github.com/bytedance/sonic"
	"github.com/vk/schoolregistry/internal/fsutil"
)

// DefaultPath is used when no export path is configured.
const DefaultPath = "sections.json"

// encoder keeps struct field order and leaves non-ASCII and HTML characters
// unescaped.
var encoder = sonic.Config{
	EscapeHTML:       false,
	CompactMarshaler: true,
	ValidateString:   true,
}.Froze()

// Marshal renders the views as indented JSON.
func Marshal(views []SectionView) ([]byte, error) {
	if views == nil {
		views = []SectionView{}
	}
	b, err := encoder.MarshalIndent(views, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode sections: %w", err)
	}
	return b, nil
}

// Encode writes the views to w as indented JSON.
func Encode(w io.Writer, views []SectionView) error {
	b, err := Marshal(views)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// WriteFile replaces the file at path with the encoded views. An empty path
// means DefaultPath.
func WriteFile(path string, views []SectionView) error {
	if path == "" {
		path = DefaultPath
	}
	b, err := Marshal(views)
	if err != nil {
		return err
	}
	if err := fsutil.WriteFileAtomic(path, b, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

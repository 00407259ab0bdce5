package export

import "fmt"

// Target is a tagged export destination: FileTarget or ClipboardTarget.
type Target interface {
	// Kind names the destination for logs.
	Kind() string
	target()
}

// FileTarget writes a PNG file at Path. No default path is assumed.
type FileTarget struct {
	Path string
}

func (FileTarget) Kind() string { return "file" }
func (FileTarget) target()      {}

func (t FileTarget) String() string { return fmt.Sprintf("file:%s", t.Path) }

// ClipboardTarget copies to the system clipboard using the Dispatcher's sink.
type ClipboardTarget struct{}

func (ClipboardTarget) Kind() string { return "clipboard" }
func (ClipboardTarget) target()      {}

func (ClipboardTarget) String() string { return "clipboard" }

// KindOf returns target's Kind without calling methods on typed nil
// pointers. Nil targets and nil *FileTarget report "unknown"; a nil
// *ClipboardTarget still routes to the clipboard.
func KindOf(target Target) string {
	switch t := target.(type) {
	case nil:
		return "unknown"
	case *FileTarget:
		if t == nil {
			return "unknown"
		}
	case *ClipboardTarget:
		return ClipboardTarget{}.Kind()
	}
	return target.Kind()
}

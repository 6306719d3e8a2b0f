package config

import (
	"os"
	"path/filepath"
)

// Layout is the watched filesystem tree rooted at DATA_DIR.
type Layout struct {
	Root       string
	Incoming   string
	Processed  string
	Library    string
	Errors     string
	ReviewTemp string
	Automation string
}

func NewLayout(root string) Layout {
	return Layout{
		Root:       root,
		Incoming:   filepath.Join(root, "incoming"),
		Processed:  filepath.Join(root, "processed"),
		Library:    filepath.Join(root, "library"),
		Errors:     filepath.Join(root, "errors"),
		ReviewTemp: filepath.Join(root, "review", "temp"),
		Automation: filepath.Join(root, "automation"),
	}
}

// Ensure creates every directory in the layout.
func (l Layout) Ensure() error {
	for _, dir := range l.Dirs() {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return nil
}

func (l Layout) Dirs() []string {
	return []string{l.Incoming, l.Processed, l.Library, l.Errors, l.ReviewTemp, l.Automation}
}

func (l Layout) QueueFile() string {
	return filepath.Join(l.Automation, "queue.json")
}

func (l Layout) ProgressFile() string {
	return filepath.Join(l.Automation, "progress.json")
}

func (l Layout) StopFile(name string) string {
	return filepath.Join(l.Automation, name)
}

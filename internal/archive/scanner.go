// Package archive discovers and loads Slack export directories: a root
// holding users.json, channels.json, and one subdirectory per channel of
// JSON day files.
package archive

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ChannelInfo is one discovered channel directory and its day files.
type ChannelInfo struct {
	Name  string
	Path  string
	Files []string
}

// ScanChannel lists a channel directory's JSON day files, sorted by name
// (day files are date-named, so this is chronological order).
func ScanChannel(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if filepath.Ext(e.Name()) != ".json" {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// ScanRoot discovers channels under an export root. A channel is any
// non-hidden subdirectory containing at least one .json file; metadata
// files at the root (users.json, channels.json) are not channels.
func ScanRoot(root string) ([]ChannelInfo, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}
	var channels []ChannelInfo
	for _, e := range entries {
		if !e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		dir := filepath.Join(root, e.Name())
		files, err := ScanChannel(dir)
		if err != nil {
			continue // skip unreadable dirs
		}
		if len(files) == 0 {
			continue
		}
		channels = append(channels, ChannelInfo{
			Name:  e.Name(),
			Path:  dir,
			Files: files,
		})
	}
	sort.Slice(channels, func(i, j int) bool { return channels[i].Name < channels[j].Name })
	return channels, nil
}

// UsersPath returns the conventional users.json location under a root.
func UsersPath(root string) string {
	return filepath.Join(root, "users.json")
}

// ChannelsPath returns the conventional channels.json location under a root.
func ChannelsPath(root string) string {
	return filepath.Join(root, "channels.json")
}

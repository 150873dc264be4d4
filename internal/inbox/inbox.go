// Package inbox manages the drop directory for exported notification dumps.
package inbox

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// inboxDir is the subdirectory messages are dropped into.
const inboxDir = "inbox"

// processedDir is where handled dumps are moved.
const processedDir = "inbox/processed"

// FileInfo describes a message dump awaiting parsing.
type FileInfo struct {
	Name string
	Path string
	Size int64
}

// Scan returns .txt files in <root>/inbox/.
func Scan(root string) ([]FileInfo, error) {
	dir := filepath.Join(root, inboxDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading inbox: %w", err)
	}

	var files []FileInfo
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !strings.HasSuffix(strings.ToLower(e.Name()), ".txt") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		files = append(files, FileInfo{
			Name: e.Name(),
			Path: filepath.Join(dir, e.Name()),
			Size: info.Size(),
		})
	}
	return files, nil
}

// MarkProcessed moves a file from inbox/ to inbox/processed/.
func MarkProcessed(root, fileName string) error {
	src := filepath.Join(root, inboxDir, fileName)
	dstDir := filepath.Join(root, processedDir)

	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return fmt.Errorf("creating processed dir: %w", err)
	}

	dst := filepath.Join(dstDir, fileName)
	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("moving %s to processed: %w", fileName, err)
	}
	return nil
}

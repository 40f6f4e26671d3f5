// Package inventory reads the upload layout written by the disk storage
// backend: uploads/<owner>/<id>.pdf.
package inventory

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/afero"
)

// Root is the directory uploads are stored under.
const Root = "uploads"

// Entry is one stored document.
type Entry struct {
	Owner    string    `json:"owner"`
	ID       string    `json:"id"`
	Path     string    `json:"path"`
	Size     int64     `json:"size"`
	Modified time.Time `json:"modified"`
}

// Scan lists the stored documents, newest first. A missing uploads directory
// yields no entries.
func Scan(afs afero.Fs) ([]Entry, error) {
	var entries []Entry

	err := afero.Walk(afs, Root, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !strings.HasSuffix(info.Name(), ".pdf") {
			return nil
		}

		rel := strings.TrimPrefix(path.Clean(strings.ReplaceAll(p, "\\", "/")), Root+"/")
		owner, name, ok := strings.Cut(rel, "/")
		if !ok || strings.Contains(name, "/") {
			return nil
		}

		entries = append(entries, Entry{
			Owner:    owner,
			ID:       strings.TrimSuffix(name, ".pdf"),
			Path:     path.Join(Root, rel),
			Size:     info.Size(),
			Modified: info.ModTime(),
		})
		return nil
	})
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to scan uploads: %w", err)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Modified.After(entries[j].Modified)
	})
	return entries, nil
}

// FilterOwner keeps the entries of owner.
func FilterOwner(entries []Entry, owner string) []Entry {
	var out []Entry
	for _, e := range entries {
		if e.Owner == owner {
			out = append(out, e)
		}
	}
	return out
}

// WriteTable writes entries as a human-readable table.
func WriteTable(w io.Writer, entries []Entry) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "OWNER\tID\tSIZE\tMODIFIED")
	fmt.Fprintln(tw, "-----\t--\t----\t--------")
	if len(entries) == 0 {
		fmt.Fprintln(tw, "No uploads found")
	}
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", e.Owner, e.ID, e.Size, e.Modified.Format(time.RFC3339))
	}
	return tw.Flush()
}

// WriteJSON writes entries as an indented JSON array.
func WriteJSON(w io.Writer, entries []Entry) error {
	if entries == nil {
		entries = []Entry{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}

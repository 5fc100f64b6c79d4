package stats

import (
	"net/url"
	"os"
	"path"
	"strings"
)

// File represents a file containing the population table.
// This is a CSV or Excel table, or a dataset snapshot written by Save.
type File struct {
	Source  string
	Content []byte
}

// OpenFile reads a local path or downloads an http(s) URL.
func OpenFile(source string) (*File, error) {
	f := &File{Source: source}

	var err error
	if isRemote(source) {
		f.Content, err = download(source)
	} else {
		f.Content, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Ext returns the lower-cased extension of the source, ignoring any URL
// query string.
func (f *File) Ext() string {
	p := f.Source
	if isRemote(p) {
		if u, err := url.Parse(p); err == nil {
			p = u.Path
		}
	}
	return strings.ToLower(path.Ext(p))
}

func isRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/anrid/us-population/pkg/dashboard"
	"github.com/anrid/us-population/pkg/derive"
)

// FileSink writes every published slot into Dir, one file per format:
// <slot>.md for markdown text, <slot>.json for the view model and
// <slot>.svg for the line and heatmap charts. Files are replaced on each
// publish.
type FileSink struct {
	Dir string
}

func NewFileSink(dir string) (*FileSink, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileSink{Dir: dir}, nil
}

func (s *FileSink) Publish(slot dashboard.Slot, value interface{}) error {
	if text, ok := value.(string); ok {
		return s.write(string(slot)+".md", []byte(text))
	}

	js, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", slot, err)
	}
	if err := s.write(string(slot)+".json", js); err != nil {
		return err
	}

	var buf bytes.Buffer
	switch v := value.(type) {
	case derive.LineView:
		err = LineSVG(&buf, v)
	case derive.HeatmapView:
		err = HeatmapSVG(&buf, v)
	default:
		return nil
	}

	svg := filepath.Join(s.Dir, string(slot)+".svg")
	if errors.Is(err, errEmpty) {
		if err := os.Remove(svg); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("render %s: %w", slot, err)
	}
	return s.write(string(slot)+".svg", buf.Bytes())
}

// write replaces name through a rename so readers never see a partial file.
func (s *FileSink) write(name string, data []byte) error {
	tmp, err := os.CreateTemp(s.Dir, "."+name+"-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), filepath.Join(s.Dir, name))
}

// Multi publishes to every sink in order and stops at the first error.
type Multi []dashboard.Sink

func (m Multi) Publish(slot dashboard.Slot, value interface{}) error {
	for _, s := range m {
		if err := s.Publish(slot, value); err != nil {
			return err
		}
	}
	return nil
}

package publisher

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/sunwei/cheatsheet/helpers"
	"github.com/sunwei/cheatsheet/minifiers"
	"github.com/sunwei/cheatsheet/output"
)

// Publisher publishes an encoded configuration.
type Publisher interface {
	Publish(d Descriptor) error
}

// Descriptor describes what to publish and where.
type Descriptor struct {
	// The value to encode, usually a site.Config.
	Value any

	// The OutputFormat to encode Value in.
	OutputFormat output.Format

	// Where to publish this content. This is a filesystem-relative path.
	// When empty, the suffix of OutputFormat decides the name, e.g. config.json.
	TargetPath string
}

// NewDestinationPublisher creates a new DestinationPublisher writing to fs.
func NewDestinationPublisher(fs afero.Fs, min minifiers.Client) DestinationPublisher {
	return DestinationPublisher{fs: fs, min: min}
}

// DestinationPublisher encodes, optionally minifies, and writes the result
// to its destination.
type DestinationPublisher struct {
	fs  afero.Fs
	min minifiers.Client
}

// Publish encodes d.Value and writes the file.
func (p DestinationPublisher) Publish(d Descriptor) (err error) {
	if d.Value == nil {
		return errors.New("publish: must provide a Value")
	}

	target := d.TargetPath
	if target == "" {
		if d.OutputFormat.Suffix() == "" {
			return errors.New("publish: must provide a TargetPath")
		}
		target = "config." + d.OutputFormat.Suffix()
	}

	var b bytes.Buffer
	if err := p.min.Encode(&b, d.OutputFormat, d.Value); err != nil {
		return fmt.Errorf("failed to encode %q: %w", target, err)
	}

	f, err := helpers.OpenFileForWriting(p.fs, target)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("failed to close %q: %w", target, cerr)
		}
	}()

	_, err = io.Copy(f, &b)

	return err
}

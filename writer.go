package sbml

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

const defaultIndent = "  "

type writeOptions struct {
	indent string
}

// WriteOption configures WriteSBML.
type WriteOption func(*writeOptions)

// WithIndent sets the indentation unit; "" writes without line breaks.
func WithIndent(indent string) WriteOption {
	return func(o *writeOptions) { o.indent = indent }
}

// WriteSBML writes d to w. Only the attributes and elements legal at the
// document's level/version are written.
func WriteSBML(d *Document, w io.Writer, opts ...WriteOption) error {
	if d == nil {
		return errors.WithMessage(errNilNode, "write document")
	}

	o := writeOptions{indent: defaultIndent}
	for _, opt := range opts {
		opt(&o)
	}

	out := NewXMLOutputStream(w, o.indent)
	out.WriteXMLDecl()
	d.Write(out)
	if err := out.Flush(); err != nil {
		return errors.WithMessage(err, "write document")
	}
	return nil
}

func WriteSBMLToString(d *Document, opts ...WriteOption) (string, error) {
	buf := buffers.get()
	defer buffers.put(buf)

	if err := WriteSBML(d, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func WriteSBMLToFile(d *Document, path string, opts ...WriteOption) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}

	defer func() {
		if e := file.Close(); e != nil && err == nil {
			err = e
		}
	}()

	buf := buffers.get()
	defer buffers.put(buf)

	if err := WriteSBML(d, buf, opts...); err != nil {
		return errors.WithMessagef(err, "write %s", path)
	}

	_, err = buf.WriteTo(file)
	return err
}

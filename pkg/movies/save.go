package movies

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/mobileapp/pkg/constants"
	"github.com/agentstation/mobileapp/pkg/errors"
	"github.com/agentstation/mobileapp/pkg/save"
)

// Save overwrites destination with the full catalog in backing file format.
func Save(c *Catalog, destination string) error {
	return c.Save(save.WithPath(destination))
}

// Save writes the catalog. By default it rewrites the catalog's own backing
// file in text format, truncating it first. Options may redirect the output
// to another path or writer, change the format, or request an atomic
// temp-file-and-rename write.
func (c *Catalog) Save(opts ...save.Option) error {
	defaults := []save.Option{save.WithPath(c.path), save.WithAtomic(c.atomic)}
	options := save.Defaults().Apply(append(defaults, opts...)...)

	if !options.Format().IsValid() {
		return errors.NewValidationError("format", options.Format(), "unsupported save format")
	}

	if w := options.Writer(); w != nil {
		return c.encode(w, options.Format())
	}

	path := options.Path()
	if path == "" {
		return errors.NewConfigError("catalog", "no save destination configured", nil)
	}

	if options.Atomic() {
		return c.saveAtomic(path, options.Format())
	}
	return c.saveInPlace(path, options.Format())
}

// saveInPlace truncates path and writes the catalog. A crash mid-write can
// leave the file truncated.
func (c *Catalog) saveInPlace(path string, format save.Format) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, constants.FilePermissions)
	if err != nil {
		return errors.WrapIO("open", path, err)
	}

	if err := c.encode(f, format); err != nil {
		_ = f.Close()
		return errors.WrapIO("write", path, err)
	}
	if err := f.Close(); err != nil {
		return errors.WrapIO("close", path, err)
	}
	return nil
}

func (c *Catalog) saveAtomic(path string, format save.Format) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return errors.WrapIO("create", dir, err)
	}
	tmpPath := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpPath) }

	if err := c.encode(tmp, format); err != nil {
		_ = tmp.Close()
		cleanup()
		return errors.WrapIO("write", tmpPath, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()
		return errors.WrapIO("sync", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return errors.WrapIO("close", tmpPath, err)
	}
	if err := os.Chmod(tmpPath, constants.FilePermissions); err != nil {
		cleanup()
		return errors.WrapIO("chmod", tmpPath, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		cleanup()
		return errors.WrapIO("rename", path, err)
	}
	return nil
}

func (c *Catalog) encode(w io.Writer, format save.Format) error {
	switch format {
	case save.FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(c.Entries())
	case save.FormatYAML:
		data, err := yaml.MarshalWithOptions(c.Entries(), yaml.Indent(2), yaml.IndentSequence(false))
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	default:
		return c.writeText(w)
	}
}

func (c *Catalog) writeText(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, id := range c.order {
		if _, err := fmt.Fprintln(bw, c.records[id].String()); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"rnadesign/internal/output"
	"rnadesign/internal/pretty"
)

// Options are the presentation switches shared by all formats.
type Options struct {
	Header bool
	Pretty bool
	Render pretty.Options
}

// WriteFunc serializes one design.
type WriteFunc func(w io.Writer, r output.Result, opt Options) error

// DesignWriters maps format → handler. Register in init() blocks.
var DesignWriters = map[string]WriteFunc{}

// Register is idempotent, last wins.
func Register(format string, fn WriteFunc) { DesignWriters[format] = fn }

// Formats lists registered formats, sorted.
func Formats() []string {
	out := make([]string, 0, len(DesignWriters))
	for f := range DesignWriters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Write dispatches to the handler for format.
func Write(format string, w io.Writer, r output.Result, opt Options) error {
	fn, ok := DesignWriters[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, r, opt)
}

func init() {
	Register(output.FormatText, func(w io.Writer, r output.Result, opt Options) error {
		render := func(r output.Result) string { return pretty.RenderWithOptions(r.PrettyDesign(), opt.Render) }
		return output.WriteTextWithRenderer(w, r, opt.Header, opt.Pretty, render)
	})
	Register(output.FormatJSON, func(w io.Writer, r output.Result, _ Options) error {
		return output.WriteJSON(w, r)
	})
	Register(output.FormatFASTA, func(w io.Writer, r output.Result, _ Options) error {
		return output.WriteFASTA(w, r)
	})
}

package writers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"syscall"
	"testing"

	"rnadesign/core/alphabet"
	"rnadesign/core/structure"
	"rnadesign/internal/output"
	"rnadesign/internal/pretty"
	"rnadesign/pkg/api"
)

func result(t *testing.T) output.Result {
	t.Helper()
	p, err := structure.ParseDotBracket("(..)")
	if err != nil {
		t.Fatal(err)
	}
	return output.Result{
		RunID: "run", Pairing: p, Alphabet: alphabet.RNA(),
		Rows: []int{alphabet.G, alphabet.A, alphabet.A, alphabet.C}, Sequence: "GAAC",
		Model: "nussinov", Collate: "majority",
	}
}

func TestFormats(t *testing.T) {
	if got := strings.Join(Formats(), ","); got != "fasta,json,text" {
		t.Fatalf("formats = %s", got)
	}
}

func TestUnknownFormatError(t *testing.T) {
	var b bytes.Buffer
	err := Write("nope-format", &b, result(t), Options{})
	if err == nil || !strings.Contains(err.Error(), "unknown output format") {
		t.Fatalf("want 'unknown output format' error, got: %v", err)
	}
}

func TestWrite_JSON(t *testing.T) {
	var b bytes.Buffer
	if err := Write("json", &b, result(t), Options{}); err != nil {
		t.Fatal(err)
	}
	var got api.DesignV1
	if err := json.Unmarshal(b.Bytes(), &got); err != nil || got.Sequence != "GAAC" || got.PairScore != -3 {
		t.Fatalf("json: %v %+v", err, got)
	}
}

func TestWrite_TextPretty(t *testing.T) {
	var b bytes.Buffer
	opt := Options{Header: true, Pretty: true, Render: pretty.DefaultOptions}
	if err := Write("text", &b, result(t), opt); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	if lines[0] != output.TSVHeader {
		t.Fatalf("header: %q", lines[0])
	}
	if !strings.Contains(b.String(), "# pairs      |..|\n") {
		t.Fatalf("pretty block missing:\n%s", b.String())
	}
}

func TestWrite_TextPlain(t *testing.T) {
	var b bytes.Buffer
	if err := Write("text", &b, result(t), Options{}); err != nil {
		t.Fatal(err)
	}
	if strings.Count(b.String(), "\n") != 1 || strings.Contains(b.String(), "#") {
		t.Fatalf("plain text should be one TSV row:\n%s", b.String())
	}
}

func TestIsBrokenPipe(t *testing.T) {
	if !IsBrokenPipe(fmt.Errorf("write: %w", syscall.EPIPE)) || !IsBrokenPipe(io.ErrClosedPipe) {
		t.Fatal("expected broken pipe")
	}
	if IsBrokenPipe(errors.New("disk full")) || IsBrokenPipe(nil) {
		t.Fatal("false positive")
	}
	if IgnoreBrokenPipe(syscall.EPIPE) != nil {
		t.Fatal("EPIPE should be ignored")
	}
}

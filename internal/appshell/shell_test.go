package appshell

import (
	"context"
	"io"
	"testing"
)

func TestExecDefaultsToHelp(t *testing.T) {
	var got []string
	code := Exec(func(_ context.Context, argv []string, _, _ io.Writer) int {
		got = argv
		return 0
	}, nil, io.Discard, io.Discard)
	if code != 0 {
		t.Fatalf("code = %d", code)
	}
	if len(got) != 1 || got[0] != "-h" {
		t.Fatalf("argv = %v, want [-h]", got)
	}
}

func TestExecPassesCode(t *testing.T) {
	code := Exec(func(ctx context.Context, argv []string, _, _ io.Writer) int {
		if ctx == nil || len(argv) != 2 {
			return 1
		}
		return 3
	}, []string{"design", "()"}, io.Discard, io.Discard)
	if code != 3 {
		t.Fatalf("code = %d, want 3", code)
	}
}

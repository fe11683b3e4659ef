// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"rnadesign/internal/app"
	"rnadesign/internal/runid"
	"rnadesign/pkg/api"
)

const fixedID = "01920000-0000-7000-8000-000000000001"

func run(t *testing.T, argv ...string) (int, string, string) {
	t.Helper()
	var out, errBuf bytes.Buffer
	code := app.RunWith(context.Background(), argv, &out, &errBuf, app.Deps{IDs: runid.NewFixed(fixedID)})
	return code, out.String(), errBuf.String()
}

func decode(t *testing.T, s string) api.DesignV1 {
	t.Helper()
	var d api.DesignV1
	if err := json.Unmarshal([]byte(s), &d); err != nil {
		t.Fatalf("decode json: %v\n%s", err, s)
	}
	return d
}

func TestEndToEndJSON(t *testing.T) {
	code, out, errS := run(t, "design", "((((....))))", "--steps", "60", "-f", "json", "-q")
	if code != 0 {
		t.Fatalf("exit %d, err=%s", code, errS)
	}
	d := decode(t, out)
	if d.RunID != fixedID {
		t.Errorf("run_id = %q", d.RunID)
	}
	if d.Length != 12 || len(d.Sequence) != 12 {
		t.Errorf("length %d, sequence %q", d.Length, d.Sequence)
	}
	if d.Structure != "((((....))))" {
		t.Errorf("structure = %q", d.Structure)
	}
	if strings.Trim(d.Sequence, "ACGU") != "" {
		t.Errorf("sequence %q has symbols outside ACGU", d.Sequence)
	}
}

func TestRunsAreDeterministic(t *testing.T) {
	args := []string{"design", "((..((...))..))", "--steps", "40", "--collate", "incremental", "--threshold", "0.9", "-f", "json", "-q"}
	c1, o1, _ := run(t, args...)
	c2, o2, _ := run(t, args...)
	if c1 != 0 || c2 != 0 {
		t.Fatalf("exit codes %d %d", c1, c2)
	}
	if o1 != o2 {
		t.Fatalf("outputs differ\nfirst:  %s\nsecond: %s", o1, o2)
	}
}

func TestPresetAndConstraintHonored(t *testing.T) {
	code, out, errS := run(t, "design", "(((...)))", "-p", "1:G", "--constraint", "........U", "--steps", "30", "-f", "json", "-q")
	if code != 0 {
		t.Fatalf("exit %d, err=%s", code, errS)
	}
	d := decode(t, out)
	if d.Sequence[0] != 'G' || d.Sequence[8] != 'U' {
		t.Fatalf("sequence %q ignores pinned columns", d.Sequence)
	}
	if len(d.Presets) != 2 {
		t.Errorf("presets = %+v", d.Presets)
	}
}

func TestPairsInput(t *testing.T) {
	code, out, errS := run(t, "design", "--pairs", "1:6,2:5", "-n", "6", "-m", "nussinov", "--steps", "20", "-f", "fasta", "-q")
	if code != 0 {
		t.Fatalf("exit %d, err=%s", code, errS)
	}
	if !strings.HasPrefix(out, ">design_01920000 ") || !strings.Contains(out, "structure=((..))") {
		t.Fatalf("unexpected fasta:\n%s", out)
	}
}

func TestTextHeaderAndPretty(t *testing.T) {
	code, out, _ := run(t, "design", "((..))", "--steps", "10", "--pretty", "-q")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if !strings.HasPrefix(out, "run_id\t") {
		t.Errorf("missing header:\n%s", out)
	}
	if !strings.Contains(out, "# structure  ((..))") {
		t.Errorf("missing pretty block:\n%s", out)
	}

	_, out, _ = run(t, "design", "((..))", "--steps", "10", "--no-header", "-q")
	if strings.HasPrefix(out, "run_id\t") {
		t.Errorf("header not suppressed:\n%s", out)
	}
}

func TestVerboseLogsSchedule(t *testing.T) {
	code, _, errS := run(t, "design", "((..))", "--steps", "3", "--temp", "300", "--target-ratio", "0.5", "-v")
	if code != 0 {
		t.Fatalf("exit %d, err=%s", code, errS)
	}
	for _, want := range []string{"msg=schedule", "t_final=150", "decimation_steps=5", "msg=step"} {
		if !strings.Contains(errS, want) {
			t.Errorf("debug log missing %q:\n%s", want, errS)
		}
	}
}

func TestDumpAndMetricsFiles(t *testing.T) {
	dir := t.TempDir()
	dumpPath := filepath.Join(dir, "matrix.tsv")
	promPath := filepath.Join(dir, "run.prom")
	code, _, errS := run(t, "design", "(...)", "--steps", "5", "--dump", dumpPath, "--metrics-file", promPath, "-q")
	if code != 0 {
		t.Fatalf("exit %d, err=%s", code, errS)
	}
	dump, err := os.ReadFile(dumpPath)
	if err != nil || !strings.HasPrefix(string(dump), "# matrix R=4 N=5") {
		t.Fatalf("dump %q, err %v", dump, err)
	}
	prom, err := os.ReadFile(promPath)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"rnadesign_anneal_steps_total 5", `rnadesign_runs_total{collate="majority",outcome="ok"} 1`} {
		if !strings.Contains(string(prom), want) {
			t.Errorf("metrics missing %q:\n%s", want, prom)
		}
	}
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	if err := os.WriteFile(path, []byte("structure: \"((....))\"\nsteps: 25\nmodel: nussinov\nformat: json\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	code, out, errS := run(t, "design", "-c", path, "-q")
	if code != 0 {
		t.Fatalf("exit %d, err=%s", code, errS)
	}
	d := decode(t, out)
	if d.Model != "nussinov" || d.Steps != 25 || d.Length != 8 {
		t.Errorf("config not applied: %+v", d)
	}
}

func TestExitCodes(t *testing.T) {
	cases := []struct {
		name string
		argv []string
		want int
	}{
		{"version", []string{"version"}, 0},
		{"no structure", []string{"design"}, 2},
		{"unbalanced", []string{"design", "(()"}, 2},
		{"unknown flag", []string{"design", "()", "--bogus"}, 2},
		{"unknown command", []string{"fold", "()"}, 2},
		{"pairs without length", []string{"design", "--pairs", "1:2"}, 2},
		{"nn needs ACGU", []string{"design", "()", "-a", "ACGT"}, 2},
		{"nussinov needs four symbols", []string{"design", "()", "-m", "nussinov", "-a", "ACG"}, 2},
		{"preset out of range", []string{"design", "()", "-p", "3:G"}, 2},
		{"conflicting constraint", []string{"design", "()", "-p", "1:G", "--constraint", "A."}, 2},
		{"missing config", []string{"design", "-c", "does-not-exist.yaml"}, 2},
		{"metrics dir missing", []string{"design", "()", "--steps", "1", "--metrics-file", filepath.Join(t.TempDir(), "no", "such", "x.prom")}, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, _, errS := run(t, tc.argv...)
			if code != tc.want {
				t.Fatalf("exit %d, want %d (stderr %s)", code, tc.want, errS)
			}
			if tc.want != 0 && !strings.Contains(errS, "rnadesign:") {
				t.Errorf("no error message on stderr: %q", errS)
			}
		})
	}
}

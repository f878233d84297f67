package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/osvaldoandrade/canonhash/internal/infra/hash"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCanonCommand(t *testing.T) {
	out, err := runCLI(t, `{"foo": "bar", "bar": "baz"}`, "canon")
	if err != nil {
		t.Fatalf("canon returned error: %v", err)
	}
	if out != `{"bar":"baz","foo":"bar"}`+"\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestCanonCommandKeepsNumberLiterals(t *testing.T) {
	out, err := runCLI(t, `{"n": 1.0}`, "canon")
	if err != nil {
		t.Fatalf("canon returned error: %v", err)
	}
	if out != `{"n":1.0}`+"\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestCanonCommandReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	if err := os.WriteFile(path, []byte(`[3, 2, 1]`), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	out, err := runCLI(t, "", "canon", path)
	if err != nil {
		t.Fatalf("canon returned error: %v", err)
	}
	if out != "[3,2,1]\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestCanonCommandJSONOutput(t *testing.T) {
	out, err := runCLI(t, `{}`, "canon", "--json")
	if err != nil {
		t.Fatalf("canon returned error: %v", err)
	}
	if !strings.Contains(out, `"canonical": "{}"`) {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestDigestCommandIsOrderInvariant(t *testing.T) {
	first, err := runCLI(t, `{"foo":"bar","hello":"world"}`, "digest", "--alg", "md5")
	if err != nil {
		t.Fatalf("digest returned error: %v", err)
	}
	second, err := runCLI(t, `{"hello":"world","foo":"bar"}`, "digest", "--alg", "md5")
	if err != nil {
		t.Fatalf("digest returned error: %v", err)
	}
	if first != second {
		t.Fatalf("digests differ: %q vs %q", first, second)
	}

	want := hash.MD5{}.SumHex([]byte(`{"foo":"bar","hello":"world"}`)) + "\n"
	if first != want {
		t.Fatalf("expected %q, got %q", want, first)
	}
}

func TestDigestCommandUnknownAlgorithm(t *testing.T) {
	_, err := runCLI(t, `{}`, "digest", "--alg", "whirlpool")
	if !errors.Is(err, hash.ErrUnknownAlgorithm) {
		t.Fatalf("expected ErrUnknownAlgorithm, got %v", err)
	}
}

func TestDigestCommandEmptyInput(t *testing.T) {
	_, err := runCLI(t, "", "digest")
	if err == nil {
		t.Fatal("expected error for empty input")
	}
}

func TestAlgorithmsCommand(t *testing.T) {
	out, err := runCLI(t, "", "algorithms")
	if err != nil {
		t.Fatalf("algorithms returned error: %v", err)
	}
	for _, name := range hash.Names() {
		if !strings.Contains(out, name) {
			t.Fatalf("expected %s in output %q", name, out)
		}
	}
}

func TestConfigFileSetsDefaultAlgorithm(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("algorithm: md5\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	out, err := runCLI(t, `{"a":1}`, "digest", "--config", path)
	if err != nil {
		t.Fatalf("digest returned error: %v", err)
	}
	want := hash.MD5{}.SumHex([]byte(`{"a":1}`)) + "\n"
	if out != want {
		t.Fatalf("expected md5 digest %q, got %q", want, out)
	}
}

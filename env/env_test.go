package env

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/mazzegi/strbox/testx"
)

func TestFromArgs(t *testing.T) {
	tests := map[string]struct {
		args []string
		exp  Env
	}{
		"none": {
			args: []string{"just", "words"},
			exp:  Env{},
		},
		"option": {
			args: []string{"--db", "history.db"},
			exp:  Env{"db": "history.db"},
		},
		"flag_and_option": {
			args: []string{"run", "--verbose", "--lang", "de"},
			exp:  Env{"verbose": true, "lang": "de"},
		},
		"multi_word_option": {
			args: []string{"--title", "a", "long", "title"},
			exp:  Env{"title": "a long title"},
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			testx.AssertEqual(t, test.exp, FromArgs(test.args))
		})
	}
}

func TestEnvExpand(t *testing.T) {
	tests := []struct {
		args  []string
		in    []Var
		probe map[string]string
	}{
		{
			in: []Var{
				MkVar("s", "b"),
				MkVar("c", "d"),
			},
			probe: map[string]string{
				"s": "b",
				"c": "d",
			},
		},
		{
			args: []string{"--dir", "/var/lib"},
			in: []Var{
				MkVar("glob", "glob.attr"),
				MkVar("p1", "{glob}_v1"),
				MkVar("p2", "{dir}/strbox.db"),
			},
			probe: map[string]string{
				"p1":  "glob.attr_v1",
				"p2":  "/var/lib/strbox.db",
				"dir": "/var/lib",
			},
		},
	}

	for i, test := range tests {
		t.Run(fmt.Sprintf("test_%02d", i), func(t *testing.T) {
			env := Load(test.args, test.in...)
			for k, v := range test.probe {
				res, ok := env.String(k)
				if !ok {
					t.Fatalf("expect key %q present, but it is not", k)
				}
				if res != v {
					t.Fatalf("value for %q: want %q, have %q", k, v, res)
				}
			}
		})
	}
}

func TestEnvAccessors(t *testing.T) {
	tx := testx.NewTx(t)
	env := Env{"n": "12", "i": 3, "b": "yes", "t": true}

	n, ok := env.Int("n")
	tx.AssertTrue(ok)
	tx.AssertEqual(12, n)
	tx.AssertEqual(3, env.IntOrDefault("i", 0))
	tx.AssertEqual(7, env.IntOrDefault("missing", 7))
	tx.AssertTrue(env.Bool("b"))
	tx.AssertTrue(env.Bool("t"))
	tx.AssertTrue(!env.Bool("missing"))
	tx.AssertEqual("def", env.StringOrDefault("missing", "def"))
	tx.AssertEqual("true", env.StringOrDefault("t", "def"))
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %q: %v", path, err)
	}
}

func TestDotenvFiles(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "sub_1", "sub_2")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeFile(t, filepath.Join(root, ".env"), "strbox_test_root=root\nstrbox_test_shared=root\n")
	writeFile(t, filepath.Join(root, "sub_1", ".env.toml"), "strbox_test_bar_length = 40\nstrbox_test_shared = \"sub_1\"\n")
	writeFile(t, filepath.Join(sub, ".env"), "# comment\nstrbox_test_dev\nstrbox_test_name=\"  quoted  \"\n")
	writeFile(t, filepath.Join(sub, ".env.yaml"), "strbox_test_lang: de\nstrbox_test_name: ignored\n")

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	defer os.Chdir(wd)
	if err := os.Chdir(sub); err != nil {
		t.Fatalf("chdir: %v", err)
	}

	vs := LoadDotenv()
	probe := map[string]any{
		"strbox_test_root":       "root",
		"strbox_test_shared":     "sub_1",
		"strbox_test_bar_length": int64(40),
		"strbox_test_dev":        true,
		"strbox_test_name":       "  quoted  ",
		"strbox_test_lang":       "de",
	}
	for k, v := range probe {
		testx.AssertEqual(t, v, vs[k])
	}
}

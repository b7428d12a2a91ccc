package env

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/mazzegi/log"
	"github.com/mazzegi/strbox/fsx"
	"github.com/mazzegi/strbox/maps"
	"gopkg.in/yaml.v3"
)

const (
	dotEnvFile     = ".env"
	dotEnvFileToml = ".env.toml"
	dotEnvFileYaml = ".env.yaml"
)

func loadDotenv(path string) (map[string]any, error) {
	vs := map[string]any{}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		k, v, _ := strings.Cut(line, "=")
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		v = unquote(strings.TrimSpace(v))
		if v == "" {
			vs[k] = true
		} else {
			vs[k] = v
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan %q: %w", path, err)
	}
	return vs, nil
}

func loadDotenvToml(path string) (map[string]any, error) {
	vs := map[string]any{}
	_, err := toml.DecodeFile(path, &vs)
	if err != nil {
		return nil, err
	}
	return vs, nil
}

func loadDotenvYaml(path string) (map[string]any, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	vs := map[string]any{}
	if err := yaml.Unmarshal(bs, &vs); err != nil {
		return nil, fmt.Errorf("yaml.unmarshal %q: %w", path, err)
	}
	return vs, nil
}

// LoadDotenv looks up .env and related files in the current directory and the in parent directories.
// Existing values are not overwritten by higher level files.
// Per directory ".env" is evaluated before ".env.toml" and ".env.yaml".
func LoadDotenv() map[string]any {
	wd, err := os.Getwd()
	if err != nil {
		return map[string]any{}
	}
	dirs, err := fsx.Parents(wd)
	if err != nil {
		return map[string]any{}
	}

	loaders := []struct {
		file string
		load func(string) (map[string]any, error)
	}{
		{dotEnvFile, loadDotenv},
		{dotEnvFileToml, loadDotenvToml},
		{dotEnvFileYaml, loadDotenvYaml},
	}

	all := map[string]any{}
	for _, dir := range dirs {
		for _, l := range loaders {
			file := filepath.Join(dir, l.file)
			if !fsx.Exists(file) {
				continue
			}
			vs, err := l.load(file)
			if err != nil {
				log.Warnf("env: skip %q: %v", file, err)
				continue
			}
			maps.Merge(vs, all)
		}
	}
	return all
}

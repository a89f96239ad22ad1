package validate

import (
	"embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed districts.yaml
var districtFS embed.FS

type districtEntry struct {
	Name string   `yaml:"name"`
	Alt  []string `yaml:"alt"`
	Kn   string   `yaml:"kn"`
}

type districtFile struct {
	Districts []districtEntry `yaml:"districts"`
}

// districtIndex maps every accepted spelling (dropdown value, alternate
// English spellings, Kannada script) to the canonical stored form.
var districtIndex map[string]string

func init() {
	raw, err := districtFS.ReadFile("districts.yaml")
	if err != nil {
		panic(fmt.Sprintf("validate: read districts table: %v", err))
	}
	var file districtFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		panic(fmt.Sprintf("validate: parse districts table: %v", err))
	}
	districtIndex = make(map[string]string, len(file.Districts)*3)
	for _, d := range file.Districts {
		canonical := canonicalDistrict(d.Name)
		districtIndex[d.Name] = canonical
		districtIndex[strings.ToLower(canonical)] = canonical
		for _, alt := range d.Alt {
			districtIndex[alt] = canonical
		}
		if d.Kn != "" {
			districtIndex[d.Kn] = canonical
		}
	}
}

// canonicalDistrict strips the parenthetical legacy name and title-cases the
// remainder, e.g. "ballari (bellary)" becomes "Ballari".
func canonicalDistrict(name string) string {
	if i := strings.Index(name, "("); i >= 0 {
		name = name[:i]
	}
	name = strings.TrimSpace(name)
	words := strings.Fields(name)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// ResolveDistrict maps any accepted district spelling to its canonical form.
// It accepts the dropdown value, the modern or legacy English name alone and
// the Kannada script name. Comparison is case-insensitive for Latin input.
func ResolveDistrict(input string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(input))
	if key == "" {
		return "", false
	}
	canonical, ok := districtIndex[key]
	if !ok {
		// Kannada input is not lowercased by ToLower but trailing
		// punctuation from speech transcripts is common.
		canonical, ok = districtIndex[strings.Trim(key, ".,!? ")]
	}
	return canonical, ok
}

// Districts returns all canonical district names in table order.
func Districts() []string {
	raw, _ := districtFS.ReadFile("districts.yaml")
	var file districtFile
	_ = yaml.Unmarshal(raw, &file)
	out := make([]string, 0, len(file.Districts))
	for _, d := range file.Districts {
		out = append(out, canonicalDistrict(d.Name))
	}
	return out
}

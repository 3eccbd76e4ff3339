package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gurbani-server/internal/config"
)

// KeyUse is one reference to an i18n key in source
type KeyUse struct {
	Key  string
	File string
	Line int
}

// i18n "key" / markdown "key" in templates, config.I18n("key") in Go code
var keyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\{\{\s*(?:i18n|markdown)\s+"([a-z0-9_.]+)"`),
	regexp.MustCompile(`config\.I18n\("([a-z0-9_.]+)"\)`),
	regexp.MustCompile(`renderError\([^"]*"([a-z0-9_.]+)",\s*"([a-z0-9_.]*)"\)`),
}

var (
	projectPath string
	verbose     bool
)

func main() {
	flag.StringVar(&projectPath, "path", ".", "Path to the project root")
	flag.BoolVar(&verbose, "v", false, "Verbose output")
	flag.Parse()

	config.InitI18n()

	uses, err := scanProject(projectPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error scanning project: %v\n", err)
		os.Exit(1)
	}

	missing := missingKeys(uses, config.HasI18nKey)

	fmt.Println("i18n Key Checker")
	fmt.Println("================")
	fmt.Printf("References: %d\n", len(uses))
	if verbose {
		for _, u := range uses {
			fmt.Printf("  %s:%d %s\n", u.File, u.Line, u.Key)
		}
	}
	if len(missing) == 0 {
		fmt.Println("All keys resolve.")
		return
	}

	fmt.Printf("Missing: %d\n", len(missing))
	for _, u := range missing {
		fmt.Printf("  %s:%d %s\n", u.File, u.Line, u.Key)
	}
	os.Exit(1)
}

// scanProject collects key references from every .go file under root,
// skipping tests, the reference pack and this tool
func scanProject(root string) ([]KeyUse, error) {
	var uses []KeyUse
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".") || name == "cmd") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, _ := filepath.Rel(root, path)
		uses = append(uses, scanSource(rel, string(data))...)
		return nil
	})
	return uses, err
}

// scanSource finds key references in one file
func scanSource(file, src string) []KeyUse {
	var uses []KeyUse
	for i, line := range strings.Split(src, "\n") {
		for _, re := range keyPatterns {
			for _, m := range re.FindAllStringSubmatch(line, -1) {
				for _, key := range m[1:] {
					if key != "" {
						uses = append(uses, KeyUse{Key: key, File: file, Line: i + 1})
					}
				}
			}
		}
	}
	return uses
}

// missingKeys returns references whose key does not resolve, sorted by key
func missingKeys(uses []KeyUse, has func(string) bool) []KeyUse {
	var missing []KeyUse
	for _, u := range uses {
		if !has(u.Key) {
			missing = append(missing, u)
		}
	}
	sort.Slice(missing, func(i, j int) bool {
		if missing[i].Key != missing[j].Key {
			return missing[i].Key < missing[j].Key
		}
		return missing[i].File < missing[j].File
	})
	return missing
}

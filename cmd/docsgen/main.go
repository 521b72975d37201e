package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/Miro-n1/archipelago-manuals/internal/catalog"
	"github.com/Miro-n1/archipelago-manuals/internal/curate"
	"github.com/Miro-n1/archipelago-manuals/internal/games"
	"github.com/Miro-n1/archipelago-manuals/internal/options"
)

type docFile struct {
	Name    string
	Title   string
	Content string
}

func main() {
	var root string
	flag.StringVar(&root, "out", filepath.Join("docs", "reference", "games"), "output directory")
	flag.Parse()

	reg, err := games.Builtin()
	if err != nil {
		fatal(err)
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		fatal(err)
	}

	var files []docFile
	for _, name := range reg.Games() {
		p, err := reg.Lookup(name)
		if err != nil {
			fatal(err)
		}
		files = append(files, generateGameDoc(p))
	}
	for _, f := range files {
		path := filepath.Join(root, f.Name)
		if err := os.WriteFile(path, []byte(f.Content), 0o644); err != nil {
			fatal(err)
		}
		fmt.Printf("wrote %s\n", path)
	}

	indexPath := filepath.Join(root, "README.md")
	if err := os.WriteFile(indexPath, []byte(generateIndex(files)), 0o644); err != nil {
		fatal(err)
	}
	fmt.Printf("wrote %s\n", indexPath)
}

func generateIndex(files []docFile) string {
	var b strings.Builder
	b.WriteString("# Game Catalogs\n\n")
	b.WriteString("Generated from the built-in profiles using `go run ./cmd/docsgen`.\n\n")
	for _, f := range files {
		b.WriteString(fmt.Sprintf("- [%s](./%s)\n", f.Title, f.Name))
	}
	return b.String()
}

func generateGameDoc(p curate.Profile) docFile {
	cat := p.Catalog()
	var b strings.Builder
	b.WriteString("# " + p.Game() + "\n\n")
	b.WriteString(fmt.Sprintf("Locations: **%d** in %d regions. Item kinds: **%d** (%d copies).\n\n",
		len(cat.LocationNames()), len(cat.Regions()), len(cat.Items()), totalCopies(cat)))

	b.WriteString("## Options\n\n")
	b.WriteString("| Key | Name | Kind | Domain | Default |\n")
	b.WriteString("| --- | --- | --- | --- | --- |\n")
	for _, o := range p.Options().Options() {
		b.WriteString("| ")
		b.WriteString(escape(o.Key))
		b.WriteString(" | ")
		b.WriteString(escape(o.Display))
		b.WriteString(" | ")
		b.WriteString(string(o.Kind))
		b.WriteString(" | ")
		b.WriteString(escape(formatDomain(o)))
		b.WriteString(" | ")
		b.WriteString(escape(formatDefault(o)))
		b.WriteString(" |\n")
	}

	b.WriteString("\n## Regions\n\n")
	b.WriteString("| Region | Locations | Locked | Groups |\n")
	b.WriteString("| --- | --- | --- | --- |\n")
	for _, r := range cat.Regions() {
		locked := 0
		groups := map[string]bool{}
		for _, loc := range r.Locations {
			if loc.Locked != "" {
				locked++
			}
			for _, g := range loc.Groups {
				groups[g] = true
			}
		}
		b.WriteString("| ")
		b.WriteString(escape(r.Name))
		b.WriteString(" | ")
		b.WriteString(fmt.Sprintf("%d", len(r.Locations)))
		b.WriteString(" | ")
		b.WriteString(fmt.Sprintf("%d", locked))
		b.WriteString(" | ")
		b.WriteString(escape(strings.Join(sortedKeys(groups), ", ")))
		b.WriteString(" |\n")
	}

	items := slices.Clone(cat.Items())
	sort.SliceStable(items, func(i, j int) bool { return classRank(items[i].Class) < classRank(items[j].Class) })
	b.WriteString("\n## Items\n\n")
	b.WriteString("| Item | Copies | Class | Groups |\n")
	b.WriteString("| --- | --- | --- | --- |\n")
	for _, it := range items {
		b.WriteString("| ")
		b.WriteString(escape(it.Name))
		b.WriteString(" | ")
		b.WriteString(fmt.Sprintf("%d", it.Count))
		b.WriteString(" | ")
		b.WriteString(string(it.Class))
		b.WriteString(" | ")
		b.WriteString(escape(strings.Join(it.Groups, ", ")))
		b.WriteString(" |\n")
	}

	return docFile{Name: slug(p.Game()) + ".md", Title: p.Game(), Content: b.String()}
}

func totalCopies(cat *catalog.Catalog) int {
	n := 0
	for _, it := range cat.Items() {
		n += it.Count
	}
	return n
}

func classRank(c catalog.Class) int {
	switch c {
	case catalog.Progression:
		return 0
	case catalog.Useful:
		return 1
	default:
		return 2
	}
}

func formatDomain(o options.Option) string {
	switch o.Kind {
	case options.KindToggle:
		return "on/off"
	case options.KindChoice:
		parts := make([]string, len(o.Choices))
		for i, c := range o.Choices {
			parts[i] = fmt.Sprintf("%s=%d", c.Name, c.Value)
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprintf("%d-%d", o.Min, o.Max)
	}
}

func formatDefault(o options.Option) string {
	switch o.Kind {
	case options.KindToggle:
		return yesNo(o.Default == 1)
	case options.KindChoice:
		for _, c := range o.Choices {
			if c.Value == o.Default {
				return c.Name
			}
		}
	}
	return fmt.Sprintf("%d", o.Default)
}

func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func slug(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-':
			b.WriteByte('-')
		}
	}
	return b.String()
}

func escape(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	v = strings.ReplaceAll(v, "|", "\\|")
	v = strings.ReplaceAll(v, "\n", "<br>")
	return v
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}

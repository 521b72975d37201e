package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gookit/color"

	"github.com/Miro-n1/archipelago-manuals/internal/games"
	"github.com/Miro-n1/archipelago-manuals/internal/ledger"
	"github.com/Miro-n1/archipelago-manuals/internal/multiworld"
	"github.com/Miro-n1/archipelago-manuals/internal/options"
)

var (
	styleHeading = color.Style{color.FgCyan, color.OpBold}
	styleOK      = color.Style{color.FgGreen}
	styleFailed  = color.Style{color.FgRed, color.OpBold}
	styleWarn    = color.Style{color.FgYellow}
	styleSubtle  = color.Style{color.FgGray}
)

func printReport(r *multiworld.Report) {
	styleHeading.Printf("run %s  seed %d\n", r.RunID, r.Seed)
	for _, o := range r.Outcomes {
		p := o.Player
		if o.Err != nil {
			styleFailed.Printf("  [%d] %s (%s): %v\n", p.Slot, p.Name, p.Game, o.Err)
			continue
		}
		snap := o.Result.Snapshot
		styleOK.Printf("  [%d] %s (%s)", p.Slot, p.Name, p.Game)
		fmt.Printf(": %s locations, %s starting items, %s discarded\n",
			humanize.Comma(int64(snap.Fillable)),
			humanize.Comma(int64(len(snap.Precollected))),
			humanize.Comma(int64(len(snap.Discarded))))
		if len(snap.Precollected) > 0 {
			styleSubtle.Printf("      start: %s\n", strings.Join(snap.Precollected, ", "))
		}
		for _, a := range o.Adjustments {
			styleWarn.Printf("      %s\n", a)
		}
	}
	summary := fmt.Sprintf("%d of %d players curated in %s",
		len(r.Outcomes)-len(r.Failed()), len(r.Outcomes), r.Elapsed.Round(time.Microsecond))
	if len(r.Failed()) > 0 {
		styleFailed.Println(summary)
		return
	}
	styleOK.Println(summary)
}

func printGames(reg *games.Registry) {
	for _, name := range reg.Games() {
		p, err := reg.Lookup(name)
		if err != nil {
			continue
		}
		cat := p.Catalog()
		styleHeading.Printf("%s", name)
		styleSubtle.Printf("  %s regions, %s items\n",
			humanize.Comma(int64(len(cat.Regions()))), humanize.Comma(int64(len(cat.Items()))))
		for _, o := range p.Options().Options() {
			fmt.Printf("  %-34s %s\n", o.Key, describe(o))
		}
	}
}

func describe(o options.Option) string {
	switch o.Kind {
	case options.KindToggle:
		return fmt.Sprintf("toggle, default %t", o.Default == 1)
	case options.KindChoice:
		names := make([]string, len(o.Choices))
		def := ""
		for i, c := range o.Choices {
			names[i] = c.Name
			if c.Value == o.Default {
				def = c.Name
			}
		}
		return fmt.Sprintf("one of %s, default %s", strings.Join(names, "|"), def)
	default:
		return fmt.Sprintf("%d..%d, default %d", o.Min, o.Max, o.Default)
	}
}

func printHistory(runs []ledger.RunRecord) {
	for _, r := range runs {
		fmt.Printf("%s  seed %-20d %s players  ", r.RunID, r.Seed, humanize.Comma(int64(r.Players)))
		styleSubtle.Println(humanize.Time(r.Started()))
	}
}

func printVerify(run ledger.RunRecord, players int, mismatches []ledger.Mismatch) {
	styleHeading.Printf("replayed %s (seed %d, recorded %s)\n", run.RunID, run.Seed, humanize.Time(run.Started()))
	for _, m := range mismatches {
		styleFailed.Printf("  slot %d: recorded %s, replayed %s\n", m.Slot, short(m.Want), short(m.Got))
	}
	if len(mismatches) == 0 {
		styleOK.Printf("all %d digests match\n", players)
	}
}

func short(digest string) string {
	if digest == "" {
		return "<failed>"
	}
	if len(digest) > 12 {
		return digest[:12]
	}
	return digest
}

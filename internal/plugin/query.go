package plugin

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/llehouerou/deezer-flow/internal/deezer"
	"github.com/llehouerou/deezer-flow/internal/errmsg"
	"github.com/llehouerou/deezer-flow/internal/intent"
	"github.com/llehouerou/deezer-flow/internal/launcher"
	"github.com/llehouerou/deezer-flow/internal/search"
)

// CallOrder is the order categories are searched and listed in, whatever
// order the intent selected them in.
var CallOrder = []deezer.Category{
	deezer.CategoryArtist,
	deezer.CategoryAlbum,
	deezer.CategoryPlaylist,
	deezer.CategoryTrack,
}

// Fixed entry texts.
const (
	HelpTitle    = "Deezer Control: Type 'play <search>', 'artist <search>', 'album <search>', 'playlist <search>'"
	HelpSubTitle = "Example: play master of puppets OR artist metallica"

	playPauseSubTitle = "Sends Play/Pause media key to the Deezer Desktop App (must be running)"
	stopSubTitle      = "Sends Stop media key to the Deezer Desktop App (must be running)"
)

// Result is one entry of a query answer. Item and Score are set for catalog
// results only.
type Result struct {
	Category deezer.Category
	Item     deezer.Item
	Score    int
	Entry    launcher.Entry
}

// RunQuery answers raw launcher input with an ordered list of entries.
// Catalog failures never surface: a failing category contributes nothing.
func (p *Plugin) RunQuery(ctx context.Context, raw string) []launcher.Entry {
	results := p.Resolve(ctx, raw)
	entries := make([]launcher.Entry, len(results))
	for i, r := range results {
		entries[i] = r.Entry
	}
	return entries
}

// Resolve is RunQuery keeping the catalog item behind each entry.
func (p *Plugin) Resolve(ctx context.Context, raw string) []Result {
	in := intent.Parse(raw)

	switch {
	case in.Verb == intent.VerbNone:
		return []Result{{Entry: p.entry(HelpTitle, HelpSubTitle, nil)}}
	case in.IsControl():
		return []Result{{Entry: p.controlEntry(in)}}
	case in.NeedsTerm() || len(in.Categories) == 0:
		title := fmt.Sprintf("Please provide a search term after '%s'.", in.Verb)
		return []Result{{Entry: p.entry(title, "", nil)}}
	}

	cats := ordered(in.Categories)
	perCategory := p.searchAll(ctx, in.Term, cats)

	var results []Result
	for i, cat := range cats {
		for _, s := range perCategory[i] {
			results = append(results, Result{
				Category: cat,
				Item:     s.Item,
				Score:    s.Score,
				Entry:    launcher.Format(s.Item, p.icon),
			})
		}
	}

	if len(results) == 0 {
		names := make([]string, len(cats))
		for i, c := range cats {
			names[i] = c.String()
		}
		title := fmt.Sprintf("No Deezer results found for '%s'", in.Term)
		subtitle := "Searched types: " + strings.Join(names, ", ")
		return []Result{{Entry: p.entry(title, subtitle, nil)}}
	}
	return results
}

// searchAll runs one search per category and returns the capped, ranked
// items indexed like cats.
func (p *Plugin) searchAll(ctx context.Context, term string, cats []deezer.Category) [][]search.Scored {
	out := make([][]search.Scored, len(cats))

	if !p.concurrent {
		for i, cat := range cats {
			out[i] = p.searchCategory(ctx, term, cat)
		}
		return out
	}

	var g errgroup.Group
	for i, cat := range cats {
		g.Go(func() error {
			out[i] = p.searchCategory(ctx, term, cat)
			return nil
		})
	}
	_ = g.Wait() // category errors are absorbed in searchCategory
	return out
}

func (p *Plugin) searchCategory(ctx context.Context, term string, cat deezer.Category) []search.Scored {
	items, err := p.searcher.Search(ctx, term, cat)
	if err != nil {
		p.logger.Warn(errmsg.FormatWith(errmsg.OpCatalogSearch, cat.String(), err),
			"term", term)
		return nil
	}
	p.logger.Debug("catalog search", "category", cat, "term", term, "items", len(items))
	return search.Top(search.Rank(items, term), p.limit)
}

func (p *Plugin) controlEntry(in intent.Intent) launcher.Entry {
	switch {
	case in.Control == intent.ControlStop:
		return p.entry("Stop Deezer Desktop App", stopSubTitle, launcher.Stop())
	case in.Verb == intent.VerbPause:
		return p.entry("Pause Deezer Desktop App", playPauseSubTitle, launcher.PlayPause())
	default:
		return p.entry("Play/Pause Deezer Desktop App", playPauseSubTitle, launcher.PlayPause())
	}
}

func (p *Plugin) entry(title, subtitle string, action *launcher.Action) launcher.Entry {
	return launcher.Entry{Title: title, SubTitle: subtitle, IcoPath: p.icon, Action: action}
}

// ordered returns the selected categories in CallOrder.
func ordered(selected []deezer.Category) []deezer.Category {
	out := make([]deezer.Category, 0, len(selected))
	for _, c := range CallOrder {
		if slices.Contains(selected, c) {
			out = append(out, c)
		}
	}
	return out
}

package site

import (
	"context"
	"fmt"
	"time"

	"github.com/sunwei/cheatsheet/source"
	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"
)

// LinkStatus is the outcome of resolving one sidebar entry against the content.
type LinkStatus struct {
	Link

	// File is nil when the link is broken.
	File *source.File

	// LastModified is only set when the site tracks last updated times.
	LastModified time.Time
}

// Broken reports whether no document exists for the link.
func (l LinkStatus) Broken() bool {
	return l.File == nil
}

// Report is the result of CheckLinks.
type Report struct {
	// Links in sidebar display order.
	Links []LinkStatus

	Broken int

	// Orphans are documents no sidebar entry links to.
	Orphans []*source.File
}

// BrokenLinks returns the broken entries in display order.
func (r Report) BrokenLinks() []LinkStatus {
	var broken []LinkStatus
	for _, l := range r.Links {
		if l.Broken() {
			broken = append(broken, l)
		}
	}
	return broken
}

// CheckLinks resolves every sidebar entry against idx. Sections are checked
// concurrently; the report keeps the display order.
func (s *Site) CheckLinks(ctx context.Context, idx *source.Index) (Report, error) {
	links := s.Links()
	statuses := make([]LinkStatus, len(links))

	bySection := make(map[int][]int)
	for i, l := range links {
		bySection[l.SectionIndex] = append(bySection[l.SectionIndex], i)
	}

	broken := atomic.NewInt64(0)
	g, ctx := errgroup.WithContext(ctx)

	for _, positions := range bySection {
		positions := positions
		g.Go(func() error {
			for _, i := range positions {
				if err := ctx.Err(); err != nil {
					return err
				}
				status := LinkStatus{Link: links[i]}
				if f, found := idx.Lookup(links[i].Resolved); found {
					status.File = f
					if s.conf.TrackLastUpdated {
						status.LastModified = idx.LastModified(f)
					}
				} else {
					broken.Inc()
					s.logger.Warnf("sidebar section %q: %q links to %q, no document found", links[i].Section, links[i].Label, links[i].Resolved)
				}
				statuses[i] = status
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Report{}, fmt.Errorf("link check aborted: %w", err)
	}

	referenced := make(map[string]bool, len(statuses))
	for _, st := range statuses {
		if st.File != nil {
			referenced[st.File.Path()] = true
		}
	}
	var orphans []*source.File
	for _, f := range idx.Files("") {
		if !referenced[f.Path()] {
			orphans = append(orphans, f)
		}
	}

	return Report{
		Links:   statuses,
		Broken:  int(broken.Load()),
		Orphans: orphans,
	}, nil
}

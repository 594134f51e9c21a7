package uchicago

import (
	"context"
	"errors"

	"github.com/aKrishnan0817/uchicago-ai-advisor/internal/catalog"
)

// FilterTest keeps only the test-set programs. When none of the links
// match, the first five discovered programs are used instead so test
// mode still produces data on catalog layout changes.
func FilterTest(links []ProgramLink) []ProgramLink {
	var filtered []ProgramLink
	for _, link := range links {
		if TestSlugs[link.Slug] {
			filtered = append(filtered, link)
		}
	}
	if len(filtered) == 0 && len(links) > 5 {
		return links[:5]
	}
	if len(filtered) == 0 {
		return links
	}
	return filtered
}

// ScrapeAll scrapes every given program page and merges the results
// into slug-keyed programs and code-keyed courses. A failing program is
// logged and skipped; only context cancellation aborts the crawl.
// Inventory entries without a code are dropped at merge.
func (s *Scraper) ScrapeAll(ctx context.Context, links []ProgramLink) (map[string]*catalog.Program, map[string]*catalog.Course, error) {
	programs := make(map[string]*catalog.Program, len(links))
	courses := make(map[string]*catalog.Course)

	for _, link := range links {
		program, inventory, err := s.ScrapeProgram(ctx, link)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil, nil, err
			}
			s.log.WithError(err).Errorf("skipping program %s", link.Name)
			continue
		}

		programs[link.Slug] = program
		for _, course := range inventory {
			if course.Code != "" {
				courses[course.Code] = course
			}
		}
	}

	return programs, courses, nil
}

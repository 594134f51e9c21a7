package uchicago

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aKrishnan0817/uchicago-ai-advisor/internal/logger"
	"github.com/aKrishnan0817/uchicago-ai-advisor/internal/scraper"
)

func testScraper(baseURL string) *Scraper {
	client := scraper.NewClient(5*time.Second, 0, 0)
	return New(client, baseURL, logger.NewWithWriter("error", io.Discard))
}

func TestParseProgramLinks(t *testing.T) {
	html := `
<ul class="nav leveltwo">
  <li><a href="/thecollege/programsofstudy/">Programs of Study</a></li>
  <li><a href="/thecollege/computerscience/">Computer Science</a></li>
  <li><a href="/thecollege/economics/">Economics</a></li>
  <li><a href="/thecollege/computerscience/">Computer Science (duplicate)</a></li>
  <li><a href="">Empty href</a></li>
</ul>`

	s := testScraper("http://collegecatalog.uchicago.edu")
	links := s.parseProgramLinks(doc(t, html))

	require.Len(t, links, 2)
	assert.Equal(t, ProgramLink{
		Name: "Computer Science",
		Slug: "computerscience",
		URL:  "http://collegecatalog.uchicago.edu/thecollege/computerscience/",
	}, links[0])
	assert.Equal(t, "economics", links[1].Slug)
}

func TestParseProgramLinksFallback(t *testing.T) {
	// No sidebar nav: links come from the content area instead.
	html := `
<div id="textcontainer">
  <a href="/thecollege/mathematics/">Mathematics</a>
  <a href="/other/ignored/">Ignored</a>
</div>`

	s := testScraper("http://collegecatalog.uchicago.edu")
	links := s.parseProgramLinks(doc(t, html))

	require.Len(t, links, 1)
	assert.Equal(t, "mathematics", links[0].Slug)
}

func TestFilterTest(t *testing.T) {
	links := []ProgramLink{
		{Slug: "anthropology"},
		{Slug: "computerscience"},
		{Slug: "economics"},
		{Slug: "history"},
	}

	filtered := FilterTest(links)
	require.Len(t, filtered, 2)
	assert.Equal(t, "computerscience", filtered[0].Slug)
	assert.Equal(t, "economics", filtered[1].Slug)
}

func TestFilterTestFallsBackToFirstFive(t *testing.T) {
	links := make([]ProgramLink, 7)
	for i := range links {
		links[i].Slug = string(rune('a' + i))
	}

	assert.Len(t, FilterTest(links), 5)
}

func TestScrapeProgram(t *testing.T) {
	page := `
<div id="textcontainer">
  <h1>Computer Science</h1>
  <p>The undergraduate program in computer science.</p>
  <table class="sc_courselist">
    <tr><td class="areaheader">Required Courses</td></tr>
    <tr><td class="codecol">CMSC 14100</td><td>Intro to CS I</td><td class="hourscol">100</td></tr>
  </table>
  <div class="courseblock">
    <p class="courseblocktitle"><strong>CMSC 14100. Introduction to Computer Science I. 100 Units.</strong></p>
    <p class="courseblockdesc">An introduction.</p>
  </div>
  <div class="courseblock">
    <p class="courseblocktitle">Unparseable Title</p>
  </div>
</div>`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(page))
	}))
	defer srv.Close()

	s := testScraper(srv.URL)
	link := ProgramLink{Name: "CS", Slug: "computerscience", URL: srv.URL + "/thecollege/computerscience/"}

	program, inventory, err := s.ScrapeProgram(context.Background(), link)
	require.NoError(t, err)

	assert.Equal(t, "Computer Science", program.Name)
	assert.Equal(t, link.URL, program.URL)
	assert.Equal(t, "The undergraduate program in computer science.", program.Description)
	require.Len(t, program.Requirements, 1)
	assert.Equal(t, 2, program.CourseCount)

	require.Len(t, inventory, 2)
	assert.Equal(t, "CMSC 14100", inventory[0].Code)
	assert.Empty(t, inventory[1].Code)
}

func TestScrapeAllMergesAndSkipsFailures(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/thecollege/computerscience/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`
<div id="textcontainer"><h1>Computer Science</h1>
  <div class="courseblock">
    <p class="courseblocktitle"><strong>CMSC 14100. Introduction to Computer Science I. 100 Units.</strong></p>
  </div>
</div>`))
	})
	mux.HandleFunc("/thecollege/economics/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	s := testScraper(srv.URL)
	links := []ProgramLink{
		{Name: "Computer Science", Slug: "computerscience", URL: srv.URL + "/thecollege/computerscience/"},
		{Name: "Economics", Slug: "economics", URL: srv.URL + "/thecollege/economics/"},
	}

	programs, courses, err := s.ScrapeAll(context.Background(), links)
	require.NoError(t, err)
	assert.Len(t, programs, 1)
	assert.Contains(t, programs, "computerscience")
	assert.Contains(t, courses, "CMSC 14100")
}

package uchicago

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/aKrishnan0817/uchicago-ai-advisor/internal/catalog"
)

// Course block titles look like
// "CMSC 15100. Introduction to Computer Science I. 100 Units."
var (
	courseTitleRegex      = regexp.MustCompile(`^([A-Z]{2,5})\s+(\d{5})\.\s+(.+?)\.\s+(\d+)\s+Units?\.$`)
	courseTitleLooseRegex = regexp.MustCompile(`^([A-Z]{2,5})\s+(\d{5})\.\s+(.+?)\..*?(\d+)\s+Units?\.`)
)

// detailFields maps courseblockdetail prefixes to their parsed field.
// Order matters: the first matching prefix wins.
var detailFields = []struct {
	prefix string
	assign func(*catalog.CourseDetails, string)
}{
	{"Instructor(s)", func(d *catalog.CourseDetails, v string) { d.Instructors = v }},
	{"Terms Offered", func(d *catalog.CourseDetails, v string) { d.TermsOffered = v }},
	{"Prerequisite(s)", func(d *catalog.CourseDetails, v string) { d.Prerequisites = v }},
	{"Equivalent Course(s)", func(d *catalog.CourseDetails, v string) { d.EquivalentCourses = v }},
	{"Note(s)", func(d *catalog.CourseDetails, v string) { d.Notes = v }},
}

// ParseRequirementTables parses every sc_courselist table on a program
// page into requirement sections. Header rows (courselistcomment spans
// and areaheader cells) start a new section; a section is kept only
// once it has at least one course row.
func ParseRequirementTables(doc *goquery.Document) []catalog.Section {
	var sections []catalog.Section

	doc.Find("table.sc_courselist").Each(func(_ int, table *goquery.Selection) {
		current := catalog.Section{}

		flush := func() {
			if len(current.Courses) > 0 {
				sections = append(sections, current)
			}
		}

		table.Find("tr").Each(func(_ int, row *goquery.Selection) {
			if comment := row.Find("span.courselistcomment").First(); comment.Length() > 0 {
				flush()
				current = catalog.Section{Header: strings.TrimSpace(comment.Text())}
				return
			}
			if areaheader := row.Find("td.areaheader").First(); areaheader.Length() > 0 {
				flush()
				current = catalog.Section{Header: strings.TrimSpace(areaheader.Text())}
				return
			}

			ref, ok := parseCourseRow(row)
			if !ok {
				return
			}
			current.Courses = append(current.Courses, ref)
		})

		flush()
	})

	return sections
}

// parseCourseRow extracts one course reference from a requirement table
// row. Rows without a codecol cell are skipped.
func parseCourseRow(row *goquery.Selection) (catalog.CourseRef, bool) {
	codeEl := row.Find("td.codecol a.bubblelink").First()
	if codeEl.Length() == 0 {
		codeEl = row.Find("td.codecol").First()
	}
	if codeEl.Length() == 0 {
		return catalog.CourseRef{}, false
	}

	code := strings.TrimSpace(codeEl.Text())

	// Cross-listed rows carry a second codecol cell
	if code2El := row.Find("td.codecol + td.codecol").First(); code2El.Length() > 0 {
		if code2 := strings.TrimSpace(code2El.Text()); code2 != "" {
			code = code + " / " + code2
		}
	}

	var title string
	row.Find("td").EachWithBreak(func(_ int, td *goquery.Selection) bool {
		if td.HasClass("codecol") || td.HasClass("hourscol") {
			return true
		}
		title = strings.TrimSpace(td.Text())
		return false
	})

	ref := catalog.CourseRef{
		Code:           code,
		Title:          title,
		Units:          strings.TrimSpace(row.Find("td.hourscol").First().Text()),
		OrAlternative:  row.HasClass("orclass"),
		ElectiveOption: row.Find(`div[style*="margin-left"]`).Length() > 0,
	}
	return ref, true
}

// ParseCourseBlocks parses courseblock divs into the course inventory.
// Titles that fail both patterns are kept as raw entries without a
// code; the merge step drops them.
func ParseCourseBlocks(doc *goquery.Document) []*catalog.Course {
	var courses []*catalog.Course

	doc.Find("div.courseblock").Each(func(_ int, block *goquery.Selection) {
		titleEl := block.Find("p.courseblocktitle strong").First()
		if titleEl.Length() == 0 {
			titleEl = block.Find("p.courseblocktitle").First()
		}
		if titleEl.Length() == 0 {
			return
		}

		titleText := normalizeSpace(titleEl.Text())

		m := courseTitleRegex.FindStringSubmatch(titleText)
		if m == nil {
			m = courseTitleLooseRegex.FindStringSubmatch(titleText)
		}
		if m == nil {
			courses = append(courses, &catalog.Course{RawTitle: titleText})
			return
		}

		dept, number, name, unitsText := m[1], m[2], m[3], m[4]
		units, _ := strconv.Atoi(unitsText)

		courses = append(courses, &catalog.Course{
			Code:        dept + " " + number,
			Department:  dept,
			Number:      number,
			Name:        name,
			Units:       units,
			Description: strings.TrimSpace(block.Find("p.courseblockdesc").First().Text()),
			Details:     parseCourseDetails(block),
		})
	})

	return courses
}

func parseCourseDetails(block *goquery.Selection) catalog.CourseDetails {
	var details catalog.CourseDetails

	block.Find("p.courseblockdetail").Each(func(_ int, det *goquery.Selection) {
		text := normalizeSpace(det.Text())
		for _, field := range detailFields {
			if strings.HasPrefix(text, field.prefix) {
				value := strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(text, field.prefix), ":"))
				field.assign(&details, value)
				break
			}
		}
	})

	return details
}

// normalizeSpace collapses runs of whitespace, including the
// non-breaking spaces the catalog uses inside course titles.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

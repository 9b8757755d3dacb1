package ui

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/drujensen/agenthub/internal/domain/entities"
	"github.com/drujensen/agenthub/internal/markdown"

	"github.com/dustin/go-humanize"
	"github.com/yuin/goldmark"
	gfmext "github.com/yuin/goldmark/extension"
)

var gfm = goldmark.New(goldmark.WithExtensions(gfmext.GFM))

func funcMap() template.FuncMap {
	return template.FuncMap{
		"renderMarkdown": renderMarkdown,
		"renderInfo":     renderInfo,
		"formatNumber": func(num int) string {
			return humanize.Comma(int64(num))
		},
		"formatBytes":       formatBytes,
		"formatDate":        formatDate,
		"timeAgo":           humanize.Time,
		"percent":           percent,
		"statusClass":       statusClass,
		"barWidth":          barWidth,
		"attachmentSummary": attachmentSummary,
		"deref": func(s *string) string {
			if s == nil {
				return ""
			}
			return *s
		},
		"add": func(a, b int) int {
			return a + b
		},
	}
}

// renderMarkdown renders agent descriptions with full GitHub flavored markdown.
func renderMarkdown(md string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := gfm.Convert([]byte(md), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// renderInfo renders an info panel payload. Raw HTML in the payload passes
// through unchanged.
func renderInfo(md string) template.HTML {
	return template.HTML(markdown.Render(md))
}

func formatBytes(size int64) string {
	if size <= 0 {
		return "0 B"
	}
	return humanize.Bytes(uint64(size))
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02")
}

func percent(v float64) string {
	return fmt.Sprintf("%.0f%%", v)
}

func statusClass(status entities.AgentStatus) string {
	return "status-" + string(status)
}

// barWidth scales p against the largest value in s for the CSS bar charts.
func barWidth(p entities.Point, s entities.Series) string {
	var highest float64
	for _, point := range s.Points {
		if point.Value > highest {
			highest = point.Value
		}
	}
	if highest <= 0 {
		return "0%"
	}
	return fmt.Sprintf("%.0f%%", p.Value/highest*100)
}

func attachmentSummary(attachments []entities.Attachment) string {
	parts := make([]string, 0, len(attachments))
	for _, a := range attachments {
		if a.Size > 0 {
			parts = append(parts, fmt.Sprintf("%s (%s)", a.Name, formatBytes(a.Size)))
		} else {
			parts = append(parts, a.Name)
		}
	}
	return strings.Join(parts, ", ")
}

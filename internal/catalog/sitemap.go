package catalog

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

type urlSet struct {
	XMLName xml.Name  `xml:"urlset"`
	NS      string    `xml:"xmlns,attr"`
	URLs    []siteURL `xml:"url"`
}

type siteURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

// Sitemap renders entries as a sitemap.xml document. The site root comes
// first, then each calculator page in catalog order.
func Sitemap(baseURL string, entries []Entry, lastMod time.Time) ([]byte, error) {
	base := strings.TrimRight(baseURL, "/")
	day := lastMod.UTC().Format("2006-01-02")

	set := urlSet{NS: sitemapNS}
	set.URLs = append(set.URLs, siteURL{Loc: base + "/", LastMod: day, ChangeFreq: "weekly", Priority: "1.0"})
	for _, e := range entries {
		set.URLs = append(set.URLs, siteURL{
			Loc:        base + e.Path,
			LastMod:    day,
			ChangeFreq: e.ChangeFreq,
			Priority:   fmt.Sprintf("%.1f", e.Priority),
		})
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return nil, fmt.Errorf("encode sitemap: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// Robots renders robots.txt: everything is crawlable except the API.
func Robots(baseURL string) []byte {
	base := strings.TrimRight(baseURL, "/")
	return []byte("User-agent: *\nAllow: /\nDisallow: /api/\n\nSitemap: " + base + "/sitemap.xml\n")
}

// WriteFiles writes sitemap.xml and robots.txt into dir.
func WriteFiles(dir, baseURL string, entries []Entry, lastMod time.Time) error {
	body, err := Sitemap(baseURL, entries, lastMod)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, "sitemap.xml"), body, 0o644); err != nil {
		return fmt.Errorf("write sitemap.xml: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "robots.txt"), Robots(baseURL), 0o644); err != nil {
		return fmt.Errorf("write robots.txt: %w", err)
	}
	return nil
}

package extract

import (
	"context"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// FromURL fetches a page and extracts its title and body text. Extraction is
// best-effort: transport failures, non-200 responses and parse errors all
// yield a placeholder result instead of an error, so ingestion never fails on
// a hostile or unreachable site.
func (s *Service) FromURL(ctx context.Context, url string) Result {
	empty := Result{Title: PlaceholderTitle, Text: ""}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		s.logger.Warn("crawl request build failed", zap.String("url", url), zap.Error(err))
		return empty
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Warn("crawl failed", zap.String("url", url), zap.Error(err))
		return empty
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.logger.Warn("crawl got non-200", zap.String("url", url), zap.Int("status", resp.StatusCode))
		return empty
	}

	// Decode with the server's apparent encoding (content-type + sniffing).
	body, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		s.logger.Warn("charset detection failed", zap.String("url", url), zap.Error(err))
		return empty
	}

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		s.logger.Warn("html parse failed", zap.String("url", url), zap.Error(err))
		return empty
	}

	return Result{
		Title: extractTitle(doc),
		Text:  truncateRunes(extractBody(doc), MaxContentLength),
	}
}

// extractTitle resolves the page title: <title> text, then og:title, then the
// placeholder.
func extractTitle(doc *goquery.Document) string {
	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		return title
	}
	if content, ok := doc.Find(`meta[property="og:title"]`).First().Attr("content"); ok {
		if title := strings.TrimSpace(content); title != "" {
			return title
		}
	}
	return PlaceholderTitle
}

// extractBody scans paragraph-like and container elements for direct text and
// keeps only fragments long enough to be meaningful sentences.
func extractBody(doc *goquery.Document) string {
	var fragments []string
	doc.Find("p, article, div").Each(func(_ int, sel *goquery.Selection) {
		for _, node := range sel.Nodes {
			text := strings.TrimSpace(ownText(node))
			if len([]rune(text)) > minFragmentLength {
				fragments = append(fragments, text)
			}
		}
	})
	return strings.Join(fragments, " ")
}

// ownText concatenates the text nodes that are direct children of n. Nested
// element text is left to the nested element's own visit, which keeps a
// content-bearing <div> from swallowing its whole subtree.
func ownText(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	}
	return b.String()
}

package feed

import "regexp"

var articleIDRe = regexp.MustCompile(`/(\d+)/artclView\.do`)

// ArticleID extracts numeric article id from board link, i.e. ".../bbs/kor/475/123456/artclView.do".
// Returns false if the link has no such segment
func ArticleID(link string) (string, bool) {
	m := articleIDRe.FindStringSubmatch(link)
	if len(m) < 2 {
		return "", false
	}
	return m[1], true
}

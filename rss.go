package blogpost

import (
	"encoding/xml"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

// feedSize bounds how many of the newest posts the RSS feed carries.
const feedSize = 20

type rss struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	Author      string `xml:"author,omitempty"`
	PubDate     string `xml:"pubDate"`
	GUID        string `xml:"guid"`
}

// handleFeed serves the newest posts as an RSS 2.0 feed.
func (a *App) handleFeed(c echo.Context) error {
	posts, err := a.Store.ListPosts(0, feedSize)
	if err != nil {
		return err
	}

	base := a.Config.URL
	items := make([]rssItem, 0, len(posts))
	for _, p := range posts {
		pubDate := ""
		if t, err := time.Parse(timeLayout, p.CreatedAt); err == nil {
			pubDate = t.Format(time.RFC1123Z)
		}
		postURL := buildURL(base, "posts", strconv.FormatInt(p.ID, 10))
		items = append(items, rssItem{
			Title:       p.Title,
			Link:        postURL,
			Description: p.Content,
			Author:      p.Author,
			PubDate:     pubDate,
			GUID:        postURL,
		})
	}
	feed := rss{
		Version: "2.0",
		Channel: rssChannel{
			Title:       a.Config.Name,
			Link:        base,
			Description: a.Config.Description,
			Items:       items,
		},
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/rss+xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(feed)
}

func buildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

package view

import (
	"bytes"
	"io/fs"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/99minutos/blog-system/internal/core/domain"
)

func TestRenderMarkdown(t *testing.T) {
	out, err := RenderMarkdown("**bold** and ~~gone~~")
	require.NoError(t, err)
	assert.Contains(t, string(out), "<strong>bold</strong>")
	assert.Contains(t, string(out), "<del>gone</del>")
}

func TestRenderMarkdown_DropsRawHTML(t *testing.T) {
	out, err := RenderMarkdown("hi <script>alert(1)</script>\n\n<div onclick=\"x()\">block</div>")
	require.NoError(t, err)
	assert.NotContains(t, string(out), "<script>")
	assert.NotContains(t, string(out), "onclick")
	assert.Contains(t, string(out), "raw HTML omitted")
}

func TestExcerpt(t *testing.T) {
	assert.Equal(t, "Hello world", Excerpt("# Hello\n\n*world*", 100))
	assert.Equal(t, "", Excerpt("", 100))

	long := strings.Repeat("ab ", 60)
	got := Excerpt(long, ExcerptLength)
	assert.True(t, strings.HasSuffix(got, "..."))
	assert.Equal(t, ExcerptLength+3, len([]rune(got)))

	// Cut by runes, never inside a multi-byte character.
	assert.Equal(t, "ñññ...", Excerpt("ññññ", 3))
}

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := NewRenderer()
	require.NoError(t, err)
	return r
}

func TestRenderer_AllPagesParse(t *testing.T) {
	r := newTestRenderer(t)
	for _, name := range []string{"home", "about", "contact", "compose", "login", "register", "profile", "admin", "post", "edit"} {
		assert.Contains(t, r.pages, name, "missing page %s", name)
	}
	assert.NotContains(t, r.pages, "layout")

	var buf bytes.Buffer
	assert.Error(t, r.Render(&buf, "missing", Page{}, nil))
}

func TestRenderer_Home(t *testing.T) {
	r := newTestRenderer(t)
	page := Page{
		Content: "Welcome text",
		User:    domain.Identity{UserID: "u1", Username: "admin", Role: domain.RoleAdmin},
		Posts: []*domain.Post{
			{ID: "p1", Title: "First <post>", Content: "Body", CreatedAt: time.Now()},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, "home", page, nil))
	html := buf.String()

	assert.Contains(t, html, "Welcome text")
	assert.Contains(t, html, `href="/posts/p1"`)
	assert.Contains(t, html, "First &lt;post&gt;")
	assert.Contains(t, html, `href="/admin"`)
	assert.Contains(t, html, `href="/logout"`)
	assert.NotContains(t, html, `href="/login"`)
}

func TestRenderer_AnonymousNav(t *testing.T) {
	r := newTestRenderer(t)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, "login", Page{Error: "Invalid username or password"}, nil))
	html := buf.String()

	assert.Contains(t, html, "Invalid username or password")
	assert.Contains(t, html, `href="/register"`)
	assert.NotContains(t, html, `href="/compose"`)
}

func TestRenderer_PostRendersMarkdown(t *testing.T) {
	r := newTestRenderer(t)
	post := &domain.Post{ID: "p1", Title: "T", Content: "# Heading\n\n<b>raw</b>", CreatedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)}

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, "post", Page{Post: post}, nil))
	html := buf.String()

	assert.Contains(t, html, "<h1>Heading</h1>")
	assert.Contains(t, html, "March 1, 2024")
	assert.NotContains(t, html, "<b>raw</b>")
}

func TestRenderer_UnknownPage(t *testing.T) {
	r := newTestRenderer(t)
	assert.Error(t, r.Render(&bytes.Buffer{}, "missing", Page{}, nil))
}

func TestPublicFS(t *testing.T) {
	data, err := fs.ReadFile(PublicFS(), "css/styles.css")
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

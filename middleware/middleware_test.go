package middleware

import (
	"context"
	"html/template"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/schemald"
	"github.com/reoring/schemald/schemaorg"
)

func TestCollect_AddAndRender(t *testing.T) {
	var rendered template.HTML
	h := Collect(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.True(t, Add(r, &schemaorg.WebSite{Name: "Site", URL: "https://example.com"}))
		require.True(t, Add(r, &schemaorg.Organization{Name: "Org"}))
		c, ok := Collection(r)
		require.True(t, ok)
		assert.Equal(t, 2, c.Len())
		var err error
		rendered, err = Render(r)
		require.NoError(t, err)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	s := string(rendered)
	assert.Equal(t, 2, strings.Count(s, schemald.ScriptOpen))
	assert.Less(t, strings.Index(s, `"@type":"WebSite"`), strings.Index(s, `"@type":"Organization"`))
}

func TestCollect_FreshPerRequest(t *testing.T) {
	var sizes []int
	h := Collect(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		Add(r, &schemaorg.Person{Name: "Ann"})
		c, _ := Collection(r)
		sizes = append(sizes, c.Len())
	}))
	for range 3 {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	}
	assert.Equal(t, []int{1, 1, 1}, sizes)
}

func TestWithoutCollect(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.False(t, Add(r, &schemaorg.Person{Name: "Ann"}))
	out, err := Render(r)
	require.NoError(t, err)
	assert.Empty(t, out)

	r = WithCollection(r)
	c1, _ := Collection(r)
	c2, _ := Collection(WithCollection(r))
	assert.Same(t, c1, c2, "an existing collection is kept")
}

func TestFuncMap(t *testing.T) {
	tmpl := template.Must(template.New("page").Funcs(FuncMap()).Parse(`<head>{{ jsonld .Ctx }}</head>`))
	c := schemald.NewCollection()
	c.Add(&schemaorg.Person{Name: "A</script>"})
	ctx := schemald.NewContext(context.Background(), c)

	var b strings.Builder
	require.NoError(t, tmpl.Execute(&b, map[string]any{"Ctx": ctx}))
	out := b.String()
	assert.True(t, strings.HasPrefix(out, "<head>"+schemald.ScriptOpen))
	assert.Equal(t, 1, strings.Count(out, schemald.ScriptClose))
	assert.Contains(t, out, `"A\u003c/script\u003e"`)
}

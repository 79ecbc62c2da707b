package echomw

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/schemald"
	"github.com/reoring/schemald/schemaorg"
)

func TestCollect(t *testing.T) {
	e := echo.New()
	e.Use(Collect())
	e.GET("/recipe", func(c echo.Context) error {
		Add(c, &schemaorg.Recipe{Name: "Pancakes"})
		Add(c, &schemaorg.BreadcrumbList{ItemListElement: []schemaorg.ListItem{{Position: 1, Name: "Home", Item: "https://example.com/"}}})
		h, err := Render(c)
		if err != nil {
			return err
		}
		return c.HTML(http.StatusOK, "<head>"+string(h)+"</head>")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/recipe", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Equal(t, 2, strings.Count(body, schemald.ScriptOpen))
	assert.Contains(t, body, `{"@context":"https://schema.org","@type":"Recipe","name":"Pancakes"}`)
}

func TestAdd_WithoutCollect(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.False(t, Add(c, &schemaorg.Person{Name: "Ann"}))
	h, err := Render(c)
	require.NoError(t, err)
	assert.Empty(t, h)
}

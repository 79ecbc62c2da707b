package ginmw

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/schemald"
	"github.com/reoring/schemald/schemaorg"
)

func init() { gin.SetMode(gin.TestMode) }

func TestCollect(t *testing.T) {
	r := gin.New()
	r.Use(Collect())
	r.GET("/faq", func(c *gin.Context) {
		Add(c, &schemaorg.FAQPage{MainEntity: []schemaorg.Question{{Name: "Q", AcceptedAnswer: []schemaorg.Answer{{Text: "A"}}}}})
		h, err := Render(c)
		if err != nil {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(h))
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/faq", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, schemald.ScriptOpen))
	assert.True(t, strings.HasSuffix(body, schemald.ScriptClose))
	assert.Contains(t, body, `"@type":"FAQPage"`)
}

func TestAdd_WithoutCollect(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	assert.False(t, Add(c, &schemaorg.Person{Name: "Ann"}))
	h, err := Render(c)
	require.NoError(t, err)
	assert.Empty(t, h)
	assert.Contains(t, FuncMap(), "jsonld")
}

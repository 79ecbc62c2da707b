package compare_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/bcicen/jstream"
	jschema "github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/valyala/fastjson"

	"github.com/reoring/schemald"
	"github.com/reoring/schemald/schemaorg"
)

const jsonSchemaRecipe = `{
  "type": "object",
  "properties": {
    "@context": {"const": "https://schema.org"},
    "@type": {"const": "Recipe"},
    "name": {"type": "string"},
    "cookTime": {"type": "string", "pattern": "^PT[0-9]+(H[0-9]+)?M$"},
    "prepTime": {"type": "string", "pattern": "^PT[0-9]+(H[0-9]+)?M$"},
    "author": {
      "type": "object",
      "required": ["@type", "name"],
      "not": {"required": ["@context"]}
    },
    "recipeIngredient": {"type": "array", "items": {"type": "string"}}
  },
  "required": ["@context", "@type", "name"]
}`

func document(t *testing.T, s schemald.Schema) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := s.WriteDocument(schemald.NewWriter(&buf)); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestConformance_JSONSchema(t *testing.T) {
	sch := jschema.MustCompileString("mem:recipe", jsonSchemaRecipe)
	for _, r := range []*schemaorg.Recipe{recipe(), {Name: "Tea"}} {
		var v any
		if err := json.Unmarshal(document(t, r), &v); err != nil {
			t.Fatal(err)
		}
		if err := sch.Validate(v); err != nil {
			t.Fatalf("%s: %v", r.Name, err)
		}
	}
}

func TestConformance_fastjson(t *testing.T) {
	data := document(t, recipe())
	if err := fastjson.ValidateBytes(data); err != nil {
		t.Fatal(err)
	}
	var p fastjson.Parser
	v, err := p.ParseBytes(data)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(v.GetStringBytes("@type")); got != "Recipe" {
		t.Fatalf("@type = %q", got)
	}
	if got := string(v.GetStringBytes("prepTime")); got != "PT1H30M" {
		t.Fatalf("prepTime = %q", got)
	}
	if v.Exists("author", "@context") {
		t.Fatal("nested author carries @context")
	}
	if n := len(v.GetArray("recipeIngredient")); n != 4 {
		t.Fatalf("recipeIngredient has %d items", n)
	}
}

// Key order is lost when decoding into a map; jstream reports members in
// stream order.
func TestConformance_KeyOrder(t *testing.T) {
	dec := jstream.NewDecoder(bytes.NewReader(document(t, recipe())), 1).EmitKV()
	var keys []string
	for mv := range dec.Stream() {
		keys = append(keys, mv.Value.(jstream.KV).Key)
	}
	if err := dec.Err(); err != nil {
		t.Fatal(err)
	}
	want := "@context,@type,name,description,cookTime,prepTime,author,recipeIngredient,recipeInstructions"
	if got := strings.Join(keys, ","); got != want {
		t.Fatalf("keys = %s\nwant  %s", got, want)
	}
}

package schemald_test

import (
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/reoring/schemald"
)

type reflectPerson struct {
	Name string `jsonld:",required"`
}

func (*reflectPerson) VocabularyType() string { return "Person" }

type reflectBase struct {
	Description string
}

type reflectRecipe struct {
	reflectBase
	Name      string        `jsonld:",required"`
	CookTime  time.Duration `jsonld:"cookTime"`
	PrepTime  time.Duration `jsonld:",duration=minutes"`
	Servings  int
	Rating    *float64
	Published time.Time `jsonld:"datePublished,date=date"`
	URL       url.URL
	Tags      []string
	Author    *reflectPerson
	Editors   []*reflectPerson
	Internal  string `jsonld:"-"`
	secret    string
}

func (*reflectRecipe) VocabularyType() string { return "Recipe" }

func TestReflect_MatchesEmissionRules(t *testing.T) {
	u, _ := url.Parse("https://example.com/p")
	r := &reflectRecipe{
		reflectBase: reflectBase{Description: "Fluffy"},
		Name:        "Pancakes",
		CookTime:    90 * time.Minute,
		PrepTime:    10 * time.Minute,
		Published:   time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
		URL:         *u,
		Tags:        []string{"a", "b"},
		Author:      &reflectPerson{Name: "Ann"},
		Editors:     []*reflectPerson{nil, {Name: "Bo"}},
		Internal:    "x",
		secret:      "y",
	}
	got, err := schemald.RenderDocumentString(schemald.MustReflect(r))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := schemald.ScriptOpen +
		`{"@context":"https://schema.org","@type":"Recipe","description":"Fluffy","name":"Pancakes",` +
		`"cookTime":"PT1H30M","prepTime":10,"datePublished":"2024-03-01","uRL":"https://example.com/p",` +
		`"tags":["a","b"],"author":{"@type":"Person","name":"Ann"},"editors":[null,{"@type":"Person","name":"Bo"}]}` +
		schemald.ScriptClose
	if got != want {
		t.Fatalf("got  %s\nwant %s", got, want)
	}
}

func TestReflect_RequiredZeroIsWritten(t *testing.T) {
	got, err := schemald.RenderDocumentString(schemald.MustReflect(&reflectPerson{}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := schemald.ScriptOpen + `{"@context":"https://schema.org","@type":"Person","name":""}` + schemald.ScriptClose
	if got != want {
		t.Fatalf("got %s", got)
	}
}

type untyped struct {
	ID uint
}

func TestReflect_DefaultsToGoTypeName(t *testing.T) {
	got, err := schemald.RenderDocumentString(schemald.MustReflect(&untyped{ID: 3}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := schemald.ScriptOpen + `{"@context":"https://schema.org","@type":"untyped","iD":3}` + schemald.ScriptClose
	if got != want {
		t.Fatalf("got %s", got)
	}
}

type clash struct {
	A string `jsonld:"x"`
	B string `jsonld:"x"`
}

func TestReflect_Errors(t *testing.T) {
	if _, err := schemald.Reflect(nil); !errors.Is(err, schemald.ErrNilDocument) {
		t.Fatalf("expected ErrNilDocument, got %v", err)
	}
	if _, err := schemald.Reflect((*clash)(nil)); !errors.Is(err, schemald.ErrNilDocument) {
		t.Fatalf("expected ErrNilDocument for a nil pointer, got %v", err)
	}
	if _, err := schemald.Reflect(untyped{}); !errors.Is(err, schemald.ErrNotStruct) {
		t.Fatalf("expected ErrNotStruct, got %v", err)
	}
	if _, err := schemald.Reflect(&clash{}); !errors.Is(err, schemald.ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}
}

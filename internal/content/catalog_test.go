package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	ids := []string{}
	for _, topic := range c.List() {
		ids = append(ids, topic.ID)
	}
	assert.Equal(t, []string{"numbers", "algebra", "trigonometry", "linear-algebra", "statistics", "calculus"}, ids)

	trig, err := c.Get("trigonometry")
	require.NoError(t, err)
	assert.Contains(t, trig.Widgets, "unit-circle")
	assert.NotEmpty(t, trig.Sections)

	calc, err := c.Get("calculus")
	require.NoError(t, err)
	assert.NotNil(t, calc.Widgets)
}

func TestGetUnknown(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)
	_, err = c.Get("topology")
	assert.ErrorIs(t, err, ErrTopicNotFound)
}

func TestListIsACopy(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)
	list := c.List()
	list[0].Title = "changed"
	first, err := c.Get(list[0].ID)
	require.NoError(t, err)
	assert.NotEqual(t, "changed", first.Title)
}

func TestCopiesDoNotShareSlices(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	list := c.List()
	list[0].Widgets[0] = "tampered"
	list[0].Sections[0].Title = "tampered"

	got, err := c.Get("numbers")
	require.NoError(t, err)
	got.Widgets[0] = "tampered"
	got.Sections[0].ID = "tampered"

	for _, w := range c.ForWidget("number-classifier") {
		w.Sections[0].Title = "tampered"
	}

	fresh, err := c.Get("numbers")
	require.NoError(t, err)
	assert.Equal(t, []string{"number-classifier"}, fresh.Widgets)
	assert.Equal(t, Section{ID: "number-sets", Title: "Number Sets"}, fresh.Sections[0])
	assert.Len(t, c.ForWidget("number-classifier"), 1)
}

func TestSanitizesSummaries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "topics.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`topics:
  - id: numbers
    title: Numbers
    order: 1
    summary: "<em>safe</em><script>alert(1)</script>"
`), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	topic, err := c.Get("numbers")
	require.NoError(t, err)
	assert.Equal(t, "<em>safe</em>", topic.Summary)
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "topics.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[[topics]]
id = "statistics"
title = "Statistics"
order = 2
widgets = ["hypothesis-testing-simulator"]

[[topics]]
id = "numbers"
title = "Numbers"
order = 1
`), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())
	assert.Equal(t, "numbers", c.List()[0].ID)
	assert.Equal(t, "statistics", c.List()[1].ID)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "topics.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{}`), 0o644))
	_, err = Load(bad)
	assert.ErrorIs(t, err, ErrInvalidCatalog)

	dup := filepath.Join(dir, "dup.yaml")
	require.NoError(t, os.WriteFile(dup, []byte("topics:\n  - id: a\n  - id: a\n"), 0o644))
	_, err = Load(dup)
	assert.ErrorIs(t, err, ErrInvalidCatalog)

	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("topics: []\n"), 0o644))
	_, err = Load(empty)
	assert.ErrorIs(t, err, ErrInvalidCatalog)
}

func TestLoadEmptyPathUsesEmbedded(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 6, c.Len())
}

func TestForWidget(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	topics := c.ForWidget("unit-circle")
	require.Len(t, topics, 1)
	assert.Equal(t, "trigonometry", topics[0].ID)

	assert.Empty(t, c.ForWidget("nope"))
}

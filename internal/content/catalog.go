package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/microcosm-cc/bluemonday"
	"github.com/pelletier/go-toml/v2"
)

//go:embed topics.yaml
var embeddedTopics []byte

var (
	ErrTopicNotFound  = errors.New("content: topic not found")
	ErrInvalidCatalog = errors.New("content: invalid catalog")
)

// Section is one heading within a topic page
type Section struct {
	ID    string `json:"id" yaml:"id" toml:"id"`
	Title string `json:"title" yaml:"title" toml:"title"`
}

// Topic is a top-level page of the site
type Topic struct {
	ID       string    `json:"id" yaml:"id" toml:"id"`
	Title    string    `json:"title" yaml:"title" toml:"title"`
	Summary  string    `json:"summary" yaml:"summary" toml:"summary"`
	Order    int       `json:"order" yaml:"order" toml:"order"`
	Widgets  []string  `json:"widgets" yaml:"widgets" toml:"widgets"`
	Sections []Section `json:"sections" yaml:"sections" toml:"sections"`
}

// clone copies t including its slices, so callers cannot reach catalog state
func (t Topic) clone() Topic {
	t.Widgets = slices.Clone(t.Widgets)
	t.Sections = slices.Clone(t.Sections)
	return t
}

type document struct {
	Topics []Topic `yaml:"topics" toml:"topics"`
}

// Catalog is the loaded, ordered topic list
type Catalog struct {
	topics []Topic
	byID   map[string]int
}

// Default loads the embedded catalog
func Default() (*Catalog, error) {
	return parse(embeddedTopics, unmarshalYAML)
}

// Load reads the catalog at path, or the embedded one when path is empty
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return parse(data, unmarshalYAML)
	case ".toml":
		return parse(data, toml.Unmarshal)
	default:
		return nil, fmt.Errorf("%w: unsupported format %q", ErrInvalidCatalog, filepath.Ext(path))
	}
}

func unmarshalYAML(data []byte, v interface{}) error {
	return yaml.Unmarshal(data, v)
}

func parse(data []byte, unmarshal func([]byte, interface{}) error) (*Catalog, error) {
	var doc document
	if err := unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	return build(doc.Topics)
}

func build(topics []Topic) (*Catalog, error) {
	if len(topics) == 0 {
		return nil, fmt.Errorf("%w: no topics", ErrInvalidCatalog)
	}

	policy := bluemonday.UGCPolicy()
	c := &Catalog{
		topics: make([]Topic, len(topics)),
		byID:   make(map[string]int, len(topics)),
	}
	copy(c.topics, topics)

	for i := range c.topics {
		t := &c.topics[i]
		if t.ID == "" {
			return nil, fmt.Errorf("%w: topic %d has no id", ErrInvalidCatalog, i)
		}
		t.Summary = strings.TrimSpace(policy.Sanitize(t.Summary))
		if t.Widgets == nil {
			t.Widgets = []string{}
		}
		if t.Sections == nil {
			t.Sections = []Section{}
		}
	}

	sort.SliceStable(c.topics, func(i, j int) bool {
		return c.topics[i].Order < c.topics[j].Order
	})

	for i, t := range c.topics {
		if _, dup := c.byID[t.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate topic %q", ErrInvalidCatalog, t.ID)
		}
		c.byID[t.ID] = i
	}
	return c, nil
}

// List returns the topics in display order
func (c *Catalog) List() []Topic {
	out := make([]Topic, len(c.topics))
	for i, t := range c.topics {
		out[i] = t.clone()
	}
	return out
}

// Get returns the topic with the given id
func (c *Catalog) Get(id string) (Topic, error) {
	i, ok := c.byID[id]
	if !ok {
		return Topic{}, fmt.Errorf("%w: %s", ErrTopicNotFound, id)
	}
	return c.topics[i].clone(), nil
}

// Len returns the number of topics
func (c *Catalog) Len() int {
	return len(c.topics)
}

// ForWidget returns the topics that embed widget, in display order
func (c *Catalog) ForWidget(widget string) []Topic {
	out := []Topic{}
	for _, t := range c.topics {
		for _, w := range t.Widgets {
			if w == widget {
				out = append(out, t.clone())
				break
			}
		}
	}
	return out
}

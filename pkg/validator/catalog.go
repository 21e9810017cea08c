package validator

import (
	"embed"
	"fmt"
	"maps"
	"path"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// fallbackKey holds the template used when a kind has no message.
const fallbackKey = "_default"

//go:embed messages/*.yaml
var messageFiles embed.FS

// Catalog maps rule kinds to message templates. Templates may use the
// placeholders :attribute, :rule, :1, :2 and :3. A Catalog never changes
// after construction and is safe to share.
type Catalog struct {
	lang     language.Tag
	messages map[string]string
}

var (
	// builtinTags lists the embedded catalogs; English comes first and is the
	// matcher's fallback.
	builtinTags     = []language.Tag{language.English, language.Chinese}
	builtinCatalogs = mustLoadCatalogs(builtinTags)
	catalogMatcher  = language.NewMatcher(builtinTags)
)

func mustLoadCatalogs(tags []language.Tag) []*Catalog {
	out := make([]*Catalog, 0, len(tags))
	for _, tag := range tags {
		c, err := loadCatalog(tag)
		if err != nil {
			panic(err)
		}
		out = append(out, c)
	}
	return out
}

func loadCatalog(tag language.Tag) (*Catalog, error) {
	base, _ := tag.Base()
	name := path.Join("messages", base.String()+".yaml")
	raw, err := messageFiles.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("validator: read catalog %s: %w", name, err)
	}
	messages := make(map[string]string)
	if err := yaml.Unmarshal(raw, &messages); err != nil {
		return nil, fmt.Errorf("validator: parse catalog %s: %w", name, err)
	}
	if _, ok := messages[fallbackKey]; !ok {
		return nil, fmt.Errorf("validator: catalog %s has no %s entry", name, fallbackKey)
	}
	return &Catalog{lang: tag, messages: messages}, nil
}

// DefaultCatalog returns the built-in English catalog.
func DefaultCatalog() *Catalog {
	return builtinCatalogs[0]
}

// CatalogFor returns the built-in catalog that best matches a BCP 47 tag or
// Accept-Language style list ("zh-CN", "fr, zh;q=0.8"). Unsupported
// languages get the English catalog.
func CatalogFor(tags ...string) *Catalog {
	_, i := language.MatchStrings(catalogMatcher, tags...)
	return builtinCatalogs[i]
}

// NewCatalog layers messages over base. A nil base means DefaultCatalog.
func NewCatalog(base *Catalog, messages map[string]string) *Catalog {
	if base == nil {
		base = DefaultCatalog()
	}
	merged := maps.Clone(base.messages)
	for kind, tmpl := range messages {
		merged[ResolveAlias(kind)] = tmpl
	}
	return &Catalog{lang: base.lang, messages: merged}
}

// Language returns the catalog language tag.
func (c *Catalog) Language() string {
	return c.lang.String()
}

// Lookup returns the template registered for kind.
func (c *Catalog) Lookup(kind string) (string, bool) {
	tmpl, ok := c.messages[ResolveAlias(kind)]
	return tmpl, ok
}

// Fallback returns the generic template used for kinds without a message.
func (c *Catalog) Fallback() string {
	return c.messages[fallbackKey]
}

// Render fills a template. :attribute becomes the display name, :rule the
// comma-joined parameters and :1 to :3 the individual parameters of a list.
// Regex templates are returned verbatim.
func Render(tmpl, attribute, kind string, params []any) string {
	if !strings.Contains(tmpl, ":") || ResolveAlias(kind) == "regex" {
		return tmpl
	}
	var items [3]string
	if len(params) > 1 {
		for i := 0; i < len(params) && i < len(items); i++ {
			items[i] = paramString(params[i])
		}
	}
	r := strings.NewReplacer(
		":attribute", attribute,
		":rule", paramText(params),
		":1", items[0],
		":2", items[1],
		":3", items[2],
	)
	return r.Replace(tmpl)
}

// Package templatecatalog davetiye şablonlarının salt okunur kataloğunu sağlar.
package templatecatalog

import (
	_ "embed"
	"fmt"
	"sync"

	"chodae.link/models"

	"github.com/BurntSushi/toml"
)

//go:embed templates.toml
var embeddedTemplates []byte

// Template statik şablon tanımıdır.
type Template struct {
	ID              string                `toml:"id" json:"id"`
	Type            models.InvitationType `toml:"type" json:"type"`
	Name            string                `toml:"name" json:"name"`
	Style           string                `toml:"style" json:"style"`
	IsPremium       bool                  `toml:"is_premium" json:"isPremium"`
	BackgroundColor string                `toml:"background_color" json:"backgroundColor"`
	PrimaryColor    string                `toml:"primary_color" json:"primaryColor"`
	FontFamily      string                `toml:"font_family" json:"fontFamily"`
	Description     string                `toml:"description" json:"description"`
}

// Stats katalog istatistikleri.
type Stats struct {
	Total   int                           `json:"total"`
	Free    int                           `json:"free"`
	Premium int                           `json:"premium"`
	ByType  map[models.InvitationType]int `json:"byType"`
}

// Catalog yükleme sonrası değişmez; eşzamanlı okuma için güvenlidir.
type Catalog struct {
	templates []Template
	byID      map[string]Template
}

type catalogFile struct {
	Templates []Template `toml:"templates"`
}

// Load TOML verisinden katalog oluşturur.
func Load(data []byte) (*Catalog, error) {
	var file catalogFile
	if _, err := toml.Decode(string(data), &file); err != nil {
		return nil, fmt.Errorf("decode template catalog: %w", err)
	}

	c := &Catalog{byID: make(map[string]Template, len(file.Templates))}
	for _, tpl := range file.Templates {
		if tpl.ID == "" {
			return nil, fmt.Errorf("template without id")
		}
		if _, dup := c.byID[tpl.ID]; dup {
			return nil, fmt.Errorf("duplicate template id %q", tpl.ID)
		}
		if !isKnownType(tpl.Type) {
			return nil, fmt.Errorf("template %q has unknown type %q", tpl.ID, tpl.Type)
		}
		c.templates = append(c.templates, tpl)
		c.byID[tpl.ID] = tpl
	}
	return c, nil
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default gömülü templates.toml dosyasından yüklenen katalogdur.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Load(embeddedTemplates)
		if err != nil {
			panic(err) // Gömülü dosya derleme zamanında sabit
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// All tüm şablonların bir kopyasını döner.
func (c *Catalog) All() []Template {
	out := make([]Template, len(c.templates))
	copy(out, c.templates)
	return out
}

// ByID ID ile şablon arar.
func (c *Catalog) ByID(id string) (Template, bool) {
	tpl, ok := c.byID[id]
	return tpl, ok
}

// ByType belirli türdeki şablonları döner.
func (c *Catalog) ByType(t models.InvitationType) []Template {
	return c.filter(func(tpl Template) bool { return tpl.Type == t })
}

// Free ücretsiz şablonlar.
func (c *Catalog) Free() []Template {
	return c.filter(func(tpl Template) bool { return !tpl.IsPremium })
}

// Premium ücretli şablonlar.
func (c *Catalog) Premium() []Template {
	return c.filter(func(tpl Template) bool { return tpl.IsPremium })
}

// Stats toplam, ücretsiz, premium ve tür bazında sayıları hesaplar.
func (c *Catalog) Stats() Stats {
	stats := Stats{Total: len(c.templates), ByType: make(map[models.InvitationType]int, len(models.InvitationTypes))}
	for _, t := range models.InvitationTypes {
		stats.ByType[t] = 0
	}
	for _, tpl := range c.templates {
		if tpl.IsPremium {
			stats.Premium++
		} else {
			stats.Free++
		}
		stats.ByType[tpl.Type]++
	}
	return stats
}

func (c *Catalog) filter(keep func(Template) bool) []Template {
	out := make([]Template, 0, len(c.templates))
	for _, tpl := range c.templates {
		if keep(tpl) {
			out = append(out, tpl)
		}
	}
	return out
}

func isKnownType(t models.InvitationType) bool {
	for _, known := range models.InvitationTypes {
		if t == known {
			return true
		}
	}
	return false
}

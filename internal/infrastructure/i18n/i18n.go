package i18n

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"text/template"
)

//go:embed locales/*.json
var embeddedLocales embed.FS

// catalog são as mensagens de um idioma; mensagens com {{ }} já vêm compiladas
type catalog struct {
	messages  map[string]string
	templates map[string]*template.Template
}

// Service resolve message IDs em texto no idioma da requisição.
// Os catálogos são imutáveis depois do carregamento.
type Service struct {
	catalogs        map[string]*catalog
	defaultLanguage string
}

// NewEmbeddedService carrega as traduções embutidas no binário
func NewEmbeddedService(defaultLang string) (*Service, error) {
	sub, err := fs.Sub(embeddedLocales, "locales")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded locales: %w", err)
	}
	return NewService(sub, defaultLang)
}

// NewService carrega um catálogo por arquivo <idioma>.json na raiz de fsys
func NewService(fsys fs.FS, defaultLang string) (*Service, error) {
	files, err := fs.Glob(fsys, "*.json")
	if err != nil {
		return nil, fmt.Errorf("failed to find locale files: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no locale files found")
	}

	s := &Service{
		catalogs:        make(map[string]*catalog, len(files)),
		defaultLanguage: defaultLang,
	}
	for _, file := range files {
		lang := strings.TrimSuffix(path.Base(file), ".json")
		c, err := loadCatalog(fsys, file)
		if err != nil {
			return nil, err
		}
		s.catalogs[lang] = c
	}

	if _, ok := s.catalogs[defaultLang]; !ok {
		return nil, fmt.Errorf("default language %s not found in locale files", defaultLang)
	}

	return s, nil
}

func loadCatalog(fsys fs.FS, file string) (*catalog, error) {
	data, err := fs.ReadFile(fsys, file)
	if err != nil {
		return nil, fmt.Errorf("failed to read locale file %s: %w", file, err)
	}

	var messages map[string]string
	if err := json.Unmarshal(data, &messages); err != nil {
		return nil, fmt.Errorf("failed to parse locale file %s: %w", file, err)
	}

	c := &catalog{messages: messages, templates: make(map[string]*template.Template)}
	for key, message := range messages {
		if !strings.Contains(message, "{{") {
			continue
		}
		tmpl, err := template.New(key).Option("missingkey=error").Parse(message)
		if err != nil {
			return nil, fmt.Errorf("invalid message %s in %s: %w", key, file, err)
		}
		c.templates[key] = tmpl
	}
	return c, nil
}

// T traduz key para lang. Ordem de busca: lang, idioma base (uk-UA -> uk),
// idioma padrão; sem tradução devolve a própria chave.
// Parâmetros são interpolados com templates Go ({{.Max}}).
func (s *Service) T(lang, key string, params ...map[string]interface{}) string {
	for _, candidate := range s.fallbackChain(lang) {
		c, ok := s.catalogs[candidate]
		if !ok {
			continue
		}
		message, ok := c.messages[key]
		if !ok {
			continue
		}

		tmpl, ok := c.templates[key]
		if !ok || len(params) == 0 {
			return message
		}
		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, params[0]); err != nil {
			return message
		}
		return buf.String()
	}

	return key
}

func (s *Service) fallbackChain(lang string) []string {
	chain := []string{lang}
	if base, _, found := strings.Cut(lang, "-"); found {
		chain = append(chain, base)
	}
	return append(chain, s.defaultLanguage)
}

// MissingKeys lista as chaves do idioma padrão sem tradução em lang
func (s *Service) MissingKeys(lang string) []string {
	c, ok := s.catalogs[lang]
	if !ok {
		return nil
	}

	var missing []string
	for key := range s.catalogs[s.defaultLanguage].messages {
		if _, ok := c.messages[key]; !ok {
			missing = append(missing, key)
		}
	}
	sort.Strings(missing)
	return missing
}

// GetDefaultLanguage retorna o idioma padrão configurado
func (s *Service) GetDefaultLanguage() string {
	return s.defaultLanguage
}

// GetSupportedLanguages retorna os idiomas carregados em ordem alfabética
func (s *Service) GetSupportedLanguages() []string {
	langs := make([]string, 0, len(s.catalogs))
	for lang := range s.catalogs {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// IsLanguageSupported verifica se um idioma é suportado
func (s *Service) IsLanguageSupported(lang string) bool {
	_, ok := s.catalogs[lang]
	return ok
}

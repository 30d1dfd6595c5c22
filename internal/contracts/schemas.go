package contracts

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// baseURL - общий префикс $id всех схем; через него схемы ссылаются друг на друга.
const baseURL = "https://six-cities.local/schemas/"

// Ключи схем ответов удаленного API.
const (
	OfferResponse    = "OfferResponse"
	OffersResponse   = "OffersResponse"
	ReviewsResponse  = "ReviewsResponse"
	AuthInfoResponse = "AuthInfoResponse"

	VersionV1 = "1.0.0"
)

//go:embed schemas/api
var schemasFS embed.FS

var compiledSchemas = make(map[string]*jsonschema.Schema)

func init() {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	// Сначала регистрируем все схемы как ресурсы, чтобы работали $ref между ними
	var paths []string
	err := fs.WalkDir(schemasFS, "schemas", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".json") {
			return nil
		}
		file, err := schemasFS.Open(path)
		if err != nil {
			return err
		}
		defer file.Close()
		if err := compiler.AddResource(baseURL+strings.TrimPrefix(path, "schemas/"), file); err != nil {
			return fmt.Errorf("failed to add schema resource %s: %w", path, err)
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		log.Fatalf("error walking and adding schema resources: %v", err)
	}

	for _, path := range paths {
		schema, err := compiler.Compile(baseURL + strings.TrimPrefix(path, "schemas/"))
		if err != nil {
			log.Fatalf("could not compile schema %s: %v", path, err)
		}
		compiledSchemas[generateKeyFromPath(path)] = schema
	}
}

// generateKeyFromPath преобразует "schemas/api/auth-info/v1.json" в "AuthInfoResponse/1.0.0".
func generateKeyFromPath(path string) string {
	trimmed := strings.TrimPrefix(path, "schemas/api/")
	trimmed = strings.TrimSuffix(trimmed, ".json")

	parts := strings.Split(trimmed, "/")
	if len(parts) != 2 {
		return ""
	}

	caser := cases.Title(language.English)
	var name strings.Builder
	for _, p := range strings.Split(parts[0], "-") {
		name.WriteString(caser.String(p))
	}
	name.WriteString("Response")

	version := strings.Replace(parts[1], "v", "", 1) + ".0.0"
	return fmt.Sprintf("%s/%s", name.String(), version)
}

// ValidateResponse проверяет тело ответа API по схеме name/version.
func ValidateResponse(name, version string, body []byte) error {
	key := fmt.Sprintf("%s/%s", name, version)
	schema, ok := compiledSchemas[key]
	if !ok {
		return fmt.Errorf("schema for response '%s' version '%s' not found", name, version)
	}

	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		return fmt.Errorf("response body is not a valid JSON: %w", err)
	}

	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("JSON schema validation failed: %w", err)
	}
	return nil
}

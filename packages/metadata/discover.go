package metadata

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
	"github.com/xeipuuv/gojsonschema"
)

// ConfigName is the per-framework config file discovery looks for.
const ConfigName = "benchmark_config.json"

// configSchema is the shape a config must satisfy to be indexed. Files
// that fail validation are skipped so one malformed framework cannot
// abort discovery for the rest of the tree.
const configSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["framework", "tests"],
  "properties": {
    "framework": {"type": "string", "minLength": 1},
    "tests": {
      "type": "array",
      "items": {
        "type": "object",
        "additionalProperties": {
          "type": "object",
          "properties": {
            "tags": {"type": "array", "items": {"type": "string"}}
          }
        }
      }
    }
  }
}`

var schemaLoader = gojsonschema.NewStringLoader(configSchema)

// Discover walks <root>/frameworks for benchmark_config.json files and
// builds an Index of the frameworks and tests they declare.
func Discover(root string) (*Index, error) {
	ix := &Index{}

	frameworksDir := filepath.Join(root, "frameworks")
	err := filepath.WalkDir(frameworksDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || d.Name() != ConfigName {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		if fw, ok := parseConfig(data); ok {
			ix.frameworks = append(ix.frameworks, fw)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", frameworksDir, err)
	}

	return ix, nil
}

// parseConfig validates and parses one config file. The second return is
// false for configs that do not satisfy the schema.
func parseConfig(data []byte) (Framework, bool) {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(data))
	if err != nil || !result.Valid() {
		return Framework{}, false
	}

	name := gjson.GetBytes(data, "framework").String()
	fw := Framework{Name: name}

	gjson.GetBytes(data, "tests").ForEach(func(_, entry gjson.Result) bool {
		entry.ForEach(func(key, test gjson.Result) bool {
			fw.Tests = append(fw.Tests, Test{
				Name:      testName(name, key.String()),
				Framework: name,
				Tags:      stringSlice(test.Get("tags")),
			})
			return true
		})
		return true
	})

	return fw, true
}

// testName follows the benchmarks convention: the "default" test takes
// the framework's name, any other entry is suffixed onto it.
func testName(framework, key string) string {
	if key == "default" {
		return framework
	}
	return framework + "-" + key
}

func stringSlice(result gjson.Result) []string {
	var values []string
	for _, item := range result.Array() {
		values = append(values, item.String())
	}
	return values
}

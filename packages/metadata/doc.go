// Package metadata discovers the frameworks and test implementations
// declared under a benchmarks root by walking frameworks/** for
// benchmark_config.json files. Each config is validated against a JSON
// schema before it is indexed; invalid configs are skipped rather than
// failing the whole walk.
package metadata

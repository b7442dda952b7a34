// Package content holds the topic catalog: the ordered list of site sections,
// their summaries and the interactive widgets each page embeds.
//
// The catalog ships embedded as YAML. A YAML or TOML file can replace it at
// startup (CONTENT_PATH). Summaries may carry inline HTML and are sanitized
// once at load time; the loaded catalog is immutable and safe for concurrent use.
package content

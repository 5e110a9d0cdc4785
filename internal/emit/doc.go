// Package emit renders generated source artifacts from structured
// descriptions. The aggregation core hands it plain descriptions (qualified
// names, method signatures); this package owns everything Go-specific:
// import aliasing, cty-to-Go type mapping, template rendering, and gofmt.
//
// Artifacts are written through the Writer interface so tests can capture
// output in memory while the CLI writes real files.
package emit

// Package frontmatter provides utilities for parsing and formatting
// YAML frontmatter in markdown files.
//
// Skill and agent templates carry their metadata (name, description,
// tools) as frontmatter. The platform transforms parse it, prune or
// reshape it, and format it back; the list command reads only the header
// via [ParseHeader] to show descriptions without loading full bodies.
package frontmatter

// Package promptweave is a small templating and text-extraction engine for
// language-model prompts. It renders {{ }} placeholder templates into plain
// text and parses role-tagged or structured sections back out of template
// sources and model responses.
//
// # Rendering
//
// Create an engine and render templates with a variable map:
//
//	engine := promptweave.New()
//	out, err := engine.Render("Hello {{name}}!", map[string]any{"name": "Sam"})
//	// out: "Hello Sam!"
//
// Placeholders support one-armed and two-armed ternary conditionals with
// backtick-delimited branches, which may themselves contain placeholders:
//
//	{{ is_admin ? `Welcome back, {{name}}.` : `Access denied.` }}
//
// Conditions are deliberately constrained: a single optionally-negated
// variable, or exactly two such operands joined by && or ||. There are no
// parentheses, no arithmetic, and no operator mixing.
//
// Malformed template shapes never fail a render. An unmatched {{ stays
// literal text, an unknown variable renders empty, and an empty substitution
// swallows the one newline that immediately follows it so conditional lines
// vanish cleanly.
//
// # Extraction
//
// The extraction side is a set of pure functions over model output:
//
//	msgs := promptweave.ParseRoleTags(rendered)                 // <SYSTEM>/<USER>/<ASSISTANT> blocks
//	parts := promptweave.ParseStructuredContent(out, []string{"plan", "code"})
//	lead := promptweave.ExtractInitialTaggedContent(out, "thinking")
//
// Extraction is mechanical only: whether a missing tag is an error is the
// caller's policy, not this package's.
//
// # Documents and stores
//
// Templates may carry YAML frontmatter with variable defaults, and can be
// kept in a TemplateStore (memory, filesystem with live reload, or
// PostgreSQL) for retrieval by name via Engine.RenderStored.
package promptweave

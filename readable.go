// Package readable turns noisy, real-world HTML into clean article content.
// It extracts the main body of a page, the part a human reader cares
// about, by scoring and pruning the markup tree, discarding navigation,
// ads, and boilerplate without per-site rules.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., readability/, sqlite/, goquery/).
package readable

// Package sigles answers "what does this abbreviation mean?" by querying
// French and English acronym dictionaries on the web, extracting
// structured records from their markup, and aggregating the results.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, sqlite/, rod/).
package sigles

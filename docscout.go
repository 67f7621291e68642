// Package docscout scrapes dental and medical practice websites, locates
// team/doctor pages, and extracts structured person records (name, bio,
// derived age, hometown, education, photo URL, Owner/Associate role).
// Extraction is LLM-first with a deterministic regex fallback.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, gemini/, sqlite/).
package docscout

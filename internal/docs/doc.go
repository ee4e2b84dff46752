// Package docs extracts the prose to be checked from source files, markdown
// files and manifest descriptions.
//
// Extracted text is organised in chunks. A chunk is contiguous text plus the
// fragments that map chunk offsets back to file offsets, so findings inside a
// chunk can be reported at their exact source position.
package docs

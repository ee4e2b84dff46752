// Package traverse turns check items into the set of files whose
// documentation is checked.
//
// In recursive mode it follows `mod name;` declarations breadth first from
// every Source item, visiting each file exactly once. In shallow mode each
// Source item's directory is walked for *.rs files instead. Markdown files and
// manifest descriptions are passed through untouched.
package traverse

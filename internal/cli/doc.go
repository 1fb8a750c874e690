// Package cli implements the tagfix command line.
//
//	tagfix [flags] <directory>
//
// Settings come from the JSON config file (see config.DefaultPath) and are
// overridden by flags that were set explicitly. Invalid settings abort the
// run with one message before any file is opened.
//
// Output goes to stdout: one record line per file, optional dumps, the
// changes made and a "---" separator. Structured logs go to stderr and are
// quiet unless --debug is given.
package cli

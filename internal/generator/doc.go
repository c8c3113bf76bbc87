// Package generator turns a Request into source files. It asks the remote
// generation service for every required file and, if any request fails,
// renders all of them from the Template Bank instead. Remote and template
// content are never mixed within one run.
package generator

// Package release tells users when a newer codegen build is published. It
// looks up the latest GitHub release after a command runs and records the
// result under the codegen home directory. The banner reads only that record.
package release

// Package modules contains all self-contained application features.
//
// Each subdirectory is a module implementing the `module.Module` interface:
// chatshell (the chat section layout), docs (the upload prompt and its dialog)
// and uploads (the upload surface and document endpoints). Modules are listed
// in `internal/app/modules.go`; the server registers all of them before booting
// any, so services a module publishes in the registry are visible to the rest.
package modules

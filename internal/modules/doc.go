// Package modules groups feature modules. Each subdirectory implements
// module.Module, is listed in internal/app.NewModules, and is mounted by the
// server under "/<name>".
package modules

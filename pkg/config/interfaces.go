// Package config pkg/config/interfaces.go
package config

// Validator allows a configuration struct to self-validate after loading.
type Validator interface {
	Validate() error
}

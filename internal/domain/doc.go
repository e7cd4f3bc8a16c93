// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (wire/state) and contracts (interfaces) only; the
// types and interfaces subpackages hold the definitions and this package
// re-exports them under short names.
package domain

// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (roles, keys, secrets, session state) and the
// operator-console contracts only.
package domain

// Package guard detects values that bypassed their constructor.
package guard

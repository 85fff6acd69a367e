// Package utils holds the loose conversions used when reading query
// parameters and interactive answers.
package utils

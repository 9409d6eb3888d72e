// Package language normalizes track language codes and resolves the English
// display names used in output track titles.
package language

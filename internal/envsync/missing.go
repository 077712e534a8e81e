// Package envsync brings a target env file up to date with its template:
// it finds missing keys, collects values for them interactively, and appends
// the accepted values after backing the target up.
package envsync

import "github.com/CodexForgeBR/henvdall/internal/envfile"

// ComputeMissing returns the template entries whose key does not appear in
// target, in template order.
func ComputeMissing(template, target *envfile.File) []envfile.Entry {
	var missing []envfile.Entry
	for _, e := range template.Entries() {
		if !target.Has(e.Key) {
			missing = append(missing, e)
		}
	}
	return missing
}

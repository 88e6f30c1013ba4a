// Package charset defines the closed catalog of exclusion profiles and
// resolves them into the candidate character sets keys are drawn from.
package charset

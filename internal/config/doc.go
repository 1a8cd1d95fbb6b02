// Package config resolves runtime settings for the medrec commands from flags,
// the process environment and an optional .env file.
//
// Flags win over environment variables, which win over defaults. The .env file
// is loaded first and never overrides variables already set in the process.
package config
